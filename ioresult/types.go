// Copyright (c) 2023 - 2025 IBM Corp.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ioresult combines IO with Result, the synchronous effect used
// throughout the streaming engine to report failures without resorting to
// panics or the Go (value, error) idiom at every call site.
package ioresult

import (
	"github.com/IBM/fp-go-streams/consumer"
	"github.com/IBM/fp-go-streams/function"
	"github.com/IBM/fp-go-streams/io"
	"github.com/IBM/fp-go-streams/result"
)

type (
	// IO represents a synchronous computation that cannot fail.
	IO[A any] = io.IO[A]

	// Lazy represents a deferred computation that produces a value of type A.
	Lazy[A any] = func() A

	// Result represents a computation that may fail with an error.
	Result[A any] = result.Result[A]

	// Endomorphism represents a function from a type to itself (A -> A).
	Endomorphism[A any] = func(A) A

	// IOResult combines IO (side effects) with Result (error handling): a
	// synchronous computation that may fail with an error.
	IOResult[A any] = IO[Result[A]]

	// Kleisli is a Kleisli arrow for the IOResult monad: a function from A
	// to IOResult[B], used to compose operations that may fail.
	Kleisli[A, B any] = func(A) IOResult[B]

	// Operator transforms one IOResult into another.
	Operator[A, B any] = Kleisli[IOResult[A], B]

	// Consumer consumes a value of type A, typically for side effects like
	// logging or updating state.
	Consumer[A any] = consumer.Consumer[A]

	Void = function.Void
)
