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

package ioresult

import (
	A "github.com/IBM/fp-go-streams/internal/apply"
	C "github.com/IBM/fp-go-streams/internal/chain"
	F "github.com/IBM/fp-go-streams/internal/functor"
)

// Do creates an empty context of type S to be used with [Bind]. This is the
// starting point for do-notation style composition.
//
//go:inline
func Do[S any](
	empty S,
) IOResult[S] {
	return Of(empty)
}

// Bind attaches the result of a computation to a context S1 to produce a
// context S2, short-circuiting the remainder of the chain on the first error.
//
//go:inline
func Bind[S1, S2, T any](
	setter func(T) func(S1) S2,
	f Kleisli[S1, T],
) Operator[S1, S2] {
	return C.Bind(
		Chain[S1, S2],
		Map[T, S2],
		setter,
		f,
	)
}

// Let attaches the result of a pure computation to a context S1 to produce
// a context S2.
//
//go:inline
func Let[S1, S2, T any](
	setter func(T) func(S1) S2,
	f func(S1) T,
) Operator[S1, S2] {
	return F.Let(
		Map[S1, S2],
		setter,
		f,
	)
}

// LetTo attaches a constant value to a context S1 to produce a context S2.
//
//go:inline
func LetTo[S1, S2, T any](
	setter func(T) func(S1) S2,
	b T,
) Operator[S1, S2] {
	return F.LetTo(
		Map[S1, S2],
		setter,
		b,
	)
}

// BindTo initializes a new state S1 from a value T, the usual start of a
// bind chain.
//
//go:inline
func BindTo[S1, T any](
	setter func(T) S1,
) Operator[T, S1] {
	return C.BindTo(
		Map[T, S1],
		setter,
	)
}

// ApS attaches a value to a context S1 to produce a context S2 by considering
// the context and the value concurrently (using Applicative rather than
// Monad). This allows independent computations to run without one depending
// on the result of the other.
//
//go:inline
func ApS[S1, S2, T any](
	setter func(T) func(S1) S2,
	fa IOResult[T],
) Operator[S1, S2] {
	return A.ApS(
		ApPar[S2, T],
		Map[S1, func(T) S2],
		setter,
		fa,
	)
}
