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

package result

type (
	// Lazy represents a deferred computation producing a value of type A.
	Lazy[A any] = func() A

	// Kleisli is a function from A to Either[E, B], the arrow composed by Chain.
	Kleisli[E, A, B any] = func(A) Either[E, B]

	// Operator transforms one Either into another.
	Operator[E, A, B any] = Kleisli[E, Either[E, A], B]

	// Endomorphism is a function from a type to itself.
	Endomorphism[A any] = func(A) A

	// Predicate tests a value of type A.
	Predicate[A any] = func(A) bool
)
