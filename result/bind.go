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

import (
	A "github.com/IBM/fp-go-streams/internal/apply"
	C "github.com/IBM/fp-go-streams/internal/chain"
	F "github.com/IBM/fp-go-streams/internal/functor"
)

// Do creates an empty context of type S to be used with [Bind].
//
//go:inline
func Do[E, S any](empty S) Either[E, S] {
	return Of[E](empty)
}

// Bind attaches the result of a computation to a context S1 to produce S2.
//
//go:inline
func Bind[E, S1, S2, T any](
	setter func(T) func(S1) S2,
	f Kleisli[E, S1, T],
) Operator[E, S1, S2] {
	return C.Bind(
		Chain[E, S1, S2],
		Map[E, T, S2],
		setter,
		f,
	)
}

// Let attaches the result of a pure computation to a context S1 to produce S2.
//
//go:inline
func Let[E, S1, S2, T any](
	key func(T) func(S1) S2,
	f func(S1) T,
) Operator[E, S1, S2] {
	return F.Let(
		Map[E, S1, S2],
		key,
		f,
	)
}

// LetTo attaches a constant value to a context S1 to produce S2.
//
//go:inline
func LetTo[E, S1, S2, T any](
	key func(T) func(S1) S2,
	b T,
) Operator[E, S1, S2] {
	return F.LetTo(
		Map[E, S1, S2],
		key,
		b,
	)
}

// BindTo initializes a new state S1 from a value T, the usual start of a bind chain.
//
//go:inline
func BindTo[E, S1, T any](
	setter func(T) S1,
) Operator[E, T, S1] {
	return C.BindTo(
		Map[E, T, S1],
		setter,
	)
}

// ApS attaches a value to a context S1 to produce S2 using applicative
// semantics: fa is independent of the current state.
//
//go:inline
func ApS[E, S1, S2, T any](
	setter func(T) func(S1) S2,
	fa Either[E, T],
) Operator[E, S1, S2] {
	return A.ApS(
		Ap[S2, E, T],
		Map[E, S1, func(T) S2],
		setter,
		fa,
	)
}
