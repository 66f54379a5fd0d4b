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

// Package result implements a disjoint union of an error and a value, used
// throughout the streaming engine to report failures without resorting to
// panics or the (value, error) idiom at every call site.
package result

type (
	// Either holds either an E (left, the failure channel) or an A (right,
	// the success channel), never both.
	Either[E, A any] struct {
		r      A
		l      E
		isLeft bool
	}

	// Result specializes Either to the common case where the failure channel
	// is a plain Go error.
	Result[A any] = Either[error, A]
)

// IsLeft reports whether val holds a Left (failure) value.
//
//go:inline
func IsLeft[E, A any](val Either[E, A]) bool {
	return val.isLeft
}

// IsRight reports whether val holds a Right (success) value.
//
//go:inline
func IsRight[E, A any](val Either[E, A]) bool {
	return !val.isLeft
}

// Left creates an Either holding a failure value.
//
//go:inline
func Left[A, E any](value E) Either[E, A] {
	return Either[E, A]{l: value, isLeft: true}
}

// Right creates an Either holding a success value.
//
//go:inline
func Right[E, A any](value A) Either[E, A] {
	return Either[E, A]{r: value}
}

// Ok creates a Result holding a success value.
//
//go:inline
func Ok[A any](value A) Result[A] {
	return Right[error](value)
}

// Err creates a Result holding a failure.
//
//go:inline
func Err[A any](err error) Result[A] {
	return Left[A](err)
}

// MonadFold extracts the value held by ma by dispatching to onLeft or onRight.
//
//go:inline
func MonadFold[E, A, B any](ma Either[E, A], onLeft func(E) B, onRight func(A) B) B {
	if !ma.isLeft {
		return onRight(ma.r)
	}
	return onLeft(ma.l)
}

// Unwrap converts ma into the idiomatic Go (value, error) tuple shape.
//
//go:inline
func Unwrap[E, A any](ma Either[E, A]) (A, E) {
	return ma.r, ma.l
}
