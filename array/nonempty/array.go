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

// Package nonempty provides a NonEmptyArray type: a slice guaranteed, at the
// type level, to hold at least one element. It is used throughout this module
// as the carrier for chunked output, since a chunk is never emitted empty.
package nonempty

import (
	"github.com/IBM/fp-go-streams/internal/array"
)

// Of constructs a single element NonEmptyArray.
//
// Example:
//
//	arr := Of(42)  // NonEmptyArray[int]{42}
func Of[A any](first A) NonEmptyArray[A] {
	return array.Of[NonEmptyArray[A]](first)
}

// From constructs a NonEmptyArray from a required first element plus any
// number of additional elements.
//
// Example:
//
//	arr := From(1, 2, 3)  // NonEmptyArray[int]{1, 2, 3}
func From[A any](first A, data ...A) NonEmptyArray[A] {
	count := len(data)
	if count == 0 {
		return Of(first)
	}
	buffer := make(NonEmptyArray[A], count+1)
	buffer[0] = first
	copy(buffer[1:], data)
	return buffer
}

// IsEmpty always returns false; it exists only for API symmetry with plain slices.
//
//go:inline
func IsEmpty[A any](_ NonEmptyArray[A]) bool {
	return false
}

// IsNonEmpty always returns true; it exists only for API symmetry with plain slices.
//
//go:inline
func IsNonEmpty[A any](_ NonEmptyArray[A]) bool {
	return true
}

// MonadMap applies f to every element, returning a new NonEmptyArray of results.
//
//go:inline
func MonadMap[A, B any](as NonEmptyArray[A], f func(a A) B) NonEmptyArray[B] {
	return array.MonadMap[NonEmptyArray[A], NonEmptyArray[B]](as, f)
}

// Map is the curried form of MonadMap.
//
//go:inline
func Map[A, B any](f func(a A) B) Operator[A, B] {
	return func(as NonEmptyArray[A]) NonEmptyArray[B] {
		return MonadMap(as, f)
	}
}

// Reduce folds the array left to right starting from initial.
func Reduce[A, B any](f func(B, A) B, initial B) func(NonEmptyArray[A]) B {
	return func(as NonEmptyArray[A]) B {
		return array.Reduce[NonEmptyArray[A]](as, f, initial)
	}
}

// ReduceRight folds the array right to left starting from initial.
func ReduceRight[A, B any](f func(A, B) B, initial B) func(NonEmptyArray[A]) B {
	return func(as NonEmptyArray[A]) B {
		return array.ReduceRight[NonEmptyArray[A]](as, f, initial)
	}
}

// Tail returns all elements except the first (possibly empty).
//
//go:inline
func Tail[A any](as NonEmptyArray[A]) []A {
	return as[1:]
}

// Head returns the first element. Always safe.
//
//go:inline
func Head[A any](as NonEmptyArray[A]) A {
	return as[0]
}

// First is an alias for Head.
//
//go:inline
func First[A any](as NonEmptyArray[A]) A {
	return as[0]
}

// Last returns the final element. Always safe.
//
//go:inline
func Last[A any](as NonEmptyArray[A]) A {
	return as[len(as)-1]
}

// Size returns the element count, always >= 1.
//
//go:inline
func Size[A any](as NonEmptyArray[A]) int {
	return len(as)
}

// Concat appends right after left, producing a new NonEmptyArray.
//
//go:inline
func Concat[A any](left, right NonEmptyArray[A]) NonEmptyArray[A] {
	return array.Concat[NonEmptyArray[A]](left, right)
}

// Append grows the array by a single trailing element.
//
//go:inline
func Append[A any](as NonEmptyArray[A], a A) NonEmptyArray[A] {
	return array.Append(as, a)
}

// Flatten concatenates a NonEmptyArray of NonEmptyArrays into a single one.
func Flatten[A any](mma NonEmptyArray[NonEmptyArray[A]]) NonEmptyArray[A] {
	result := mma[0]
	for _, inner := range mma[1:] {
		result = Concat(result, inner)
	}
	return result
}

// MonadChain applies f to each element and flattens the resulting arrays.
func MonadChain[A, B any](fa NonEmptyArray[A], f Kleisli[A, B]) NonEmptyArray[B] {
	return Flatten(MonadMap(fa, f))
}

// Chain is the curried form of MonadChain.
func Chain[A, B any](f func(A) NonEmptyArray[B]) Operator[A, B] {
	return func(fa NonEmptyArray[A]) NonEmptyArray[B] {
		return MonadChain(fa, f)
	}
}

// Extract returns the first element. Part of the comonad interface.
//
//go:inline
func Extract[A any](as NonEmptyArray[A]) A {
	return Head(as)
}

// Extend applies f to every suffix of the array, producing a NonEmptyArray of
// the same length where position i holds f applied to as[i:].
func Extend[A, B any](f func(NonEmptyArray[A]) B) Operator[A, B] {
	return func(as NonEmptyArray[A]) NonEmptyArray[B] {
		result := make(NonEmptyArray[B], len(as))
		for i := range as {
			result[i] = f(as[i:])
		}
		return result
	}
}

// ToNonEmptyArray attempts to convert a plain slice into a NonEmptyArray,
// reporting false if the input was empty.
func ToNonEmptyArray[A any](as []A) (NonEmptyArray[A], bool) {
	if len(as) == 0 {
		return nil, false
	}
	return NonEmptyArray[A](as), true
}
