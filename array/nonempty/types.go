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

package nonempty

type (
	// NonEmptyArray represents an array that is guaranteed to have at least one element.
	// This provides compile-time safety for operations that require non-empty collections.
	NonEmptyArray[A any] []A

	// Kleisli represents a Kleisli arrow for the NonEmptyArray monad.
	// It's a function from A to NonEmptyArray[B], used for composing operations that produce non-empty arrays.
	Kleisli[A, B any] = func(A) NonEmptyArray[B]

	// Operator represents a function that transforms one NonEmptyArray into another.
	// It takes a NonEmptyArray[A] and produces a NonEmptyArray[B].
	Operator[A, B any] = Kleisli[NonEmptyArray[A], B]
)
