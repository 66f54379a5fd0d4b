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

// Package tailrec provides a Trampoline record for driving tail-recursive
// algorithms with a loop instead of native call-stack recursion, so their
// stack usage stays O(1) regardless of how many steps they take.
package tailrec

// Trampoline represents either an intermediate "bounce" state carrying the
// next input to process, or a final "land" state carrying the answer.
//
// Type Parameters:
//   - B: the type of the intermediate bounce state
//   - L: the type of the final landed result
type Trampoline[B, L any] struct {
	Landed bool
	Bounce B
	Land   L
}

// Bounce creates a Trampoline still in flight, carrying the next state to
// feed back into the step function.
//
// Example:
//
//	next := Bounce[int](State{n - 1, acc * n})
func Bounce[L, B any](b B) Trampoline[B, L] {
	return Trampoline[B, L]{Bounce: b}
}

// Land creates a Trampoline that has reached its final result.
//
// Example:
//
//	done := Land[State](acc)
func Land[B, L any](l L) Trampoline[B, L] {
	return Trampoline[B, L]{Landed: true, Land: l}
}

// Run drives a step function to completion, starting from the given seed,
// looping on native stack instead of recursing.
//
// Example:
//
//	result := Run(State{n, 1}, factorialStep)
func Run[B, L any](seed B, step func(B) Trampoline[B, L]) L {
	current := Bounce[L](seed)
	for {
		if current.Landed {
			return current.Land
		}
		current = step(current.Bounce)
	}
}
