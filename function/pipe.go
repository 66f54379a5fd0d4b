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

package function

// Pipe1 applies a single transformation to a starting value.
//
// Example:
//
//	result := Pipe1(1, func(i int) string { return fmt.Sprintf("%d", i) })
func Pipe1[A, B any](a A, ab func(A) B) B {
	return ab(a)
}

// Pipe2 threads a starting value through two transformations in order.
func Pipe2[A, B, C any](a A, ab func(A) B, bc func(B) C) C {
	return bc(ab(a))
}

// Pipe3 threads a starting value through three transformations in order.
func Pipe3[A, B, C, D any](a A, ab func(A) B, bc func(B) C, cd func(C) D) D {
	return cd(bc(ab(a)))
}

// Pipe4 threads a starting value through four transformations in order.
func Pipe4[A, B, C, D, E any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E) E {
	return de(cd(bc(ab(a))))
}

// Pipe5 threads a starting value through five transformations in order.
func Pipe5[A, B, C, D, E, G any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, eg func(E) G) G {
	return eg(de(cd(bc(ab(a)))))
}

// Pipe6 threads a starting value through six transformations in order.
func Pipe6[A, B, C, D, E, G, H any](a A, ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, eg func(E) G, gh func(G) H) H {
	return gh(eg(de(cd(bc(ab(a))))))
}
