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

// Flow1 composes a single function into a pipeline, unchanged. Provided for
// symmetry with Flow2..Flow6.
func Flow1[A, B any](ab func(A) B) func(A) B {
	return ab
}

// Flow2 composes two functions into a single left-to-right pipeline.
func Flow2[A, B, C any](ab func(A) B, bc func(B) C) func(A) C {
	return func(a A) C {
		return bc(ab(a))
	}
}

// Flow3 composes three functions into a single left-to-right pipeline.
func Flow3[A, B, C, D any](ab func(A) B, bc func(B) C, cd func(C) D) func(A) D {
	return func(a A) D {
		return cd(bc(ab(a)))
	}
}

// Flow4 composes four functions into a single left-to-right pipeline.
func Flow4[A, B, C, D, E any](ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E) func(A) E {
	return func(a A) E {
		return de(cd(bc(ab(a))))
	}
}

// Flow5 composes five functions into a single left-to-right pipeline.
func Flow5[A, B, C, D, E, G any](ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, eg func(E) G) func(A) G {
	return func(a A) G {
		return eg(de(cd(bc(ab(a)))))
	}
}

// Flow6 composes six functions into a single left-to-right pipeline.
func Flow6[A, B, C, D, E, G, H any](ab func(A) B, bc func(B) C, cd func(C) D, de func(D) E, eg func(E) G, gh func(G) H) func(A) H {
	return func(a A) H {
		return gh(eg(de(cd(bc(ab(a))))))
	}
}
