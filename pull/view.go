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

package pull

// view is the left-biased unrolling of a pull: either a terminal result, or
// a single action (head) paired with a continuation that, given the head's
// outcome, produces the rest of the program.
type view[O any] struct {
	terminal   *Terminal[any]
	head       node[O]
	cont       func(Terminal[any]) node[O]
}

func terminalView[O any](t Terminal[any]) view[O] {
	return view[O]{terminal: &t}
}

func identityCont[O any](node[O]) func(Terminal[any]) node[O] {
	return func(t Terminal[any]) node[O] { return resultNode[O]{t: t} }
}

// unroll rewrites n into its view, rebalancing left-associated Bind chains
// in a bounded-stack loop so the interpreter never inspects anything but a
// Result or a single Action paired with a continuation.
func unroll[O any](n node[O]) view[O] {
	for {
		switch v := n.(type) {
		case resultNode[O]:
			return terminalView[O](v.t)

		case bindNode[O]:
			switch step := v.step.(type) {
			case resultNode[O]:
				n = v.cont(step.t)
				continue

			case bindNode[O]:
				outerCont := v.cont
				k0 := step.cont
				n = bindNode[O]{
					step: step.step,
					cont: func(t Terminal[any]) node[O] {
						return bindNode[O]{step: k0(t), cont: outerCont}
					},
				}
				continue

			default:
				return view[O]{head: step, cont: v.cont}
			}

		default:
			return view[O]{head: n, cont: identityCont(n)}
		}
	}
}
