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

import (
	"github.com/IBM/fp-go-streams/array/nonempty"
)

// fuseMapOutput pushes f down through inner so that adjacent output
// transformers collapse instead of nesting interpreter dispatch.
func fuseMapOutput[O, P any](inner node[O], f func(O) P) node[P] {
	erasedF := func(o any) P { return f(o.(O)) }

	switch n := inner.(type) {
	case resultNode[O]:
		return resultNode[P]{t: n.t}

	case outputNode[O]:
		return outputNode[P]{chunk: nonempty.MonadMap(n.chunk, f)}

	case mapOutputNode[O]:
		g := n.f
		return mapOutputNode[P]{inner: n.inner, f: func(a any) P { return erasedF(g(a)) }}

	case translateNode[O]:
		return translateNode[P]{inner: fuseMapOutput[O, P](n.inner, f), fk: n.fk}

	default:
		return mapOutputNode[P]{inner: anyNode(inner), f: erasedF}
	}
}

// fuseFlatMapOutput wraps inner in a FlatMapOutput node, passing a Result
// node through unchanged since it never emits.
func fuseFlatMapOutput[O, P any](inner node[O], f func(O) Pull[P, struct{}]) node[P] {
	switch n := inner.(type) {
	case resultNode[O]:
		return resultNode[P]{t: n.t}
	default:
		return flatMapOutputNode[P]{inner: anyNode(inner), f: func(a any) Pull[P, struct{}] { return f(a.(O)) }}
	}
}

// fuseTranslate composes a new translation fk with inner, fusing nested
// Translate nodes instead of stacking interpreter dispatch.
func fuseTranslate[O any](inner node[O], fk transFn) node[O] {
	switch n := inner.(type) {
	case resultNode[O]:
		return n
	case translateNode[O]:
		return translateNode[O]{inner: n.inner, fk: composeTrans(fk, n.fk)}
	default:
		return translateNode[O]{inner: inner, fk: fk}
	}
}

// anyNode reinterprets a node[O] as a node[any]. Nodes that carry no
// O-typed field (Eval, Acquire, GetScope, InterruptWhen, CloseScope) are
// rebuilt verbatim; nodes with an O-typed inner sub-pull (InScope, Uncons,
// StepLeg) recurse into it first.
func anyNode[O any](n node[O]) node[any] {
	switch v := n.(type) {
	case resultNode[O]:
		return resultNode[any]{t: v.t}
	case outputNode[O]:
		elems := make([]any, len(v.chunk))
		for i, o := range v.chunk {
			elems[i] = o
		}
		return outputNode[any]{chunk: elems}
	case bindNode[O]:
		step := anyNode[O](v.step)
		cont := v.cont
		return bindNode[any]{step: step, cont: func(t Terminal[any]) node[any] { return anyNode[O](cont(t)) }}
	case mapOutputNode[O]:
		return mapOutputNode[any]{inner: v.inner, f: func(a any) any { return v.f(a) }}
	case flatMapOutputNode[O]:
		return flatMapOutputNode[any]{inner: v.inner, f: func(a any) Pull[any, struct{}] {
			sub := v.f(a)
			return Pull[any, struct{}]{n: anyNode(sub.n)}
		}}
	case translateNode[O]:
		return translateNode[any]{inner: anyNode(v.inner), fk: v.fk}
	case evalNode[O]:
		return evalNode[any]{run: v.run}
	case acquireNode[O]:
		return acquireNode[any]{acquire: v.acquire, release: v.release, cancelable: v.cancelable}
	case getScopeNode[O]:
		return getScopeNode[any]{}
	case interruptWhenNode[O]:
		return interruptWhenNode[any]{signal: v.signal}
	case closeScopeNode[O]:
		return closeScopeNode[any]{token: v.token, interrupted: v.interrupted, interrupt: v.interrupt, exit: v.exit}
	case inScopeNode[O]:
		return inScopeNode[any]{inner: anyNode(v.inner), useInterrupt: v.useInterrupt, label: v.label}
	case unconsNode[O]:
		return unconsNode[any]{inner: anyNode(v.inner)}
	case stepLegNode[O]:
		return stepLegNode[any]{inner: anyNode(v.inner), token: v.token}
	default:
		panic("pull: anyNode: unhandled node kind")
	}
}
