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
	"github.com/IBM/fp-go-streams/pull/scope"
)

// unconsResult is the erased carry produced by Uncons: either the next
// chunk paired with the pull that continues after it, or none.
type unconsResult[O any] struct {
	chunk Chunk[O]
	tail  node[O]
	ok    bool
}

// stepLegResult is the erased carry produced by StepLeg: the chunk, the
// scope it was produced in, and the continuation, or none.
type stepLegResult[O any] struct {
	chunk Chunk[O]
	scope *scope.Scope
	tail  node[O]
	ok    bool
}

// thenPull sequences a then b: if a succeeds its result is discarded and b
// runs; a Fail short-circuits with the same terminal; an Interrupted is
// routed through interruptBoundary so a pending CloseScope in b observes
// the interruption as its cause.
func thenPull[O any](a, b node[O]) node[O] {
	return bindNode[O]{
		step: a,
		cont: func(t Terminal[any]) node[O] {
			switch {
			case t.IsSucceeded():
				return b
			case t.IsFail():
				return resultNode[O]{t: t}
			default:
				return interruptBoundary(b, t)
			}
		},
	}
}

// interruptBoundary reconciles an Interrupted terminal from a or previous
// FlatMapOutput element with the program that was going to run next.
func interruptBoundary[O any](tail node[O], interrupted Terminal[any]) node[O] {
	v := unroll(tail)
	if v.terminal != nil {
		t := *v.terminal
		switch {
		case t.IsInterrupted():
			return resultNode[O]{t: t}
		case t.IsSucceeded():
			return resultNode[O]{t: interrupted}
		default:
			origin := interrupted.Origin()
			oerr, _ := interrupted.OriginErr()
			return resultNode[O]{t: InterruptedTerminal[any](origin, composeErrors(oerr, t.Err()))}
		}
	}
	if cs, ok := v.head.(closeScopeNode[O]); ok {
		cs.interrupted = true
		cs.interrupt = interrupted
		cs.exit = scope.Canceled()
		return bindNode[O]{step: cs, cont: v.cont}
	}
	return v.cont(interrupted)
}

// goFlatMapOutput drives h.inner and, for each emitted element, splices in
// the sub-pull h.f produces, concatenating its outputs before resuming
// h.inner for more elements. A singleton chunk whose remaining inner is
// already a pure success is forwarded directly, without first wrapping it
// in a fresh FlatMapOutput node — the path a recursively self-referential
// stream (s = output1(o).flatMapOutput(_ => s)) depends on to avoid
// rebuilding an extra layer of indirection on every iteration. Whenever the
// computed continuation is itself another FlatMapOutput over the same
// output type — exactly what that self-reference produces — this function
// loops internally instead of letting goStep dispatch it again, so the
// pattern costs bounded native stack rather than one nested call per
// element produced.
func goFlatMapOutput[O any](st state[O], h flatMapOutputNode[O], cont func(Terminal[any]) node[O]) landed {
	curH, curCont, curScope := h, cont, st.s
	for {
		var nextN node[O]
		var nextScope *scope.Scope
		scopeNow := curScope
		cCont := curCont
		cH := curH
		inner := runner[any]{
			done: func(s *scope.Scope) {
				nextN, nextScope = cCont(Succeeded[any](struct{}{})), s
			},
			interrupted: func(origin scope.Token, err error) {
				nextN, nextScope = cCont(InterruptedTerminal[any](origin, err)), scopeNow
			},
			fail: func(err error) {
				nextN, nextScope = cCont(Failed[any](err)), scopeNow
			},
			out: func(chunk Chunk[any], s *scope.Scope, tail node[any]) {
				elems := []any(chunk)
				if len(elems) == 1 {
					if tr, ok := tail.(resultNode[any]); ok && tr.t.IsSucceeded() {
						sub := cH.f(elems[0]).n
						nextN, nextScope = thenPull[O](sub, cCont(Succeeded[any](struct{}{}))), s
						return
					}
				}
				var prog node[O] = flatMapOutputNode[O]{inner: tail, f: cH.f}
				for i := len(elems) - 1; i >= 0; i-- {
					prog = thenPull[O](cH.f(elems[i]).n, prog)
				}
				nextN, nextScope = bindNode[O]{step: prog, cont: cCont}, s
			},
		}
		goRun(curH.inner, curScope, st.translate, inner)

		v := unroll(nextN)
		if fm, ok := v.head.(flatMapOutputNode[O]); ok {
			curH, curCont, curScope = fm, v.cont, nextScope
			continue
		}
		return goRun(nextN, nextScope, st.translate, st.r)
	}
}

// goUncons drives h.inner to its next chunk or terminal and resumes cont
// with the result. When the resumed continuation is itself another Uncons
// step — the shape pullx.Take's recursion produces — this function loops
// internally instead of letting goStep dispatch it again, so a chain of N
// Uncons steps costs O(1) native stack rather than nesting N calls deep.
func goUncons[O any](st state[O], h unconsNode[O], cont func(Terminal[any]) node[O]) landed {
	curInner, curScope, curCont := h.inner, st.s, cont
	for {
		var nextN node[O]
		var nextScope *scope.Scope
		scopeNow := curScope
		cCont := curCont
		goRun(curInner, curScope, st.translate, runner[O]{
			done: func(s *scope.Scope) {
				if origin, err, interrupted := s.IsInterrupted(); interrupted {
					nextN, nextScope = cCont(InterruptedTerminal[any](origin, err)), s
					return
				}
				nextN, nextScope = cCont(Succeeded[any](unconsResult[O]{})), s
			},
			interrupted: func(origin scope.Token, err error) {
				nextN, nextScope = cCont(InterruptedTerminal[any](origin, err)), scopeNow
			},
			fail: func(err error) {
				nextN, nextScope = cCont(Failed[any](err)), scopeNow
			},
			out: func(chunk Chunk[O], s *scope.Scope, tail node[O]) {
				nextN, nextScope = cCont(Succeeded[any](unconsResult[O]{chunk: chunk, tail: tail, ok: true})), s
			},
		})

		v := unroll(nextN)
		if un, ok := v.head.(unconsNode[O]); ok {
			curInner, curScope, curCont = un.inner, nextScope, v.cont
			continue
		}
		return goRun(nextN, nextScope, st.translate, st.r)
	}
}

// goStepLeg behaves like goUncons but first shifts interpretation to the
// scope identified by token, resuming the caller's original scope once
// stepped. A chain of StepLeg calls is driven by the same internal loop,
// for the same O(1) stack reason.
func goStepLeg[O any](st state[O], h stepLegNode[O], cont func(Terminal[any]) node[O]) landed {
	target, found := st.s.FindInLineage(h.token)
	if !found {
		return goRun(cont(Failed[any](errUnknownScope)), st.s, st.translate, st.r)
	}
	original := st.s
	curInner, curTarget, curCont := h.inner, target, cont
	for {
		var nextN node[O]
		cCont := curCont
		goRun(curInner, curTarget, st.translate, runner[O]{
			done: func(*scope.Scope) {
				nextN = cCont(Succeeded[any](stepLegResult[O]{}))
			},
			interrupted: func(origin scope.Token, err error) {
				nextN = cCont(InterruptedTerminal[any](origin, err))
			},
			fail: func(err error) {
				nextN = cCont(Failed[any](err))
			},
			out: func(chunk Chunk[O], s *scope.Scope, tail node[O]) {
				nextN = cCont(Succeeded[any](stepLegResult[O]{chunk: chunk, scope: s, tail: tail, ok: true}))
			},
		})

		v := unroll(nextN)
		if sl, ok := v.head.(stepLegNode[O]); ok {
			next, found := original.FindInLineage(sl.token)
			if !found {
				return goRun(v.cont(Failed[any](errUnknownScope)), original, st.translate, st.r)
			}
			curInner, curTarget, curCont = sl.inner, next, v.cont
			continue
		}
		return goRun(nextN, original, st.translate, st.r)
	}
}
