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
	"context"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/IBM/fp-go-streams/array/nonempty"
	"github.com/IBM/fp-go-streams/pull/scope"
	"github.com/IBM/fp-go-streams/result"
	"github.com/IBM/fp-go-streams/tailrec"
)

// state is the interpreter's trampoline seed: the pull being driven, the
// current scope, the natural transformation composed so far by nested
// Translate nodes, and the runner that consumes this level's terminal or
// emitted chunks.
type state[O any] struct {
	n         node[O]
	s         *scope.Scope
	translate transFn
	r         runner[O]
}

// landed marks that a trampoline run has finished: it already invoked one
// of the runner's four terminal callbacks.
type landed struct{}

// goRun drives a pull to completion against scope s, calling back into r
// exactly once, on bounded native stack.
func goRun[O any](n node[O], s *scope.Scope, translate transFn, r runner[O]) landed {
	return tailrec.Run(state[O]{n: n, s: s, translate: translate, r: r}, goStep[O])
}

func goStep[O any](st state[O]) tailrec.Trampoline[state[O], landed] {
	v := unroll(st.n)

	if v.terminal != nil {
		t := *v.terminal
		switch {
		case t.IsSucceeded():
			st.r.done(st.s)
		case t.IsFail():
			st.r.fail(t.Err())
		default:
			err, _ := t.OriginErr()
			st.r.interrupted(t.Origin(), err)
		}
		return tailrec.Land[state[O]](landed{})
	}

	if origin, ierr, interrupted := st.s.IsInterrupted(); interrupted && needsGuard(v.head) {
		return bounce(st, v.cont(InterruptedTerminal[any](origin, ierr)))
	}

	switch h := v.head.(type) {

	case outputNode[O]:
		st.r.out(h.chunk, st.s, v.cont(Succeeded[any](struct{}{})))
		return tailrec.Land[state[O]](landed{})

	case evalNode[O]:
		ra := st.translate(h.run)()
		if origin, ierr, interrupted := st.s.IsInterrupted(); interrupted {
			return bounce(st, v.cont(InterruptedTerminal[any](origin, ierr)))
		}
		return bounce(st, v.cont(resultToTerminal(ra)))

	case acquireNode[O]:
		return bounce(st, v.cont(runAcquire(st.s, h)))

	case getScopeNode[O]:
		return bounce(st, v.cont(Succeeded[any](st.s)))

	case interruptWhenNode[O]:
		return bounce(st, v.cont(runInterruptWhen(st.s, h)))

	case inScopeNode[O]:
		return tailrec.Land[state[O]](goInScope(st, h, v.cont))

	case closeScopeNode[O]:
		t, next := goCloseScope(st.s, h)
		return bounce(state[O]{n: st.n, s: next, translate: st.translate, r: st.r}, v.cont(t))

	case translateNode[O]:
		return tailrec.Land[state[O]](goTranslate(st, h, v.cont))

	case mapOutputNode[O]:
		return tailrec.Land[state[O]](goMapOutput(st, h, v.cont))

	case flatMapOutputNode[O]:
		return tailrec.Land[state[O]](goFlatMapOutput(st, h, v.cont))

	case unconsNode[O]:
		return tailrec.Land[state[O]](goUncons(st, h, v.cont))

	case stepLegNode[O]:
		return tailrec.Land[state[O]](goStepLeg(st, h, v.cont))

	default:
		return bounce(st, v.cont(Failed[any](errUnhandledNode)))
	}
}

func bounce[O any](st state[O], next node[O]) tailrec.Trampoline[state[O], landed] {
	return tailrec.Bounce[landed](state[O]{n: next, s: st.s, translate: st.translate, r: st.r})
}

func runAcquire[O any](s *scope.Scope, h acquireNode[O]) Terminal[any] {
	if h.cancelable {
		if origin, _, interrupted := s.IsInterrupted(); interrupted {
			return InterruptedTerminal[any](origin, nil)
		}
	}
	ra := h.acquire()
	return result.MonadFold(ra,
		func(err error) Terminal[any] { return Failed[any](err) },
		func(res any) Terminal[any] {
			_ = s.Register(func(ec scope.ExitCase) error { return h.release(res, ec) })
			return Succeeded(res)
		},
	)
}

// runInterruptWhen spawns a fiber (a goroutine plus a cancellation handle)
// that watches h.signal and marks s interrupted once it resolves. The
// fiber is bounded to s's lifetime: a finalizer cancels its context and
// waits for it to exit before s finishes closing, so no watcher ever
// outlives the scope it was registered against.
func runInterruptWhen[O any](s *scope.Scope, h interruptWhenNode[O]) Terminal[any] {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := h.signal()
		select {
		case <-ctx.Done():
		default:
			s.MarkInterrupted(err)
		}
	}()
	_ = s.Register(func(scope.ExitCase) error {
		cancel()
		wg.Wait()
		return nil
	})
	return Succeeded[any](struct{}{})
}

func exitCaseFor(t Terminal[any]) (scope.ExitCase, bool) {
	switch {
	case t.IsSucceeded():
		return scope.Succeeded(), false
	case t.IsInterrupted():
		return scope.Canceled(), true
	default:
		return scope.Errored(t.Err()), false
	}
}

func composeErrors(a, b error) error {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	me := multierror.Append(multierror.Append(nil, a), b)
	return me.ErrorOrNil()
}

func goInScope[O any](st state[O], h inScopeNode[O], cont func(Terminal[any]) node[O]) landed {
	child, err := st.s.Open(h.label)
	if err != nil {
		return goRun(cont(Failed[any](err)), st.s, st.translate, st.r)
	}

	wrapped := bindNode[O]{
		step: h.inner,
		cont: func(t Terminal[any]) node[O] {
			ec, isInterrupt := exitCaseFor(t)
			closeNode := closeScopeNode[O]{token: child.Token(), exit: ec}
			if isInterrupt {
				closeNode.interrupted = true
				closeNode.interrupt = t
			}
			return bindNode[O]{
				step: closeNode,
				cont: func(t2 Terminal[any]) node[O] {
					if t.IsFail() {
						if t2.IsFail() {
							return cont(Failed[any](composeErrors(t.Err(), t2.Err())))
						}
						return cont(Failed[any](t.Err()))
					}
					return cont(t2)
				},
			}
		},
	}
	return goRun(wrapped, child, st.translate, st.r)
}

func goCloseScope[O any](s *scope.Scope, h closeScopeNode[O]) (Terminal[any], *scope.Scope) {
	target, found := s.FindInLineage(h.token)
	if !found {
		if h.interrupted {
			return h.interrupt, s
		}
		return Succeeded[any](struct{}{}), s
	}
	if target.IsRoot() {
		return Failed[any](errCloseRoot), s
	}

	closeErr := target.Close(h.exit)
	ancestor := target.OpenAncestor()

	if !h.interrupted {
		if closeErr != nil {
			return Failed[any](closeErr), ancestor
		}
		return Succeeded[any](struct{}{}), ancestor
	}

	origin := h.interrupt.Origin()
	originErr, _ := h.interrupt.OriginErr()
	if ancestor.DescendsFrom(origin) {
		return InterruptedTerminal[any](origin, composeErrors(originErr, closeErr)), ancestor
	}
	if err := composeErrors(originErr, closeErr); err != nil {
		return Failed[any](err), ancestor
	}
	return Succeeded[any](struct{}{}), ancestor
}

func goTranslate[O any](st state[O], h translateNode[O], cont func(Terminal[any]) node[O]) landed {
	composed := composeTrans(st.translate, h.fk)
	var last Terminal[any]
	keep := func(t Terminal[any]) node[O] { last = t; return resultNode[O]{t: t} }
	wrappedRunner := runner[O]{
		done: func(s *scope.Scope) {
			goRun(cont(last), s, st.translate, st.r)
		},
		interrupted: func(origin scope.Token, err error) {
			goRun(cont(InterruptedTerminal[any](origin, err)), st.s, st.translate, st.r)
		},
		fail: func(err error) {
			goRun(cont(Failed[any](err)), st.s, st.translate, st.r)
		},
		out: func(chunk Chunk[O], s *scope.Scope, tail node[O]) {
			st.r.out(chunk, s, bindNode[O]{
				step: translateNode[O]{inner: tail, fk: h.fk},
				cont: cont,
			})
		},
	}
	return goRun(bindNode[O]{step: h.inner, cont: keep}, st.s, composed, wrappedRunner)
}

func goMapOutput[O any](st state[O], h mapOutputNode[O], cont func(Terminal[any]) node[O]) landed {
	inner := runner[any]{
		done: func(s *scope.Scope) {
			goRun(cont(Succeeded[any](struct{}{})), s, st.translate, st.r)
		},
		interrupted: func(origin scope.Token, err error) {
			goRun(cont(InterruptedTerminal[any](origin, err)), st.s, st.translate, st.r)
		},
		fail: func(err error) {
			goRun(cont(Failed[any](err)), st.s, st.translate, st.r)
		},
		out: func(chunk Chunk[any], s *scope.Scope, tail node[any]) {
			mapped := nonempty.MonadMap(chunk, h.f)
			st.r.out(mapped, s, bindNode[O]{step: mapOutputNode[O]{inner: tail, f: h.f}, cont: cont})
		},
	}
	return goRun(h.inner, st.s, st.translate, inner)
}
