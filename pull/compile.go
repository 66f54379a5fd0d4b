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
	"log/slog"

	"github.com/IBM/fp-go-streams/function"
	"github.com/IBM/fp-go-streams/ioresult"
	"github.com/IBM/fp-go-streams/pull/scope"
	"github.com/IBM/fp-go-streams/result"
)

// Stream opens a fresh root scope with one child scope labelled "stream"
// and returns p together with that child; the returned pull and scope are
// the unit consumed by Compile. If the child cannot be opened, the returned
// pull fails and the root itself is returned.
func Stream[O any](p Pull[O, function.Void]) (Pull[O, function.Void], *Scope) {
	root := NewRootScope("root")
	child, err := root.Open("stream")
	if err != nil {
		return RaiseError[O, function.Void](err), root
	}
	return StreamNoScope(p), child
}

// StreamNoScope returns p unchanged, for callers that already opened a
// scope of their own (e.g. nested stream combinators).
func StreamNoScope[O any](p Pull[O, function.Void]) Pull[O, function.Void] {
	return p
}

// NewRootScope creates a fresh, unparented scope to compile a stream
// against.
func NewRootScope(label string) *Scope {
	return scope.NewRoot(label)
}

// Compile drives p to completion against scope s, folding each emitted
// chunk into an accumulator with fold, starting from init. Errors thrown
// synchronously from fold are routed through the pull's own error handling
// by feeding them back into the tail's continuation as a Fail terminal.
//
// An optional *slog.Logger may be passed to observe scope open/close/
// interrupt transitions at Debug level and composite close failures at
// Error level; omitting it falls back to the package-global logger.
func Compile[O, A any](p Pull[O, function.Void], s *Scope, init A, fold func(A, Chunk[O]) (A, error), logger ...*slog.Logger) ioresult.IOResult[A] {
	if len(logger) > 0 && logger[0] != nil {
		s.SetLogger(logger[0])
	}
	return func() result.Result[A] {
		acc := init
		var finalErr error
		var interrupted bool
		var interruptOrigin Token
		var interruptErr error

		// The loop below is the single trampoline point for chunk emission:
		// each iteration calls goRun exactly once and lets it return before
		// the next one starts, so folding N chunks costs O(1) native stack
		// instead of nesting N calls deep the way a self-recursive drive
		// closure would.
		cur, at, more := p.n, s, true
		for more {
			more = false
			var nextN node[O]
			var nextAt *Scope
			goRun(cur, at, identityTrans, runner[O]{
				done: func(*Scope) {},
				fail: func(err error) { finalErr = err },
				interrupted: func(origin Token, err error) {
					interrupted = true
					interruptOrigin = origin
					interruptErr = err
				},
				out: func(chunk Chunk[O], outScope *Scope, tail node[O]) {
					next, ferr := fold(acc, chunk)
					acc = next
					if ferr != nil {
						if v := unroll[O](tail); v.terminal == nil {
							nextN = v.cont(Failed[any](ferr))
						} else {
							nextN = resultNode[O]{t: Failed[any](ferr)}
						}
						nextAt = outScope
					} else {
						nextN, nextAt = tail, outScope
					}
					more = true
				},
			})
			cur, at = nextN, nextAt
		}

		_ = interruptOrigin
		var ec ExitCase
		switch {
		case finalErr != nil:
			ec = scope.Errored(finalErr)
		case interrupted:
			ec = scope.Canceled()
		default:
			ec = scope.Succeeded()
		}
		closeErr := s.Close(ec)

		if finalErr != nil {
			return result.Err[A](composeErrors(finalErr, closeErr))
		}
		if interrupted && interruptErr != nil {
			return result.Err[A](composeErrors(interruptErr, closeErr))
		}
		if closeErr != nil {
			return result.Err[A](closeErr)
		}
		return result.Ok(acc)
	}
}

// Uncons steps p once, returning either the next chunk paired with the
// continuation, or none if p is already done.
func Uncons[O, C any](p Pull[O, C]) Pull[O, result.Result[UnconsStep[O, C]]] {
	return Bind(wrap[O, any](unconsNode[O]{inner: p.n}), func(t Terminal[any]) Pull[O, result.Result[UnconsStep[O, C]]] {
		switch {
		case t.IsFail():
			return Pure[O](result.Err[UnconsStep[O, C]](t.Err()))
		case t.IsInterrupted():
			return wrap[O, result.Result[UnconsStep[O, C]]](resultNode[O]{t: liftTerminal(t)})
		default:
			ur := t.Value().(unconsResult[O])
			if !ur.ok {
				return Pure[O](result.Ok(UnconsStep[O, C]{}))
			}
			return Pure[O](result.Ok(UnconsStep[O, C]{
				Chunk: ur.chunk,
				Tail:  wrap[O, C](ur.tail),
				Ok:    true,
			}))
		}
	})
}

// UnconsStep is the observable result of Uncons: the next chunk and the
// pull that continues after it, or Ok=false when the source is exhausted.
type UnconsStep[O, C any] struct {
	Chunk Chunk[O]
	Tail  Pull[O, C]
	Ok    bool
}

// StepLeg behaves like Uncons but first shifts interpretation to the scope
// identified by token, then resumes the caller's original scope.
func StepLeg[O, C any](p Pull[O, C], token Token) Pull[O, result.Result[StepLegStep[O, C]]] {
	return Bind(wrap[O, any](stepLegNode[O]{inner: p.n, token: token}), func(t Terminal[any]) Pull[O, result.Result[StepLegStep[O, C]]] {
		switch {
		case t.IsFail():
			return Pure[O](result.Err[StepLegStep[O, C]](t.Err()))
		case t.IsInterrupted():
			return wrap[O, result.Result[StepLegStep[O, C]]](resultNode[O]{t: liftTerminal(t)})
		default:
			sr := t.Value().(stepLegResult[O])
			if !sr.ok {
				return Pure[O](result.Ok(StepLegStep[O, C]{}))
			}
			return Pure[O](result.Ok(StepLegStep[O, C]{
				Chunk: sr.chunk,
				Scope: sr.scope,
				Tail:  wrap[O, C](sr.tail),
				Ok:    true,
			}))
		}
	})
}

// StepLegStep is the observable result of StepLeg.
type StepLegStep[O, C any] struct {
	Chunk Chunk[O]
	Scope *Scope
	Tail  Pull[O, C]
	Ok    bool
}

// InterruptScope opens a fresh, interruptible child scope around p.
func InterruptScope[O any](p Pull[O, function.Void], label string) Pull[O, function.Void] {
	return wrap[O, function.Void](inScopeNode[O]{inner: p.n, useInterrupt: true, label: label})
}

// InterruptWhen registers signal as an interrupt source on the current
// scope: when it resolves to Ok(nil), the scope is marked Interrupted with
// no error; when it resolves to Err(err), the scope is marked Interrupted
// carrying err as a deferred error.
func InterruptWhen[O any](signal ioresult.IOResult[result.Result[function.Void]]) Pull[O, function.Void] {
	erasedSignal := func() error {
		outer := signal()
		return result.MonadFold(outer,
			func(err error) error { return err },
			func(inner result.Result[function.Void]) error {
				return result.MonadFold(inner,
					func(err error) error { return err },
					func(function.Void) error { return nil },
				)
			},
		)
	}
	return wrap[O, function.Void](interruptWhenNode[O]{signal: erasedSignal})
}

// InScope opens a fresh, non-interruptible child scope around p and runs it
// there, guaranteeing the child's finalizers complete before control
// returns to the caller's scope.
func InScope[O any](p Pull[O, function.Void], label string) Pull[O, function.Void] {
	return wrap[O, function.Void](inScopeNode[O]{inner: p.n, useInterrupt: false, label: label})
}

// Loop repeatedly applies f to a seed: an Ok(s2) carry from f's pull makes
// s2 the next seed, and an Err carry ends the loop with Done, discarding the
// error. A Fail from f's pull itself propagates unchanged.
func Loop[O, S any](f func(S) Pull[O, result.Result[S]]) func(S) Pull[O, function.Void] {
	var run func(S) Pull[O, function.Void]
	run = func(s S) Pull[O, function.Void] {
		return FlatMap(f(s), func(next result.Result[S]) Pull[O, function.Void] {
			return result.MonadFold(next,
				func(error) Pull[O, function.Void] { return Done[O]() },
				func(s2 S) Pull[O, function.Void] { return Suspend(func() Pull[O, function.Void] { return run(s2) }) },
			)
		})
	}
	return run
}
