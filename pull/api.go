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
	"github.com/IBM/fp-go-streams/function"
	"github.com/IBM/fp-go-streams/ioresult"
	"github.com/IBM/fp-go-streams/result"
)

// Pure returns a pull that does nothing and succeeds with c.
func Pure[O, C any](c C) Pull[O, C] {
	return wrap[O, C](resultNode[O]{t: Succeeded[any](c)})
}

// Done is Pure specialized to Void, the carry of every stream-shaped pull.
func Done[O any]() Pull[O, function.Void] {
	return Pure[O](function.VOID)
}

// RaiseError returns a pull that fails immediately with err.
func RaiseError[O, C any](err error) Pull[O, C] {
	return wrap[O, C](resultNode[O]{t: Failed[any](err)})
}

// Output1 emits a single value.
func Output1[O any](o O) Pull[O, function.Void] {
	return Output(Chunk[O]{o})
}

// Output emits chunk.
func Output[O any](chunk Chunk[O]) Pull[O, function.Void] {
	return wrap[O, function.Void](outputNode[O]{chunk: chunk})
}

// Eval lifts an ambient effect into a pull that carries its result.
func Eval[O, A any](fa ioresult.IOResult[A]) Pull[O, A] {
	return wrap[O, A](evalNode[O]{run: erase(fa)})
}

// AttemptEval is like Eval but never fails the pull: the outcome is
// reified as a Result value.
func AttemptEval[O, A any](fa ioresult.IOResult[A]) Pull[O, result.Result[A]] {
	return Eval[O](func() result.Result[result.Result[A]] {
		return result.Ok(fa())
	})
}

// GetScope carries the current scope.
func GetScope[O any]() Pull[O, *Scope] {
	return wrap[O, *Scope](getScopeNode[O]{})
}

// Suspend defers construction of a pull until it is interpreted.
func Suspend[O, C any](thunk func() Pull[O, C]) Pull[O, C] {
	return Bind(Eval[O](func() result.Result[Pull[O, C]] { return result.Ok(thunk()) }),
		func(t Terminal[Pull[O, C]]) Pull[O, C] {
			if !t.IsSucceeded() {
				return wrap[O, C](resultNode[O]{t: liftTerminal(t)})
			}
			return t.Value()
		})
}

// FromEither lifts a Result into a pull: Ok(c) succeeds with c, Err(err)
// fails with err.
func FromEither[O, C any](r result.Result[C]) Pull[O, C] {
	return result.MonadFold(r,
		func(err error) Pull[O, C] { return RaiseError[O, C](err) },
		func(c C) Pull[O, C] { return Pure[O](c) },
	)
}

// Acquire registers an acquire/release pair on the current scope. The
// acquire action always runs to completion (Acquire(cancelable=false)).
func Acquire[O, R any](acquire ioresult.IOResult[R], release func(R, ExitCase) ioresult.IOResult[function.Void]) Pull[O, R] {
	return acquireGeneric[O](acquire, release, false)
}

// AcquireCancelable is like Acquire but checks the current scope for
// interruption immediately before running acquire; if the scope is
// interrupted, acquire does not run and no finalizer is registered. Once
// started, acquire runs to completion: it is not cancelled while in flight.
func AcquireCancelable[O, R any](acquire ioresult.IOResult[R], release func(R, ExitCase) ioresult.IOResult[function.Void]) Pull[O, R] {
	return acquireGeneric[O](acquire, release, true)
}

func acquireGeneric[O, R any](acquire ioresult.IOResult[R], release func(R, ExitCase) ioresult.IOResult[function.Void], cancelable bool) Pull[O, R] {
	erasedAcquire := func() result.Result[any] {
		ra := acquire()
		return result.MonadMap(ra, func(r R) any { return r })
	}
	erasedRelease := func(a any, ec ExitCase) error {
		rv := release(a.(R), ec)()
		_, err := result.Unwrap(rv)
		return err
	}
	return wrap[O, R](acquireNode[O]{acquire: erasedAcquire, release: erasedRelease, cancelable: cancelable})
}

// BracketCase acquires a resource, runs use on it, and always runs release
// with the ExitCase observed by use, whether it succeeded, failed, or was
// interrupted.
func BracketCase[O, R, C any](
	acquire ioresult.IOResult[R],
	use func(R) Pull[O, C],
	release func(R, ExitCase) ioresult.IOResult[function.Void],
) Pull[O, C] {
	return FlatMap(Acquire[O](acquire, release), use)
}

// ExtendScopeTo places a lease on the current scope while s runs, so that
// scope's finalizers cannot run until s completes. The lease is released
// once s completes, whatever its outcome, and s's terminal is then passed
// on unchanged.
func ExtendScopeTo[O, C any](s Pull[O, C]) Pull[O, C] {
	return Bind(GetScope[O](), func(t Terminal[*Scope]) Pull[O, C] {
		if !t.IsSucceeded() {
			return wrap[O, C](resultNode[O]{t: liftTerminal(t)})
		}
		lease := t.Value().Lease()
		return Bind(s, func(ts Terminal[C]) Pull[O, C] {
			release := Eval[O](func() result.Result[function.Void] {
				_ = lease.Cancel()
				return result.Ok(function.VOID)
			})
			return Bind(release, func(Terminal[function.Void]) Pull[O, C] {
				return wrap[O, C](resultNode[O]{t: liftTerminal(ts)})
			})
		})
	})
}

func liftTerminal[A any](t Terminal[A]) Terminal[any] {
	switch {
	case t.IsFail():
		return Failed[any](t.Err())
	case t.IsInterrupted():
		err, _ := t.OriginErr()
		return InterruptedTerminal[any](t.Origin(), err)
	default:
		return Succeeded[any](t.Value())
	}
}

// Bind is the fundamental monadic composition of the algebra.
func Bind[O, C1, C any](step Pull[O, C1], cont func(Terminal[C1]) Pull[O, C]) Pull[O, C] {
	erasedCont := func(t Terminal[any]) node[O] {
		return cont(MapTerminalFromAny[C1](t)).n
	}
	return wrap[O, C](bindNode[O]{step: step.n, cont: erasedCont})
}

// MapTerminalFromAny concretizes an erased Terminal[any] back to Terminal[C].
func MapTerminalFromAny[C any](t Terminal[any]) Terminal[C] {
	switch {
	case t.IsSucceeded():
		return Succeeded(t.Value().(C))
	case t.IsFail():
		return Failed[C](t.Err())
	default:
		err, _ := t.OriginErr()
		return InterruptedTerminal[C](t.Origin(), err)
	}
}

// FlatMap sequences p with a continuation over its successful result;
// Fail and Interrupted propagate unchanged.
func FlatMap[O, C, D any](p Pull[O, C], f func(C) Pull[O, D]) Pull[O, D] {
	return Bind(p, func(t Terminal[C]) Pull[O, D] {
		if !t.IsSucceeded() {
			return wrap[O, D](resultNode[O]{t: liftTerminal(t)})
		}
		return f(t.Value())
	})
}

// Map transforms p's successful carry.
func Map[O, C, D any](p Pull[O, C], f func(C) D) Pull[O, D] {
	return FlatMap(p, func(c C) Pull[O, D] { return Pure[O](f(c)) })
}

// As replaces p's successful carry with d.
func As[O, C, D any](p Pull[O, C], d D) Pull[O, D] {
	return Map(p, func(C) D { return d })
}

// VoidOf discards p's carry.
func VoidOf[O, C any](p Pull[O, C]) Pull[O, function.Void] {
	return As[O](p, function.VOID)
}

// Attempt reifies p's failure (if any) as a Result, so Fail no longer
// short-circuits a surrounding FlatMap chain.
func Attempt[O, C any](p Pull[O, C]) Pull[O, result.Result[C]] {
	return Bind(p, func(t Terminal[C]) Pull[O, result.Result[C]] {
		switch {
		case t.IsSucceeded():
			return Pure[O](result.Ok(t.Value()))
		case t.IsFail():
			return Pure[O](result.Err[C](t.Err()))
		default:
			err, _ := t.OriginErr()
			return wrap[O, result.Result[C]](resultNode[O]{t: InterruptedTerminal[any](t.Origin(), err)})
		}
	})
}

// HandleErrorWith recovers from a Fail terminal; it never catches
// Interrupted.
func HandleErrorWith[O, C any](p Pull[O, C], f func(error) Pull[O, C]) Pull[O, C] {
	return Bind(p, func(t Terminal[C]) Pull[O, C] {
		if t.IsFail() {
			return f(t.Err())
		}
		return wrap[O, C](resultNode[O]{t: liftTerminal(t)})
	})
}

// OnComplete runs fin after p, whether p succeeded, failed, or was
// interrupted, then replays p's original terminal.
func OnComplete[O, C any](p Pull[O, C], fin Pull[O, function.Void]) Pull[O, C] {
	return Bind(p, func(t Terminal[C]) Pull[O, C] {
		return Bind(fin, func(t2 Terminal[function.Void]) Pull[O, C] {
			if t2.IsFail() {
				if t.IsFail() {
					return wrap[O, C](resultNode[O]{t: Failed[any](composeErrors(t.Err(), t2.Err()))})
				}
				return wrap[O, C](resultNode[O]{t: Failed[any](t2.Err())})
			}
			return wrap[O, C](resultNode[O]{t: liftTerminal(t)})
		})
	})
}

// Then sequences p then q, discarding p's result; Fail or Interrupted from
// p short-circuit before q ever runs.
func Then[O, C, D any](p Pull[O, C], q Pull[O, D]) Pull[O, D] {
	return FlatMap(p, func(C) Pull[O, D] { return q })
}

// MapOutput elementwise-transforms the values emitted by p.
func MapOutput[O, P any](p Pull[O, function.Void], f func(O) P) Pull[P, function.Void] {
	return wrap[P, function.Void](fuseMapOutput[O, P](p.n, f))
}

// FlatMapOutput expands each value emitted by p into a sub-pull and
// concatenates their outputs.
func FlatMapOutput[O, P any](p Pull[O, function.Void], f func(O) Pull[P, function.Void]) Pull[P, function.Void] {
	wrapped := func(o O) Pull[P, struct{}] { return VoidOfStruct(f(o)) }
	return wrap[P, function.Void](fuseFlatMapOutput[O, P](p.n, wrapped))
}

// VoidOfStruct adapts a Void-carrying pull to the struct{}-carrying shape
// used internally by FlatMapOutput sub-pulls.
func VoidOfStruct[P any](p Pull[P, function.Void]) Pull[P, struct{}] {
	return Map(p, func(function.Void) struct{} { return struct{}{} })
}

// Translate reinterprets p's effectful actions through fk.
func Translate[O, C any](p Pull[O, C], fk func(ioresult.IOResult[any]) ioresult.IOResult[any]) Pull[O, C] {
	erasedFk := func(f func() result.Result[any]) func() result.Result[any] {
		return func() result.Result[any] { return fk(f)() }
	}
	return wrap[O, C](fuseTranslate(p.n, erasedFk))
}

// nonEmptyOf builds a single-element chunk.
func nonEmptyOf[O any](o O) Chunk[O] { return nonempty.Of(o) }
