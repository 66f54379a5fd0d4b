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

package pull_test

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IBM/fp-go-streams/function"
	"github.com/IBM/fp-go-streams/ioresult"
	"github.com/IBM/fp-go-streams/pull"
	"github.com/IBM/fp-go-streams/pull/scope"
	"github.com/IBM/fp-go-streams/result"
)

// sumFold and concatFold are the two folds the scenarios below compile
// against: one collapses chunks to a running total, the other flattens
// chunks into a single slice in emission order.

func sumFold(acc int, chunk pull.Chunk[int]) (int, error) {
	return acc + len(chunk), nil
}

func concatFold[O any](acc []O, chunk pull.Chunk[O]) ([]O, error) {
	return append(acc, []O(chunk)...), nil
}

func runList[O any](t *testing.T, p pull.Pull[O, function.Void]) ([]O, error) {
	t.Helper()
	stream, s := pull.Stream(p)
	outcome := pull.Compile(stream, s, []O(nil), concatFold[O])()
	return result.Unwrap(outcome)
}

func runSum(t *testing.T, p pull.Pull[int, function.Void]) (int, error) {
	t.Helper()
	stream, s := pull.Stream(p)
	outcome := pull.Compile(stream, s, 0, sumFold)()
	return result.Unwrap(outcome)
}

// --- Laws ---

func TestLeftIdentity(t *testing.T) {
	f := func(c int) pull.Pull[int, int] { return pull.Pure[int](c * 2) }

	left, errL := runList(t, pull.Map(pull.FlatMap(pull.Pure[int](21), f), func(int) function.Void { return function.VOID }))
	right, errR := runList(t, pull.Map(f(21), func(int) function.Void { return function.VOID }))

	require.NoError(t, errL)
	require.NoError(t, errR)
	assert.Equal(t, right, left)
}

func TestRightIdentity(t *testing.T) {
	p := pull.FlatMap(pull.Output1(1), func(function.Void) pull.Pull[int, function.Void] { return pull.Output1(2) })

	left, errL := runList(t, pull.FlatMap(p, func(c function.Void) pull.Pull[int, function.Void] { return pull.Pure[int](c) }))
	right, errR := runList(t, p)

	require.NoError(t, errL)
	require.NoError(t, errR)
	assert.Equal(t, right, left)
}

func TestAssociativity(t *testing.T) {
	p := pull.Output1(1)
	f := func(function.Void) pull.Pull[int, function.Void] { return pull.Output1(2) }
	g := func(function.Void) pull.Pull[int, function.Void] { return pull.Output1(3) }

	left, errL := runList(t, pull.FlatMap(pull.FlatMap(p, f), g))
	right, errR := runList(t, pull.FlatMap(p, func(c function.Void) pull.Pull[int, function.Void] {
		return pull.FlatMap(f(c), g)
	}))

	require.NoError(t, errL)
	require.NoError(t, errR)
	assert.Equal(t, right, left)
}

func TestHandleErrorWithRaiseError(t *testing.T) {
	e := errors.New("boom")
	h := func(err error) pull.Pull[int, function.Void] { return pull.Output1(42) }

	left, errL := runList(t, pull.HandleErrorWith(pull.RaiseError[int, function.Void](e), h))
	right, errR := runList(t, h(e))

	require.NoError(t, errL)
	require.NoError(t, errR)
	assert.Equal(t, right, left)
}

func TestMapEqualsFlatMapPure(t *testing.T) {
	f := func(c int) int { return c + 1 }
	p := pull.Pure[string](10)

	left, errL := runList(t, pull.Map(pull.Map(p, f), func(int) function.Void { return function.VOID }))
	right, errR := runList(t, pull.Map(pull.FlatMap(p, func(c int) pull.Pull[string, int] { return pull.Pure[string](f(c)) }), func(int) function.Void { return function.VOID }))

	require.NoError(t, errL)
	require.NoError(t, errR)
	assert.Equal(t, right, left)
}

func TestOutputEmptyChunkEquivalentToDone(t *testing.T) {
	empty, errEmpty := runList(t, pull.Output(pull.Chunk[int]{}))
	done, errDone := runList(t, pull.Done[int]())

	require.NoError(t, errEmpty)
	require.NoError(t, errDone)
	assert.Equal(t, done, empty)
}

func TestAttemptNeverFails(t *testing.T) {
	e := errors.New("boom")
	p := pull.Attempt(pull.RaiseError[int, function.Void](e))

	results, err := runList(t, pull.FlatMap(p, func(r result.Result[function.Void]) pull.Pull[int, function.Void] {
		return result.MonadFold(r,
			func(err error) pull.Pull[int, function.Void] { return pull.Output1(-1) },
			func(function.Void) pull.Pull[int, function.Void] { return pull.Output1(1) },
		)
	}))

	require.NoError(t, err)
	assert.Equal(t, []int{-1}, results)
}

// --- Concrete scenarios ---

func TestScenarioChunkedEmission(t *testing.T) {
	p := pull.Then(pull.Output(pull.Chunk[int]{1, 2, 3}), pull.Output(pull.Chunk[int]{4, 5}))

	sum, err := runSum(t, p)
	require.NoError(t, err)
	assert.Equal(t, 5, sum)

	flat, err := runList(t, p)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, flat)
}

func TestScenarioErrorCaught(t *testing.T) {
	e := errors.New("eval failure")
	p := pull.HandleErrorWith(
		pull.VoidOf(pull.Eval[int](ioresult.Left[function.Void](e))),
		func(error) pull.Pull[int, function.Void] { return pull.Output1(42) },
	)

	out, err := runList(t, p)
	require.NoError(t, err)
	assert.Equal(t, []int{42}, out)
}

func TestScenarioBracketOnSuccess(t *testing.T) {
	type resource struct{ id int }
	var recorded scope.ExitCase

	p := pull.BracketCase(
		ioresult.Right(resource{id: 7}),
		func(r resource) pull.Pull[int, function.Void] { return pull.Output1(r.id) },
		func(r resource, ec scope.ExitCase) ioresult.IOResult[function.Void] {
			recorded = ec
			return ioresult.Of(function.VOID)
		},
	)

	out, err := runList(t, p)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, out)
	assert.True(t, recorded.IsSucceeded())
}

func TestScenarioBracketOnError(t *testing.T) {
	type resource struct{ id int }
	e := errors.New("use failed")
	var recorded scope.ExitCase

	p := pull.BracketCase(
		ioresult.Right(resource{id: 9}),
		func(resource) pull.Pull[int, function.Void] { return pull.RaiseError[int, function.Void](e) },
		func(r resource, ec scope.ExitCase) ioresult.IOResult[function.Void] {
			recorded = ec
			return ioresult.Of(function.VOID)
		},
	)

	_, err := runList(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, e)
	require.True(t, recorded.IsErrored())
	assert.ErrorIs(t, recorded.Err(), e)
}

// TestScenarioInterruption drives interruptScope(interruptWhen(signal) >>
// output1('A') >> eval(never)): the watcher fiber registered by
// InterruptWhen marks the scope InterruptScope opened as interrupted while
// "never" is blocked, and the guard on the following Acquire must then
// redirect through the interrupted terminal without ever running it. The
// resource acquired inside that scope must observe ExitCase.Canceled on
// release.
func TestScenarioInterruption(t *testing.T) {
	var recorded scope.ExitCase
	neverAcquired := false

	// ch decouples the watcher from the main interpretation goroutine: the
	// signal only resolves once "never" closes it, which happens strictly
	// after output1('A') has already been interpreted, so the scope can
	// never be marked interrupted before 'A' is emitted.
	ch := make(chan struct{})
	signal := func() result.Result[result.Result[function.Void]] {
		<-ch
		return result.Ok(result.Ok(function.VOID))
	}

	never := pull.FlatMap(pull.GetScope[rune](), func(s *scope.Scope) pull.Pull[rune, function.Void] {
		return pull.VoidOf(pull.Eval[rune](func() result.Result[function.Void] {
			close(ch)
			for {
				if _, _, interrupted := s.IsInterrupted(); interrupted {
					return result.Ok(function.VOID)
				}
				runtime.Gosched()
			}
		}))
	})

	neverRuns := pull.VoidOf(pull.Acquire[rune](
		ioresult.Of(function.VOID),
		func(function.Void, scope.ExitCase) ioresult.IOResult[function.Void] {
			neverAcquired = true
			return ioresult.Of(function.VOID)
		},
	))

	resource := pull.BracketCase(
		ioresult.Right(function.VOID),
		func(function.Void) pull.Pull[rune, function.Void] {
			return pull.Then(pull.Output1('A'), pull.Then(never, neverRuns))
		},
		func(_ function.Void, ec scope.ExitCase) ioresult.IOResult[function.Void] {
			recorded = ec
			return ioresult.Of(function.VOID)
		},
	)

	p := pull.InterruptScope(pull.Then(pull.InterruptWhen[rune](signal), resource), "scenario-5")

	out, err := runList(t, p)
	require.NoError(t, err)
	assert.Equal(t, []rune{'A'}, out)
	assert.False(t, neverAcquired)
	assert.True(t, recorded.IsCanceled())
}

func TestScenarioCompositeCloseFailure(t *testing.T) {
	e1 := errors.New("inner use failed")
	e2 := errors.New("outer release failed")

	outer := pull.BracketCase(
		ioresult.Right(1),
		func(int) pull.Pull[int, function.Void] {
			return pull.BracketCase(
				ioresult.Right(2),
				func(int) pull.Pull[int, function.Void] { return pull.RaiseError[int, function.Void](e1) },
				func(int, scope.ExitCase) ioresult.IOResult[function.Void] { return ioresult.Of(function.VOID) },
			)
		},
		func(int, scope.ExitCase) ioresult.IOResult[function.Void] { return ioresult.Left[function.Void](e2) },
	)

	_, err := runList(t, outer)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), e1.Error()))
	assert.True(t, strings.Contains(err.Error(), e2.Error()))
}

// --- Resource invariants ---

func TestAcquireReleasePairingSkippedOnAcquireFailure(t *testing.T) {
	e := errors.New("acquire failed")
	released := false

	p := pull.BracketCase(
		ioresult.Left[int](e),
		func(int) pull.Pull[int, function.Void] { return pull.Output1(1) },
		func(int, scope.ExitCase) ioresult.IOResult[function.Void] {
			released = true
			return ioresult.Of(function.VOID)
		},
	)

	_, err := runList(t, p)
	require.Error(t, err)
	assert.False(t, released)
}

func TestFinalizerLIFOAcrossAcquires(t *testing.T) {
	var order []string
	release := func(name string) func(int, scope.ExitCase) ioresult.IOResult[function.Void] {
		return func(int, scope.ExitCase) ioresult.IOResult[function.Void] {
			order = append(order, name)
			return ioresult.Of(function.VOID)
		}
	}

	p := pull.FlatMap(pull.Acquire[int](ioresult.Right(1), release("A")), func(int) pull.Pull[int, function.Void] {
		return pull.FlatMap(pull.Acquire[int](ioresult.Right(2), release("B")), func(int) pull.Pull[int, function.Void] {
			return pull.VoidOf(pull.Acquire[int](ioresult.Right(3), release("C")))
		})
	})

	_, err := runList(t, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, order)
}

// --- Bounded-stack property ---

func TestBoundedStackRecursiveOutput(t *testing.T) {
	const n = 200_000

	var self func(x int) pull.Pull[int, function.Void]
	self = func(x int) pull.Pull[int, function.Void] {
		return pull.Then(pull.Output1(x), pull.Suspend(func() pull.Pull[int, function.Void] { return self(x) }))
	}

	bounded := takeN(self(1), n)
	sum, err := runSum(t, bounded)
	require.NoError(t, err)
	assert.Equal(t, n, sum)
}

func takeN[O any](p pull.Pull[O, function.Void], n int) pull.Pull[O, function.Void] {
	if n <= 0 {
		return pull.Done[O]()
	}
	return pull.FlatMap(pull.Uncons(p), func(r result.Result[pull.UnconsStep[O, function.Void]]) pull.Pull[O, function.Void] {
		return result.MonadFold(r,
			func(err error) pull.Pull[O, function.Void] { return pull.RaiseError[O, function.Void](err) },
			func(step pull.UnconsStep[O, function.Void]) pull.Pull[O, function.Void] {
				if !step.Ok {
					return pull.Done[O]()
				}
				chunk := step.Chunk
				if len(chunk) >= n {
					return pull.Output(chunk[:n])
				}
				return pull.Then(pull.Output(chunk), takeN(step.Tail, n-len(chunk)))
			},
		)
	})
}

func TestIsInternalDistinguishesInvariantViolations(t *testing.T) {
	userErr := errors.New("user error")
	_, err := runList(t, pull.RaiseError[int, function.Void](userErr))
	require.Error(t, err)
	assert.False(t, pull.IsInternal(err))
}

// --- Output transformers ---

func TestMapOutputTransformsElementsAcrossChunks(t *testing.T) {
	p := pull.Then(pull.Output(pull.Chunk[int]{1, 2, 3}), pull.Output(pull.Chunk[int]{4, 5}))

	out, err := runList(t, pull.MapOutput(p, func(o int) int { return o * 10 }))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, out)
}

// TestMapOutputFusesAdjacentMaps chains two MapOutput calls over the same
// source; fuseMapOutput collapses the pair into a single mapOutputNode
// carrying the composed function rather than nesting one mapOutputNode
// inside another, but that collapsing is only observable through the
// composed values it still produces.
func TestMapOutputFusesAdjacentMaps(t *testing.T) {
	p := pull.Output(pull.Chunk[int]{1, 2, 3})
	once := pull.MapOutput(p, func(o int) int { return o + 1 })
	twice := pull.MapOutput(once, func(o int) int { return o * 2 })

	out, err := runList(t, twice)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, 8}, out)
}

func TestMapOutputOnEmptySourceYieldsNothing(t *testing.T) {
	out, err := runList(t, pull.MapOutput(pull.Done[int](), func(o int) int { return o }))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFlatMapOutputConcatenatesSubPullsInOrder(t *testing.T) {
	p := pull.Output(pull.Chunk[int]{1, 2, 3})

	out, err := runList(t, pull.FlatMapOutput(p, func(o int) pull.Pull[int, function.Void] {
		return pull.Output(pull.Chunk[int]{o, o * 100})
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 100, 2, 200, 3, 300}, out)
}

func TestFlatMapOutputAcrossMultipleSourceChunks(t *testing.T) {
	p := pull.Then(pull.Output(pull.Chunk[int]{1, 2}), pull.Output(pull.Chunk[int]{3}))

	out, err := runList(t, pull.FlatMapOutput(p, func(o int) pull.Pull[int, function.Void] {
		return pull.Output1(o * 2)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, out)
}

func TestFlatMapOutputPropagatesSubPullError(t *testing.T) {
	e := errors.New("expansion failed")
	p := pull.Output(pull.Chunk[int]{1, 2})

	_, err := runList(t, pull.FlatMapOutput(p, func(o int) pull.Pull[int, function.Void] {
		if o == 2 {
			return pull.RaiseError[int, function.Void](e)
		}
		return pull.Output1(o)
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, e)
}

// TestFlatMapOutputSingletonChunkFastPathChains builds a descending ladder
// of FlatMapOutput expansions, each emitting exactly one chunk whose
// remaining inner pull is already a pure success — the shape
// goFlatMapOutput's singleton fast path forwards directly instead of
// wrapping in a fresh FlatMapOutput node, exercising that path several
// levels deep.
func TestFlatMapOutputSingletonChunkFastPathChains(t *testing.T) {
	var chain func(o int) pull.Pull[int, function.Void]
	chain = func(o int) pull.Pull[int, function.Void] {
		return pull.FlatMapOutput(pull.Output1(o), func(v int) pull.Pull[int, function.Void] {
			if v <= 0 {
				return pull.Output1(v)
			}
			return pull.Then(pull.Output1(v), chain(v-1))
		})
	}

	out, err := runList(t, chain(5))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, out)
}

func TestTranslateRewritesEffects(t *testing.T) {
	var seen []int
	effect := pull.Eval[int](func() result.Result[int] { return result.Ok(7) })

	rewritten := pull.Translate(effect, func(fa ioresult.IOResult[any]) ioresult.IOResult[any] {
		return func() result.Result[any] {
			r := fa()
			return result.MonadMap(r, func(a any) any {
				v := a.(int) * 2
				seen = append(seen, v)
				return v
			})
		}
	})

	p := pull.FlatMap(rewritten, func(v int) pull.Pull[int, function.Void] { return pull.Output1(v) })

	out, err := runList(t, p)
	require.NoError(t, err)
	assert.Equal(t, []int{14}, out)
	assert.Equal(t, []int{14}, seen)
}

// TestTranslateFusesNestedCalls composes two Translate wrappers around the
// same source; fuseTranslate composes the pair into a single translateNode
// rather than nesting interpreter dispatch, observable only via both
// rewrites taking effect in composition order.
func TestTranslateFusesNestedCalls(t *testing.T) {
	effect := pull.Eval[int](func() result.Result[int] { return result.Ok(1) })

	addOne := func(fa ioresult.IOResult[any]) ioresult.IOResult[any] {
		return func() result.Result[any] {
			r := fa()
			return result.MonadMap(r, func(a any) any { return a.(int) + 1 })
		}
	}
	double := func(fa ioresult.IOResult[any]) ioresult.IOResult[any] {
		return func() result.Result[any] {
			r := fa()
			return result.MonadMap(r, func(a any) any { return a.(int) * 2 })
		}
	}

	composed := pull.Translate(pull.Translate(effect, addOne), double)
	p := pull.FlatMap(composed, func(v int) pull.Pull[int, function.Void] { return pull.Output1(v) })

	out, err := runList(t, p)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, out)
}

// --- StepLeg ---

func TestStepLegYieldsChunkAndScope(t *testing.T) {
	inner := pull.Output(pull.Chunk[int]{1, 2, 3})

	program := pull.FlatMap(pull.GetScope[int](), func(s *scope.Scope) pull.Pull[int, function.Void] {
		return pull.FlatMap(pull.StepLeg(inner, s.Token()), func(r result.Result[pull.StepLegStep[int, function.Void]]) pull.Pull[int, function.Void] {
			return result.MonadFold(r,
				func(err error) pull.Pull[int, function.Void] { return pull.RaiseError[int, function.Void](err) },
				func(leg pull.StepLegStep[int, function.Void]) pull.Pull[int, function.Void] {
					require.True(t, leg.Ok)
					assert.Equal(t, pull.Chunk[int]{1, 2, 3}, leg.Chunk)
					assert.NotNil(t, leg.Scope)
					return pull.Output(leg.Chunk)
				},
			)
		})
	})

	out, err := runList(t, program)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestStepLegReportsExhaustion(t *testing.T) {
	program := pull.FlatMap(pull.GetScope[int](), func(s *scope.Scope) pull.Pull[int, function.Void] {
		return pull.FlatMap(pull.StepLeg(pull.Done[int](), s.Token()), func(r result.Result[pull.StepLegStep[int, function.Void]]) pull.Pull[int, function.Void] {
			return result.MonadFold(r,
				func(err error) pull.Pull[int, function.Void] { return pull.RaiseError[int, function.Void](err) },
				func(leg pull.StepLegStep[int, function.Void]) pull.Pull[int, function.Void] {
					assert.False(t, leg.Ok)
					return pull.Done[int]()
				},
			)
		})
	})

	out, err := runList(t, program)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// --- Scope combinators ---

func TestInterruptWhenDeliversDeferredError(t *testing.T) {
	e := errors.New("watcher failed")
	ch := make(chan struct{})
	signal := func() result.Result[result.Result[function.Void]] {
		<-ch
		return result.Ok(result.Err[function.Void](e))
	}

	blocked := pull.FlatMap(pull.GetScope[int](), func(s *scope.Scope) pull.Pull[int, function.Void] {
		return pull.VoidOf(pull.Eval[int](func() result.Result[function.Void] {
			close(ch)
			for {
				if _, _, interrupted := s.IsInterrupted(); interrupted {
					return result.Ok(function.VOID)
				}
				runtime.Gosched()
			}
		}))
	})

	p := pull.InterruptScope(pull.Then(pull.InterruptWhen[int](signal), blocked), "deferred-error")

	_, err := runList(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, e)
}

func TestInScopeFinalizesBeforeCallerContinues(t *testing.T) {
	var order []string

	inner := pull.BracketCase(
		ioresult.Right(function.VOID),
		func(function.Void) pull.Pull[string, function.Void] {
			return pull.Output1("inner")
		},
		func(function.Void, scope.ExitCase) ioresult.IOResult[function.Void] {
			order = append(order, "released")
			return ioresult.Of(function.VOID)
		},
	)

	p := pull.Then(
		pull.InScope(pull.VoidOf(inner), "nested"),
		pull.VoidOf(pull.Eval[string](func() result.Result[function.Void] {
			order = append(order, "after")
			return result.Ok(function.VOID)
		})),
	)

	out, err := runList(t, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"inner"}, out)
	assert.Equal(t, []string{"released", "after"}, order)
}

// TestExtendScopeToPreservesValueAndResourceLifecycle confirms ExtendScopeTo
// is transparent to the value its wrapped pull produces and that taking and
// cancelling a lease on the current scope around it doesn't disturb the
// resource's normal acquire/release pairing.
func TestExtendScopeToPreservesValueAndResourceLifecycle(t *testing.T) {
	var released bool

	resource := pull.Acquire[int](
		ioresult.Right(42),
		func(int, scope.ExitCase) ioresult.IOResult[function.Void] {
			released = true
			return ioresult.Of(function.VOID)
		},
	)

	out, err := runList(t, pull.FlatMap(pull.ExtendScopeTo(resource), func(v int) pull.Pull[int, function.Void] {
		return pull.Output1(v)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{42}, out)
	assert.True(t, released)
}

// --- OnComplete ---

func TestOnCompleteRunsFinalizerAfterSuccess(t *testing.T) {
	var ran bool
	fin := pull.VoidOf(pull.Eval[int](func() result.Result[function.Void] {
		ran = true
		return result.Ok(function.VOID)
	}))

	out, err := runList(t, pull.OnComplete(pull.Output1(1), fin))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, out)
	assert.True(t, ran)
}

func TestOnCompleteRunsFinalizerAfterFailureAndReplaysOriginalError(t *testing.T) {
	e := errors.New("primary failure")
	var ran bool
	fin := pull.VoidOf(pull.Eval[int](func() result.Result[function.Void] {
		ran = true
		return result.Ok(function.VOID)
	}))

	_, err := runList(t, pull.OnComplete(pull.RaiseError[int, function.Void](e), fin))
	require.Error(t, err)
	assert.ErrorIs(t, err, e)
	assert.True(t, ran)
}

func TestOnCompleteComposesFinalizerFailureWithOriginalFailure(t *testing.T) {
	e1 := errors.New("primary failure")
	e2 := errors.New("finalizer failure")
	fin := pull.VoidOf(pull.RaiseError[int, function.Void](e2))

	_, err := runList(t, pull.OnComplete(pull.RaiseError[int, function.Void](e1), fin))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), e1.Error()))
	assert.True(t, strings.Contains(err.Error(), e2.Error()))
}
