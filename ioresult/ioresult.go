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

package ioresult

import (
	"time"

	"github.com/IBM/fp-go-streams/io"
	"github.com/IBM/fp-go-streams/result"
)

// Left creates an IOResult that always fails with the given error.
//
//go:inline
func Left[A any](err error) IOResult[A] {
	return io.Of(result.Err[A](err))
}

// Right creates an IOResult that always succeeds with the given value.
//
//go:inline
func Right[A any](a A) IOResult[A] {
	return io.Of(result.Ok(a))
}

// Of lifts a pure value into IOResult. Equivalent to [Right].
//
//go:inline
func Of[A any](a A) IOResult[A] {
	return Right(a)
}

// MonadOf is an alias of [Of], provided for symmetry with the other Monad* functions.
//
//go:inline
func MonadOf[A any](a A) IOResult[A] {
	return Of(a)
}

// LeftIO lifts an IO-computed error into a failing IOResult.
//
//go:inline
func LeftIO[A any](ml IO[error]) IOResult[A] {
	return io.Map(result.Err[A])(ml)
}

// RightIO lifts an IO computation into a succeeding IOResult.
//
//go:inline
func RightIO[A any](mr IO[A]) IOResult[A] {
	return io.Map(result.Ok[A])(mr)
}

// FromResult lifts an already-computed Result into IOResult.
//
//go:inline
func FromResult[A any](r Result[A]) IOResult[A] {
	return io.Of(r)
}

// FromResultI lifts a (value, error) pair into IOResult.
//
//go:inline
func FromResultI[A any](a A, err error) IOResult[A] {
	return FromResult(result.TryCatchError(a, err))
}

// FromIO lifts an IO that cannot fail into an always-succeeding IOResult,
// re-running the underlying IO on every invocation.
//
//go:inline
func FromIO[A any](mr IO[A]) IOResult[A] {
	return RightIO(mr)
}

// FromLazy lifts a lazily-evaluated value into an always-succeeding IOResult.
//
//go:inline
func FromLazy[A any](mr Lazy[A]) IOResult[A] {
	return RightIO(mr)
}

// MonadMap transforms the success value, leaving a failure unchanged.
//
//go:inline
func MonadMap[A, B any](fa IOResult[A], f func(A) B) IOResult[B] {
	return io.MonadMap(fa, result.Map[error](f))
}

// Map is the curried form of [MonadMap].
//
//go:inline
func Map[A, B any](f func(A) B) Operator[A, B] {
	return io.Map(result.Map[error](f))
}

// MonadMapTo replaces the success value with a constant.
//
//go:inline
func MonadMapTo[A, B any](fa IOResult[A], b B) IOResult[B] {
	return MonadMap(fa, func(A) B { return b })
}

// MapTo is the curried form of [MonadMapTo].
//
//go:inline
func MapTo[A, B any](b B) Operator[A, B] {
	return Map[A](func(A) B { return b })
}

// MonadChain sequences two IOResult computations, short-circuiting on the
// first failure.
//
//go:inline
func MonadChain[A, B any](fa IOResult[A], f Kleisli[A, B]) IOResult[B] {
	return func() Result[B] {
		ra := fa()
		if result.IsLeft(ra) {
			_, err := result.Unwrap(ra)
			return result.Err[B](err)
		}
		a, _ := result.Unwrap(ra)
		return f(a)()
	}
}

// Chain is the curried form of [MonadChain].
//
//go:inline
func Chain[A, B any](f Kleisli[A, B]) Operator[A, B] {
	return func(fa IOResult[A]) IOResult[B] {
		return MonadChain(fa, f)
	}
}

// MonadChainResultK sequences a Result-returning (synchronous, non-IO) function.
//
//go:inline
func MonadChainResultK[A, B any](ma IOResult[A], f result.Kleisli[error, A, B]) IOResult[B] {
	return MonadChain(ma, func(a A) IOResult[B] { return FromResult(f(a)) })
}

// ChainResultK is the curried form of [MonadChainResultK].
//
//go:inline
func ChainResultK[A, B any](f result.Kleisli[error, A, B]) Operator[A, B] {
	return func(ma IOResult[A]) IOResult[B] {
		return MonadChainResultK(ma, f)
	}
}

// MonadChainIOK sequences an IO (cannot-fail) function.
//
//go:inline
func MonadChainIOK[A, B any](ma IOResult[A], f io.Kleisli[A, B]) IOResult[B] {
	return MonadChain(ma, func(a A) IOResult[B] { return FromIO(f(a)) })
}

// ChainIOK is the curried form of [MonadChainIOK].
//
//go:inline
func ChainIOK[A, B any](f io.Kleisli[A, B]) Operator[A, B] {
	return func(ma IOResult[A]) IOResult[B] {
		return MonadChainIOK(ma, f)
	}
}

// MonadChainTo ignores the first computation's value (propagating its
// failure, if any) and returns the second.
//
//go:inline
func MonadChainTo[A, B any](fa IOResult[A], fb IOResult[B]) IOResult[B] {
	return MonadChain(fa, func(A) IOResult[B] { return fb })
}

// ChainTo is the curried form of [MonadChainTo].
//
//go:inline
func ChainTo[A, B any](fb IOResult[B]) Operator[A, B] {
	return func(fa IOResult[A]) IOResult[B] {
		return MonadChainTo(fa, fb)
	}
}

// MonadAp applies a function wrapped in IOResult to a value wrapped in
// IOResult, running both sequentially (function first) and short-circuiting
// on the first failure. Alias for [MonadApSeq].
//
//go:inline
func MonadAp[B, A any](mab IOResult[func(A) B], ma IOResult[A]) IOResult[B] {
	return MonadApSeq(mab, ma)
}

// Ap is the curried form of [MonadAp].
//
//go:inline
func Ap[B, A any](ma IOResult[A]) Operator[func(A) B, B] {
	return ApSeq[B](ma)
}

// MonadApSeq evaluates mab and ma in sequence, short-circuiting on the
// first failure encountered.
func MonadApSeq[B, A any](mab IOResult[func(A) B], ma IOResult[A]) IOResult[B] {
	return func() Result[B] {
		rab := mab()
		if result.IsLeft(rab) {
			_, err := result.Unwrap(rab)
			return result.Err[B](err)
		}
		ra := ma()
		fab, _ := result.Unwrap(rab)
		return result.Map[error](fab)(ra)
	}
}

// ApSeq is the curried form of [MonadApSeq].
func ApSeq[B, A any](ma IOResult[A]) Operator[func(A) B, B] {
	return func(mab IOResult[func(A) B]) IOResult[B] {
		return MonadApSeq(mab, ma)
	}
}

// MonadApPar evaluates mab and ma on separate goroutines, short-circuiting
// on the first failure encountered once both have completed.
func MonadApPar[B, A any](mab IOResult[func(A) B], ma IOResult[A]) IOResult[B] {
	return func() Result[B] {
		c := make(chan Result[A], 1)
		go func() {
			c <- ma()
			close(c)
		}()
		rab := mab()
		ra := <-c
		if result.IsLeft(rab) {
			_, err := result.Unwrap(rab)
			return result.Err[B](err)
		}
		if result.IsLeft(ra) {
			_, err := result.Unwrap(ra)
			return result.Err[B](err)
		}
		fab, _ := result.Unwrap(rab)
		a, _ := result.Unwrap(ra)
		return result.Ok(fab(a))
	}
}

// ApPar is the curried form of [MonadApPar].
func ApPar[B, A any](ma IOResult[A]) Operator[func(A) B, B] {
	return func(mab IOResult[func(A) B]) IOResult[B] {
		return MonadApPar(mab, ma)
	}
}

// Flatten removes one level of IOResult nesting.
//
//go:inline
func Flatten[A any](mma IOResult[IOResult[A]]) IOResult[A] {
	return MonadChain(mma, func(ma IOResult[A]) IOResult[A] { return ma })
}

// TryCatch builds an IOResult from a function that may return an error,
// transforming the error via onThrow.
func TryCatch[A any](f func() (A, error), onThrow Endomorphism[error]) IOResult[A] {
	return func() Result[A] {
		a, err := f()
		if err != nil {
			return result.Err[A](onThrow(err))
		}
		return result.Ok(a)
	}
}

// TryCatchError specializes [TryCatch] with no error transformation.
func TryCatchError[A any](f func() (A, error)) IOResult[A] {
	return TryCatch(f, func(err error) error { return err })
}

// Memoize wraps ma so the underlying computation runs at most once, with
// later invocations returning the memoized Result.
//
//go:inline
func Memoize[A any](ma IOResult[A]) IOResult[A] {
	return io.Memoize(ma)
}

// Fold converts an IOResult into a plain IO by dispatching to onLeft or onRight.
//
//go:inline
func Fold[A, B any](onLeft func(error) IO[B], onRight io.Kleisli[A, B]) func(IOResult[A]) IO[B] {
	return func(ma IOResult[A]) IO[B] {
		return func() B {
			return result.MonadFold(ma(), func(err error) B { return onLeft(err)() }, func(a A) B { return onRight(a)() })
		}
	}
}

// MonadFold is the uncurried form of [Fold].
//
//go:inline
func MonadFold[A, B any](ma IOResult[A], onLeft func(error) IO[B], onRight io.Kleisli[A, B]) IO[B] {
	return Fold(onLeft, onRight)(ma)
}

// GetOrElse extracts the success value or computes a fallback IO from the error.
//
//go:inline
func GetOrElse[A any](onLeft func(error) IO[A]) func(IOResult[A]) IO[A] {
	return Fold(onLeft, io.Of[A])
}

// GetOrElseOf is like [GetOrElse] but the fallback is a pure value rather than an IO.
//
//go:inline
func GetOrElseOf[A any](onLeft func(error) A) func(IOResult[A]) IO[A] {
	return GetOrElse(func(err error) IO[A] { return io.Of(onLeft(err)) })
}

// MonadChainFirst runs f for its effect but returns the original value.
//
//go:inline
func MonadChainFirst[A, B any](ma IOResult[A], f Kleisli[A, B]) IOResult[A] {
	return MonadChain(ma, func(a A) IOResult[A] {
		return MonadChainTo(f(a), Of(a))
	})
}

// ChainFirst is the curried form of [MonadChainFirst].
//
//go:inline
func ChainFirst[A, B any](f Kleisli[A, B]) Operator[A, A] {
	return func(ma IOResult[A]) IOResult[A] {
		return MonadChainFirst(ma, f)
	}
}

// MonadChainFirstIOK runs the IO returned by f for its effect but returns the original value.
//
//go:inline
func MonadChainFirstIOK[A, B any](ma IOResult[A], f io.Kleisli[A, B]) IOResult[A] {
	return MonadChainFirst(ma, func(a A) IOResult[B] { return FromIO(f(a)) })
}

// ChainFirstIOK is the curried form of [MonadChainFirstIOK].
//
//go:inline
func ChainFirstIOK[A, B any](f io.Kleisli[A, B]) Operator[A, A] {
	return func(ma IOResult[A]) IOResult[A] {
		return MonadChainFirstIOK(ma, f)
	}
}

// MonadChainFirstResultK runs the Result returned by f for its effect but returns the original value.
//
//go:inline
func MonadChainFirstResultK[A, B any](ma IOResult[A], f result.Kleisli[error, A, B]) IOResult[A] {
	return MonadChainFirst(ma, func(a A) IOResult[B] { return FromResult(f(a)) })
}

// ChainFirstResultK is the curried form of [MonadChainFirstResultK].
//
//go:inline
func ChainFirstResultK[A, B any](f result.Kleisli[error, A, B]) Operator[A, A] {
	return func(ma IOResult[A]) IOResult[A] {
		return MonadChainFirstResultK(ma, f)
	}
}

// OrElse recovers from a failure by providing an alternative computation. If
// ma succeeds, it is returned unchanged.
//
//go:inline
func OrElse[A any](onLeft Kleisli[error, A]) Operator[A, A] {
	return func(ma IOResult[A]) IOResult[A] {
		return func() Result[A] {
			ra := ma()
			if result.IsLeft(ra) {
				_, err := result.Unwrap(ra)
				return onLeft(err)()
			}
			return ra
		}
	}
}

// MonadChainLeft is the uncurried form of [OrElse].
//
//go:inline
func MonadChainLeft[A any](fa IOResult[A], f Kleisli[error, A]) IOResult[A] {
	return OrElse(f)(fa)
}

// ChainLeft is an alias of [OrElse], kept for symmetry with the success-side Chain.
//
//go:inline
func ChainLeft[A any](f Kleisli[error, A]) Operator[A, A] {
	return OrElse(f)
}

// MonadAlt provides an alternative computation if the first one fails.
//
//go:inline
func MonadAlt[A any](first IOResult[A], second Lazy[IOResult[A]]) IOResult[A] {
	return OrElse(func(error) IOResult[A] { return second() })(first)
}

// Alt is the curried form of [MonadAlt].
//
//go:inline
func Alt[A any](second Lazy[IOResult[A]]) Operator[A, A] {
	return func(first IOResult[A]) IOResult[A] {
		return MonadAlt(first, second)
	}
}

// MonadFlap applies a value to a wrapped function, the reverse of [MonadAp].
//
//go:inline
func MonadFlap[B, A any](fab IOResult[func(A) B], a A) IOResult[B] {
	return MonadMap(fab, func(f func(A) B) B { return f(a) })
}

// Flap is the curried form of [MonadFlap].
//
//go:inline
func Flap[B, A any](a A) Operator[func(A) B, B] {
	return func(fab IOResult[func(A) B]) IOResult[B] {
		return MonadFlap(fab, a)
	}
}

// Defer builds an IOResult from a generator invoked on every run, useful
// when the computation itself must be freshly constructed each time.
//
//go:inline
func Defer[A any](gen Lazy[IOResult[A]]) IOResult[A] {
	return io.Defer(gen)
}

// FromImpure turns a side effect without a return value into an
// always-succeeding IOResult[Void].
//
//go:inline
func FromImpure[A any](f func()) IOResult[Void] {
	return RightIO(io.FromImpure(f))
}

// Delay creates an operator that passes the value through after the given duration.
//
//go:inline
func Delay[A any](delay time.Duration) Operator[A, A] {
	return func(ma IOResult[A]) IOResult[A] {
		return io.Delay[Result[A]](delay)(ma)
	}
}

// After creates an operator that passes the value through after the given timestamp.
//
//go:inline
func After[A any](timestamp time.Time) Operator[A, A] {
	return func(ma IOResult[A]) IOResult[A] {
		return io.After[Result[A]](timestamp)(ma)
	}
}
