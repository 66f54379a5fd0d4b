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

package result

import (
	E "github.com/IBM/fp-go-streams/errors"
	F "github.com/IBM/fp-go-streams/function"
	C "github.com/IBM/fp-go-streams/internal/chain"
	FC "github.com/IBM/fp-go-streams/internal/functor"
)

// Of lifts a value into the success channel. Equivalent to [Right].
//
//go:inline
func Of[E, A any](value A) Either[E, A] {
	return Right[E](value)
}

// MonadAp applies a wrapped function to a wrapped value, short-circuiting on
// the first Left encountered.
func MonadAp[B, E, A any](fab Either[E, func(a A) B], fa Either[E, A]) Either[E, B] {
	if fab.isLeft {
		return Left[B](fab.l)
	}
	if fa.isLeft {
		return Left[B](fa.l)
	}
	return Of[E](fab.r(fa.r))
}

// Ap is the curried form of [MonadAp].
//
//go:inline
func Ap[B, E, A any](fa Either[E, A]) Operator[E, func(A) B, B] {
	return F.Bind2nd(MonadAp[B, E, A], fa)
}

// MonadMap transforms the Right value, leaving Left untouched.
//
//go:inline
func MonadMap[E, A, B any](fa Either[E, A], f func(a A) B) Either[E, B] {
	if fa.isLeft {
		return Left[B](fa.l)
	}
	return Of[E](f(fa.r))
}

// MonadBiMap transforms both channels of fa.
func MonadBiMap[E1, E2, A, B any](fa Either[E1, A], f func(E1) E2, g func(a A) B) Either[E2, B] {
	if fa.isLeft {
		return Left[B](f(fa.l))
	}
	return Of[E2](g(fa.r))
}

// BiMap is the curried form of [MonadBiMap].
func BiMap[E1, E2, A, B any](f func(E1) E2, g func(a A) B) func(Either[E1, A]) Either[E2, B] {
	return func(fa Either[E1, A]) Either[E2, B] {
		return MonadBiMap(fa, f, g)
	}
}

// MonadMapTo replaces the Right value with a constant.
func MonadMapTo[E, A, B any](fa Either[E, A], b B) Either[E, B] {
	if fa.isLeft {
		return Left[B](fa.l)
	}
	return Of[E](b)
}

// MapTo is the curried form of [MonadMapTo].
func MapTo[E, A, B any](b B) Operator[E, A, B] {
	return F.Bind2nd(MonadMapTo[E, A], b)
}

// MonadMapLeft transforms the Left (failure) value.
func MonadMapLeft[E1, A, E2 any](fa Either[E1, A], f func(E1) E2) Either[E2, A] {
	return MonadFold(fa, F.Flow2(f, Left[A, E2]), Right[E2, A])
}

// Map is the curried form of [MonadMap].
func Map[E, A, B any](f func(a A) B) Operator[E, A, B] {
	return F.Bind2nd(MonadMap[E], f)
}

// MapLeft is the curried form of [MonadMapLeft].
func MapLeft[A, E1, E2 any](f func(E1) E2) func(fa Either[E1, A]) Either[E2, A] {
	return Fold(F.Flow2(f, Left[A, E2]), Right[E2, A])
}

// MonadChain sequences two computations, short-circuiting on the first Left.
//
//go:inline
func MonadChain[E, A, B any](fa Either[E, A], f Kleisli[E, A, B]) Either[E, B] {
	if fa.isLeft {
		return Left[B](fa.l)
	}
	return f(fa.r)
}

// MonadChainLeft recovers from a Left by applying f to the failure value.
//
//go:inline
func MonadChainLeft[EA, EB, A any](fa Either[EA, A], f Kleisli[EB, EA, A]) Either[EB, A] {
	return MonadFold(fa, f, Of[EB])
}

// ChainLeft is the curried form of [MonadChainLeft].
//
//go:inline
func ChainLeft[EA, EB, A any](f Kleisli[EB, EA, A]) Kleisli[EB, Either[EA, A], A] {
	return Fold(f, Of[EB])
}

// MonadChainFirst runs f for its effect but keeps the original value.
func MonadChainFirst[E, A, B any](ma Either[E, A], f Kleisli[E, A, B]) Either[E, A] {
	return C.MonadChainFirst(
		MonadChain[E, A, A],
		MonadMap[E, B, A],
		ma,
		f,
	)
}

// MonadChainTo ignores the first Either and returns the second.
func MonadChainTo[A, E, B any](_ Either[E, A], mb Either[E, B]) Either[E, B] {
	return mb
}

// ChainTo is the curried form of [MonadChainTo].
func ChainTo[A, E, B any](mb Either[E, B]) Operator[E, A, B] {
	return F.Constant1[Either[E, A]](mb)
}

// Chain is the curried form of [MonadChain].
func Chain[E, A, B any](f Kleisli[E, A, B]) Operator[E, A, B] {
	return F.Bind2nd(MonadChain[E], f)
}

// ChainFirst is the curried form of [MonadChainFirst].
func ChainFirst[E, A, B any](f Kleisli[E, A, B]) Operator[E, A, A] {
	return C.ChainFirst(
		Chain[E, A, A],
		Map[E, B, A],
		f,
	)
}

// Flatten removes one level of nesting from a nested Either.
func Flatten[E, A any](mma Either[E, Either[E, A]]) Either[E, A] {
	return MonadChain(mma, F.Identity[Either[E, A]])
}

// TryCatch converts a (value, error) pair into an Either, transforming the
// error via onThrow.
func TryCatch[FE func(error) E, E, A any](val A, err error, onThrow FE) Either[E, A] {
	if err != nil {
		return F.Pipe2(err, onThrow, Left[A, E])
	}
	return F.Pipe1(val, Right[E, A])
}

// TryCatchError specializes [TryCatch] to Result.
func TryCatchError[A any](val A, err error) Result[A] {
	return TryCatch(val, err, E.Identity)
}

// FromError lifts a function that may return an error into a Kleisli arrow.
func FromError[A any](f func(a A) error) func(A) Result[A] {
	return func(a A) Result[A] {
		return TryCatchError(a, f(a))
	}
}

// ToError converts a Result into a plain error, nil on success.
func ToError[A any](e Result[A]) error {
	return MonadFold(e, E.Identity, F.Constant1[A, error](nil))
}

// Fold is the curried form of [MonadFold].
//
//go:inline
func Fold[E, A, B any](onLeft func(E) B, onRight func(A) B) func(Either[E, A]) B {
	return func(ma Either[E, A]) B {
		return MonadFold(ma, onLeft, onRight)
	}
}

// UnwrapError converts a Result into the idiomatic Go (value, error) tuple shape.
//
//go:inline
func UnwrapError[A any](ma Result[A]) (A, error) {
	return Unwrap(ma)
}

// FromPredicate creates an Either based on a predicate, using onFalse to
// build the Left value when the predicate fails.
func FromPredicate[E, A any](pred Predicate[A], onFalse func(A) E) Kleisli[E, A, A] {
	return func(a A) Either[E, A] {
		if pred(a) {
			return Right[E](a)
		}
		return Left[A](onFalse(a))
	}
}

// GetOrElse extracts the Right value or computes a default from the Left value.
func GetOrElse[E, A any](onLeft func(E) A) func(Either[E, A]) A {
	return Fold(onLeft, F.Identity[A])
}

// Reduce folds an Either into a single value, returning initial unchanged for Left.
func Reduce[E, A, B any](f func(B, A) B, initial B) func(Either[E, A]) B {
	return func(fa Either[E, A]) B {
		if fa.isLeft {
			return initial
		}
		return f(initial, fa.r)
	}
}

// AltW provides an alternative Either if fa is Left, allowing the error type to widen.
func AltW[E, E1, A any](that Lazy[Either[E1, A]]) Kleisli[E1, Either[E, A], A] {
	return Fold(func(E) Either[E1, A] { return that() }, Right[E1, A])
}

// Alt provides an alternative Either if fa is Left.
func Alt[E, A any](that Lazy[Either[E, A]]) Operator[E, A, A] {
	return AltW[E](that)
}

// OrElse recovers from a Left by providing an alternative computation. Identical
// in behavior to [ChainLeft], kept as a separate name to mirror error-recovery
// call sites that read better as "or else".
//
//go:inline
func OrElse[E1, E2, A any](onLeft Kleisli[E2, E1, A]) Kleisli[E2, Either[E1, A], A] {
	return Fold(onLeft, Of[E2, A])
}

// Swap exchanges the Left and Right channels.
//
//go:inline
func Swap[E, A any](val Either[E, A]) Either[A, E] {
	return MonadFold(val, Right[A, E], Left[E, A])
}

// MonadFlap applies a value to a wrapped function, the reverse of [MonadAp].
func MonadFlap[E, B, A any](fab Either[E, func(A) B], a A) Either[E, B] {
	return FC.MonadFlap(MonadMap[E, func(A) B, B], fab, a)
}

// Flap is the curried form of [MonadFlap].
func Flap[E, B, A any](a A) Operator[E, func(A) B, B] {
	return FC.Flap(Map[E, func(A) B, B], a)
}

// MonadAlt is the monadic version of [Alt].
func MonadAlt[E, A any](fa Either[E, A], that Lazy[Either[E, A]]) Either[E, A] {
	return MonadFold(fa, func(E) Either[E, A] { return that() }, Of[E, A])
}

// Zero returns a Right holding the zero value of A.
func Zero[E, A any]() Either[E, A] {
	return Either[E, A]{isLeft: false}
}

// Memoize returns val unchanged; Either values require no memoization.
func Memoize[E, A any](val Either[E, A]) Either[E, A] {
	return val
}
