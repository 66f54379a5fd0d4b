package io

import (
	"iter"

	"github.com/IBM/fp-go-streams/consumer"
	"github.com/IBM/fp-go-streams/function"
	"github.com/IBM/fp-go-streams/tailrec"
)

type (
	// IO represents a synchronous computation that cannot fail.
	// It's a function that takes no arguments and returns a value of type A.
	// Refer to [https://andywhite.xyz/posts/2021-01-27-rte-foundations/#ioltagt] for more details.
	IO[A any] = func() A

	// Kleisli represents a Kleisli arrow for the IO monad.
	// It's a function from A to IO[B], used for composing IO operations.
	Kleisli[A, B any] = func(A) IO[B]

	// Operator represents a function that transforms one IO into another.
	// It takes an IO[A] and produces an IO[B].
	Operator[A, B any] = Kleisli[IO[A], B]

	// Consumer represents a function that consumes a value of type A.
	Consumer[A any] = consumer.Consumer[A]

	// Seq represents an iterator sequence over values of type T.
	Seq[T any] = iter.Seq[T]

	// Trampoline represents a tail-recursive computation that can be evaluated safely
	// without stack overflow. It's used for implementing stack-safe recursive algorithms.
	Trampoline[B, L any] = tailrec.Trampoline[B, L]

	Void = function.Void
)
