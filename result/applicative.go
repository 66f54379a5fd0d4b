// Copyright (c) 2024 - 2025 IBM Corp.
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
	"github.com/IBM/fp-go-streams/internal/applicative"
)

// eitherApplicative is the internal implementation of the Applicative type class
// for Either: Of (lift), Map (transform), and Ap (apply).
type eitherApplicative[E, A, B any] struct {
	fof  func(a A) Either[E, A]
	fmap func(func(A) B) Operator[E, A, B]
	fap  func(Either[E, A]) Operator[E, func(A) B, B]
}

func (o *eitherApplicative[E, A, B]) Of(a A) Either[E, A] {
	return o.fof(a)
}

func (o *eitherApplicative[E, A, B]) Map(f func(A) B) Operator[E, A, B] {
	return o.fmap(f)
}

func (o *eitherApplicative[E, A, B]) Ap(fa Either[E, A]) Operator[E, func(A) B, B] {
	return o.fap(fa)
}

// Applicative creates an Applicative instance for Either with fail-fast error
// handling: Ap returns the first Left it encounters, whether from the wrapped
// function or the wrapped value.
func Applicative[E, A, B any]() applicative.Applicative[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]] {
	return &eitherApplicative[E, A, B]{
		Of[E, A],
		Map[E, A, B],
		Ap[B, E, A],
	}
}
