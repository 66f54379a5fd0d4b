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
	"github.com/IBM/fp-go-streams/internal/monad"
)

type eitherMonad[E, A, B any] struct {
	eitherApplicative[E, A, B]
	fchain func(Kleisli[E, A, B]) Operator[E, A, B]
}

// Chain sequences dependent computations, failing fast on the first Left.
func (o *eitherMonad[E, A, B]) Chain(f Kleisli[E, A, B]) Operator[E, A, B] {
	return o.fchain(f)
}

// Monad creates a lawful Monad instance for Either with fail-fast error handling:
// once a Left is encountered, no further computations run and the Left propagates.
func Monad[E, A, B any]() monad.Monad[A, B, Either[E, A], Either[E, B], Either[E, func(A) B]] {
	return &eitherMonad[E, A, B]{
		eitherApplicative[E, A, B]{
			Of[E, A],
			Map[E, A, B],
			Ap[B, E, A],
		},
		Chain[E, A, B],
	}
}
