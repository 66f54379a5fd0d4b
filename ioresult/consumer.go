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
	"github.com/IBM/fp-go-streams/result"
)

// FromConsumer converts a Consumer into a Kleisli arrow that runs the
// consumer for its side effect and always succeeds with an empty value.
func FromConsumer[A any](c Consumer[A]) Kleisli[A, Void] {
	return func(a A) IOResult[Void] {
		return func() Result[Void] {
			c(a)
			return result.Ok(Void{})
		}
	}
}

// ChainConsumer runs a Consumer as a side effect on a successful value,
// discarding the consumed value and propagating any prior error unchanged.
func ChainConsumer[A any](c Consumer[A]) Operator[A, Void] {
	return Chain(func(a A) IOResult[Void] {
		return func() Result[Void] {
			c(a)
			return result.Ok(Void{})
		}
	})
}

// ChainFirstConsumer runs a Consumer as a side effect on a successful value
// and then returns the original value unchanged, for logging or auditing
// steps inserted into a larger chain.
func ChainFirstConsumer[A any](c Consumer[A]) Operator[A, A] {
	return ChainFirst(func(a A) IOResult[Void] {
		return func() Result[Void] {
			c(a)
			return result.Ok(Void{})
		}
	})
}
