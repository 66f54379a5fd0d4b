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

// Package pullx collects a handful of user-visible stream combinators built
// on top of pull's algebra: just enough to exercise compile from tests and
// the demo CLI without growing a full stream-combinator surface.
package pullx

import (
	"github.com/IBM/fp-go-streams/function"
	"github.com/IBM/fp-go-streams/ioresult"
	"github.com/IBM/fp-go-streams/pull"
	"github.com/IBM/fp-go-streams/result"
)

// Take limits p to at most n emitted elements, across any number of chunks,
// closing off the remainder of p once n have been seen.
func Take[O any](p pull.Pull[O, function.Void], n int) pull.Pull[O, function.Void] {
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
				return pull.Then(pull.Output(chunk), Take(step.Tail, n-len(chunk)))
			},
		)
	})
}

// Repeat concatenates infinitely many copies of p, one after another. It is
// almost always composed with Take to bound the result.
func Repeat[O any](p pull.Pull[O, function.Void]) pull.Pull[O, function.Void] {
	return pull.Suspend(func() pull.Pull[O, function.Void] {
		return pull.Then(p, Repeat(p))
	})
}

// ToSlice drives p to completion in a fresh root scope, collecting every
// emitted element into a single slice.
func ToSlice[O any](p pull.Pull[O, function.Void]) ioresult.IOResult[[]O] {
	stream, scope := pull.Stream(p)
	return pull.Compile(stream, scope, []O(nil), func(acc []O, chunk pull.Chunk[O]) ([]O, error) {
		return append(acc, []O(chunk)...), nil
	})
}
