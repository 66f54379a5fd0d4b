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
	"github.com/IBM/fp-go-streams/pull/scope"
	"github.com/IBM/fp-go-streams/result"
)

// runner is the interpreter's polymorphic continuation: it decides what
// happens when the program it is driving reaches a terminal state or
// produces a chunk.
type runner[O any] struct {
	done        func(s *scope.Scope)
	out         func(chunk Chunk[O], s *scope.Scope, tail node[O])
	interrupted func(origin scope.Token, err error)
	fail        func(err error)
}

// transFn is a natural transformation of the ambient effect, composed each
// time a Translate node is interpreted.
type transFn = func(func() result.Result[any]) func() result.Result[any]

func identityTrans(f func() result.Result[any]) func() result.Result[any] { return f }

func composeTrans(outer, inner transFn) transFn {
	return func(f func() result.Result[any]) func() result.Result[any] {
		return outer(inner(f))
	}
}

func resultToTerminal(r result.Result[any]) Terminal[any] {
	return result.MonadFold(r,
		func(err error) Terminal[any] { return Failed[any](err) },
		func(a any) Terminal[any] { return Succeeded(a) },
	)
}

func outcomeToTerminal[A any](o scope.Outcome[A]) Terminal[any] {
	switch {
	case o.IsSucceeded():
		return Succeeded[any](o.Value())
	case o.IsCanceled():
		return InterruptedTerminal[any](o.Origin(), nil)
	default:
		return Failed[any](o.Err())
	}
}

// needsGuard reports whether the interrupt guard applies before running the
// action: Output, Acquire, InScope and interruption-watcher registration
// all check for interruption before proceeding; Eval, GetScope and plain
// bookkeeping do not. An Eval always runs to completion; if its scope is
// interrupted by the time it returns, goStep hands its continuation the
// Interrupted terminal in place of the Eval's own result.
func needsGuard[O any](n node[O]) bool {
	switch n.(type) {
	case outputNode[O], acquireNode[O], inScopeNode[O], interruptWhenNode[O]:
		return true
	default:
		return false
	}
}
