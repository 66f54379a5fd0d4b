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

// Package pull implements the free algebra of an effectful pull-based
// streaming engine: a tree of result terminals, actions and binds, together
// with the trampolined interpreter that drives that tree to produce a
// stream of output chunks.
//
// The carried "result" type of an arbitrary sub-pull is existential from
// the point of view of a Bind node (the step's carry and the outer pull's
// carry are different types related only by the continuation function), so
// internally every node stores its carry erased to any by plain interface
// conversion; the public Pull[O, C] type is a thin, precisely typed wrapper
// around that erased representation.
package pull

import (
	"github.com/IBM/fp-go-streams/array/nonempty"
	"github.com/IBM/fp-go-streams/ioresult"
	"github.com/IBM/fp-go-streams/pull/scope"
	"github.com/IBM/fp-go-streams/result"
)

// Chunk is a non-empty batch of output elements, the unit in which a Pull
// emits values.
type Chunk[O any] = nonempty.NonEmptyArray[O]

// Pull is a streaming program over output type O producing a final carry of
// type C once fully consumed.
type Pull[O, C any] struct {
	n node[O]
}

func wrap[O, C any](n node[O]) Pull[O, C] { return Pull[O, C]{n: n} }

// node is the erased-carry internal representation shared by every Pull
// instantiation with the same output type O.
type node[O any] interface {
	kind() nodeKind
}

type nodeKind int

const (
	kResult nodeKind = iota
	kOutput
	kEval
	kAcquire
	kGetScope
	kTranslate
	kMapOutput
	kFlatMapOutput
	kUncons
	kStepLeg
	kInScope
	kCloseScope
	kInterruptWhen
	kBind
)

// resultNode is a terminal: Succeeded, Fail, or Interrupted, erased.
type resultNode[O any] struct {
	t Terminal[any]
}

func (resultNode[O]) kind() nodeKind { return kResult }

// outputNode emits chunk and carries Void.
type outputNode[O any] struct {
	chunk Chunk[O]
}

func (outputNode[O]) kind() nodeKind { return kOutput }

// evalNode runs an effectful action in the (translated) ambient effect and
// carries its result, erased.
type evalNode[O any] struct {
	run func() ioresult.Result[any]
}

func (evalNode[O]) kind() nodeKind { return kEval }

// acquireNode registers a finalizer on the current scope after a
// successful acquire and carries the acquired resource, erased.
type acquireNode[O any] struct {
	acquire    func() ioresult.Result[any]
	release    func(any, scope.ExitCase) error
	cancelable bool
}

func (acquireNode[O]) kind() nodeKind { return kAcquire }

// getScopeNode carries the current scope.
type getScopeNode[O any] struct{}

func (getScopeNode[O]) kind() nodeKind { return kGetScope }

// translateNode reinterprets inner, whose actions run against a translated
// effect fk ∘ (the ambient translation already in force).
type translateNode[O any] struct {
	inner node[O]
	fk    func(func() ioresult.Result[any]) func() ioresult.Result[any]
}

func (translateNode[O]) kind() nodeKind { return kTranslate }

// mapOutputNode elementwise-transforms inner's emissions via f : any -> O.
type mapOutputNode[O any] struct {
	inner node[any]
	f     func(any) O
}

func (mapOutputNode[O]) kind() nodeKind { return kMapOutput }

// flatMapOutputNode expands each emitted element of inner into a
// sub-pull via f, concatenating their outputs.
type flatMapOutputNode[O any] struct {
	inner node[any]
	f     func(any) Pull[O, struct{}]
}

func (flatMapOutputNode[O]) kind() nodeKind { return kFlatMapOutput }

// unconsNode steps inner once, carrying (chunk, tail) or none, erased.
type unconsNode[O any] struct {
	inner node[O]
}

func (unconsNode[O]) kind() nodeKind { return kUncons }

// stepLegNode behaves like unconsNode but first shifts the interpreter's
// current scope to the one identified by token.
type stepLegNode[O any] struct {
	inner node[O]
	token scope.Token
}

func (stepLegNode[O]) kind() nodeKind { return kStepLeg }

// inScopeNode opens a fresh child scope around inner.
type inScopeNode[O any] struct {
	inner          node[O]
	useInterrupt   bool
	label          string
}

func (inScopeNode[O]) kind() nodeKind { return kInScope }

// closeScopeNode closes a specific scope with a cause. extendScopeTo does
// not route through this node; it keeps a scope alive past its producing
// stream via scope.Lease instead (see api.go).
type closeScopeNode[O any] struct {
	token       scope.Token
	interrupted bool
	interrupt   Terminal[any]
	exit        scope.ExitCase
}

func (closeScopeNode[O]) kind() nodeKind { return kCloseScope }

// interruptWhenNode registers an interrupt source on the current scope: a
// blocking action that resolves once, with nil meaning "interrupt, no
// error" and non-nil meaning "interrupt, carrying this error".
type interruptWhenNode[O any] struct {
	signal func() error
}

func (interruptWhenNode[O]) kind() nodeKind { return kInterruptWhen }

// bindNode sequences step with a continuation over step's (erased) terminal.
type bindNode[O any] struct {
	step node[O]
	cont func(Terminal[any]) node[O]
}

func (bindNode[O]) kind() nodeKind { return kBind }

// erase lifts an IOResult[A] into the erased run shape used by evalNode.
func erase[A any](fa ioresult.IOResult[A]) func() ioresult.Result[any] {
	return func() ioresult.Result[any] {
		ra := fa()
		return result.MonadMap(ra, func(a A) any { return a })
	}
}
