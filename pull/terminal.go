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
)

// Terminal is the outcome fed to a Bind continuation: a pull always
// resolves, eventually, to one of three terminal shapes.
type Terminal[C any] struct {
	kind        terminalKind
	value       C
	err         error
	origin      scope.Token
	originErr   error
	hasOrigErr  bool
}

type terminalKind int

const (
	terminalSucceeded terminalKind = iota
	terminalFail
	terminalInterrupted
)

// Succeeded builds a successful terminal carrying c.
func Succeeded[C any](c C) Terminal[C] {
	return Terminal[C]{kind: terminalSucceeded, value: c}
}

// Failed builds a failed terminal.
func Failed[C any](err error) Terminal[C] {
	return Terminal[C]{kind: terminalFail, err: err}
}

// InterruptedTerminal builds an interrupted terminal rooted at the scope
// identified by origin, optionally carrying a deferred error.
func InterruptedTerminal[C any](origin scope.Token, err error) Terminal[C] {
	t := Terminal[C]{kind: terminalInterrupted, origin: origin}
	if err != nil {
		t.originErr, t.hasOrigErr = err, true
	}
	return t
}

func (t Terminal[C]) IsSucceeded() bool  { return t.kind == terminalSucceeded }
func (t Terminal[C]) IsFail() bool       { return t.kind == terminalFail }
func (t Terminal[C]) IsInterrupted() bool { return t.kind == terminalInterrupted }

func (t Terminal[C]) Value() C { return t.value }
func (t Terminal[C]) Err() error { return t.err }
func (t Terminal[C]) Origin() scope.Token { return t.origin }
func (t Terminal[C]) OriginErr() (error, bool) { return t.originErr, t.hasOrigErr }

// MapTerminal transforms the carried value of a successful terminal,
// leaving Fail and Interrupted untouched.
func MapTerminal[C, D any](t Terminal[C], f func(C) D) Terminal[D] {
	switch t.kind {
	case terminalSucceeded:
		return Succeeded(f(t.value))
	case terminalFail:
		return Failed[D](t.err)
	default:
		return Terminal[D]{kind: terminalInterrupted, origin: t.origin, originErr: t.originErr, hasOrigErr: t.hasOrigErr}
	}
}
