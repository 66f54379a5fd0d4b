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

// Package scope implements the mutable tree of resource scopes that backs
// the pull interpreter: opening and closing scopes, registering and running
// finalizers in LIFO order, leasing a scope to defer its finalization, and
// signalling cooperative interruption down a lineage.
package scope

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"

	"github.com/IBM/fp-go-streams/logging"
)

// Token identifies a Scope for the lifetime of the process. Tokens are
// compared by identity, never by structure.
type Token uint64

var tokenCounter atomic.Uint64

func newToken() Token {
	return Token(tokenCounter.Add(1))
}

// ExitCase is the cause passed to finalizers when a scope closes.
type ExitCase struct {
	kind exitKind
	err  error
}

type exitKind int

const (
	exitSucceeded exitKind = iota
	exitErrored
	exitCanceled
)

func Succeeded() ExitCase { return ExitCase{kind: exitSucceeded} }
func Errored(err error) ExitCase {
	return ExitCase{kind: exitErrored, err: err}
}
func Canceled() ExitCase { return ExitCase{kind: exitCanceled} }

func (e ExitCase) IsSucceeded() bool { return e.kind == exitSucceeded }
func (e ExitCase) IsErrored() bool   { return e.kind == exitErrored }
func (e ExitCase) IsCanceled() bool  { return e.kind == exitCanceled }
func (e ExitCase) Err() error        { return e.err }

func (e ExitCase) String() string {
	switch e.kind {
	case exitSucceeded:
		return "Succeeded"
	case exitErrored:
		return "Errored(" + e.err.Error() + ")"
	default:
		return "Canceled"
	}
}

// Finalizer is a cleanup action registered against a scope, invoked with the
// scope's ExitCase exactly once, at close.
type Finalizer func(ExitCase) error

// Outcome is the three-way result of an interruptible action: it either
// succeeded with a value, was cancelled as part of an interruption, or
// failed with an error.
type Outcome[A any] struct {
	kind      outcomeKind
	value     A
	err       error
	interrupt Token
}

type outcomeKind int

const (
	outcomeSucceeded outcomeKind = iota
	outcomeErrored
	outcomeCanceled
)

func OutcomeSucceeded[A any](a A) Outcome[A] {
	return Outcome[A]{kind: outcomeSucceeded, value: a}
}
func OutcomeErrored[A any](err error) Outcome[A] {
	return Outcome[A]{kind: outcomeErrored, err: err}
}
func OutcomeCanceled[A any](origin Token) Outcome[A] {
	return Outcome[A]{kind: outcomeCanceled, interrupt: origin}
}

func (o Outcome[A]) IsSucceeded() bool  { return o.kind == outcomeSucceeded }
func (o Outcome[A]) IsErrored() bool    { return o.kind == outcomeErrored }
func (o Outcome[A]) IsCanceled() bool   { return o.kind == outcomeCanceled }
func (o Outcome[A]) Value() A           { return o.value }
func (o Outcome[A]) Err() error         { return o.err }
func (o Outcome[A]) Origin() Token      { return o.interrupt }

// interruptState records why a scope was marked interrupted: the token of
// the scope where the interruption originated, and an optional error that
// accompanied it (e.g. an InterruptWhen signal that resolved to Left(err)).
type interruptState struct {
	origin Token
	err    error
}

// Lease defers finalization of a scope (and transitively its ancestors)
// until cancelled. Obtained via Scope.Lease.
type Lease struct {
	scope *Scope
}

// Cancel releases the lease. Safe to call more than once.
func (l Lease) Cancel() error {
	l.scope.releaseLease()
	return nil
}

// Scope is a node in the dynamically nested resource tree. Every non-root
// scope has exactly one parent at any time; the root has none.
type Scope struct {
	mu         sync.Mutex
	token      Token
	parent     *Scope
	isRoot     bool
	children   []*Scope
	finalizers []Finalizer
	closed     bool
	interrupt  *interruptState
	leases     int64
	leaseCond  *sync.Cond
	label      string
	logger     *slog.Logger
}

// NewRoot creates a fresh root scope with no parent.
func NewRoot(label string) *Scope {
	s := &Scope{token: newToken(), isRoot: true, label: label}
	s.leaseCond = sync.NewCond(&s.mu)
	return s
}

// SetLogger attaches l to s; every descendant scope logs transitions
// through the nearest logger set on its lineage, falling back to the
// package-global logger if none was ever set.
func (s *Scope) SetLogger(l *slog.Logger) {
	s.mu.Lock()
	s.logger = l
	s.mu.Unlock()
}

// effectiveLogger returns the nearest logger set on s or an ancestor,
// falling back to the package-global logger if none was ever set.
func (s *Scope) effectiveLogger() *slog.Logger {
	for cur := s; cur != nil; cur = cur.parentSnapshot() {
		cur.mu.Lock()
		l := cur.logger
		cur.mu.Unlock()
		if l != nil {
			return l
		}
	}
	return logging.GetLogger()
}

// Token returns the scope's identity.
func (s *Scope) Token() Token { return s.token }

// Label returns the human-readable name given at Open, for debugging.
func (s *Scope) Label() string { return s.label }

// Parent returns the scope's parent, or nil for the root.
func (s *Scope) Parent() *Scope { return s.parent }

// IsRoot reports whether this scope has no parent.
func (s *Scope) IsRoot() bool { return s.isRoot }

// Open creates a new child scope under s, labelled label.
// Open fails if s is already closed.
func (s *Scope) Open(label string) (*Scope, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrScopeClosed
	}
	child := &Scope{token: newToken(), parent: s, label: label}
	child.leaseCond = sync.NewCond(&child.mu)
	s.children = append(s.children, child)
	s.mu.Unlock()

	s.effectiveLogger().Debug("scope opened", "token", child.token, "label", label, "parent", s.token)
	return child, nil
}

// Children returns a snapshot of the scope's currently open children.
func (s *Scope) Children() []*Scope {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Scope, len(s.children))
	copy(out, s.children)
	return out
}

// Closed reports whether Close has already run on this scope.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Register adds a finalizer to the scope, to be run in LIFO order at close.
// Returns ErrScopeClosed if the scope has already been closed.
func (s *Scope) Register(f Finalizer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrScopeClosed
	}
	s.finalizers = append(s.finalizers, f)
	return nil
}

// Lease increments the scope's lease counter. While any lease is
// outstanding, Close defers running this scope's own finalizers (children
// still close promptly) until all leases are cancelled; there is no
// deadline on that wait.
func (s *Scope) Lease() Lease {
	s.mu.Lock()
	s.leases++
	s.mu.Unlock()
	return Lease{scope: s}
}

func (s *Scope) releaseLease() {
	s.mu.Lock()
	if s.leases > 0 {
		s.leases--
	}
	if s.leases == 0 {
		s.leaseCond.Broadcast()
	}
	s.mu.Unlock()
}

// Close closes the scope and all transitively open descendants, running
// their finalizers in LIFO order of acquisition; a parent's finalizers run
// only after every child has finished closing. Finalizer failures are
// aggregated into a composite error via go-multierror.
func (s *Scope) Close(ec ExitCase) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	children := make([]*Scope, len(s.children))
	copy(children, s.children)
	s.mu.Unlock()

	var composite *multierror.Error
	for i := len(children) - 1; i >= 0; i-- {
		if err := children[i].Close(ec); err != nil {
			composite = multierror.Append(composite, err)
		}
	}

	s.awaitLeases()

	s.mu.Lock()
	finalizers := s.finalizers
	s.finalizers = nil
	s.closed = true
	parent := s.parent
	s.mu.Unlock()

	for i := len(finalizers) - 1; i >= 0; i-- {
		if err := finalizers[i](ec); err != nil {
			composite = multierror.Append(composite, err)
		}
	}

	if parent != nil {
		parent.removeChild(s)
	}

	if composite != nil {
		composite.ErrorFormat = singleLineErrorFormat
		err := composite.ErrorOrNil()
		s.effectiveLogger().Error("composite close failure", "token", s.token, "label", s.label, "exit", ec.String(), "error", err)
		return err
	}
	s.effectiveLogger().Debug("scope closed", "token", s.token, "label", s.label, "exit", ec.String())
	return nil
}

func singleLineErrorFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msg := "composite close failure ("
	for i, e := range errs {
		if i > 0 {
			msg += "; "
		}
		msg += e.Error()
	}
	return msg + ")"
}

// leaseDeadline is not read anywhere: awaitLeases waits for outstanding
// leases with no deadline.
const leaseDeadline = 0

func (s *Scope) awaitLeases() {
	s.mu.Lock()
	for s.leases > 0 {
		s.leaseCond.Wait()
	}
	s.mu.Unlock()
}

func (s *Scope) removeChild(child *Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.children {
		if c == child {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

// MarkInterrupted records that this scope (and its descendants) should
// observe interruption originating here, optionally carrying an error from
// an InterruptWhen signal that resolved to Left(err).
func (s *Scope) MarkInterrupted(err error) {
	s.mu.Lock()
	newlyMarked := s.interrupt == nil
	if newlyMarked {
		s.interrupt = &interruptState{origin: s.token, err: err}
	}
	s.mu.Unlock()

	if newlyMarked {
		s.effectiveLogger().Debug("scope interrupted", "token", s.token, "label", s.label, "error", err)
	}
}

// IsInterrupted returns the interruption state of s or any ancestor,
// nearest first, or ok=false if none is interrupted.
func (s *Scope) IsInterrupted() (origin Token, err error, ok bool) {
	for cur := s; cur != nil; cur = cur.parentSnapshot() {
		cur.mu.Lock()
		st := cur.interrupt
		cur.mu.Unlock()
		if st != nil {
			return st.origin, st.err, true
		}
	}
	return 0, nil, false
}

func (s *Scope) parentSnapshot() *Scope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parent
}

// FindInLineage walks ancestors and self for the scope with the given
// token.
func (s *Scope) FindInLineage(token Token) (*Scope, bool) {
	for cur := s; cur != nil; cur = cur.parentSnapshot() {
		if cur.token == token {
			return cur, true
		}
	}
	return nil, false
}

// DescendsFrom reports whether token names s or a strict ancestor of s.
func (s *Scope) DescendsFrom(token Token) bool {
	_, ok := s.FindInLineage(token)
	return ok
}

// OpenAncestor returns the nearest still-open ancestor of s (or s itself if
// it is open), used as the scope to resume in after a close.
func (s *Scope) OpenAncestor() *Scope {
	for cur := s; cur != nil; cur = cur.parentSnapshot() {
		if !cur.Closed() {
			return cur
		}
	}
	return s
}
