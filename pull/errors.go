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
	"errors"

	fperrors "github.com/IBM/fp-go-streams/errors"
	"github.com/IBM/fp-go-streams/pull/scope"
)

// InternalError tags an error as an interpreter invariant violation rather
// than a user or resource error, so callers can tell the two apart with
// IsInternal instead of string-matching messages.
type InternalError struct {
	cause error
}

func (e *InternalError) Error() string { return e.cause.Error() }
func (e *InternalError) Unwrap() error { return e.cause }

func internal(cause error) error { return &InternalError{cause: cause} }

// isInternalError extracts an *InternalError from err, if any is present in
// its chain.
var isInternalError = fperrors.As[*InternalError]()

// IsInternal reports whether err (or an error it wraps) signals an
// interpreter invariant violation: an unhandled node kind, a close of the
// root scope, or a reference to a scope outside the interpreted lineage.
func IsInternal(err error) bool {
	_, ok := isInternalError(err)
	return ok
}

// errUnhandledNode is an internal invariant violation: the View produced a
// head action of a kind the interpreter does not know how to dispatch.
var errUnhandledNode = internal(errors.New("pull: internal error, unhandled node kind"))

// errCloseRoot and errUnknownScope mirror the scope package's own sentinels,
// tagged as internal so IsInternal recognizes them when they surface as a
// Pull's Fail terminal.
var (
	errCloseRoot    = internal(scope.ErrCloseRoot)
	errUnknownScope = internal(scope.ErrUnknownScope)
)
