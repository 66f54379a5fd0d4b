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

package scope

import "errors"

// ErrScopeClosed is returned by Open and Register when invoked on a scope
// that has already run its finalizers.
var ErrScopeClosed = errors.New("scope: already closed")

// ErrCloseRoot is the internal invariant violation raised when a CloseScope
// node targets the root scope directly; the root is only ever closed by the
// outer compile driver.
var ErrCloseRoot = errors.New("scope: cannot close the root scope via CloseScope")

// ErrUnknownScope is raised when a token does not resolve to any scope in
// the current lineage and the caller requires it to exist.
var ErrUnknownScope = errors.New("scope: token not found in lineage")
