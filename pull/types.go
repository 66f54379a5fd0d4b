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

type (
	// Scope is a node in the resource tree a pull is interpreted against.
	Scope = scope.Scope

	// ExitCase is the cause passed to a release finalizer at scope close.
	ExitCase = scope.ExitCase

	// Token identifies a Scope for the process lifetime.
	Token = scope.Token
)
