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

package tailrec

import "log/slog"

// LogValue implements slog.LogValuer so a Trampoline logs only the field
// relevant to its current state, instead of both zero-valued branches.
func (t Trampoline[B, L]) LogValue() slog.Value {
	if t.Landed {
		return slog.GroupValue(slog.Any("landed", t.Land))
	}
	return slog.GroupValue(slog.Any("bouncing", t.Bounce))
}
