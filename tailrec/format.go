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

import (
	"fmt"
	"io"
)

// String renders the trampoline's current state for diagnostics.
func (t Trampoline[B, L]) String() string {
	if t.Landed {
		return fmt.Sprintf("Land(%v)", t.Land)
	}
	return fmt.Sprintf("Bounce(%v)", t.Bounce)
}

// GoString renders a Go-syntax representation, used by fmt's %#v verb.
func (t Trampoline[B, L]) GoString() string {
	if t.Landed {
		return fmt.Sprintf("tailrec.Land[%T](%#v)", t.Bounce, t.Land)
	}
	return fmt.Sprintf("tailrec.Bounce[%T](%#v)", t.Land, t.Bounce)
}

// Format implements fmt.Formatter, supporting %v, %+v, %s, %q and delegating
// %#v to GoString.
func (t Trampoline[B, L]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, t.GoString())
			return
		}
		if f.Flag('+') {
			if t.Landed {
				fmt.Fprintf(f, "Trampoline[Land]{Landed: true, Land: %v}", t.Land)
			} else {
				fmt.Fprintf(f, "Trampoline[Bounce]{Landed: false, Bounce: %v}", t.Bounce)
			}
			return
		}
		io.WriteString(f, t.String())
	case 's':
		io.WriteString(f, t.String())
	case 'q':
		fmt.Fprintf(f, "%q", t.String())
	default:
		fmt.Fprintf(f, "%%!%c(tailrec.Trampoline)", verb)
	}
}
