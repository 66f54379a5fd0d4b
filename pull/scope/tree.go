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

import (
	"fmt"

	"github.com/m1gwings/treedrawer/tree"
)

// Tree renders the scope rooted at root as a box-drawing diagram, useful
// for --debug-scopes style diagnostics. Each node shows its label, token,
// and open/closed state.
func Tree(root *Scope) string {
	return renderNode(root).String()
}

func renderNode(s *Scope) *tree.Tree {
	t := tree.NewTree(tree.NodeString(describe(s)))
	for _, child := range s.Children() {
		attachChild(t, child)
	}
	return t
}

func attachChild(parent *tree.Tree, s *Scope) {
	child := parent.AddChild(tree.NodeString(describe(s)))
	for _, grandchild := range s.Children() {
		attachChild(child, grandchild)
	}
}

func describe(s *Scope) string {
	state := "open"
	if s.Closed() {
		state = "closed"
	}
	if origin, err, ok := s.IsInterrupted(); ok && origin == s.token {
		if err != nil {
			state = fmt.Sprintf("interrupted: %v", err)
		} else {
			state = "interrupted"
		}
	}
	label := s.Label()
	if label == "" {
		label = "scope"
	}
	return fmt.Sprintf("%s#%d (%s)", label, s.token, state)
}
