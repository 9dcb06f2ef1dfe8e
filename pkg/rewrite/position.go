// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package rewrite implements position-addressed term rewriting over an
// oriented rule set: outermost-leftmost rewrite_step, rewrite_at,
// normalize/joinable, and redex enumeration.
package rewrite

import (
	"fmt"
	"strings"

	"github.com/orbisforge/folcore/pkg/term"
)

// Position addresses a subterm by a path of child indices from the root.
// The empty path is the root itself.  Child numbering per variant:
//   - App: child i is argument i.
//   - And/Or/Implies: 0 is left/antecedent, 1 is right/consequent.
//   - Not/Forall/Exists: 0 is the body.
//   - Var/Const: no children.
type Position []uint

// Root is the empty position, addressing the whole term.
func Root() Position { return nil }

// IsRoot reports whether p addresses the root.
func (p Position) IsRoot() bool { return len(p) == 0 }

// Descend returns a new position with child index i appended.
func (p Position) Descend(i uint) Position {
	next := make(Position, len(p)+1)
	copy(next, p)
	next[len(p)] = i

	return next
}

// IsPrefixOf reports whether p is a prefix of other.
func (p Position) IsPrefixOf(other Position) bool {
	if len(p) > len(other) {
		return false
	}

	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}

	return true
}

// String renders e.g. "[0.1]", or "[]" for the root.
func (p Position) String() string {
	if p.IsRoot() {
		return "[]"
	}

	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = fmt.Sprintf("%d", idx)
	}

	return "[" + strings.Join(parts, ".") + "]"
}

// SubtermAt returns the subterm of t addressed by p, and whether p
// addressed a valid subterm.
func SubtermAt(t term.Term, p Position) (term.Term, bool) {
	if p.IsRoot() {
		return t, true
	}

	child, ok := childAt(t, p[0])
	if !ok {
		return nil, false
	}

	return SubtermAt(child, p[1:])
}

// ReplaceAt returns a new term identical to t except that the subterm at p
// is replaced by r.  Returns false if p does not address a valid subterm.
func ReplaceAt(t term.Term, p Position, r term.Term) (term.Term, bool) {
	if p.IsRoot() {
		return r, true
	}

	child, ok := childAt(t, p[0])
	if !ok {
		return nil, false
	}

	newChild, ok := ReplaceAt(child, p[1:], r)
	if !ok {
		return nil, false
	}

	return withChildAt(t, p[0], newChild)
}

// AllPositions enumerates every position in t, root included, in a
// pre-order, leftmost-first walk.
func AllPositions(t term.Term) []Position {
	var positions []Position

	allPositions(t, Root(), &positions)

	return positions
}

func allPositions(t term.Term, here Position, out *[]Position) {
	*out = append(*out, here)

	n := childCount(t)
	for i := uint(0); i < n; i++ {
		if child, ok := childAt(t, i); ok {
			allPositions(child, here.Descend(i), out)
		}
	}
}

// childCount returns how many positional children t has.
func childCount(t term.Term) uint {
	switch n := t.(type) {
	case *term.App:
		return uint(len(n.Args))
	case *term.And, *term.Or, *term.Implies:
		return 2
	case *term.Not, *term.Forall, *term.Exists:
		return 1
	default:
		return 0
	}
}

func childAt(t term.Term, i uint) (term.Term, bool) {
	switch n := t.(type) {
	case *term.App:
		if i >= uint(len(n.Args)) {
			return nil, false
		}

		return n.Args[i], true
	case *term.And:
		switch i {
		case 0:
			return n.Left, true
		case 1:
			return n.Right, true
		}
	case *term.Or:
		switch i {
		case 0:
			return n.Left, true
		case 1:
			return n.Right, true
		}
	case *term.Implies:
		switch i {
		case 0:
			return n.Antecedent, true
		case 1:
			return n.Consequent, true
		}
	case *term.Not:
		if i == 0 {
			return n.Body, true
		}
	case *term.Forall:
		if i == 0 {
			return n.Body, true
		}
	case *term.Exists:
		if i == 0 {
			return n.Body, true
		}
	}

	return nil, false
}

func withChildAt(t term.Term, i uint, newChild term.Term) (term.Term, bool) {
	switch n := t.(type) {
	case *term.App:
		if i >= uint(len(n.Args)) {
			return nil, false
		}

		args := make([]term.Term, len(n.Args))
		copy(args, n.Args)
		args[i] = newChild

		return term.NewApp(n.Symbol, args, n.Type), true
	case *term.And:
		switch i {
		case 0:
			return term.NewAnd(newChild, n.Right), true
		case 1:
			return term.NewAnd(n.Left, newChild), true
		}
	case *term.Or:
		switch i {
		case 0:
			return term.NewOr(newChild, n.Right), true
		case 1:
			return term.NewOr(n.Left, newChild), true
		}
	case *term.Implies:
		switch i {
		case 0:
			return term.NewImplies(newChild, n.Consequent), true
		case 1:
			return term.NewImplies(n.Antecedent, newChild), true
		}
	case *term.Not:
		if i == 0 {
			return term.NewNot(newChild), true
		}
	case *term.Forall:
		if i == 0 {
			return term.NewForall(n.Hint, newChild), true
		}
	case *term.Exists:
		if i == 0 {
			return term.NewExists(n.Hint, newChild), true
		}
	}

	return nil, false
}
