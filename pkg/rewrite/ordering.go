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
package rewrite

import "github.com/orbisforge/folcore/pkg/term"

// Ordering decides, for two terms, whether the first is strictly "greater"
// than the second under a term ordering ≻ suitable for orienting rewrite
// rules.  Implementations need not be total; Greater(a, b) and
// Greater(b, a) may both be false (e.g. a and b are structurally
// incomparable or equal), in which case a rule between them is rejected as
// unorientable.
type Ordering interface {
	Greater(a, b term.Term) bool
}

// SizeOrdering is folcore's default Ordering: compare node count first
// (more nodes is "greater"), and on a tie fall back to a deterministic
// structural key (variant rank, then symbol/index, then recursively on
// children) so that ground terms of equal size still orient consistently.
// No term ordering header survived the distillation this was built from;
// this is a minimal recursive path ordering sufficient to orient ground
// rewrite rules, not a claim of compatibility with any named ordering from
// the term-rewriting literature (KBO, LPO, etc).
type SizeOrdering struct{}

// Greater compares a and b by node count, then by structural key.
func (SizeOrdering) Greater(a, b term.Term) bool {
	na, nb := NodeCount(a), NodeCount(b)
	if na != nb {
		return na > nb
	}

	return compareStructural(a, b) > 0
}

// NodeCount returns the number of nodes in t's tree.
func NodeCount(t term.Term) uint {
	switch n := t.(type) {
	case *term.Var, *term.Const:
		return 1
	case *term.App:
		count := uint(1)
		for _, arg := range n.Args {
			count += NodeCount(arg)
		}

		return count
	case *term.Forall:
		return 1 + NodeCount(n.Body)
	case *term.Exists:
		return 1 + NodeCount(n.Body)
	case *term.And:
		return 1 + NodeCount(n.Left) + NodeCount(n.Right)
	case *term.Or:
		return 1 + NodeCount(n.Left) + NodeCount(n.Right)
	case *term.Not:
		return 1 + NodeCount(n.Body)
	case *term.Implies:
		return 1 + NodeCount(n.Antecedent) + NodeCount(n.Consequent)
	default:
		return 0
	}
}

// variantRank gives every Kind a fixed precedence for structural
// comparison when node counts tie.
func variantRank(t term.Term) int {
	switch t.(type) {
	case *term.Var:
		return 0
	case *term.Const:
		return 1
	case *term.App:
		return 2
	case *term.Forall:
		return 3
	case *term.Exists:
		return 4
	case *term.And:
		return 5
	case *term.Or:
		return 6
	case *term.Not:
		return 7
	case *term.Implies:
		return 8
	default:
		return -1
	}
}

// compareStructural returns -1, 0 or 1 comparing a and b deterministically:
// first by variant rank, then by variant-specific key (De Bruijn index,
// symbol name, arity), then recursively on children left-to-right.
func compareStructural(a, b term.Term) int {
	if ra, rb := variantRank(a), variantRank(b); ra != rb {
		return cmpInt(ra, rb)
	}

	switch na := a.(type) {
	case *term.Var:
		return cmpUint(na.Index, b.(*term.Var).Index)
	case *term.Const:
		return cmpString(na.Symbol, b.(*term.Const).Symbol)
	case *term.App:
		nb := b.(*term.App)
		if c := cmpString(na.Symbol, nb.Symbol); c != 0 {
			return c
		}

		if c := cmpInt(len(na.Args), len(nb.Args)); c != 0 {
			return c
		}

		for i := range na.Args {
			if c := compareStructural(na.Args[i], nb.Args[i]); c != 0 {
				return c
			}
		}

		return 0
	case *term.Forall:
		return compareStructural(na.Body, b.(*term.Forall).Body)
	case *term.Exists:
		return compareStructural(na.Body, b.(*term.Exists).Body)
	case *term.And:
		nb := b.(*term.And)
		if c := compareStructural(na.Left, nb.Left); c != 0 {
			return c
		}

		return compareStructural(na.Right, nb.Right)
	case *term.Or:
		nb := b.(*term.Or)
		if c := compareStructural(na.Left, nb.Left); c != 0 {
			return c
		}

		return compareStructural(na.Right, nb.Right)
	case *term.Not:
		return compareStructural(na.Body, b.(*term.Not).Body)
	case *term.Implies:
		nb := b.(*term.Implies)
		if c := compareStructural(na.Antecedent, nb.Antecedent); c != 0 {
			return c
		}

		return compareStructural(na.Consequent, nb.Consequent)
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint(a, b uint) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
