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
package clause

import (
	"github.com/orbisforge/folcore/pkg/subst"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/unify"
)

// Resolve looks for the first pair (i, j) of opposite-polarity literals in
// clause1 and clause2 (in ascending index order) whose atoms unify, and
// returns the resolvent.  Fails if no such pair exists.
func Resolve(clause1, clause2 *Clause) (*Clause, string, bool) {
	for i := range clause1.Literals {
		for j := range clause2.Literals {
			if resolvent, ok := ResolveOnLiterals(clause1, clause2, i, j); ok {
				return resolvent, "", true
			}
		}
	}

	return nil, "no resolvable literal pairs found", false
}

// ResolveOnLiterals resolves specifically on clause1's i-th literal and
// clause2's j-th literal.
func ResolveOnLiterals(clause1, clause2 *Clause, i, j int) (*Clause, bool) {
	lit1, lit2 := clause1.Literals[i], clause2.Literals[j]

	if lit1.Positive == lit2.Positive {
		return nil, false
	}

	r := unify.Unify(lit1.Atom, lit2.Atom, 0)
	if !r.Success {
		return nil, false
	}

	var resolvent []Literal

	for k, lit := range clause1.Literals {
		if k == i {
			continue
		}

		resolvent = append(resolvent, Literal{Atom: subst.Substitute(lit.Atom, r.Substitution, 0), Positive: lit.Positive})
	}

	for k, lit := range clause2.Literals {
		if k == j {
			continue
		}

		resolvent = append(resolvent, Literal{Atom: subst.Substitute(lit.Atom, r.Substitution, 0), Positive: lit.Positive})
	}

	return New(resolvent).Simplify(), true
}

// Factor collapses same-polarity literals that unify with one another,
// using a single left-to-right pass: for each literal, try to unify with an
// already-kept literal of the same polarity; on the first success, replace
// the kept literal with the unified form and move on, otherwise keep the
// literal as a new entry.
func Factor(c *Clause) *Clause {
	var kept []Literal

	for _, lit := range c.Literals {
		merged := false

		for j, k := range kept {
			if k.Positive != lit.Positive {
				continue
			}

			r := unify.Unify(k.Atom, lit.Atom, 0)
			if !r.Success {
				continue
			}

			newAtom := subst.Substitute(k.Atom, r.Substitution, 0)
			kept[j] = Literal{Atom: newAtom, Positive: lit.Positive}
			merged = true

			break
		}

		if !merged {
			kept = append(kept, lit)
		}
	}

	return New(kept)
}

// FindMaxVariableIndex computes the true maximum free-variable index across
// every literal's atom in both clause1 and clause2, returning 0 if neither
// clause has any free variable.  The original this was ported from
// returned a hardcoded placeholder of 100 here ("simplified for now"); this
// is the real computation the source's own comments said production code
// must have.
func FindMaxVariableIndex(clause1, clause2 *Clause) uint {
	vars := make(term.VarSet)

	for _, lit := range clause1.Literals {
		vars.Union(term.FindAllVariables(lit.Atom, 0))
	}

	for _, lit := range clause2.Literals {
		vars.Union(term.FindAllVariables(lit.Atom, 0))
	}

	var max uint

	for idx := range vars {
		if idx > max {
			max = idx
		}
	}

	return max
}
