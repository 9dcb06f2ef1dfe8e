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

// Package inference implements binary resolution and paramodulation over
// pkg/clause, combining them into resolve_with_paramodulation.  Resolution
// itself (Resolve, Factor) lives in pkg/clause since clauses need no
// equality-reasoning machinery to define it; this package adds the
// equality-aware half of the proof rule.
package inference

import (
	"github.com/orbisforge/folcore/pkg/clause"
	"github.com/orbisforge/folcore/pkg/rewrite"
	"github.com/orbisforge/folcore/pkg/subst"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/unify"
)

// ParamodPosition names a rewritable subterm occurrence: literal index,
// position within that literal's atom, and the subterm itself.
type ParamodPosition struct {
	LiteralIndex int
	Position     rewrite.Position
	Subterm      term.Term
}

// FindParamodPositions enumerates every (literal index, position, subterm)
// triple for every subterm of every literal in c, root included.
func FindParamodPositions(c *clause.Clause) []ParamodPosition {
	var result []ParamodPosition

	for i, lit := range c.Literals {
		for _, pos := range rewrite.AllPositions(lit.Atom) {
			sub, ok := rewrite.SubtermAt(lit.Atom, pos)
			if !ok {
				continue
			}

			result = append(result, ParamodPosition{LiteralIndex: i, Position: pos, Subterm: sub})
		}
	}

	return result
}

// Paramodulate rewrites the subterm of targetClause's tgtIdx-th literal at
// position, using equalityClause's eqIdx-th literal (which must be an
// equality atom l = r) as the rewrite rule.  Either direction of the
// equality may be used to match the subterm; whichever side matches
// becomes the thing rewritten away, and the other side is substituted in.
func Paramodulate(
	equalityClause, targetClause *clause.Clause,
	eqIdx, tgtIdx int,
	position rewrite.Position,
) (*clause.Clause, bool) {
	if eqIdx < 0 || eqIdx >= len(equalityClause.Literals) {
		return nil, false
	}

	if tgtIdx < 0 || tgtIdx >= len(targetClause.Literals) {
		return nil, false
	}

	eqLit := equalityClause.Literals[eqIdx]
	if !term.IsEquality(eqLit.Atom) {
		return nil, false
	}

	tgtLit := targetClause.Literals[tgtIdx]

	sub, ok := rewrite.SubtermAt(tgtLit.Atom, position)
	if !ok {
		return nil, false
	}

	left, right := term.GetEqualitySides(eqLit.Atom)

	r := unify.Unify(left, sub, 0)
	if !r.Success {
		r = unify.Unify(right, sub, 0)
		if !r.Success {
			return nil, false
		}

		left, right = right, left
	}

	replacement := subst.Substitute(right, r.Substitution, 0)

	newAtom, ok := rewrite.ReplaceAt(tgtLit.Atom, position, replacement)
	if !ok {
		return nil, false
	}

	var literals []clause.Literal

	for i, lit := range equalityClause.Literals {
		if i == eqIdx && lit.Positive {
			continue
		}

		literals = append(literals, clause.NewLiteral(subst.Substitute(lit.Atom, r.Substitution, 0), lit.Positive))
	}

	for i, lit := range targetClause.Literals {
		if i == tgtIdx {
			continue
		}

		literals = append(literals, clause.NewLiteral(subst.Substitute(lit.Atom, r.Substitution, 0), lit.Positive))
	}

	literals = append(literals, clause.NewLiteral(subst.Substitute(newAtom, r.Substitution, 0), tgtLit.Positive))

	return clause.New(literals).Simplify(), true
}
