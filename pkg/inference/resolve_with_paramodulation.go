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
package inference

import (
	"github.com/orbisforge/folcore/pkg/clause"
	"github.com/orbisforge/folcore/pkg/term"
)

// HasEqualityLiterals reports whether any literal of c has an equality
// atom, regardless of polarity.
func HasEqualityLiterals(c *clause.Clause) bool {
	return len(GetEqualityLiteralIndices(c)) > 0
}

// GetEqualityLiteralIndices returns the indices of every literal in c whose
// atom is an equality, regardless of polarity.
func GetEqualityLiteralIndices(c *clause.Clause) []int {
	var indices []int

	for i, lit := range c.Literals {
		if term.IsEquality(lit.Atom) {
			indices = append(indices, i)
		}
	}

	return indices
}

// TryResolution wraps clause.Resolve, returning a one-element slice on
// success or none on failure.
func TryResolution(c1, c2 *clause.Clause) []*clause.Clause {
	if resolvent, _, ok := clause.Resolve(c1, c2); ok {
		return []*clause.Clause{resolvent}
	}

	return nil
}

// TryParamodulation tries every positive equality literal of equalityClause
// as a rewrite rule against every paramodulatable position of
// targetClause's literals, collecting every successful paramodulant.
func TryParamodulation(equalityClause, targetClause *clause.Clause) []*clause.Clause {
	var results []*clause.Clause

	for _, eqIdx := range GetEqualityLiteralIndices(equalityClause) {
		if !equalityClause.Literals[eqIdx].Positive {
			continue
		}

		for _, pp := range FindParamodPositions(targetClause) {
			if result, ok := Paramodulate(equalityClause, targetClause, eqIdx, pp.LiteralIndex, pp.Position); ok {
				results = append(results, result)
			}
		}
	}

	return results
}

// ResolveWithParamodulation collects ordinary resolution between c1 and c2,
// plus — if either clause carries an equality literal — every successful
// paramodulation in both directions (c1-as-equality against c2, and
// symmetrically c2-as-equality against c1).
func ResolveWithParamodulation(c1, c2 *clause.Clause) []*clause.Clause {
	results := TryResolution(c1, c2)

	if HasEqualityLiterals(c1) {
		results = append(results, TryParamodulation(c1, c2)...)
	}

	if HasEqualityLiterals(c2) {
		results = append(results, TryParamodulation(c2, c1)...)
	}

	return results
}
