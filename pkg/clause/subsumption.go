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
	"github.com/orbisforge/folcore/pkg/unify"
)

// Subsumes reports whether c subsumes other: every literal of c can be
// mapped, injectively, to a same-polarity, unifiable literal of other,
// with a single substitution consistent across all mapped pairs.  The
// empty clause subsumes everything; nothing but the empty clause subsumes
// it.
func (c *Clause) Subsumes(other *Clause) bool {
	if len(c.Literals) > len(other.Literals) {
		return false
	}

	if c.IsEmpty() {
		return true
	}

	if other.IsEmpty() {
		return false
	}

	mapping := make([]int, len(c.Literals))
	for i := range mapping {
		mapping[i] = -1
	}

	used := make([]bool, len(other.Literals))

	return findConsistentMapping(c, other, 0, mapping, used)
}

// findConsistentMapping performs a depth-first search over injective
// literal-index mappings from c1 into c2, short-circuiting on the first
// consistent mapping found (matching the ordering guarantee that
// subsumption checking returns on first success).
func findConsistentMapping(c1, c2 *Clause, litIdx int, mapping []int, used []bool) bool {
	if litIdx == len(c1.Literals) {
		return checkSubstitutionConsistency(c1, c2, mapping)
	}

	lit1 := c1.Literals[litIdx]

	for i, lit2 := range c2.Literals {
		if used[i] || !canUnifyLiterals(lit1, lit2) {
			continue
		}

		mapping[litIdx] = i
		used[i] = true

		if findConsistentMapping(c1, c2, litIdx+1, mapping, used) {
			return true
		}

		used[i] = false
	}

	return false
}

// checkSubstitutionConsistency re-unifies every mapped literal pair and
// requires the resulting bindings to agree pointwise: a true variable index
// bound to two distinct terms across different pairs invalidates the
// mapping as a whole.
func checkSubstitutionConsistency(c1, c2 *Clause, mapping []int) bool {
	global := make(subst.Map)

	for litIdx, j := range mapping {
		lit1, lit2 := c1.Literals[litIdx], c2.Literals[j]
		if lit1.Positive != lit2.Positive {
			return false
		}

		r := unify.Unify(lit1.Atom, lit2.Atom, 0)
		if !r.Success {
			return false
		}

		for k, t := range r.Substitution {
			if existing, ok := global[k]; ok {
				if !existing.Equals(t) {
					return false
				}
			} else {
				global[k] = t
			}
		}
	}

	return true
}

// canUnifyLiterals is the cheap pre-check used during mapping search:
// same polarity, and the atoms are unifiable (a full unify() isn't needed
// until checkSubstitutionConsistency validates the whole mapping).
func canUnifyLiterals(lit1, lit2 Literal) bool {
	return lit1.Positive == lit2.Positive && unify.Unifiable(lit1.Atom, lit2.Atom, 0)
}
