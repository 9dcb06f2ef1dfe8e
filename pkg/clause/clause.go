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
	"strings"

	"github.com/orbisforge/folcore/pkg/subst"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/collection/hash"
)

// Clause is a multiset of literals.  The empty clause (□) is the
// refutation witness.  Hash is computed lazily and cached, since clauses
// are immutable after construction.
type Clause struct {
	Literals     []Literal
	hash         uint64
	hashComputed bool
}

// New constructs a clause from literals.
func New(literals []Literal) *Clause {
	return &Clause{Literals: append([]Literal(nil), literals...)}
}

// Empty returns the empty clause □.
func Empty() *Clause {
	return &Clause{Literals: nil}
}

// IsEmpty reports whether this is □.
func (c *Clause) IsEmpty() bool {
	return len(c.Literals) == 0
}

// IsTautology reports whether c contains any pair of complementary
// literals.
func (c *Clause) IsTautology() bool {
	for i := range c.Literals {
		for j := i + 1; j < len(c.Literals); j++ {
			if c.Literals[i].IsComplementary(c.Literals[j]) {
				return true
			}
		}
	}

	return false
}

// Simplify returns □ if c is a tautology; otherwise a clause with duplicate
// literals removed (structural dedup, order-insensitive).
func (c *Clause) Simplify() *Clause {
	if c.IsTautology() {
		return Empty()
	}

	var deduped []Literal

	for _, lit := range c.Literals {
		dup := false

		for _, kept := range deduped {
			if kept.Equals(lit) {
				dup = true
				break
			}
		}

		if !dup {
			deduped = append(deduped, lit)
		}
	}

	return New(deduped)
}

// Substitute applies s to every literal's atom.
func (c *Clause) Substitute(s subst.Map) *Clause {
	out := make([]Literal, len(c.Literals))
	for i, lit := range c.Literals {
		out[i] = Literal{Atom: subst.Substitute(lit.Atom, s, 0), Positive: lit.Positive}
	}

	return New(out)
}

// RenameVariables finds every true free variable index across all literal
// atoms and applies the identity-plus-offset substitution k -> Var(k +
// offset).  Used before resolution to prevent variable collision between
// two parent clauses.
func (c *Clause) RenameVariables(offset uint) *Clause {
	vars := make(term.VarSet)

	for _, lit := range c.Literals {
		vars.Union(term.FindAllVariables(lit.Atom, 0))
	}

	s := make(subst.Map, len(vars))
	for idx := range vars {
		s[idx] = term.NewVar(idx + offset)
	}

	return c.Substitute(s)
}

// Equals is order-independent multiset equality: every literal in c is
// matched against some not-yet-used literal in other (a plain existence
// check per literal, not a consistency-constrained injective mapping —
// that stronger notion is what Subsumes computes).
func (c *Clause) Equals(other *Clause) bool {
	if len(c.Literals) != len(other.Literals) {
		return false
	}

	used := make([]bool, len(other.Literals))

	for _, lit := range c.Literals {
		found := false

		for j, cand := range other.Literals {
			if !used[j] && lit.Equals(cand) {
				used[j] = true
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// Hash combines every literal's hash via hash.Array, the same generic
// hash-of-hashes combinator the proof-state DAG uses for its hypothesis
// lists.  The result is cached after the first call.
func (c *Clause) Hash() uint64 {
	if c.hashComputed {
		return c.hash
	}

	c.hash = hash.NewArray(c.Literals).Hash()
	c.hashComputed = true

	return c.hash
}

// String renders "□" for the empty clause, else literals joined by " ∨ ".
func (c *Clause) String() string {
	if c.IsEmpty() {
		return "□"
	}

	parts := make([]string, len(c.Literals))
	for i, lit := range c.Literals {
		parts[i] = lit.String()
	}

	return strings.Join(parts, " ∨ ")
}
