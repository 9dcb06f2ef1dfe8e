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

// Package clause implements clausal logic over pkg/term: literals, clauses,
// tautology removal, simplification, variable renaming, subsumption, and
// binary resolution and factoring (resolution.go).  Paramodulation lives in
// pkg/inference, which builds on this package.
package clause

import "github.com/orbisforge/folcore/pkg/term"

// Literal is a polarity-tagged atom.
type Literal struct {
	Atom     term.Term
	Positive bool
}

// NewLiteral constructs a literal.
func NewLiteral(atom term.Term, positive bool) Literal {
	return Literal{Atom: atom, Positive: positive}
}

// Negate returns the literal with the opposite polarity over the same atom.
func (l Literal) Negate() Literal {
	return Literal{Atom: l.Atom, Positive: !l.Positive}
}

// IsComplementary reports whether l and other have equal atoms and opposite
// polarity.
func (l Literal) IsComplementary(other Literal) bool {
	return l.Positive != other.Positive && l.Atom.Equals(other.Atom)
}

// Equals reports whether l and other have equal atoms and the same
// polarity.
func (l Literal) Equals(other Literal) bool {
	return l.Positive == other.Positive && l.Atom.Equals(other.Atom)
}

// Hash combines the atom's hash with the polarity.
func (l Literal) Hash() uint64 {
	seed := l.Atom.Hash()
	polarity := uint64(0)

	if l.Positive {
		polarity = 1
	}

	hashCombine(&seed, polarity)

	return seed
}

// String renders e.g. "P(x)" or "~P(x)".
func (l Literal) String() string {
	if l.Positive {
		return l.Atom.String()
	}

	return "~" + l.Atom.String()
}

func hashCombine(seed *uint64, value uint64) {
	*seed ^= value + 0x9e3779b9 + (*seed << 6) + (*seed >> 2)
}
