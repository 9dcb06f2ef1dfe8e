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

// Package proof implements the shared-immutable proof-state DAG: sequents
// (hypotheses plus goal) linked to their parent by a proof step, with
// content-addressed deduplication through a ProofContext.
package proof

import (
	"hash/fnv"

	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util"
)

// Hypothesis is a named formula standing as an assumption in a sequent.
type Hypothesis struct {
	Name    string
	Formula term.Term
}

// Equals compares name and formula.
func (h Hypothesis) Equals(other Hypothesis) bool {
	return h.Name == other.Name && h.Formula.Equals(other.Formula)
}

// Hash combines the name's hash with the formula's hash.
func (h Hypothesis) Hash() uint64 {
	seed := hashString(h.Name)
	hashCombine(&seed, h.Formula.Hash())

	return seed
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))

	return h.Sum64()
}

func hashCombine(seed *uint64, value uint64) {
	*seed ^= value + 0x9e3779b9 + (*seed << 6) + (*seed >> 2)
}

// ProofStep records one rule application: the rule's name, the names of
// the premises it consumed, and the formula it concluded.  Immutable.
type ProofStep struct {
	RuleName     string
	PremiseNames []string
	Conclusion   term.Term
}

// MetaInfo describes a metavariable: a placeholder for a term to be
// determined later.  Instantiation uses util.Option rather than a separate
// bool-plus-zero-value pair, the same encoding the teacher's schema layer
// uses for optional column widths and the like.
type MetaInfo struct {
	Name          string
	Type          any
	Instantiation util.Option[term.Term]
}

// Instantiated reports whether this metavariable has been bound.
func (m MetaInfo) Instantiated() bool {
	return m.Instantiation.HasValue()
}

// Status is the proof-certification state of a ProofState.
type Status uint8

// The four certification outcomes.  Unproved is the only non-terminal one;
// a state's Status may transition from Unproved to exactly one of the other
// three, once.
const (
	StatusUnproved Status = iota
	StatusProvedByRule
	StatusContradiction
	StatusPendingInstantiation
)

// String renders the status name.
func (s Status) String() string {
	switch s {
	case StatusUnproved:
		return "UNPROVED"
	case StatusProvedByRule:
		return "PROVED_BY_RULE"
	case StatusContradiction:
		return "CONTRADICTION"
	case StatusPendingInstantiation:
		return "PENDING_INSTANTIATION"
	default:
		return "UNKNOWN"
	}
}

// Certification is a state's proof status plus a human-readable reason.
type Certification struct {
	Status        Status
	Justification string
}
