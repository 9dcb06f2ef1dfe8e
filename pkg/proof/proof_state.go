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
package proof

import (
	"fmt"
	"sort"

	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util"
	"github.com/orbisforge/folcore/pkg/util/collection/hash"
)

// State is a single sequent in the proof DAG: a goal, the hypotheses
// available to prove it, any open metavariables, and a link back to the
// parent state it was derived from.  States are immutable once built,
// except through MarkAsProved (which may fire only once), AddMetavariable
// and InstantiateMetavariable.
type State struct {
	Parent        *State
	Hypotheses    []Hypothesis
	Goal          term.Term
	LastStep      *ProofStep
	Metavariables map[string]MetaInfo
	Depth         uint
	Certification Certification

	hash         uint64
	hashComputed bool
}

// CreateInitial builds the root state of a proof: no hypotheses, no parent,
// depth zero, unproved.
func CreateInitial(goal term.Term) *State {
	return &State{
		Goal:          goal,
		Metavariables: make(map[string]MetaInfo),
		Certification: Certification{Status: StatusUnproved},
	}
}

// CreateFrom derives a child state from parent by recording the rule that
// produced it, the hypotheses it consumed, the hypotheses it adds, and its
// (possibly identical) new goal.  The child inherits the parent's
// metavariables; it starts unproved regardless of the parent's status.
func CreateFrom(parent *State, ruleName string, premiseNames []string, newHyps []Hypothesis, newGoal term.Term) *State {
	hyps := make([]Hypothesis, len(parent.Hypotheses), len(parent.Hypotheses)+len(newHyps))
	copy(hyps, parent.Hypotheses)
	hyps = append(hyps, newHyps...)

	metas := make(map[string]MetaInfo, len(parent.Metavariables))
	for k, v := range parent.Metavariables {
		metas[k] = v
	}

	return &State{
		Parent:     parent,
		Hypotheses: hyps,
		Goal:       newGoal,
		LastStep: &ProofStep{
			RuleName:     ruleName,
			PremiseNames: premiseNames,
			Conclusion:   newGoal,
		},
		Metavariables: metas,
		Depth:         parent.Depth + 1,
		Certification: Certification{Status: StatusUnproved},
	}
}

// CalculateHash computes (and, on first call, caches) the structural hash
// of this state: the goal's hash combined with the hash.Array hash of its
// hypotheses, taken in ascending order of their own hashes.  Hypothesis order
// therefore does not matter: states that Equals treats as equal (same
// hypotheses as a multiset) hash equally.
func (s *State) CalculateHash() uint64 {
	if s.hashComputed {
		return s.hash
	}

	hyps := append([]Hypothesis(nil), s.Hypotheses...)
	sort.Slice(hyps, func(i, j int) bool { return hyps[i].Hash() < hyps[j].Hash() })

	seed := s.Goal.Hash()
	hashCombine(&seed, hash.NewArray(hyps).Hash())

	s.hash = seed
	s.hashComputed = true

	return s.hash
}

// Hash implements hash.Hasher[*State].
func (s *State) Hash() uint64 {
	return s.CalculateHash()
}

// Equals implements hash.Hasher[*State].  Two states are equal when their
// goals are structurally equal, their hypotheses are equal as an unordered
// multiset, and their metavariable tables agree on name, type identity,
// instantiation flag and instantiation term.
func (s *State) Equals(other *State) bool {
	if other == nil {
		return false
	}

	if !s.Goal.Equals(other.Goal) {
		return false
	}

	if len(s.Hypotheses) != len(other.Hypotheses) {
		return false
	}

	used := make([]bool, len(other.Hypotheses))

	for _, h := range s.Hypotheses {
		found := false

		for i, oh := range other.Hypotheses {
			if !used[i] && h.Equals(oh) {
				used[i] = true
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	if len(s.Metavariables) != len(other.Metavariables) {
		return false
	}

	for name, mi := range s.Metavariables {
		omi, ok := other.Metavariables[name]
		if !ok || mi.Type != omi.Type || mi.Instantiated() != omi.Instantiated() {
			return false
		}

		if mi.Instantiated() && !mi.Instantiation.Unwrap().Equals(omi.Instantiation.Unwrap()) {
			return false
		}
	}

	return true
}

// FindHypothesis returns the hypothesis with the given name, if present.
func (s *State) FindHypothesis(name string) (Hypothesis, bool) {
	for _, h := range s.Hypotheses {
		if h.Name == name {
			return h, true
		}
	}

	return Hypothesis{}, false
}

// IsProved reports whether this state counts as proved: either it carries a
// terminal certification (any status other than Unproved), or some hypothesis's
// formula is structurally identical to the goal — provided no metavariable
// of this state is still uninstantiated (an open metavariable means the
// "proof" is conditional on a choice not yet made).
func (s *State) IsProved() bool {
	if s.HasUninstantiatedMetavariables() {
		return false
	}

	switch s.Certification.Status {
	case StatusProvedByRule, StatusContradiction, StatusPendingInstantiation:
		return true
	case StatusUnproved:
		// fall through to the hypothesis-matches-goal check below
	}

	for _, h := range s.Hypotheses {
		if h.Formula.Equals(s.Goal) {
			return true
		}
	}

	return false
}

// MarkAsProved transitions this state's certification to a terminal status.
// It panics if the state is already terminal: certification is monotone and
// single-shot, matching the kernel's guarantee that a proved state's
// justification never silently changes underfoot.
func (s *State) MarkAsProved(status Status, justification string) {
	if s.Certification.Status != StatusUnproved {
		panic(fmt.Sprintf("proof state already certified as %s, cannot re-certify as %s", s.Certification.Status, status))
	}

	if status == StatusUnproved {
		panic("MarkAsProved requires a terminal status, not Unproved")
	}

	s.Certification = Certification{Status: status, Justification: justification}
}

// AddMetavariable registers a fresh, uninstantiated metavariable.
func (s *State) AddMetavariable(name string, typ any) {
	s.Metavariables[name] = MetaInfo{Name: name, Type: typ}
}

// InstantiateMetavariable binds name to a concrete term.  Panics if name is
// not a known metavariable of this state.
func (s *State) InstantiateMetavariable(name string, instantiation term.Term) {
	mi, ok := s.Metavariables[name]
	if !ok {
		panic(fmt.Sprintf("no such metavariable: %s", name))
	}

	mi.Instantiation = util.Some(instantiation)
	s.Metavariables[name] = mi
}

// FindMetavariable looks up a metavariable by name.
func (s *State) FindMetavariable(name string) (MetaInfo, bool) {
	mi, ok := s.Metavariables[name]

	return mi, ok
}

// HasUninstantiatedMetavariables reports whether any metavariable of this
// state still lacks an instantiation.
func (s *State) HasUninstantiatedMetavariables() bool {
	for _, mi := range s.Metavariables {
		if !mi.Instantiated() {
			return true
		}
	}

	return false
}

// GetProofTrace walks this state's parent chain collecting every
// intermediate LastStep, then reverses the result so it reads in
// chronological (root-to-here) order.
func (s *State) GetProofTrace() []ProofStep {
	var steps []ProofStep

	for cur := s; cur != nil && cur.LastStep != nil; cur = cur.Parent {
		steps = append(steps, *cur.LastStep)
	}

	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

// String renders a short debug form: goal and certification status.
func (s *State) String() string {
	return fmt.Sprintf("State{goal=%s, status=%s}", s.Goal, s.Certification.Status)
}
