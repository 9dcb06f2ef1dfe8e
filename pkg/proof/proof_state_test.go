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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/assert"
)

func Test_CreateInitial_IsUnprovedWithNoHypotheses(t *testing.T) {
	goal := term.NewConst("P")
	s := CreateInitial(goal)

	assert.Equal(t, 0, len(s.Hypotheses))
	assert.True(t, s.Certification.Status == StatusUnproved)
	assert.True(t, s.Parent == nil)
}

func Test_CreateFrom_InheritsAndExtendsHypotheses(t *testing.T) {
	p, q := term.NewConst("P"), term.NewConst("Q")
	parent := CreateInitial(p)
	parent.Hypotheses = []Hypothesis{{Name: "h0", Formula: q}}

	child := CreateFrom(parent, "and-intro", []string{"h0"}, []Hypothesis{{Name: "h1", Formula: p}}, q)

	assert.Equal(t, 2, len(child.Hypotheses))
	assert.Equal(t, uint(1), child.Depth)
	assert.True(t, child.Parent == parent)
	assert.True(t, child.LastStep.RuleName == "and-intro")
}

func Test_Equals_IsOrderIndependentOverHypotheses(t *testing.T) {
	p, q, goal := term.NewConst("P"), term.NewConst("Q"), term.NewConst("G")

	s1 := CreateInitial(goal)
	s1.Hypotheses = []Hypothesis{{Name: "a", Formula: p}, {Name: "b", Formula: q}}

	s2 := CreateInitial(goal)
	s2.Hypotheses = []Hypothesis{{Name: "b", Formula: q}, {Name: "a", Formula: p}}

	assert.True(t, s1.Equals(s2))
}

func Test_IsProved_WhenHypothesisMatchesGoal(t *testing.T) {
	p := term.NewConst("P")
	s := CreateInitial(p)
	s.Hypotheses = []Hypothesis{{Name: "h0", Formula: p}}

	assert.True(t, s.IsProved())
}

func Test_IsProved_FalseWithUninstantiatedMetavariable(t *testing.T) {
	p := term.NewConst("P")
	s := CreateInitial(p)
	s.Hypotheses = []Hypothesis{{Name: "h0", Formula: p}}
	s.AddMetavariable("m0", "witness")

	assert.False(t, s.IsProved())

	s.InstantiateMetavariable("m0", term.NewConst("w"))
	assert.True(t, s.IsProved())
}

func Test_MarkAsProved_PanicsIfAlreadyTerminal(t *testing.T) {
	s := CreateInitial(term.NewConst("P"))
	s.MarkAsProved(StatusProvedByRule, "axiom")

	defer func() {
		r := recover()
		assert.True(t, r != nil)
	}()

	s.MarkAsProved(StatusContradiction, "again")
}

func Test_GetProofTrace_IsChronological(t *testing.T) {
	p, q, r := term.NewConst("P"), term.NewConst("Q"), term.NewConst("R")

	root := CreateInitial(p)
	step1 := CreateFrom(root, "rule1", nil, nil, q)
	step2 := CreateFrom(step1, "rule2", nil, nil, r)

	trace := step2.GetProofTrace()

	want := []ProofStep{
		{RuleName: "rule1", Conclusion: q},
		{RuleName: "rule2", Conclusion: r},
	}
	if diff := cmp.Diff(want, trace); diff != "" {
		t.Errorf("proof trace differs from expected (-want +got):\n%s", diff)
	}
}

func Test_CalculateHash_IsCachedAndStable(t *testing.T) {
	s := CreateInitial(term.NewConst("P"))
	s.Hypotheses = []Hypothesis{{Name: "h0", Formula: term.NewConst("Q")}}

	h1 := s.CalculateHash()
	h2 := s.CalculateHash()

	assert.Equal(t, h1, h2)
}

func Test_FindHypothesis(t *testing.T) {
	p := term.NewConst("P")
	s := CreateInitial(term.NewConst("G"))
	s.Hypotheses = []Hypothesis{{Name: "h0", Formula: p}}

	h, ok := s.FindHypothesis("h0")
	assert.True(t, ok)
	assert.True(t, h.Formula.Equals(p))

	_, ok = s.FindHypothesis("nope")
	assert.False(t, ok)
}
