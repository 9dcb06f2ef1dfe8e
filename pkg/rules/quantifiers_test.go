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
package rules

import (
	"testing"

	"github.com/orbisforge/folcore/pkg/proof"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/assert"
)

func Test_ForallIntro_DescendsIntoBodyWithMetavariable(t *testing.T) {
	body := term.NewApp("P", []term.Term{term.NewVar(0)})
	state := proof.CreateInitial(&term.Forall{Hint: "x", Body: body})

	ctx := proof.NewContext()
	rule := NewForallIntro("x")
	assert.True(t, rule.IsApplicable(state, nil))

	children, v := rule.Apply(ctx, state, nil)
	assert.True(t, v == nil)
	assert.True(t, children[0].Goal.Equals(body))
	assert.Equal(t, 1, len(children[0].Metavariables))
}

func Test_ForallElim_InstantiatesBoundVariable(t *testing.T) {
	a := term.NewConst("a")
	body := term.NewApp("P", []term.Term{term.NewVar(0)})
	state := &proof.State{
		Goal:          term.NewConst("G"),
		Metavariables: map[string]proof.MetaInfo{},
		Hypotheses: []proof.Hypothesis{
			{Name: "h0", Formula: &term.Forall{Hint: "x", Body: body}},
		},
	}

	ctx := proof.NewContext()
	rule := NewForallElim("h0", a)

	children, v := rule.Apply(ctx, state, nil)
	assert.True(t, v == nil)

	expected := term.NewApp("P", []term.Term{a})
	newHyp := children[0].Hypotheses[len(children[0].Hypotheses)-1]
	assert.True(t, newHyp.Formula.Equals(expected))
}

func Test_ExistsIntro_MarksProvedWithWitness(t *testing.T) {
	body := term.NewApp("P", []term.Term{term.NewVar(0)})
	goal := &term.Exists{Hint: "x", Body: body}
	state := &proof.State{
		Goal:          goal,
		Metavariables: map[string]proof.MetaInfo{},
		Hypotheses: []proof.Hypothesis{
			{Name: "w0", Formula: term.NewApp("P", []term.Term{term.NewConst("a")})},
		},
	}

	ctx := proof.NewContext()
	rule := NewExistsIntro("w0", "x")
	assert.True(t, rule.IsApplicable(state, nil))

	children, v := rule.Apply(ctx, state, nil)
	assert.True(t, v == nil)
	assert.True(t, children[0].Certification.Status == proof.StatusProvedByRule)
}

func Test_ExistsElim_InstantiatesWithFreshWitness(t *testing.T) {
	body := term.NewApp("P", []term.Term{term.NewVar(0)})
	state := &proof.State{
		Goal:          term.NewConst("G"),
		Metavariables: map[string]proof.MetaInfo{},
		Hypotheses: []proof.Hypothesis{
			{Name: "h0", Formula: &term.Exists{Hint: "x", Body: body}},
		},
	}

	ctx := proof.NewContext()
	rule := NewExistsElim("h0")

	children, v := rule.Apply(ctx, state, nil)
	assert.True(t, v == nil)

	newHyp := children[0].Hypotheses[len(children[0].Hypotheses)-1]
	app, ok := newHyp.Formula.(*term.App)
	assert.True(t, ok)

	_, isConst := app.Args[0].(*term.Const)
	assert.True(t, isConst)
}

func Test_QuantifierNegation_Inward_ForallToExists(t *testing.T) {
	body := term.NewApp("P", []term.Term{term.NewVar(0)})
	forall := &term.Forall{Hint: "x", Body: body}
	state := &proof.State{
		Goal:          term.NewConst("G"),
		Metavariables: map[string]proof.MetaInfo{},
		Hypotheses: []proof.Hypothesis{
			{Name: "h0", Formula: &term.Not{Body: forall}},
		},
	}

	ctx := proof.NewContext()
	rule := NewQuantifierNegation("h0", true)
	assert.True(t, rule.IsApplicable(state, nil))

	children, v := rule.Apply(ctx, state, nil)
	assert.True(t, v == nil)

	newHyp := children[0].Hypotheses[len(children[0].Hypotheses)-1]
	exists, ok := newHyp.Formula.(*term.Exists)
	assert.True(t, ok)

	not, ok := exists.Body.(*term.Not)
	assert.True(t, ok)
	assert.True(t, not.Body.Equals(body))
}

func Test_QuantifierNegation_Outward_ExistsNotToNotForall(t *testing.T) {
	body := term.NewApp("P", []term.Term{term.NewVar(0)})
	exists := &term.Exists{Hint: "x", Body: &term.Not{Body: body}}
	state := &proof.State{
		Goal:          term.NewConst("G"),
		Metavariables: map[string]proof.MetaInfo{},
		Hypotheses: []proof.Hypothesis{
			{Name: "h0", Formula: exists},
		},
	}

	ctx := proof.NewContext()
	rule := NewQuantifierNegation("h0", false)
	assert.True(t, rule.IsApplicable(state, nil))

	children, v := rule.Apply(ctx, state, nil)
	assert.True(t, v == nil)

	newHyp := children[0].Hypotheses[len(children[0].Hypotheses)-1]
	not, ok := newHyp.Formula.(*term.Not)
	assert.True(t, ok)

	forall, ok := not.Body.(*term.Forall)
	assert.True(t, ok)
	assert.True(t, forall.Body.Equals(body))
}
