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
	"github.com/orbisforge/folcore/internal/gensym"
	"github.com/orbisforge/folcore/pkg/proof"
	"github.com/orbisforge/folcore/pkg/term"
)

// ModusPonens derives Q from a hypothesis P and a hypothesis P→Q.
type ModusPonens struct {
	AntecedentHypName  string
	ImplicationHypName string
}

// NewModusPonens names the two hypotheses this rule instance consumes.
func NewModusPonens(antecedentHyp, implicationHyp string) *ModusPonens {
	return &ModusPonens{AntecedentHypName: antecedentHyp, ImplicationHypName: implicationHyp}
}

func (r *ModusPonens) Name() string        { return "Modus Ponens" }
func (r *ModusPonens) Description() string { return "From P and P→Q, derive Q" }

func (r *ModusPonens) validatePattern(antecedent, implication term.Term) bool {
	impl, ok := implication.(*term.Implies)
	if !ok {
		return false
	}

	return antecedent.Equals(impl.Antecedent)
}

// IsApplicable reports whether both named hypotheses exist and the
// implication's antecedent matches the antecedent hypothesis.
func (r *ModusPonens) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	antecedentHyp, ok := state.FindHypothesis(r.AntecedentHypName)
	if !ok {
		return false
	}

	implicationHyp, ok := state.FindHypothesis(r.ImplicationHypName)
	if !ok {
		return false
	}

	return r.validatePattern(antecedentHyp.Formula, implicationHyp.Formula)
}

// Apply derives the consequent of the implication as a new hypothesis.
func (r *ModusPonens) Apply(
	ctx *proof.Context, state *proof.State, _ *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	antecedentHyp, ok := state.FindHypothesis(r.AntecedentHypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "antecedent hypothesis not found: "+r.AntecedentHypName)
	}

	implicationHyp, ok := state.FindHypothesis(r.ImplicationHypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "implication hypothesis not found: "+r.ImplicationHypName)
	}

	if !r.validatePattern(antecedentHyp.Formula, implicationHyp.Formula) {
		return nil, violation(RulePatternMismatch, "the terms do not match the pattern for modus ponens")
	}

	impl := implicationHyp.Formula.(*term.Implies)
	newHyp := proof.Hypothesis{Name: gensym.Next("mp_result"), Formula: impl.Consequent}

	child, ok := ctx.ApplyRule(
		state, "modus_ponens",
		[]string{r.AntecedentHypName, r.ImplicationHypName},
		[]proof.Hypothesis{newHyp},
		state.Goal,
	)
	if !ok {
		return nil, violation(InvalidRuleApplication, "context rejected modus ponens application")
	}

	return []*proof.State{child}, nil
}

// AndIntro derives P∧Q from hypotheses P and Q.
type AndIntro struct {
	LeftHypName, RightHypName string
}

// NewAndIntro names the two conjunct hypotheses.
func NewAndIntro(leftHyp, rightHyp string) *AndIntro {
	return &AndIntro{LeftHypName: leftHyp, RightHypName: rightHyp}
}

func (r *AndIntro) Name() string        { return "And Introduction" }
func (r *AndIntro) Description() string { return "From P and Q, derive P∧Q" }

func (r *AndIntro) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	_, leftOK := state.FindHypothesis(r.LeftHypName)
	_, rightOK := state.FindHypothesis(r.RightHypName)

	return leftOK && rightOK
}

func (r *AndIntro) Apply(
	ctx *proof.Context, state *proof.State, _ *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	leftHyp, ok := state.FindHypothesis(r.LeftHypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "left conjunct hypothesis not found: "+r.LeftHypName)
	}

	rightHyp, ok := state.FindHypothesis(r.RightHypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "right conjunct hypothesis not found: "+r.RightHypName)
	}

	conjunction := &term.And{Left: leftHyp.Formula, Right: rightHyp.Formula}
	newHyp := proof.Hypothesis{Name: gensym.Next("and_intro_result"), Formula: conjunction}

	child, ok := ctx.ApplyRule(
		state, "and_intro",
		[]string{r.LeftHypName, r.RightHypName},
		[]proof.Hypothesis{newHyp},
		state.Goal,
	)
	if !ok {
		return nil, violation(InvalidRuleApplication, "context rejected and_intro application")
	}

	return []*proof.State{child}, nil
}

// AndElim derives one conjunct of a conjunction hypothesis.
type AndElim struct {
	ConjunctionHypName string
	ExtractLeft        bool
}

// NewAndElim names the conjunction hypothesis and which side to extract.
func NewAndElim(conjunctionHyp string, extractLeft bool) *AndElim {
	return &AndElim{ConjunctionHypName: conjunctionHyp, ExtractLeft: extractLeft}
}

func (r *AndElim) Name() string {
	if r.ExtractLeft {
		return "And Elimination (Left)"
	}

	return "And Elimination (Right)"
}

func (r *AndElim) Description() string {
	if r.ExtractLeft {
		return "From P∧Q, derive P"
	}

	return "From P∧Q, derive Q"
}

func (r *AndElim) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	hyp, ok := state.FindHypothesis(r.ConjunctionHypName)
	if !ok {
		return false
	}

	_, isAnd := hyp.Formula.(*term.And)

	return isAnd
}

func (r *AndElim) Apply(
	ctx *proof.Context, state *proof.State, _ *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	hyp, ok := state.FindHypothesis(r.ConjunctionHypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "conjunction hypothesis not found: "+r.ConjunctionHypName)
	}

	and, ok := hyp.Formula.(*term.And)
	if !ok {
		return nil, violation(RulePatternMismatch, "hypothesis is not a conjunction: "+r.ConjunctionHypName)
	}

	conjunct := and.Right
	ruleName := "and_elim_right"
	namePrefix := "and_elim_right"

	if r.ExtractLeft {
		conjunct = and.Left
		ruleName = "and_elim_left"
		namePrefix = "and_elim_left"
	}

	newHyp := proof.Hypothesis{Name: gensym.Next(namePrefix), Formula: conjunct}

	child, ok := ctx.ApplyRule(state, ruleName, []string{r.ConjunctionHypName}, []proof.Hypothesis{newHyp}, state.Goal)
	if !ok {
		return nil, violation(InvalidRuleApplication, "context rejected and_elim application")
	}

	return []*proof.State{child}, nil
}

// OrIntro derives P∨Q from a hypothesis P (or Q), given the other disjunct
// either fixed at construction or supplied via ApplicationContext.
type OrIntro struct {
	PremiseHypName string
	AdditionalTerm term.Term
	PremiseOnLeft  bool
}

// NewOrIntro names the premise hypothesis, the disjunct to introduce
// alongside it, and which side the premise occupies.
func NewOrIntro(premiseHyp string, additionalTerm term.Term, premiseOnLeft bool) *OrIntro {
	return &OrIntro{PremiseHypName: premiseHyp, AdditionalTerm: additionalTerm, PremiseOnLeft: premiseOnLeft}
}

func (r *OrIntro) Name() string {
	if r.PremiseOnLeft {
		return "Or Introduction (Left)"
	}

	return "Or Introduction (Right)"
}

func (r *OrIntro) Description() string {
	if r.PremiseOnLeft {
		return "From P, introduce P∨Q for any Q"
	}

	return "From Q, introduce P∨Q for any P"
}

func (r *OrIntro) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	_, ok := state.FindHypothesis(r.PremiseHypName)

	return ok
}

func (r *OrIntro) Apply(
	ctx *proof.Context, state *proof.State, appCtx *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	premiseHyp, ok := state.FindHypothesis(r.PremiseHypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "premise hypothesis not found: "+r.PremiseHypName)
	}

	termToUse := r.AdditionalTerm
	if appCtx != nil && appCtx.AdditionalTerm != nil {
		termToUse = appCtx.AdditionalTerm
	}

	if termToUse == nil {
		return nil, violation(InvalidRuleApplication, "additional term required for or-introduction")
	}

	var disjunction term.Term
	ruleName := "or_intro_right"

	if r.PremiseOnLeft {
		disjunction = &term.Or{Left: premiseHyp.Formula, Right: termToUse}
		ruleName = "or_intro_left"
	} else {
		disjunction = &term.Or{Left: termToUse, Right: premiseHyp.Formula}
	}

	newHyp := proof.Hypothesis{Name: gensym.Next("or_intro_result"), Formula: disjunction}

	child, ok := ctx.ApplyRule(state, ruleName, []string{r.PremiseHypName}, []proof.Hypothesis{newHyp}, state.Goal)
	if !ok {
		return nil, violation(InvalidRuleApplication, "context rejected or_intro application")
	}

	return []*proof.State{child}, nil
}

// ImpliesIntro proves P→Q by assuming P and continuing with goal Q.
type ImpliesIntro struct{}

// NewImpliesIntro constructs the (stateless) implication-introduction rule.
func NewImpliesIntro() *ImpliesIntro { return &ImpliesIntro{} }

func (r *ImpliesIntro) Name() string        { return "Implication Introduction" }
func (r *ImpliesIntro) Description() string { return "To prove P→Q, assume P and prove Q" }

func (r *ImpliesIntro) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	_, ok := state.Goal.(*term.Implies)

	return ok
}

func (r *ImpliesIntro) Apply(
	ctx *proof.Context, state *proof.State, _ *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	impliesGoal, ok := state.Goal.(*term.Implies)
	if !ok {
		return nil, violation(RulePatternMismatch, "goal is not an implication")
	}

	newHyp := proof.Hypothesis{Name: gensym.Next("implies_intro_premise"), Formula: impliesGoal.Antecedent}

	child, ok := ctx.ApplyRule(state, "implies_intro", nil, []proof.Hypothesis{newHyp}, impliesGoal.Consequent)
	if !ok {
		return nil, violation(InvalidRuleApplication, "context rejected implies_intro application")
	}

	return []*proof.State{child}, nil
}

// AssumptionRule adds an arbitrary formula as a new hypothesis, unconditionally.
type AssumptionRule struct {
	Formula term.Term
	HypName string
}

// NewAssumption names the formula to assume and (optionally) its
// hypothesis name; an empty name is replaced with a fresh gensym at
// construction time, matching the original's constructor-time naming.
func NewAssumption(formula term.Term, name string) *AssumptionRule {
	if name == "" {
		name = gensym.Next("assumption")
	}

	return &AssumptionRule{Formula: formula, HypName: name}
}

func (r *AssumptionRule) Name() string        { return "Assumption" }
func (r *AssumptionRule) Description() string { return "Add a formula as a hypothesis" }

// IsApplicable is unconditionally true: assuming a formula never depends on
// the current state.
func (r *AssumptionRule) IsApplicable(_ *proof.State, _ *ApplicationContext) bool { return true }

func (r *AssumptionRule) Apply(
	ctx *proof.Context, state *proof.State, appCtx *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	formulaToUse := r.Formula
	nameToUse := r.HypName

	if appCtx != nil && appCtx.AdditionalTerm != nil {
		formulaToUse = appCtx.AdditionalTerm

		if appCtx.HypothesisName != "" {
			nameToUse = appCtx.HypothesisName
		}
	}

	if formulaToUse == nil {
		return nil, violation(InvalidRuleApplication, "formula required for assumption")
	}

	newHyp := proof.Hypothesis{Name: nameToUse, Formula: formulaToUse}

	child, ok := ctx.ApplyRule(state, "assumption", nil, []proof.Hypothesis{newHyp}, state.Goal)
	if !ok {
		return nil, violation(InvalidRuleApplication, "context rejected assumption application")
	}

	return []*proof.State{child}, nil
}

// CutRule introduces a lemma, splitting the derivation into a state that
// must prove the lemma and a state that continues the original goal with
// the lemma available as a hypothesis.
type CutRule struct {
	Lemma     term.Term
	LemmaName string
}

// NewCut names the lemma formula and its hypothesis name.
func NewCut(lemma term.Term, lemmaName string) *CutRule {
	return &CutRule{Lemma: lemma, LemmaName: lemmaName}
}

func (r *CutRule) Name() string        { return "Cut" }
func (r *CutRule) Description() string { return "Introduce a lemma and prove it separately" }

// IsApplicable is unconditionally true: a cut may be introduced at any
// point in a derivation.
func (r *CutRule) IsApplicable(_ *proof.State, _ *ApplicationContext) bool { return true }

func (r *CutRule) Apply(
	ctx *proof.Context, state *proof.State, appCtx *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	lemmaToUse := r.Lemma
	nameToUse := r.LemmaName

	if appCtx != nil && appCtx.AdditionalTerm != nil {
		lemmaToUse = appCtx.AdditionalTerm

		if appCtx.HypothesisName != "" {
			nameToUse = appCtx.HypothesisName
		}
	}

	if lemmaToUse == nil {
		return nil, violation(InvalidRuleApplication, "lemma formula required for cut rule")
	}

	lemmaState, ok := ctx.ApplyRule(state, "cut_prove_lemma", nil, nil, lemmaToUse)
	if !ok {
		return nil, violation(InvalidRuleApplication, "context rejected cut_prove_lemma application")
	}

	newHyp := proof.Hypothesis{Name: nameToUse, Formula: lemmaToUse}

	continueState, ok := ctx.ApplyRule(state, "cut_use_lemma", nil, []proof.Hypothesis{newHyp}, state.Goal)
	if !ok {
		return nil, violation(InvalidRuleApplication, "context rejected cut_use_lemma application")
	}

	return []*proof.State{lemmaState, continueState}, nil
}

// ContradictionRule closes a goal outright when both a formula and its
// negation appear as hypotheses.
type ContradictionRule struct {
	FormulaHypName, NegationHypName string
}

// NewContradiction names the formula hypothesis and its negation hypothesis.
func NewContradiction(formulaHyp, negationHyp string) *ContradictionRule {
	return &ContradictionRule{FormulaHypName: formulaHyp, NegationHypName: negationHyp}
}

func (r *ContradictionRule) Name() string { return "Contradiction" }
func (r *ContradictionRule) Description() string {
	return "From a contradiction (P and ¬P), derive any conclusion"
}

func (r *ContradictionRule) matches(state *proof.State) (proof.Hypothesis, proof.Hypothesis, bool) {
	formulaHyp, ok := state.FindHypothesis(r.FormulaHypName)
	if !ok {
		return proof.Hypothesis{}, proof.Hypothesis{}, false
	}

	negationHyp, ok := state.FindHypothesis(r.NegationHypName)
	if !ok {
		return proof.Hypothesis{}, proof.Hypothesis{}, false
	}

	not, ok := negationHyp.Formula.(*term.Not)
	if !ok {
		return proof.Hypothesis{}, proof.Hypothesis{}, false
	}

	if !not.Body.Equals(formulaHyp.Formula) {
		return proof.Hypothesis{}, proof.Hypothesis{}, false
	}

	return formulaHyp, negationHyp, true
}

func (r *ContradictionRule) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	_, _, ok := r.matches(state)

	return ok
}

func (r *ContradictionRule) Apply(
	ctx *proof.Context, state *proof.State, _ *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	_, _, ok := r.matches(state)
	if !ok {
		if _, found := state.FindHypothesis(r.FormulaHypName); !found {
			return nil, violation(InvalidHypothesis, "formula hypothesis not found: "+r.FormulaHypName)
		}

		if _, found := state.FindHypothesis(r.NegationHypName); !found {
			return nil, violation(InvalidHypothesis, "negation hypothesis not found: "+r.NegationHypName)
		}

		return nil, violation(RulePatternMismatch, "negation does not match the formula")
	}

	child, applied := ctx.ApplyRule(
		state, "contradiction",
		[]string{r.FormulaHypName, r.NegationHypName},
		nil, state.Goal,
	)
	if !applied {
		return nil, violation(InvalidRuleApplication, "context rejected contradiction application")
	}

	child.MarkAsProved(
		proof.StatusContradiction,
		"proved by contradiction using "+r.FormulaHypName+" and "+r.NegationHypName,
	)

	return []*proof.State{child}, nil
}
