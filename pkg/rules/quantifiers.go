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
	"github.com/orbisforge/folcore/pkg/subst"
	"github.com/orbisforge/folcore/pkg/term"
)

// ForallIntro proves ∀x.P(x) by proving P(x) for a fresh metavariable x.
type ForallIntro struct {
	VariableHint string
}

// NewForallIntro names the hint to use for the bound variable's display name.
func NewForallIntro(variableHint string) *ForallIntro {
	return &ForallIntro{VariableHint: variableHint}
}

func (r *ForallIntro) Name() string { return "Universal Introduction" }
func (r *ForallIntro) Description() string {
	return "To prove ∀x.P(x), prove P(x) for a fresh variable x"
}

func (r *ForallIntro) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	_, ok := state.Goal.(*term.Forall)

	return ok
}

// Apply descends into the forall's body as the new goal and records a
// metavariable standing for the bound variable.
//
// The metavariable's Type is recorded as the placeholder string
// "placeholder": inferring the true type of a quantified variable would
// require a type-inference pass this kernel does not have (Type is an
// opaque any throughout, carried but never examined — see pkg/term's
// Type fields). Type is a non-goal here; this mirrors the original's own
// TODO on this point.
func (r *ForallIntro) Apply(
	ctx *proof.Context, state *proof.State, _ *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	forallGoal, ok := state.Goal.(*term.Forall)
	if !ok {
		return nil, violation(RulePatternMismatch, "goal is not a universal quantifier")
	}

	metaVarName := gensym.Next("forall_intro_var")

	child, applied := ctx.ApplyRule(state, "forall_intro", nil, nil, forallGoal.Body)
	if !applied {
		return nil, violation(InvalidRuleApplication, "context rejected forall_intro application")
	}

	child.AddMetavariable(metaVarName, "placeholder")

	return []*proof.State{child}, nil
}

// ForallElim derives P(t) from a hypothesis ∀x.P(x), for a term t fixed at
// construction or supplied via ApplicationContext.
type ForallElim struct {
	ForallHypName    string
	SubstitutionTerm term.Term
}

// NewForallElim names the universally-quantified hypothesis and the term
// to instantiate it with.
func NewForallElim(forallHyp string, substitutionTerm term.Term) *ForallElim {
	return &ForallElim{ForallHypName: forallHyp, SubstitutionTerm: substitutionTerm}
}

func (r *ForallElim) Name() string        { return "Universal Elimination" }
func (r *ForallElim) Description() string { return "From ∀x.P(x), derive P(t) for any term t" }

func (r *ForallElim) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	hyp, ok := state.FindHypothesis(r.ForallHypName)
	if !ok {
		return false
	}

	_, isForall := hyp.Formula.(*term.Forall)

	return isForall
}

func (r *ForallElim) Apply(
	ctx *proof.Context, state *proof.State, appCtx *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	hyp, ok := state.FindHypothesis(r.ForallHypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "universal quantifier hypothesis not found: "+r.ForallHypName)
	}

	forall, ok := hyp.Formula.(*term.Forall)
	if !ok {
		return nil, violation(RulePatternMismatch, "hypothesis is not a universal quantifier: "+r.ForallHypName)
	}

	termToUse := r.SubstitutionTerm
	if appCtx != nil && appCtx.SubstitutionTerm != nil {
		termToUse = appCtx.SubstitutionTerm
	}

	if termToUse == nil {
		return nil, violation(InvalidRuleApplication, "substitution term required for universal elimination")
	}

	instantiated := subst.Substitute(forall.Body, subst.Map{0: termToUse}, 0)
	newHyp := proof.Hypothesis{Name: gensym.Next("forall_elim_result"), Formula: instantiated}

	child, applied := ctx.ApplyRule(state, "forall_elim", []string{r.ForallHypName}, []proof.Hypothesis{newHyp}, state.Goal)
	if !applied {
		return nil, violation(InvalidRuleApplication, "context rejected forall_elim application")
	}

	return []*proof.State{child}, nil
}

// ExistsIntro closes a goal ∃x.P(x) given a hypothesis standing as a
// witness.
//
// Limitation: this rule does not check that the witness hypothesis is
// actually an instantiation of the quantifier body — doing so requires
// matching the witness against body under some substitution, which this
// kernel does not attempt. It marks the goal proved on the strength of the
// witness hypothesis existing at all, which is unsound if the witness
// formula is unrelated to the goal. The original carries the identical
// gap with a TODO; it is preserved here rather than silently "fixed" by
// inventing a matching procedure the original never specified.
type ExistsIntro struct {
	WitnessHypName string
	VariableHint   string
}

// NewExistsIntro names the witness hypothesis and variable display hint.
func NewExistsIntro(witnessHyp, variableHint string) *ExistsIntro {
	return &ExistsIntro{WitnessHypName: witnessHyp, VariableHint: variableHint}
}

func (r *ExistsIntro) Name() string        { return "Existential Introduction" }
func (r *ExistsIntro) Description() string { return "From P(t), derive ∃x.P(x)" }

func (r *ExistsIntro) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	if _, ok := state.Goal.(*term.Exists); !ok {
		return false
	}

	_, ok := state.FindHypothesis(r.WitnessHypName)

	return ok
}

func (r *ExistsIntro) Apply(
	ctx *proof.Context, state *proof.State, _ *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	if _, ok := state.Goal.(*term.Exists); !ok {
		return nil, violation(RulePatternMismatch, "goal is not an existential quantifier")
	}

	if _, ok := state.FindHypothesis(r.WitnessHypName); !ok {
		return nil, violation(InvalidHypothesis, "witness hypothesis not found: "+r.WitnessHypName)
	}

	child, applied := ctx.ApplyRule(state, "exists_intro", []string{r.WitnessHypName}, nil, state.Goal)
	if !applied {
		return nil, violation(InvalidRuleApplication, "context rejected exists_intro application")
	}

	child.MarkAsProved(proof.StatusProvedByRule, "witnessed by "+r.WitnessHypName)

	return []*proof.State{child}, nil
}

// ExistsElim derives P(c) from a hypothesis ∃x.P(x), for a fresh witness
// constant c.
//
// Limitation: the returned derivation does not track that c must not
// escape the scope of this elimination (the standard side-condition on
// existential elimination). The original notes the same gap; enforcing it
// would require scope-tracking machinery this kernel's ProofState does
// not carry.
type ExistsElim struct {
	ExistsHypName string
}

// NewExistsElim names the existentially-quantified hypothesis.
func NewExistsElim(existsHyp string) *ExistsElim {
	return &ExistsElim{ExistsHypName: existsHyp}
}

func (r *ExistsElim) Name() string { return "Existential Elimination" }
func (r *ExistsElim) Description() string {
	return "From ∃x.P(x), derive P(c) for a fresh witness constant c"
}

func (r *ExistsElim) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	hyp, ok := state.FindHypothesis(r.ExistsHypName)
	if !ok {
		return false
	}

	_, isExists := hyp.Formula.(*term.Exists)

	return isExists
}

func (r *ExistsElim) Apply(
	ctx *proof.Context, state *proof.State, _ *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	hyp, ok := state.FindHypothesis(r.ExistsHypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "existential hypothesis not found: "+r.ExistsHypName)
	}

	exists, ok := hyp.Formula.(*term.Exists)
	if !ok {
		return nil, violation(RulePatternMismatch, "hypothesis is not an existential quantifier: "+r.ExistsHypName)
	}

	witness := term.NewConst(gensym.Next("witness"))
	instantiated := subst.Substitute(exists.Body, subst.Map{0: witness}, 0)
	newHyp := proof.Hypothesis{Name: gensym.Next("exists_elim_result"), Formula: instantiated}

	child, applied := ctx.ApplyRule(state, "exists_elim", []string{r.ExistsHypName}, []proof.Hypothesis{newHyp}, state.Goal)
	if !applied {
		return nil, violation(InvalidRuleApplication, "context rejected exists_elim application")
	}

	return []*proof.State{child}, nil
}

// QuantifierNegation pushes a negation inward across a quantifier
// (¬∀x.P ⇝ ∃x.¬P, ¬∃x.P ⇝ ∀x.¬P) or pulls one outward in the reverse
// direction, depending on Inward.
type QuantifierNegation struct {
	HypName string
	Inward  bool
}

// NewQuantifierNegation names the hypothesis to transform and the
// direction: Inward pushes a leading negation across the quantifier,
// outward-direction (Inward=false) pulls a negated quantifier body back out.
func NewQuantifierNegation(hypName string, inward bool) *QuantifierNegation {
	return &QuantifierNegation{HypName: hypName, Inward: inward}
}

func (r *QuantifierNegation) Name() string {
	if r.Inward {
		return "Quantifier Negation (Inward)"
	}

	return "Quantifier Negation (Outward)"
}

func (r *QuantifierNegation) Description() string {
	if r.Inward {
		return "Transform ¬(∀x.P(x)) to ∃x.¬P(x) or ¬(∃x.P(x)) to ∀x.¬P(x)"
	}

	return "Transform ∀x.¬P(x) to ¬(∃x.P(x)) or ∃x.¬P(x) to ¬(∀x.P(x))"
}

func (r *QuantifierNegation) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	hyp, ok := state.FindHypothesis(r.HypName)
	if !ok {
		return false
	}

	if r.Inward {
		not, ok := hyp.Formula.(*term.Not)
		if !ok {
			return false
		}

		switch not.Body.(type) {
		case *term.Forall, *term.Exists:
			return true
		default:
			return false
		}
	}

	switch f := hyp.Formula.(type) {
	case *term.Forall:
		_, ok := f.Body.(*term.Not)
		return ok
	case *term.Exists:
		_, ok := f.Body.(*term.Not)
		return ok
	default:
		return false
	}
}

func (r *QuantifierNegation) Apply(
	ctx *proof.Context, state *proof.State, _ *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	hyp, ok := state.FindHypothesis(r.HypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "hypothesis not found: "+r.HypName)
	}

	var transformed term.Term

	var ruleName string

	if r.Inward {
		not, ok := hyp.Formula.(*term.Not)
		if !ok {
			return nil, violation(RulePatternMismatch, "hypothesis is not a negation: "+r.HypName)
		}

		switch negated := not.Body.(type) {
		case *term.Forall:
			transformed = &term.Exists{Hint: negated.Hint, Body: &term.Not{Body: negated.Body}}
			ruleName = "not_forall_to_exists_not"
		case *term.Exists:
			transformed = &term.Forall{Hint: negated.Hint, Body: &term.Not{Body: negated.Body}}
			ruleName = "not_exists_to_forall_not"
		default:
			return nil, violation(RulePatternMismatch, "negated formula is not a quantifier: "+r.HypName)
		}
	} else {
		switch f := hyp.Formula.(type) {
		case *term.Forall:
			not, ok := f.Body.(*term.Not)
			if !ok {
				return nil, violation(RulePatternMismatch, "quantifier body is not a negation: "+r.HypName)
			}

			transformed = &term.Not{Body: &term.Exists{Hint: f.Hint, Body: not.Body}}
			ruleName = "forall_not_to_not_exists"
		case *term.Exists:
			not, ok := f.Body.(*term.Not)
			if !ok {
				return nil, violation(RulePatternMismatch, "quantifier body is not a negation: "+r.HypName)
			}

			transformed = &term.Not{Body: &term.Forall{Hint: f.Hint, Body: not.Body}}
			ruleName = "exists_not_to_not_forall"
		default:
			return nil, violation(RulePatternMismatch, "hypothesis is not a quantifier: "+r.HypName)
		}
	}

	newHyp := proof.Hypothesis{Name: gensym.Next("quantifier_negation_result"), Formula: transformed}

	child, applied := ctx.ApplyRule(state, ruleName, []string{r.HypName}, []proof.Hypothesis{newHyp}, state.Goal)
	if !applied {
		return nil, violation(InvalidRuleApplication, "context rejected quantifier_negation application")
	}

	return []*proof.State{child}, nil
}
