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

// Package rules implements the natural-deduction inference rules that walk
// the proof.Context state DAG forward: each Rule inspects a proof.State,
// decides whether its pattern matches, and if so derives one or more child
// states through proof.Context.ApplyRule.
package rules

import (
	"github.com/orbisforge/folcore/pkg/proof"
	"github.com/orbisforge/folcore/pkg/term"
)

// ViolationType classifies why a rule refused to apply.
type ViolationType uint8

const (
	// InvalidHypothesis means a named hypothesis the rule needed does not
	// exist in the state.
	InvalidHypothesis ViolationType = iota
	// RulePatternMismatch means a hypothesis or goal exists but is not
	// shaped the way this rule requires (e.g. not an implication).
	RulePatternMismatch
	// InvalidRuleApplication means the rule was given insufficient
	// information to apply (e.g. no witness term for Or-Introduction).
	InvalidRuleApplication
)

// String renders the violation type name.
func (v ViolationType) String() string {
	switch v {
	case InvalidHypothesis:
		return "INVALID_HYPOTHESIS"
	case RulePatternMismatch:
		return "RULE_PATTERN_MISMATCH"
	case InvalidRuleApplication:
		return "INVALID_RULE_APPLICATION"
	default:
		return "UNKNOWN"
	}
}

// ConstraintViolation explains why Apply could not derive a child state.
type ConstraintViolation struct {
	Type    ViolationType
	Message string
}

// ApplicationContext carries the optional, call-site-supplied parameters a
// rule may need beyond what its own fields fix at construction time: an
// Or-Introduction needs the disjunct it's introducing, a Forall-Elimination
// needs the instantiating term, and so on.  A nil ApplicationContext means
// "use whatever the rule itself was constructed with".  LeftToRight cannot
// be left unset: RewriteRule takes its direction from any non-nil
// ApplicationContext, so a zero value selects right-to-left.
type ApplicationContext struct {
	AdditionalTerm   term.Term
	SubstitutionTerm term.Term
	VariableName     string
	HypothesisName   string
	LeftToRight      bool
}

// Rule is a single inference step of the natural-deduction calculus: given
// a state (and optional application-specific parameters), it reports
// whether its pattern matches and, if asked to apply, derives the state(s)
// that follow.
type Rule interface {
	Name() string
	Description() string
	IsApplicable(state *proof.State, appCtx *ApplicationContext) bool
	Apply(ctx *proof.Context, state *proof.State, appCtx *ApplicationContext) ([]*proof.State, *ConstraintViolation)
}

func violation(t ViolationType, msg string) *ConstraintViolation {
	return &ConstraintViolation{Type: t, Message: msg}
}
