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
	"github.com/orbisforge/folcore/pkg/proof"
	"github.com/orbisforge/folcore/pkg/term"
)

// RewriteRule records that an equality hypothesis l = r licenses rewriting
// l to r (or r to l) somewhere in the proof.
//
// Limitation: Apply does not actually rewrite the goal. Doing so properly
// would mean finding every occurrence of from_term in the goal (via
// pkg/rewrite's position machinery) and replacing it — but a natural
// deduction rule has no principled way to decide *which* occurrence(s) the
// prover intends to rewrite without additional position information the
// ApplicationContext here does not carry. Rather than guess (e.g. rewrite
// all occurrences, which is unsound if the user wanted just one), Apply
// records the intended direction and marks the resulting state
// PendingInstantiation: a caller (or a future rule) supplies the actual
// rewritten goal once the position is known. The original leaves an
// identical TODO and placeholder; this preserves that boundary rather than
// inventing a resolution for it.
type RewriteRule struct {
	EqualityHypName string
	LeftToRight     bool
}

// NewRewriteRule names the equality hypothesis and default direction.
func NewRewriteRule(equalityHypName string, leftToRight bool) *RewriteRule {
	return &RewriteRule{EqualityHypName: equalityHypName, LeftToRight: leftToRight}
}

func (r *RewriteRule) Name() string {
	if r.LeftToRight {
		return "Rewrite (Left to Right)"
	}

	return "Rewrite (Right to Left)"
}

func (r *RewriteRule) Description() string {
	if r.LeftToRight {
		return "Rewrite terms using equality, replacing left with right"
	}

	return "Rewrite terms using equality, replacing right with left"
}

func (r *RewriteRule) IsApplicable(state *proof.State, _ *ApplicationContext) bool {
	hyp, ok := state.FindHypothesis(r.EqualityHypName)
	if !ok {
		return false
	}

	return term.IsEquality(hyp.Formula)
}

func (r *RewriteRule) Apply(
	ctx *proof.Context, state *proof.State, appCtx *ApplicationContext,
) ([]*proof.State, *ConstraintViolation) {
	hyp, ok := state.FindHypothesis(r.EqualityHypName)
	if !ok {
		return nil, violation(InvalidHypothesis, "equality hypothesis not found: "+r.EqualityHypName)
	}

	if !term.IsEquality(hyp.Formula) {
		return nil, violation(RulePatternMismatch, "hypothesis is not an equality: "+r.EqualityHypName)
	}

	direction := r.LeftToRight
	if appCtx != nil {
		direction = appCtx.LeftToRight
	}

	child, applied := ctx.ApplyRule(state, "rewrite", []string{r.EqualityHypName}, nil, state.Goal)
	if !applied {
		return nil, violation(InvalidRuleApplication, "context rejected rewrite application")
	}

	reason := "applied rewrite using " + r.EqualityHypName
	if direction {
		reason += " (left-to-right)"
	} else {
		reason += " (right-to-left)"
	}

	child.MarkAsProved(proof.StatusPendingInstantiation, reason)

	return []*proof.State{child}, nil
}
