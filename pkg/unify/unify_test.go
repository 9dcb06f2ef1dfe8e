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
package unify

import (
	"testing"

	"github.com/orbisforge/folcore/pkg/subst"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/assert"
)

// Scenario 4: unification with occurs check.
func Test_Unify_OccursCheckFails(t *testing.T) {
	r := Unify(term.NewVar(0), term.NewApp("f", []term.Term{term.NewVar(0)}), 0)
	assert.False(t, r.Success)
}

func Test_Unify_ConstAndConst(t *testing.T) {
	r := Unify(term.NewConst("a"), term.NewConst("a"), 0)
	assert.True(t, r.Success)

	r = Unify(term.NewConst("a"), term.NewConst("b"), 0)
	assert.False(t, r.Success)
}

func Test_Unify_BindsFreeVariable(t *testing.T) {
	r := Unify(term.NewVar(0), term.NewConst("a"), 0)
	assert.True(t, r.Success)

	bound, ok := r.Substitution[0]
	assert.True(t, ok)
	assert.True(t, bound.Equals(term.NewConst("a")))
}

func Test_Unify_AppRequiresMatchingArity(t *testing.T) {
	r := Unify(
		term.NewApp("f", []term.Term{term.NewVar(0)}),
		term.NewApp("f", []term.Term{term.NewConst("a"), term.NewConst("b")}),
		0,
	)
	assert.False(t, r.Success)
}

// Unifying under two nested Forall binders.
func Test_Unify_NestedBinders(t *testing.T) {
	lhs := term.NewForall("x", term.NewForall("y", term.NewVar(0)))
	rhs := term.NewForall("x", term.NewForall("y", term.NewVar(0)))

	r := Unify(lhs, rhs, 0)
	assert.True(t, r.Success)
}

// Unifying an App whose argument is itself a bound variable succeeds
// without attempting (incorrectly) to bind the bound variable.
func Test_Unify_AppWithBoundVariableArgument(t *testing.T) {
	lhs := term.NewForall("x", term.NewApp("f", []term.Term{term.NewVar(0)}))
	rhs := term.NewForall("x", term.NewApp("f", []term.Term{term.NewVar(0)}))

	r := Unify(lhs, rhs, 0)
	assert.True(t, r.Success)
}

func Test_Unifiable_MatchesUnifySuccess(t *testing.T) {
	assert.True(t, Unifiable(term.NewVar(0), term.NewConst("a"), 0))
	assert.False(t, Unifiable(term.NewVar(0), term.NewApp("f", []term.Term{term.NewVar(0)}), 0))
}

func Test_ComposeSubstitutions(t *testing.T) {
	s1 := subst.Map{0: term.NewVar(1)}
	s2 := subst.Map{1: term.NewConst("c")}

	composed := ComposeSubstitutions(s1, s2)

	result := subst.Substitute(term.NewVar(0), composed, 0)
	assert.True(t, result.Equals(term.NewConst("c")))
}
