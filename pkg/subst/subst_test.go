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
package subst

import (
	"testing"

	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/assert"
)

// Scenario 1: bound variable immune to substitution.
func Test_Substitute_BoundVariableUnaffected(t *testing.T) {
	formula := term.NewForall("x", term.NewVar(0))
	s := Map{0: term.NewConst("A")}

	result := Substitute(formula, s, 0)

	assert.True(t, formula.Equals(result))
}

// Scenario 2: free variable substituted under one binder.
func Test_Substitute_FreeVariableUnderOneBinder(t *testing.T) {
	formula := term.NewForall("x", term.NewImplies(term.NewVar(0), term.NewVar(1)))
	s := Map{0: term.NewConst("B")}

	result := Substitute(formula, s, 0)
	expected := term.NewForall("x", term.NewImplies(term.NewVar(0), term.NewConst("B")))

	assert.True(t, expected.Equals(result))
}

// Scenario 3: capture avoidance.  Substitute shifts the replacement with a
// cutoff equal to the depth (1 here), so the injected Var(0) lies below the
// cutoff, is inserted unchanged, and the result is forall x. Var(0).
func Test_Substitute_CaptureAvoidance(t *testing.T) {
	formula := term.NewForall("x", term.NewVar(1))
	s := Map{0: term.NewVar(0)}

	result := Substitute(formula, s, 0)
	expected := term.NewForall("x", term.NewVar(0))

	assert.True(t, expected.Equals(result))
}

func Test_Substitute_EmptyMapIsIdentity(t *testing.T) {
	formula := term.NewApp("f", []term.Term{term.NewVar(0), term.NewConst("c")})

	assert.True(t, formula.Equals(Substitute(formula, Map{}, 0)))
}

func Test_Shift_BoundVariablesUnaffected(t *testing.T) {
	v := term.NewVar(2)
	result := Shift(v, 5, 3)

	assert.True(t, result.Equals(term.NewVar(2)))
}

func Test_Shift_FreeVariablesShifted(t *testing.T) {
	v := term.NewVar(3)
	result := Shift(v, 5, 3)

	assert.True(t, result.Equals(term.NewVar(8)))
}

func Test_Shift_NegativeAmountPanicsBelowZero(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic shifting an index below zero")
		}
	}()

	Shift(term.NewVar(0), -1, 0)
}

func Test_Shift_AcrossTwoNestedBinders(t *testing.T) {
	// forall x. forall y. Var(2) (a variable free outside both binders)
	formula := term.NewForall("x", term.NewForall("y", term.NewVar(2)))

	result := Shift(formula, 3, 0)
	expected := term.NewForall("x", term.NewForall("y", term.NewVar(5)))

	assert.True(t, expected.Equals(result))
}

func Test_Compose_MatchesSequentialApplication(t *testing.T) {
	s1 := Map{0: term.NewVar(1)}
	s2 := Map{1: term.NewConst("c")}

	composed := Compose(s1, s2)

	formula := term.NewVar(0)
	viaCompose := Substitute(formula, composed, 0)
	viaSequential := Substitute(Substitute(formula, s1, 0), s2, 0)

	assert.True(t, viaCompose.Equals(viaSequential))
}
