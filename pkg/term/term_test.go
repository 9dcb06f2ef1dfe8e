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
package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/orbisforge/folcore/pkg/util/assert"
)

func Test_Forall_IgnoresHint(t *testing.T) {
	a := NewForall("x", NewVar(0))
	b := NewForall("y", NewVar(0))

	assert.True(t, a.Equals(b), "forall equality should ignore the binder hint")
	assert.Equal(t, a.Hash(), b.Hash())
}

func Test_Exists_IgnoresHint(t *testing.T) {
	a := NewExists("x", NewConst("c"))
	b := NewExists("z", NewConst("c"))

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func Test_And_IsOrderSensitive(t *testing.T) {
	l, r := NewConst("a"), NewConst("b")
	lr := NewAnd(l, r)
	rl := NewAnd(r, l)

	assert.False(t, lr.Equals(rl))
}

func Test_App_EqualsRequiresSameArity(t *testing.T) {
	f2 := NewApp("f", []Term{NewConst("a"), NewConst("b")})
	f1 := NewApp("f", []Term{NewConst("a")})

	assert.False(t, f2.Equals(f1))
}

func Test_Clone_IsDeepAndIndependent(t *testing.T) {
	orig := NewApp("f", []Term{NewVar(0)})
	clone := orig.Clone().(*App)

	if diff := cmp.Diff(orig, clone); diff != "" {
		t.Errorf("clone differs from original (-orig +clone):\n%s", diff)
	}

	clone.Args[0] = NewConst("changed")

	assert.True(t, orig.Args[0].Equals(NewVar(0)), "mutating the clone must not affect the original")
}

func Test_IsEquality(t *testing.T) {
	eq := NewApp(EqualitySymbol, []Term{NewConst("a"), NewConst("b")})
	assert.True(t, IsEquality(eq))

	lhs, rhs := GetEqualitySides(eq)
	assert.True(t, lhs.Equals(NewConst("a")))
	assert.True(t, rhs.Equals(NewConst("b")))

	assert.False(t, IsEquality(NewConst("a")))
	assert.False(t, IsEquality(NewApp("=", []Term{NewConst("a")})))
}

func Test_GetEqualitySides_PanicsOnNonEquality(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic querying equality sides of a non-equality term")
		}
	}()

	GetEqualitySides(NewConst("a"))
}

func Test_FindAllVariables_RespectsBinderDepth(t *testing.T) {
	// forall x. Var(0) -> Var(1): the outer Var(1) is free (true index 0),
	// Var(0) is bound by the Forall.
	body := NewImplies(NewVar(0), NewVar(1))
	formula := NewForall("x", body)

	vars := FindAllVariables(formula, 0)

	if _, ok := vars[0]; !ok || len(vars) != 1 {
		t.Errorf("expected exactly {0}, got %v", vars)
	}
}

func Test_GetMaxVariableIndex_NoFreeVars(t *testing.T) {
	assert.Equal(t, uint(0), GetMaxVariableIndex(NewConst("a"), 0))
}

func Test_GetMaxVariableIndex_Mixed(t *testing.T) {
	// App(f, Var(2), Var(5)) at depth 0: true indices {2, 5}.
	app := NewApp("f", []Term{NewVar(2), NewVar(5)})
	assert.Equal(t, uint(5), GetMaxVariableIndex(app, 0))
}
