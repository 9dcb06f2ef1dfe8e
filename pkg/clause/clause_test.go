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
package clause

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/assert"
)

func p(sym string) *term.Const { return term.NewConst(sym) }

func Test_IsTautology(t *testing.T) {
	atom := term.NewApp("P", []term.Term{term.NewVar(0)})
	c := New([]Literal{NewLiteral(atom, true), NewLiteral(atom, false)})

	assert.True(t, c.IsTautology())
}

func Test_Simplify_TautologyBecomesEmpty(t *testing.T) {
	atom := p("P")
	c := New([]Literal{NewLiteral(atom, true), NewLiteral(atom, false)})

	assert.True(t, c.Simplify().IsEmpty())
}

func Test_Simplify_RemovesDuplicates(t *testing.T) {
	atom := p("P")
	c := New([]Literal{NewLiteral(atom, true), NewLiteral(atom, true)})

	simplified := c.Simplify()
	assert.Equal(t, 1, len(simplified.Literals))
}

func Test_Simplify_Idempotent(t *testing.T) {
	atom := p("P")
	c := New([]Literal{NewLiteral(atom, true), NewLiteral(atom, true), NewLiteral(p("Q"), false)})

	once := c.Simplify()
	twice := once.Simplify()

	assert.True(t, once.Equals(twice))
}

func Test_Clause_Equals_OrderIndependent(t *testing.T) {
	a, b := p("A"), p("B")
	c1 := New([]Literal{NewLiteral(a, true), NewLiteral(b, false)})
	c2 := New([]Literal{NewLiteral(b, false), NewLiteral(a, true)})

	assert.True(t, c1.Equals(c2))
}

func Test_Clause_Hash_MatchesEquals(t *testing.T) {
	a := p("A")
	c1 := New([]Literal{NewLiteral(a, true)})
	c2 := New([]Literal{NewLiteral(a, true)})

	assert.Equal(t, c1.Hash(), c2.Hash())
}

func Test_Empty_SubsumesEverything(t *testing.T) {
	assert.True(t, Empty().Subsumes(New([]Literal{NewLiteral(p("A"), true)})))
}

func Test_Empty_OnlySubsumedBySelf(t *testing.T) {
	nonEmpty := New([]Literal{NewLiteral(p("A"), true)})

	assert.False(t, nonEmpty.Subsumes(Empty()))
	assert.True(t, Empty().Subsumes(Empty()))
}

// Scenario 5: resolution to empty clause.
func Test_Resolve_ToEmptyClause(t *testing.T) {
	atom := p("P")
	c1 := New([]Literal{NewLiteral(atom, true)})
	c2 := New([]Literal{NewLiteral(atom, false)})

	resolvent, _, ok := Resolve(c1, c2)
	assert.True(t, ok)
	assert.True(t, resolvent.IsEmpty())
}

func Test_Resolve_RequiresOppositePolarity(t *testing.T) {
	atom := p("P")
	c1 := New([]Literal{NewLiteral(atom, true)})
	c2 := New([]Literal{NewLiteral(atom, true)})

	_, _, ok := Resolve(c1, c2)
	assert.False(t, ok)
}

func Test_Factor_CollapsesUnifiableLiterals(t *testing.T) {
	atomX := term.NewApp("P", []term.Term{term.NewVar(0)})
	atomA := term.NewApp("P", []term.Term{term.NewConst("a")})

	c := New([]Literal{NewLiteral(atomX, true), NewLiteral(atomA, true)})
	factored := Factor(c)

	assert.Equal(t, 1, len(factored.Literals))
}

func Test_FindMaxVariableIndex_RealMaximum(t *testing.T) {
	c1 := New([]Literal{NewLiteral(term.NewApp("P", []term.Term{term.NewVar(2)}), true)})
	c2 := New([]Literal{NewLiteral(term.NewApp("Q", []term.Term{term.NewVar(7)}), false)})

	assert.Equal(t, uint(7), FindMaxVariableIndex(c1, c2))
}

func Test_RenameVariables_ShiftsAllFreeIndices(t *testing.T) {
	atom := term.NewApp("P", []term.Term{term.NewVar(0), term.NewVar(1)})
	c := New([]Literal{NewLiteral(atom, true)})

	renamed := c.RenameVariables(10)

	want := []Literal{NewLiteral(term.NewApp("P", []term.Term{term.NewVar(10), term.NewVar(11)}), true)}
	if diff := cmp.Diff(want, renamed.Literals); diff != "" {
		t.Errorf("renamed literals differ from expected (-want +got):\n%s", diff)
	}
}
