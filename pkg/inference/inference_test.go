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
package inference

import (
	"testing"

	"github.com/orbisforge/folcore/pkg/clause"
	"github.com/orbisforge/folcore/pkg/rewrite"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/assert"
)

// Scenario 6: paramodulation rewrites a subterm.
func Test_Paramodulate_RewritesSubterm(t *testing.T) {
	a, b := term.NewConst("a"), term.NewConst("b")
	equality := clause.New([]clause.Literal{
		clause.NewLiteral(term.NewApp(term.EqualitySymbol, []term.Term{a, b}), true),
	})
	target := clause.New([]clause.Literal{
		clause.NewLiteral(term.NewApp("P", []term.Term{a}), true),
	})

	result, ok := Paramodulate(equality, target, 0, 0, rewrite.Position{0})
	assert.True(t, ok)

	expected := term.NewApp("P", []term.Term{b})
	assert.True(t, result.Literals[0].Atom.Equals(expected))
}

func Test_Paramodulate_FailsOnNonEquality(t *testing.T) {
	c := clause.New([]clause.Literal{clause.NewLiteral(term.NewConst("a"), true)})
	target := clause.New([]clause.Literal{clause.NewLiteral(term.NewConst("a"), true)})

	_, ok := Paramodulate(c, target, 0, 0, rewrite.Position{})
	assert.False(t, ok)
}

func Test_FindParamodPositions_IncludesRootAndArguments(t *testing.T) {
	atom := term.NewApp("P", []term.Term{term.NewConst("a")})
	c := clause.New([]clause.Literal{clause.NewLiteral(atom, true)})

	positions := FindParamodPositions(c)

	assert.Equal(t, 2, len(positions)) // root P(a), and the argument a
}

func Test_HasEqualityLiterals(t *testing.T) {
	eq := clause.New([]clause.Literal{
		clause.NewLiteral(term.NewApp(term.EqualitySymbol, []term.Term{term.NewConst("a"), term.NewConst("b")}), true),
	})
	plain := clause.New([]clause.Literal{clause.NewLiteral(term.NewConst("a"), true)})

	assert.True(t, HasEqualityLiterals(eq))
	assert.False(t, HasEqualityLiterals(plain))
}

func Test_ResolveWithParamodulation_ResolutionOnlyWithoutEqualities(t *testing.T) {
	p := term.NewConst("P")
	np := term.NewConst("P")

	c1 := clause.New([]clause.Literal{clause.NewLiteral(p, true)})
	c2 := clause.New([]clause.Literal{clause.NewLiteral(np, false)})

	results := ResolveWithParamodulation(c1, c2)
	assert.True(t, len(results) >= 1)
	assert.True(t, results[0].IsEmpty())
}
