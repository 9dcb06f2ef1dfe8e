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
package rewrite

import (
	"testing"

	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/assert"
)

func Test_SubtermAt_And_ReplaceAt_RoundTrip(t *testing.T) {
	tm := term.NewApp("f", []term.Term{term.NewConst("a"), term.NewConst("b")})

	sub, ok := SubtermAt(tm, Position{1})
	assert.True(t, ok)
	assert.True(t, sub.Equals(term.NewConst("b")))

	replaced, ok := ReplaceAt(tm, Position{1}, term.NewConst("c"))
	assert.True(t, ok)
	assert.True(t, replaced.Equals(term.NewApp("f", []term.Term{term.NewConst("a"), term.NewConst("c")})))
}

func Test_SubtermAt_InvalidPositionFails(t *testing.T) {
	_, ok := SubtermAt(term.NewConst("a"), Position{0})
	assert.False(t, ok)
}

func Test_SizeOrdering_PrefersMoreNodes(t *testing.T) {
	small := term.NewConst("a")
	big := term.NewApp("f", []term.Term{term.NewConst("a"), term.NewConst("b")})

	ord := SizeOrdering{}
	assert.True(t, ord.Greater(big, small))
	assert.False(t, ord.Greater(small, big))
}

func Test_AddRule_RejectsDuplicate(t *testing.T) {
	sys := NewSystem(SizeOrdering{})
	lhs := term.NewApp("f", []term.Term{term.NewConst("a")})
	rhs := term.NewConst("a")

	assert.True(t, sys.AddRule(lhs, rhs, "r1"))
	assert.False(t, sys.AddRule(lhs, rhs, "r2"))
}

func Test_AddRule_RejectsUnorientable(t *testing.T) {
	sys := NewSystem(SizeOrdering{})
	c := term.NewConst("a")

	assert.False(t, sys.AddRule(c, c, "identity"))
}

func Test_Normalize_ReducesToFixpoint(t *testing.T) {
	sys := NewSystem(SizeOrdering{})
	// f(a) -> a
	sys.AddRule(term.NewApp("f", []term.Term{term.NewConst("a")}), term.NewConst("a"), "collapse")

	start := term.NewApp("f", []term.Term{term.NewApp("f", []term.Term{term.NewConst("a")})})
	result := sys.Normalize(start, 10)

	assert.True(t, result.Equals(term.NewConst("a")))
	assert.True(t, sys.IsNormalForm(result))
}

func Test_Joinable(t *testing.T) {
	sys := NewSystem(SizeOrdering{})
	sys.AddRule(term.NewApp("f", []term.Term{term.NewConst("a")}), term.NewConst("a"), "collapse")

	t1 := term.NewApp("f", []term.Term{term.NewConst("a")})
	t2 := term.NewConst("a")

	assert.True(t, sys.Joinable(t1, t2, 10))
}

func Test_RewriteStep_OutermostLeftmost(t *testing.T) {
	sys := NewSystem(SizeOrdering{})
	// Root-level rule: g(x) -> x, for any x (unification-based matching).
	sys.AddRule(term.NewApp("g", []term.Term{term.NewVar(0)}), term.NewVar(0), "g-elim")

	start := term.NewApp("g", []term.Term{term.NewConst("z")})
	result, pos, name, ok := sys.RewriteStep(start)

	assert.True(t, ok)
	assert.True(t, pos.IsRoot())
	assert.Equal(t, "g-elim", name)
	assert.True(t, result.Equals(term.NewConst("z")))
}

func Test_FindRedexPositions(t *testing.T) {
	sys := NewSystem(SizeOrdering{})
	rule := Rule{Lhs: term.NewConst("a"), Rhs: term.NewConst("b"), Name: "r"}

	tm := term.NewAnd(term.NewConst("a"), term.NewOr(term.NewConst("a"), term.NewConst("c")))
	positions := sys.FindRedexPositions(tm, rule)

	assert.Equal(t, 2, len(positions))
}
