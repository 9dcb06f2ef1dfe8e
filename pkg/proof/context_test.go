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
package proof

import (
	"testing"

	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/assert"
)

func Test_CreateInitialState_RegistersInContext(t *testing.T) {
	ctx := NewContext()
	s := ctx.CreateInitialState(term.NewConst("P"))

	assert.Equal(t, uint(1), ctx.Size())

	found, ok := ctx.FindState(s)
	assert.True(t, ok)
	assert.True(t, found == s)
}

func Test_AddState_DeduplicatesStructurallyIdenticalStates(t *testing.T) {
	ctx := NewContext()
	goal := term.NewConst("P")

	s1 := CreateInitial(goal)
	s2 := CreateInitial(goal)

	canonical1 := ctx.AddState(s1)
	canonical2 := ctx.AddState(s2)

	assert.True(t, canonical1 == canonical2)
	assert.Equal(t, uint(1), ctx.Size())
}

func Test_ApplyRule_ProducesChildAndDeduplicates(t *testing.T) {
	ctx := NewContext()
	p, q := term.NewConst("P"), term.NewConst("Q")
	root := ctx.CreateInitialState(p)

	child1, ok := ctx.ApplyRule(root, "rule", nil, []Hypothesis{{Name: "h0", Formula: q}}, p)
	assert.True(t, ok)

	child2, ok := ctx.ApplyRule(root, "rule", nil, []Hypothesis{{Name: "h0", Formula: q}}, p)
	assert.True(t, ok)

	assert.True(t, child1 == child2)
	assert.Equal(t, uint(2), ctx.Size())
}

func Test_GetLeafStates_ExcludesInternalNodes(t *testing.T) {
	ctx := NewContext()
	p, q, r := term.NewConst("P"), term.NewConst("Q"), term.NewConst("R")

	root := ctx.CreateInitialState(p)
	child, _ := ctx.ApplyRule(root, "r1", nil, nil, q)
	_, _ = ctx.ApplyRule(child, "r2", nil, nil, r)

	leaves := ctx.GetLeafStates()
	assert.Equal(t, 1, len(leaves))
	assert.True(t, leaves[0].Goal.Equals(r))
}

func Test_GetProvedStates_FiltersByIsProved(t *testing.T) {
	ctx := NewContext()
	p := term.NewConst("P")

	root := ctx.CreateInitialState(p)
	root.MarkAsProved(StatusProvedByRule, "axiom")

	other := ctx.CreateInitialState(term.NewConst("Q"))
	_ = other

	proved := ctx.GetProvedStates()
	assert.Equal(t, 1, len(proved))
}

func Test_FreshName_UsesConfiguredPrefix(t *testing.T) {
	ctx := NewContext(WithGensymPrefix("hyp"))
	name := ctx.FreshName()

	assert.True(t, len(name) > len("hyp_"))
	assert.Equal(t, "hyp", name[:3])
}
