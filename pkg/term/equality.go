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

import "fmt"

// EqualitySymbol is the reserved App symbol recognised by IsEquality.
const EqualitySymbol = "="

// IsEquality reports whether t is the special binary application
// App("=", [l, r]).
func IsEquality(t Term) bool {
	a, ok := t.(*App)
	return ok && a.Symbol == EqualitySymbol && len(a.Args) == 2
}

// GetEqualitySides returns the two sides of an equality atom.  Querying the
// sides of a non-equality term is a programmer error — callers must check
// IsEquality first — and panics rather than returning a zero value.
func GetEqualitySides(t Term) (lhs, rhs Term) {
	if !IsEquality(t) {
		panic(fmt.Sprintf("term is not an equality atom: %s", t.String()))
	}

	a := t.(*App)

	return a.Args[0], a.Args[1]
}

// VarSet is a set of true (depth-adjusted) De Bruijn indices, as produced by
// FindAllVariables.
type VarSet map[uint]struct{}

// Add inserts idx into the set.
func (s VarSet) Add(idx uint) { s[idx] = struct{}{} }

// Union merges other into s in place.
func (s VarSet) Union(other VarSet) {
	for idx := range other {
		s.Add(idx)
	}
}

// FindAllVariables walks t and collects the true free-variable indices:
// whenever a Var(i) is found with i >= depth, i-depth is added to the
// result.  depth increases by one under each binder.
func FindAllVariables(t Term, depth uint) VarSet {
	result := make(VarSet)
	findAllVariables(t, depth, result)

	return result
}

func findAllVariables(t Term, depth uint, out VarSet) {
	switch n := t.(type) {
	case *Var:
		if n.Index >= depth {
			out.Add(n.Index - depth)
		}
	case *Const:
		// no variables
	case *App:
		for _, arg := range n.Args {
			findAllVariables(arg, depth, out)
		}
	case *Forall:
		findAllVariables(n.Body, depth+1, out)
	case *Exists:
		findAllVariables(n.Body, depth+1, out)
	case *And:
		findAllVariables(n.Left, depth, out)
		findAllVariables(n.Right, depth, out)
	case *Or:
		findAllVariables(n.Left, depth, out)
		findAllVariables(n.Right, depth, out)
	case *Not:
		findAllVariables(n.Body, depth, out)
	case *Implies:
		findAllVariables(n.Antecedent, depth, out)
		findAllVariables(n.Consequent, depth, out)
	default:
		panic(fmt.Sprintf("unsupported term kind in FindAllVariables: %T", t))
	}
}

// GetMaxVariableIndex returns the largest true free-variable index in t at
// the given depth, or 0 if t has no free variables.  This mirrors the
// original's quirk of overloading 0 for both "no free variables" and "the
// maximum free index is 0"; callers that must distinguish the two cases
// should call FindAllVariables directly and check len(set) == 0.
func GetMaxVariableIndex(t Term, depth uint) uint {
	vars := FindAllVariables(t, depth)

	var max uint

	for idx := range vars {
		if idx > max {
			max = idx
		}
	}

	return max
}
