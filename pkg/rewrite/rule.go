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

import "github.com/orbisforge/folcore/pkg/term"

// Rule is an oriented rewrite rule (lhs, rhs, name) with the invariant that
// lhs is strictly greater than rhs under the system's Ordering.
type Rule struct {
	Lhs, Rhs term.Term
	Name     string
}

// IsOriented reports whether lhs ≻ rhs under ordering — i.e. whether this
// rule, as it stands, is acceptable for insertion into a RewriteSystem.
func (r Rule) IsOriented(ordering Ordering) bool {
	return ordering.Greater(r.Lhs, r.Rhs)
}

// Orient returns r unchanged if it is already oriented, the lhs/rhs-swapped
// rule if the reverse orientation would be valid, or false if neither
// direction is orientable (lhs and rhs are structurally incomparable or
// equal under ordering).
func (r Rule) Orient(ordering Ordering) (Rule, bool) {
	if ordering.Greater(r.Lhs, r.Rhs) {
		return r, true
	}

	if ordering.Greater(r.Rhs, r.Lhs) {
		return Rule{Lhs: r.Rhs, Rhs: r.Lhs, Name: r.Name}, true
	}

	return Rule{}, false
}

// Equals compares lhs and rhs structurally; names are not part of rule
// identity for duplicate detection.
func (r Rule) Equals(other Rule) bool {
	return r.Lhs.Equals(other.Lhs) && r.Rhs.Equals(other.Rhs)
}

// String renders "name: lhs -> rhs".
func (r Rule) String() string {
	return r.Name + ": " + r.Lhs.String() + " -> " + r.Rhs.String()
}

// Equation is an unoriented input form: a candidate equality lhs = rhs
// that must be oriented before it can become a Rule.
type Equation struct {
	Lhs, Rhs term.Term
}

// IsOrientable reports whether either direction is valid under ordering.
func (e Equation) IsOrientable(ordering Ordering) bool {
	return ordering.Greater(e.Lhs, e.Rhs) || ordering.Greater(e.Rhs, e.Lhs)
}

// Orient produces a Rule with lhs and rhs placed in ≻-descending order,
// naming it name.  Unlike Rule.Orient, which preserves the receiver
// in-place when it is already oriented, Equation.Orient always constructs
// a fresh Rule, since an Equation carries no rule identity of its own to
// preserve.
func (e Equation) Orient(ordering Ordering, name string) (Rule, bool) {
	if ordering.Greater(e.Lhs, e.Rhs) {
		return Rule{Lhs: e.Lhs, Rhs: e.Rhs, Name: name}, true
	}

	if ordering.Greater(e.Rhs, e.Lhs) {
		return Rule{Lhs: e.Rhs, Rhs: e.Lhs, Name: name}, true
	}

	return Rule{}, false
}

// String renders "lhs = rhs".
func (e Equation) String() string {
	return e.Lhs.String() + " = " + e.Rhs.String()
}
