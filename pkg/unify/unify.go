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

// Package unify implements Robinson first-order unification with occurs
// check, at arbitrary binding depth, over pkg/term's De Bruijn terms.
package unify

import (
	"github.com/orbisforge/folcore/pkg/subst"
	"github.com/orbisforge/folcore/pkg/term"
)

// Result carries the outcome of an attempted unification.  Unification
// failure is an ordinary, expected algorithmic outcome (not a programmer
// error), so it is reported as a result record rather than a panic or
// error.
type Result struct {
	Success      bool
	Substitution subst.Map
	ErrorMessage string
}

func failure(reason string) Result {
	return Result{Success: false, ErrorMessage: reason}
}

func success(s subst.Map) Result {
	return Result{Success: true, Substitution: s}
}

// IsFreeVariable reports whether a De Bruijn index is free relative to
// depth: index >= depth.
func IsFreeVariable(index, depth uint) bool {
	return index >= depth
}

// Unify attempts to find the most general unifier of t1 and t2, starting
// from an empty substitution at the given depth.
func Unify(t1, t2 term.Term, depth uint) Result {
	s := make(subst.Map)
	if !unifyImpl(t1, t2, s, depth) {
		return failure("terms do not unify")
	}

	return success(s)
}

// Unifiable reports whether t1 and t2 unify, discarding the substitution.
func Unifiable(t1, t2 term.Term, depth uint) bool {
	s := make(subst.Map)
	return unifyImpl(t1, t2, s, depth)
}

// unifyImpl mutates s in place and reports success.  The structure mirrors
// the original exactly: first a fast structural-equality exit, then the
// current substitution is applied to both sides before the real case
// analysis, so that variables already bound earlier in the same unification
// are seen through.
func unifyImpl(t1, t2 term.Term, s subst.Map, depth uint) bool {
	if t1.Equals(t2) {
		return true
	}

	st1 := subst.Substitute(t1, s, depth)
	st2 := subst.Substitute(t2, s, depth)

	if st1.Equals(st2) {
		return true
	}

	if v1, ok := st1.(*term.Var); ok && IsFreeVariable(v1.Index, depth) {
		k := v1.Index - depth
		if OccursCheck(k, st2, depth) {
			return false
		}

		s[k] = st2

		return true
	}

	if v2, ok := st2.(*term.Var); ok && IsFreeVariable(v2.Index, depth) {
		k := v2.Index - depth
		if OccursCheck(k, st1, depth) {
			return false
		}

		s[k] = st1

		return true
	}

	switch n1 := st1.(type) {
	case *term.Const:
		n2, ok := st2.(*term.Const)
		return ok && n1.Symbol == n2.Symbol
	case *term.App:
		n2, ok := st2.(*term.App)
		if !ok || n1.Symbol != n2.Symbol || len(n1.Args) != len(n2.Args) {
			return false
		}

		for i := range n1.Args {
			if !unifyImpl(n1.Args[i], n2.Args[i], s, depth) {
				return false
			}
		}

		return true
	case *term.Forall:
		n2, ok := st2.(*term.Forall)
		return ok && unifyImpl(n1.Body, n2.Body, s, depth+1)
	case *term.Exists:
		n2, ok := st2.(*term.Exists)
		return ok && unifyImpl(n1.Body, n2.Body, s, depth+1)
	case *term.And:
		n2, ok := st2.(*term.And)
		return ok && unifyImpl(n1.Left, n2.Left, s, depth) && unifyImpl(n1.Right, n2.Right, s, depth)
	case *term.Or:
		n2, ok := st2.(*term.Or)
		return ok && unifyImpl(n1.Left, n2.Left, s, depth) && unifyImpl(n1.Right, n2.Right, s, depth)
	case *term.Implies:
		n2, ok := st2.(*term.Implies)
		return ok && unifyImpl(n1.Antecedent, n2.Antecedent, s, depth) &&
			unifyImpl(n1.Consequent, n2.Consequent, s, depth)
	case *term.Not:
		n2, ok := st2.(*term.Not)
		return ok && unifyImpl(n1.Body, n2.Body, s, depth)
	default:
		return false
	}
}

// OccursCheck reports whether the true variable index varIndex (relative to
// depth) occurs free anywhere in t.  A positive result means binding
// varIndex to t would create a cyclic substitution.
func OccursCheck(varIndex uint, t term.Term, depth uint) bool {
	switch n := t.(type) {
	case *term.Var:
		return IsFreeVariable(n.Index, depth) && (n.Index-depth) == varIndex
	case *term.Const:
		return false
	case *term.App:
		for _, arg := range n.Args {
			if OccursCheck(varIndex, arg, depth) {
				return true
			}
		}

		return false
	case *term.Forall:
		return OccursCheck(varIndex, n.Body, depth+1)
	case *term.Exists:
		return OccursCheck(varIndex, n.Body, depth+1)
	case *term.And:
		return OccursCheck(varIndex, n.Left, depth) || OccursCheck(varIndex, n.Right, depth)
	case *term.Or:
		return OccursCheck(varIndex, n.Left, depth) || OccursCheck(varIndex, n.Right, depth)
	case *term.Implies:
		return OccursCheck(varIndex, n.Antecedent, depth) || OccursCheck(varIndex, n.Consequent, depth)
	case *term.Not:
		return OccursCheck(varIndex, n.Body, depth)
	default:
		return false
	}
}

// ComposeSubstitutions is an alias for subst.Compose, exposed here because
// callers reasoning about unifiers rarely import pkg/subst directly.
func ComposeSubstitutions(s1, s2 subst.Map) subst.Map {
	return subst.Compose(s1, s2)
}
