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
	log "github.com/sirupsen/logrus"

	"github.com/orbisforge/folcore/internal/gensym"
	"github.com/orbisforge/folcore/pkg/subst"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/unify"
)

// System is a set of oriented rewrite rules plus the Ordering used to
// orient them.  Duplicate rules (structurally equal lhs/rhs pairs) are
// rejected; removal is by rule name.
type System struct {
	ordering        Ordering
	rules           []Rule
	defaultMaxSteps uint
	log             *log.Entry
}

// Option configures a System at construction time.
type Option func(*System)

// WithMaxSteps sets the step budget used by NormalizeDefault.
func WithMaxSteps(n uint) Option {
	return func(s *System) { s.defaultMaxSteps = n }
}

// NewSystem constructs an empty rewrite system using the given ordering.
func NewSystem(ordering Ordering, opts ...Option) *System {
	s := &System{
		ordering:        ordering,
		defaultMaxSteps: 1000,
		log:             log.WithField("component", "rewrite"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Rules returns the rules currently in the system, in insertion order.
func (s *System) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// AddRule orients lhs -> rhs (or rhs -> lhs) under the system's ordering,
// assigns name if empty (via a freshly generated rule name), and inserts
// it.  Fails if neither direction orients, or if an identical rule already
// exists.
func (s *System) AddRule(lhs, rhs term.Term, name string) bool {
	if name == "" {
		name = s.GenerateRuleName()
	}

	rule, ok := Rule{Lhs: lhs, Rhs: rhs, Name: name}.Orient(s.ordering)
	if !ok {
		s.log.WithField("rule", name).Debug("rewrite rule rejected: not orientable")
		return false
	}

	return s.AddRuleDirect(rule)
}

// AddRuleDirect inserts an already-built rule, checking that it is oriented
// and not an exact duplicate of an existing rule.
func (s *System) AddRuleDirect(rule Rule) bool {
	if !rule.IsOriented(s.ordering) {
		return false
	}

	for _, existing := range s.rules {
		if existing.Equals(rule) {
			return false
		}
	}

	s.rules = append(s.rules, rule)
	s.log.WithField("rule", rule.String()).Trace("rewrite rule added")

	return true
}

// RemoveRule deletes the rule named name, reporting whether one was found.
func (s *System) RemoveRule(name string) bool {
	for i, r := range s.rules {
		if r.Name == name {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return true
		}
	}

	return false
}

// GenerateRuleName returns a fresh, never-before-used rule name.
func (s *System) GenerateRuleName() string {
	return gensym.Next("rule")
}

// TryApplyRule attempts to match t against rule.Lhs by unification (which
// is stronger than plain matching, and sufficient for the ground rewriting
// this kernel performs); on success it returns substitute(rule.Rhs, σ).
func TryApplyRule(t term.Term, rule Rule) (term.Term, bool) {
	r := unify.Unify(rule.Lhs, t, 0)
	if !r.Success {
		return nil, false
	}

	return subst.Substitute(rule.Rhs, r.Substitution, 0), true
}

// RewriteAt takes the subterm of t at position p, tries every rule in
// insertion order, and plugs the first successful rewrite back into t at
// p.  Returns the new term and the name of the rule used.
func (s *System) RewriteAt(t term.Term, p Position) (term.Term, string, bool) {
	sub, ok := SubtermAt(t, p)
	if !ok {
		return nil, "", false
	}

	for _, rule := range s.rules {
		if newSub, ok := TryApplyRule(sub, rule); ok {
			newTerm, ok := ReplaceAt(t, p, newSub)
			if !ok {
				continue
			}

			s.log.WithField("position", p.String()).WithField("rule", rule.Name).Trace("rewrite applied")

			return newTerm, rule.Name, true
		}
	}

	return nil, "", false
}

// RewriteStep performs one outermost-leftmost rewrite: try the root first;
// if nothing applies there, descend into each child in natural order and
// recurse, returning the first successful descendant result with its
// position prefixed by the descent index.
func (s *System) RewriteStep(t term.Term) (term.Term, Position, string, bool) {
	if newTerm, ruleName, ok := s.RewriteAt(t, Root()); ok {
		return newTerm, Root(), ruleName, true
	}

	n := childCount(t)
	for i := uint(0); i < n; i++ {
		child, ok := childAt(t, i)
		if !ok {
			continue
		}

		if newChild, pos, ruleName, ok := s.RewriteStep(child); ok {
			newTerm, ok := withChildAt(t, i, newChild)
			if !ok {
				continue
			}

			return newTerm, pos.descendFront(i), ruleName, true
		}
	}

	return nil, nil, "", false
}

// descendFront prepends i to p (used by RewriteStep to build up a position
// from the bottom of the recursion outward).
func (p Position) descendFront(i uint) Position {
	next := make(Position, len(p)+1)
	next[0] = i
	copy(next[1:], p)

	return next
}

// IsNormalForm reports whether no rewrite step applies anywhere in t.
func (s *System) IsNormalForm(t term.Term) bool {
	_, _, _, ok := s.RewriteStep(t)
	return !ok
}

// Normalize repeatedly applies RewriteStep until it fails (a fixpoint) or
// maxSteps steps have been taken, whichever comes first, returning the last
// term reached.
func (s *System) Normalize(t term.Term, maxSteps uint) term.Term {
	current := t

	for i := uint(0); i < maxSteps; i++ {
		next, _, _, ok := s.RewriteStep(current)
		if !ok {
			break
		}

		current = next
	}

	return current
}

// NormalizeDefault normalizes using the system's configured default step
// budget (see WithMaxSteps).
func (s *System) NormalizeDefault(t term.Term) term.Term {
	return s.Normalize(t, s.defaultMaxSteps)
}

// Joinable reports whether t1 and t2 normalize to the same term within
// maxSteps.
func (s *System) Joinable(t1, t2 term.Term, maxSteps uint) bool {
	return s.Normalize(t1, maxSteps).Equals(s.Normalize(t2, maxSteps))
}

// FindRedexPositions enumerates every position in t at which rule applies.
// Unlike the source this was ported from — which only recursed into
// FunctionApplication arguments and And's children, leaving every other
// connective and binder unvisited — this walks every positional child of
// every variant, since nothing in this kernel's contract says redex search
// should be partial.
func (s *System) FindRedexPositions(t term.Term, rule Rule) []Position {
	var positions []Position

	findRedexPositions(t, rule, Root(), &positions)

	return positions
}

func findRedexPositions(t term.Term, rule Rule, here Position, out *[]Position) {
	if _, ok := TryApplyRule(t, rule); ok {
		*out = append(*out, here)
	}

	n := childCount(t)
	for i := uint(0); i < n; i++ {
		child, ok := childAt(t, i)
		if !ok {
			continue
		}

		findRedexPositions(child, rule, here.Descend(i), out)
	}
}
