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
	log "github.com/sirupsen/logrus"

	"github.com/orbisforge/folcore/internal/gensym"
	"github.com/orbisforge/folcore/pkg/term"
	"github.com/orbisforge/folcore/pkg/util/collection/hash"
)

// Context owns the set of all proof states reachable in a proof session,
// deduplicating structurally-identical states so the search never explores
// the same sequent twice.  The dedup/enumeration backbone is a
// hash.Set[*State]: Get gives content-addressed lookup of the canonical
// instance, Items gives full enumeration for leaf/proved queries.
type Context struct {
	states       *hash.Set[*State]
	gensymPrefix string
	log          *log.Entry
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithGensymPrefix overrides the prefix used when a rule application needs
// a fresh hypothesis or metavariable name but was not given one explicitly.
func WithGensymPrefix(prefix string) Option {
	return func(c *Context) {
		c.gensymPrefix = prefix
	}
}

// NewContext creates an empty proof context.
func NewContext(opts ...Option) *Context {
	c := &Context{
		states:       hash.NewSet[*State](16),
		gensymPrefix: "h",
		log:          log.WithField("component", "proof"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateInitialState builds and registers the root state for goal.
func (c *Context) CreateInitialState(goal term.Term) *State {
	s := CreateInitial(goal)
	c.AddState(s)

	return s
}

// AddState registers s in this context's dedup set, returning the
// canonical instance: if a structurally-identical state was already
// present, that earlier instance is returned instead of s.
func (c *Context) AddState(s *State) *State {
	if existing, ok := c.states.Get(s); ok {
		return existing
	}

	c.states.Insert(s)

	return s
}

// FindState looks up the canonical instance structurally equal to s, if
// this context has seen one.
func (c *Context) FindState(s *State) (*State, bool) {
	return c.states.Get(s)
}

// FreshName generates a fresh hypothesis/metavariable name using this
// context's gensym prefix.
func (c *Context) FreshName() string {
	return gensym.Next(c.gensymPrefix)
}

// ApplyRule derives a child of parent via CreateFrom, validates the
// application, and registers the result — returning the existing canonical
// state if an equal one was already known (common subexpression
// elimination across independent derivation paths).
//
// validateRuleApplication is currently a placeholder that always succeeds;
// see pkg/rules for the rule-specific preconditions layered on top of this
// generic bookkeeping.
func (c *Context) ApplyRule(
	parent *State,
	ruleName string,
	premiseNames []string,
	newHyps []Hypothesis,
	newGoal term.Term,
) (*State, bool) {
	if !validateRuleApplication(parent, ruleName, premiseNames, newHyps, newGoal) {
		c.log.WithField("rule", ruleName).Debug("rule application rejected")

		return nil, false
	}

	child := CreateFrom(parent, ruleName, premiseNames, newHyps, newGoal)

	return c.AddState(child), true
}

// validateRuleApplication is a hook for rule-specific precondition checks.
// It always returns true today: pkg/rules's individual ProofRule
// implementations are responsible for rejecting ill-formed applications
// before ever calling ApplyRule, so this generic layer has nothing further
// to check yet.
func validateRuleApplication(_ *State, _ string, _ []string, _ []Hypothesis, _ term.Term) bool {
	return true
}

// GetLeafStates returns every registered state that is not the parent of
// any other registered state.
func (c *Context) GetLeafStates() []*State {
	all := c.states.Items()

	isParent := make(map[*State]bool, len(all))
	for _, s := range all {
		if s.Parent != nil {
			isParent[s.Parent] = true
		}
	}

	var leaves []*State

	for _, s := range all {
		if !isParent[s] {
			leaves = append(leaves, s)
		}
	}

	return leaves
}

// GetProvedStates returns every registered state for which IsProved holds.
func (c *Context) GetProvedStates() []*State {
	var proved []*State

	for _, s := range c.states.Items() {
		if s.IsProved() {
			proved = append(proved, s)
		}
	}

	return proved
}

// Size returns the number of distinct states registered in this context.
func (c *Context) Size() uint {
	return c.states.Size()
}
