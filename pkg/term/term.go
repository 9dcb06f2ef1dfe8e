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

// Package term implements the De Bruijn-indexed term representation at the
// bottom of the dependency graph: every other package (subst, unify,
// rewrite, clause, proof, rules) builds on the immutable tagged tree defined
// here.
package term

import "fmt"

// Kind tags which variant a Term is, standing in for the original's virtual
// dispatch on a TermDB base class: a closed tagged union is the idiomatic Go
// equivalent of a closed class hierarchy.
type Kind uint8

// The nine term variants.  This set is closed; adding a tenth requires
// touching every type switch in this package (and subst/unify/rewrite).
const (
	KindVar Kind = iota
	KindConst
	KindApp
	KindForall
	KindExists
	KindAnd
	KindOr
	KindNot
	KindImplies
)

// Term is an immutable node of a first-order formula.  Construction always
// yields a fresh node; there is no in-place mutation through aliases.
// Sub-term sharing between distinct trees is legal and encouraged, but
// equality must never rely on pointer identity — only Equals/Hash do.
type Term interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Equals reports structural (alpha-)equality: identical shape modulo
	// Forall/Exists binder hints.
	Equals(other Term) bool
	// Hash returns a hashcode consistent with Equals: equal terms share a
	// hash.
	Hash() uint64
	// Clone returns a deep copy, carrying over any opaque type annotation.
	Clone() Term
	// String renders a debug form; not meant for parsing.
	String() string
}

// ============================================================================
// Var
// ============================================================================

// Var is a De Bruijn-indexed variable.  Index counts enclosing binders from
// innermost (0) outward; at a given depth d, Index >= d denotes a free
// variable whose true index is Index - d.
type Var struct {
	Index uint
	// Type is an opaque annotation; the kernel never inspects it beyond
	// propagating it on Clone.
	Type any
}

// NewVar constructs a variable with De Bruijn index idx, and an optional
// opaque type annotation.
func NewVar(idx uint, typ ...any) *Var {
	v := &Var{Index: idx}
	if len(typ) > 0 {
		v.Type = typ[0]
	}

	return v
}

// Kind returns KindVar.
func (v *Var) Kind() Kind { return KindVar }

// Equals compares De Bruijn indices.
func (v *Var) Equals(other Term) bool {
	o, ok := other.(*Var)
	return ok && v.Index == o.Index
}

// Hash hashes the De Bruijn index directly.
func (v *Var) Hash() uint64 { return uint64(v.Index) }

// Clone returns a fresh Var node carrying the same type annotation.
func (v *Var) Clone() Term { return &Var{Index: v.Index, Type: v.Type} }

// String renders e.g. "#3".
func (v *Var) String() string { return fmt.Sprintf("#%d", v.Index) }

// ============================================================================
// Const
// ============================================================================

// Const is a nullary symbol.
type Const struct {
	Symbol string
	Type   any
}

// NewConst constructs a constant named sym, with an optional opaque type.
func NewConst(sym string, typ ...any) *Const {
	c := &Const{Symbol: sym}
	if len(typ) > 0 {
		c.Type = typ[0]
	}

	return c
}

// Kind returns KindConst.
func (c *Const) Kind() Kind { return KindConst }

// Equals compares symbols.
func (c *Const) Equals(other Term) bool {
	o, ok := other.(*Const)
	return ok && c.Symbol == o.Symbol
}

// Hash hashes the symbol string.
func (c *Const) Hash() uint64 { return hashString(c.Symbol) }

// Clone returns a fresh Const node carrying the same type annotation.
func (c *Const) Clone() Term { return &Const{Symbol: c.Symbol, Type: c.Type} }

// String renders the bare symbol.
func (c *Const) String() string { return c.Symbol }

// ============================================================================
// App
// ============================================================================

// App is an application of a function/predicate symbol to zero or more
// arguments.  An equality atom is the special form App("=", [l, r]).
type App struct {
	Symbol string
	Args   []Term
	Type   any
}

// NewApp constructs a function application, with an optional opaque type.
// Arity is whatever len(args) supplies, including zero.
func NewApp(sym string, args []Term, typ ...any) *App {
	a := &App{Symbol: sym, Args: args}
	if len(typ) > 0 {
		a.Type = typ[0]
	}

	return a
}

// Kind returns KindApp.
func (a *App) Kind() Kind { return KindApp }

// Equals compares symbol, arity and arguments pointwise.
func (a *App) Equals(other Term) bool {
	o, ok := other.(*App)
	if !ok || a.Symbol != o.Symbol || len(a.Args) != len(o.Args) {
		return false
	}

	for i := range a.Args {
		if !a.Args[i].Equals(o.Args[i]) {
			return false
		}
	}

	return true
}

// Hash seeds with the symbol's hash, then folds in each argument's hash in
// order.
func (a *App) Hash() uint64 {
	seed := hashString(a.Symbol)
	for _, arg := range a.Args {
		hashCombine(&seed, arg.Hash())
	}

	return seed
}

// Clone returns a fresh App node with deeply-cloned arguments.
func (a *App) Clone() Term {
	args := make([]Term, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.Clone()
	}

	return &App{Symbol: a.Symbol, Args: args, Type: a.Type}
}

// String renders e.g. "f(x,y)".
func (a *App) String() string {
	s := a.Symbol + "("

	for i, arg := range a.Args {
		if i > 0 {
			s += ","
		}

		s += arg.String()
	}

	return s + ")"
}

// ============================================================================
// Forall / Exists
// ============================================================================

// Forall is universal quantification.  Hint is a cosmetic binder name;
// Equals and Hash both ignore it, so Forall("x", b) == Forall("y", b).
type Forall struct {
	Hint string
	Body Term
}

// NewForall constructs a universal quantifier over body, with the given
// cosmetic hint (may be empty).
func NewForall(hint string, body Term) *Forall { return &Forall{Hint: hint, Body: body} }

// Kind returns KindForall.
func (f *Forall) Kind() Kind { return KindForall }

// Equals compares bodies only; the hint is cosmetic.
func (f *Forall) Equals(other Term) bool {
	o, ok := other.(*Forall)
	return ok && f.Body.Equals(o.Body)
}

// Hash mixes the Forall salt with the body's hash; the hint is not mixed in.
func (f *Forall) Hash() uint64 {
	seed := saltForall
	hashCombine(&seed, f.Body.Hash())

	return seed
}

// Clone returns a fresh Forall node with a deeply-cloned body.
func (f *Forall) Clone() Term { return &Forall{Hint: f.Hint, Body: f.Body.Clone()} }

// String renders e.g. "forall x. body".
func (f *Forall) String() string { return "forall " + f.Hint + ". " + f.Body.String() }

// Exists is existential quantification; see Forall for binder-hint
// semantics.
type Exists struct {
	Hint string
	Body Term
}

// NewExists constructs an existential quantifier over body.
func NewExists(hint string, body Term) *Exists { return &Exists{Hint: hint, Body: body} }

// Kind returns KindExists.
func (e *Exists) Kind() Kind { return KindExists }

// Equals compares bodies only; the hint is cosmetic.
func (e *Exists) Equals(other Term) bool {
	o, ok := other.(*Exists)
	return ok && e.Body.Equals(o.Body)
}

// Hash mixes the Exists salt with the body's hash.
func (e *Exists) Hash() uint64 {
	seed := saltExists
	hashCombine(&seed, e.Body.Hash())

	return seed
}

// Clone returns a fresh Exists node with a deeply-cloned body.
func (e *Exists) Clone() Term { return &Exists{Hint: e.Hint, Body: e.Body.Clone()} }

// String renders e.g. "exists x. body".
func (e *Exists) String() string { return "exists " + e.Hint + ". " + e.Body.String() }

// ============================================================================
// Propositional connectives
// ============================================================================

// And is conjunction.
type And struct{ Left, Right Term }

// NewAnd constructs l /\ r.
func NewAnd(l, r Term) *And { return &And{Left: l, Right: r} }

// Kind returns KindAnd.
func (n *And) Kind() Kind { return KindAnd }

// Equals compares both sides.
func (n *And) Equals(other Term) bool {
	o, ok := other.(*And)
	return ok && n.Left.Equals(o.Left) && n.Right.Equals(o.Right)
}

// Hash mixes the And salt with both sides' hashes, in order.
func (n *And) Hash() uint64 {
	seed := saltAnd
	hashCombine(&seed, n.Left.Hash())
	hashCombine(&seed, n.Right.Hash())

	return seed
}

// Clone returns a fresh And node with deeply-cloned sides.
func (n *And) Clone() Term { return &And{Left: n.Left.Clone(), Right: n.Right.Clone()} }

// String renders e.g. "(l /\ r)".
func (n *And) String() string { return "(" + n.Left.String() + " /\\ " + n.Right.String() + ")" }

// Or is disjunction.
type Or struct{ Left, Right Term }

// NewOr constructs l \/ r.
func NewOr(l, r Term) *Or { return &Or{Left: l, Right: r} }

// Kind returns KindOr.
func (n *Or) Kind() Kind { return KindOr }

// Equals compares both sides.
func (n *Or) Equals(other Term) bool {
	o, ok := other.(*Or)
	return ok && n.Left.Equals(o.Left) && n.Right.Equals(o.Right)
}

// Hash mixes the Or salt with both sides' hashes, in order.
func (n *Or) Hash() uint64 {
	seed := saltOr
	hashCombine(&seed, n.Left.Hash())
	hashCombine(&seed, n.Right.Hash())

	return seed
}

// Clone returns a fresh Or node with deeply-cloned sides.
func (n *Or) Clone() Term { return &Or{Left: n.Left.Clone(), Right: n.Right.Clone()} }

// String renders e.g. "(l \/ r)".
func (n *Or) String() string { return "(" + n.Left.String() + " \\/ " + n.Right.String() + ")" }

// Not is negation.
type Not struct{ Body Term }

// NewNot constructs ~x.
func NewNot(body Term) *Not { return &Not{Body: body} }

// Kind returns KindNot.
func (n *Not) Kind() Kind { return KindNot }

// Equals compares the body.
func (n *Not) Equals(other Term) bool {
	o, ok := other.(*Not)
	return ok && n.Body.Equals(o.Body)
}

// Hash mixes the Not salt with the body's hash.
func (n *Not) Hash() uint64 {
	seed := saltNot
	hashCombine(&seed, n.Body.Hash())

	return seed
}

// Clone returns a fresh Not node with a deeply-cloned body.
func (n *Not) Clone() Term { return &Not{Body: n.Body.Clone()} }

// String renders e.g. "~x".
func (n *Not) String() string { return "~" + n.Body.String() }

// Implies is material implication.
type Implies struct{ Antecedent, Consequent Term }

// NewImplies constructs a -> c.
func NewImplies(a, c Term) *Implies { return &Implies{Antecedent: a, Consequent: c} }

// Kind returns KindImplies.
func (n *Implies) Kind() Kind { return KindImplies }

// Equals compares antecedent and consequent.
func (n *Implies) Equals(other Term) bool {
	o, ok := other.(*Implies)
	return ok && n.Antecedent.Equals(o.Antecedent) && n.Consequent.Equals(o.Consequent)
}

// Hash mixes the Implies salt with antecedent and consequent hashes, in
// order.
func (n *Implies) Hash() uint64 {
	seed := saltImplies
	hashCombine(&seed, n.Antecedent.Hash())
	hashCombine(&seed, n.Consequent.Hash())

	return seed
}

// Clone returns a fresh Implies node with deeply-cloned sides.
func (n *Implies) Clone() Term {
	return &Implies{Antecedent: n.Antecedent.Clone(), Consequent: n.Consequent.Clone()}
}

// String renders e.g. "(a -> c)".
func (n *Implies) String() string {
	return "(" + n.Antecedent.String() + " -> " + n.Consequent.String() + ")"
}
