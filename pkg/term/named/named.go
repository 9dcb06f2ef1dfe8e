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

// Package named implements the alpha-named mirror of pkg/term, used only at
// the I/O boundary.  Unlike the De Bruijn form, equality here is strict and
// hint-sensitive: two Foralls with differently-named bound variables are
// *not* equal, since there is no binder-depth bookkeeping to make that
// comparison automatic.  Conversion to and from the De Bruijn form is the
// only bridge between the two representations.
package named

import (
	"hash/fnv"
)

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))

	return h.Sum64()
}

func hashCombine(seed *uint64, value uint64) {
	*seed ^= value + 0x9e3779b9 + (*seed << 6) + (*seed >> 2)
}

// Named salts have the same values as pkg/term's and serve the same
// purpose: keeping the hashes of different binder and connective variants
// apart.
const (
	saltForall  uint64 = 0x123456
	saltExists  uint64 = 0x234567
	saltAnd     uint64 = 0x345678
	saltOr      uint64 = 0x456789
	saltNot     uint64 = 0x567890
	saltImplies uint64 = 0x678901
)

// Term is an alpha-named formula node.
type Term interface {
	Equals(other Term) bool
	Hash() uint64
	String() string
}

// Var is a named variable reference.
type Var struct {
	Name string
	Type any
}

// NewVar constructs a named variable reference.
func NewVar(name string, typ ...any) *Var {
	v := &Var{Name: name}
	if len(typ) > 0 {
		v.Type = typ[0]
	}

	return v
}

// Equals compares names exactly (no alpha-equivalence at this level).
func (v *Var) Equals(other Term) bool {
	o, ok := other.(*Var)
	return ok && v.Name == o.Name
}

// Hash hashes the variable's name.
func (v *Var) Hash() uint64 { return hashString(v.Name) }

// String renders the bare name.
func (v *Var) String() string { return v.Name }

// Const is a named nullary symbol.
type Const struct {
	Symbol string
	Type   any
}

// NewConst constructs a named constant.
func NewConst(sym string, typ ...any) *Const {
	c := &Const{Symbol: sym}
	if len(typ) > 0 {
		c.Type = typ[0]
	}

	return c
}

// Equals compares symbols.
func (c *Const) Equals(other Term) bool {
	o, ok := other.(*Const)
	return ok && c.Symbol == o.Symbol
}

// Hash hashes the symbol.
func (c *Const) Hash() uint64 { return hashString(c.Symbol) }

// String renders the bare symbol.
func (c *Const) String() string { return c.Symbol }

// App is a named function application.
type App struct {
	Symbol string
	Args   []Term
	Type   any
}

// NewApp constructs a named application.
func NewApp(sym string, args []Term, typ ...any) *App {
	a := &App{Symbol: sym, Args: args}
	if len(typ) > 0 {
		a.Type = typ[0]
	}

	return a
}

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

// Hash seeds with the symbol and folds in each argument's hash.
func (a *App) Hash() uint64 {
	seed := hashString(a.Symbol)
	for _, arg := range a.Args {
		hashCombine(&seed, arg.Hash())
	}

	return seed
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

// Forall is a named universal quantifier.  Unlike the DB form, equality and
// hash are hint-sensitive: proper alpha-equivalence would require checking
// bodies up to variable renaming, which this strict named-form
// representation does not attempt — that is exactly what conversion to De
// Bruijn form is for.
type Forall struct {
	VariableName string
	Body         Term
}

// NewForall constructs a named universal quantifier.
func NewForall(variableName string, body Term) *Forall {
	return &Forall{VariableName: variableName, Body: body}
}

// Equals requires the same binder name and equal bodies.
func (f *Forall) Equals(other Term) bool {
	o, ok := other.(*Forall)
	return ok && f.VariableName == o.VariableName && f.Body.Equals(o.Body)
}

// Hash mixes the Forall salt, the binder name, and the body's hash.
func (f *Forall) Hash() uint64 {
	seed := saltForall
	hashCombine(&seed, hashString(f.VariableName))
	hashCombine(&seed, f.Body.Hash())

	return seed
}

// String renders e.g. "forall x. body".
func (f *Forall) String() string { return "forall " + f.VariableName + ". " + f.Body.String() }

// Exists is a named existential quantifier; see Forall for the
// hint-sensitivity rationale.
type Exists struct {
	VariableName string
	Body         Term
}

// NewExists constructs a named existential quantifier.
func NewExists(variableName string, body Term) *Exists {
	return &Exists{VariableName: variableName, Body: body}
}

// Equals requires the same binder name and equal bodies.
func (e *Exists) Equals(other Term) bool {
	o, ok := other.(*Exists)
	return ok && e.VariableName == o.VariableName && e.Body.Equals(o.Body)
}

// Hash mixes the Exists salt, the binder name, and the body's hash.
func (e *Exists) Hash() uint64 {
	seed := saltExists
	hashCombine(&seed, hashString(e.VariableName))
	hashCombine(&seed, e.Body.Hash())

	return seed
}

// String renders e.g. "exists x. body".
func (e *Exists) String() string { return "exists " + e.VariableName + ". " + e.Body.String() }

// And is named conjunction.
type And struct{ Left, Right Term }

// NewAnd constructs l /\ r.
func NewAnd(l, r Term) *And { return &And{Left: l, Right: r} }

// Equals compares both sides.
func (n *And) Equals(other Term) bool {
	o, ok := other.(*And)
	return ok && n.Left.Equals(o.Left) && n.Right.Equals(o.Right)
}

// Hash mixes the And salt with both sides' hashes.
func (n *And) Hash() uint64 {
	seed := saltAnd
	hashCombine(&seed, n.Left.Hash())
	hashCombine(&seed, n.Right.Hash())

	return seed
}

// String renders e.g. "(l /\ r)".
func (n *And) String() string { return "(" + n.Left.String() + " /\\ " + n.Right.String() + ")" }

// Or is named disjunction.
type Or struct{ Left, Right Term }

// NewOr constructs l \/ r.
func NewOr(l, r Term) *Or { return &Or{Left: l, Right: r} }

// Equals compares both sides.
func (n *Or) Equals(other Term) bool {
	o, ok := other.(*Or)
	return ok && n.Left.Equals(o.Left) && n.Right.Equals(o.Right)
}

// Hash mixes the Or salt with both sides' hashes.
func (n *Or) Hash() uint64 {
	seed := saltOr
	hashCombine(&seed, n.Left.Hash())
	hashCombine(&seed, n.Right.Hash())

	return seed
}

// String renders e.g. "(l \/ r)".
func (n *Or) String() string { return "(" + n.Left.String() + " \\/ " + n.Right.String() + ")" }

// Not is named negation.
type Not struct{ Body Term }

// NewNot constructs ~x.
func NewNot(body Term) *Not { return &Not{Body: body} }

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

// String renders e.g. "~x".
func (n *Not) String() string { return "~" + n.Body.String() }

// Implies is named material implication.
type Implies struct{ Antecedent, Consequent Term }

// NewImplies constructs a -> c.
func NewImplies(a, c Term) *Implies { return &Implies{Antecedent: a, Consequent: c} }

// Equals compares antecedent and consequent.
func (n *Implies) Equals(other Term) bool {
	o, ok := other.(*Implies)
	return ok && n.Antecedent.Equals(o.Antecedent) && n.Consequent.Equals(o.Consequent)
}

// Hash mixes the Implies salt with antecedent and consequent hashes.
func (n *Implies) Hash() uint64 {
	seed := saltImplies
	hashCombine(&seed, n.Antecedent.Hash())
	hashCombine(&seed, n.Consequent.Hash())

	return seed
}

// String renders e.g. "(a -> c)".
func (n *Implies) String() string {
	return "(" + n.Antecedent.String() + " -> " + n.Consequent.String() + ")"
}
