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
package named

import (
	"fmt"

	"github.com/orbisforge/folcore/internal/gensym"
	"github.com/orbisforge/folcore/pkg/term"
)

// ToDB converts a named term to its De Bruijn-indexed form, starting from
// an empty binder-name stack.
func ToDB(t Term) term.Term {
	return toDB(t, NewContext())
}

func toDB(t Term, ctx *Context) term.Term {
	switch n := t.(type) {
	case *Var:
		if idx := ctx.IndexForName(n.Name); idx >= 0 {
			return term.NewVar(uint(idx), n.Type)
		}
		// Free occurrence: map to a fresh index beyond every enclosing
		// binder, rather than failing — round-tripping arbitrary named
		// ASTs (including ones referencing variables bound further out)
		// must never panic outright.
		return term.NewVar(ctx.CurrentDepth(), n.Type)
	case *Const:
		return term.NewConst(n.Symbol, n.Type)
	case *App:
		args := make([]term.Term, len(n.Args))
		for i, arg := range n.Args {
			args[i] = toDB(arg, ctx)
		}

		return term.NewApp(n.Symbol, args, n.Type)
	case *Forall:
		ctx.Push(n.VariableName)
		body := toDB(n.Body, ctx)
		ctx.Pop()

		return term.NewForall(n.VariableName, body)
	case *Exists:
		ctx.Push(n.VariableName)
		body := toDB(n.Body, ctx)
		ctx.Pop()

		return term.NewExists(n.VariableName, body)
	case *And:
		return term.NewAnd(toDB(n.Left, ctx), toDB(n.Right, ctx))
	case *Or:
		return term.NewOr(toDB(n.Left, ctx), toDB(n.Right, ctx))
	case *Not:
		return term.NewNot(toDB(n.Body, ctx))
	case *Implies:
		return term.NewImplies(toDB(n.Antecedent, ctx), toDB(n.Consequent, ctx))
	default:
		panic(fmt.Sprintf("unsupported term kind in ToDB conversion: %T", t))
	}
}

// ToNamed converts a De Bruijn-indexed term to named form, starting from an
// empty binder-name stack.
func ToNamed(t term.Term) Term {
	return toNamed(t, NewContext())
}

func toNamed(t term.Term, ctx *Context) Term {
	switch n := t.(type) {
	case *term.Var:
		return NewVar(ctx.NameForIndex(n.Index), n.Type)
	case *term.Const:
		return NewConst(n.Symbol, n.Type)
	case *term.App:
		args := make([]Term, len(n.Args))
		for i, arg := range n.Args {
			args[i] = toNamed(arg, ctx)
		}

		return NewApp(n.Symbol, args, n.Type)
	case *term.Forall:
		varName := freshBinderName(n.Hint, ctx)
		ctx.Push(varName)
		body := toNamed(n.Body, ctx)
		ctx.Pop()

		return NewForall(varName, body)
	case *term.Exists:
		varName := freshBinderName(n.Hint, ctx)
		ctx.Push(varName)
		body := toNamed(n.Body, ctx)
		ctx.Pop()

		return NewExists(varName, body)
	case *term.And:
		return NewAnd(toNamed(n.Left, ctx), toNamed(n.Right, ctx))
	case *term.Or:
		return NewOr(toNamed(n.Left, ctx), toNamed(n.Right, ctx))
	case *term.Not:
		return NewNot(toNamed(n.Body, ctx))
	case *term.Implies:
		return NewImplies(toNamed(n.Antecedent, ctx), toNamed(n.Consequent, ctx))
	default:
		panic(fmt.Sprintf("unsupported term kind in ToNamed conversion: %T", t))
	}
}

// freshBinderName returns hint unchanged if it is both non-empty and not
// already in scope; otherwise it synthesizes a fresh name via gensym so the
// new binder can never shadow one already on the stack.
func freshBinderName(hint string, ctx *Context) string {
	if hint == "" || ctx.Contains(hint) {
		return gensym.Next("x")
	}

	return hint
}
