// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

import "github.com/wdamron/tlc/types"

// WalkTerm visits id and every term reachable from it in pre-order.
func WalkTerm(arena Arena, id types.TermId, f func(types.TermId, Term)) {
	if id == types.NoTerm {
		return
	}
	switch t := arena.Term(id).(type) {
	case *Ident, *Value, *Project, *Fail, *Literal:
		f(id, t)

	case *Arrow:
		f(id, t)
		WalkTerm(arena, t.LHS, f)
		WalkTerm(arena, t.RHS, f)

	case *App:
		f(id, t)
		WalkTerm(arena, t.Func, f)
		WalkTerm(arena, t.Arg, f)

	case *Let:
		f(id, t)
		WalkTerm(arena, t.Body, f)

	case *Tuple:
		f(id, t)
		for _, e := range t.Elems {
			WalkTerm(arena, e, f)
		}

	case *Block:
		f(id, t)
		for _, e := range t.Stmts {
			WalkTerm(arena, e, f)
		}

	case *Ascript:
		f(id, t)
		WalkTerm(arena, t.Term, f)

	case *As:
		f(id, t)
		WalkTerm(arena, t.Term, f)

	case *Constructor:
		f(id, t)
		for _, field := range t.Fields {
			WalkTerm(arena, field.Term, f)
		}

	case *RuleApplication:
		f(id, t)
		WalkTerm(arena, t.Term, f)

	case *Match:
		f(id, t)
		WalkTerm(arena, t.Scrutinee, f)
		for _, arm := range t.Arms {
			WalkTerm(arena, arm.LHS, f)
			WalkTerm(arena, arm.RHS, f)
		}

	case nil:

	default:
		panic("unknown term type: " + t.TermName())
	}
}
