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

package tlc

import (
	"github.com/wdamron/tlc/ast"
	"github.com/wdamron/tlc/ir"
	"github.com/wdamron/tlc/types"
)

// Equals compares two terms structurally. Identifiers compare by name and values by text;
// lambdas, applications, and tuples compare recursively. Any other pair of terms is unequal.
func (tlc *TLC) Equals(a, b types.TermId) bool {
	if a == types.NoTerm || b == types.NoTerm {
		return a == b
	}
	switch at := tlc.rows[a].Term.(type) {
	case *ast.Ident:
		bt, ok := tlc.rows[b].Term.(*ast.Ident)
		return ok && at.Name == bt.Name

	case *ast.Value:
		bt, ok := tlc.rows[b].Term.(*ast.Value)
		return ok && at.Text == bt.Text

	case *ast.Arrow:
		bt, ok := tlc.rows[b].Term.(*ast.Arrow)
		return ok && tlc.Equals(at.LHS, bt.LHS) && equalAnnotations(at.Type, bt.Type) && tlc.Equals(at.RHS, bt.RHS)

	case *ast.App:
		bt, ok := tlc.rows[b].Term.(*ast.App)
		return ok && tlc.Equals(at.Func, bt.Func) && tlc.Equals(at.Arg, bt.Arg)

	case *ast.Tuple:
		bt, ok := tlc.rows[b].Term.(*ast.Tuple)
		if !ok || len(at.Elems) != len(bt.Elems) {
			return false
		}
		for i := range at.Elems {
			if !tlc.Equals(at.Elems[i], bt.Elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func equalAnnotations(a, b types.Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return types.Equal(a, b)
}

// ScopeOfLHS destructures a pattern into a new child scope of parent. Identifiers other than `_`
// are bound to their own rows at their current types. An ascription first refines the types of
// the pattern and of the ascribed term to the declared type. Literal patterns bind nothing. Other
// pattern shapes are unsupported.
func (tlc *TLC) ScopeOfLHS(parent ast.ScopeId, lhs types.TermId) (ast.ScopeId, error) {
	var children []ScopeChild
	if err := tlc.scopeOfLHS(&children, lhs); err != nil {
		return ast.NoScope, err
	}
	return tlc.PushScope(Scope{Parent: parent, Children: children}), nil
}

func (tlc *TLC) scopeOfLHS(children *[]ScopeChild, lhs types.TermId) error {
	switch t := tlc.rows[lhs].Term.(type) {
	case *ast.Ident:
		if t.Name == "_" {
			return nil
		}
		*children = append(*children, ScopeChild{
			Name:  t.Name,
			Kinds: types.NewKindTable(),
			Type:  tlc.rows[lhs].Type,
			Term:  lhs,
		})
		return nil

	case *ast.Value:
		return nil

	case *ast.Ascript:
		tlc.rows[t.Term].Type = t.Type
		tlc.rows[lhs].Type = t.Type
		return tlc.scopeOfLHS(children, t.Term)
	}
	return tlc.errorf(Unsupported, lhs, "destructure pattern %s", tlc.PrintTerm(lhs))
}

// CompileLHS lowers a pattern. Literals match by value, `_` matches anything, and identifiers
// bind the matched value to the binding they resolve to in scope. Ascriptions are transparent.
func (tlc *TLC) CompileLHS(scope ast.ScopeId, term types.TermId) (ir.LHSPart, error) {
	switch t := tlc.rows[term].Term.(type) {
	case *ast.Value:
		return ir.LHSLiteral{Text: t.Text}, nil

	case *ast.Ident:
		if t.Name == "_" {
			return ir.LHSAny{}, nil
		}
		id, ok := tlc.LookupTerm(scope, t.Name, tlc.rows[term].Type)
		if !ok {
			return nil, tlc.errorf(UndefinedName, term, "pattern variable %s not found in scope", t.Name)
		}
		return ir.LHSVariable{Id: int(id)}, nil

	case *ast.Ascript:
		return tlc.CompileLHS(scope, t.Term)
	}
	return nil, tlc.errorf(Unsupported, term, "compile pattern %s", tlc.PrintTerm(term))
}
