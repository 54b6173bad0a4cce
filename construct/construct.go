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

package construct

import (
	"strings"
	"unicode"

	"github.com/wdamron/tlc/ast"
	"github.com/wdamron/tlc/constant"
	"github.com/wdamron/tlc/types"
)

// Types

// Type-variable: `A`
func TVar(name string) *types.Var {
	return &types.Var{Name: name}
}

// Nominal type: `Integer`, `List<Integer>`
func TNamed(name string, params ...types.Type) *types.Named {
	return &types.Named{Name: name, Params: params}
}

// TIdent maps a parsed type name to a type. Unparameterized names spelled entirely in uppercase
// letters are type-variables; all other names are nominal types.
func TIdent(name string, params ...types.Type) types.Type {
	if len(params) == 0 && isVarName(name) {
		return TVar(name)
	}
	return TNamed(name, params...)
}

func isVarName(name string) bool {
	if name == "" {
		return false
	}
	return strings.IndexFunc(name, func(r rune) bool { return !unicode.IsUpper(r) }) < 0
}

// Wildcard: `?`
func TAny() types.Type { return types.Any{} }

// Function type: `(A)=>(B)`
func TArrow(domain, rng types.Type) *types.Arrow {
	return &types.Arrow{Domain: domain, Range: rng}
}

// Function type over a tuple of arguments: `((A,B))=>(C)`
func TFunc(args []types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Domain: TTuple(args...), Range: ret}
}

// Tuple type: `(A,B)`
func TTuple(ts ...types.Type) *types.Tuple {
	return &types.Tuple{Types: ts}
}

// Product type: `(A*B)`
func TProduct(ts ...types.Type) *types.Product {
	return &types.Product{Types: ts}
}

// Ratio type: `(A)/(B)`
func TRatio(num, den types.Type) *types.Ratio {
	return &types.Ratio{Num: num, Den: den}
}

// Conjunction: `{A+B}`
func TAnd(ts ...types.Type) *types.And {
	return &types.And{Types: ts}
}

// Type indexed by the value of a term
func TConstant(isVar bool, term types.TermId) *types.Constant {
	return &types.Constant{IsVar: isVar, Term: term}
}

// ArrayName names the constructor of array types.
const ArrayName = "[]"

// Array type indexed by a term: `Integer[3]`. An index of NoTerm builds the unsized array `Integer[]`.
func TArray(elem types.Type, index types.TermId) *types.Named {
	if index == types.NoTerm {
		return TNamed(ArrayName, elem, types.Any{})
	}
	return TNamed(ArrayName, elem, TConstant(false, index))
}

// Kinds

// Named kind: `Term`
func KNamed(name string, params ...types.Kind) *types.KindNamed {
	return &types.KindNamed{Name: name, Params: params}
}

// Kind conjunction: `A + B`
func KAnd(ks ...types.Kind) types.Kind {
	return types.NewKindAnd(ks...)
}

// Terms. Builders return term payloads; the compilation unit assigns them handles.

// Identifier: `x`
func Ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

// Literal value: `1`, `True`
func Value(text string) *ast.Value {
	return &ast.Value{Text: text}
}

// Tuple projection: `.1`
func Project(index int64) *ast.Project {
	return &ast.Project{Index: constant.Integer(index)}
}

// Application: `f(x)`
func App(f, x types.TermId) *ast.App {
	return &ast.App{Func: f, Arg: x}
}

// Tuple: `(a, b)`
func Tuple(elems ...types.TermId) *ast.Tuple {
	if elems == nil {
		elems = []types.TermId{}
	}
	return &ast.Tuple{Elems: elems}
}

// Block: `{a; b}`
func Block(scope ast.ScopeId, stmts ...types.TermId) *ast.Block {
	return &ast.Block{Scope: scope, Stmts: stmts}
}

// Ascription: `e: T`
func Ascript(term types.TermId, t types.Type) *ast.Ascript {
	return &ast.Ascript{Term: term, Type: t}
}

// Hard cast: `e as T`
func As(term types.TermId, t types.Type) *ast.As {
	return &ast.As{Term: term, Type: t}
}

// Lambda: `fn x -> e`
func Lambda(scope ast.ScopeId, lhs types.TermId, t types.Type, rhs types.TermId) *ast.Arrow {
	return &ast.Arrow{Scope: scope, LHS: lhs, Type: t, RHS: rhs}
}

// Constructor without fields: `Red`
func Tag(name string) *ast.Constructor {
	return &ast.Constructor{Name: name}
}

// Constructor with fields: `Point{x=1, y=2}`
func Constructor(name string, fields ...ast.Field) *ast.Constructor {
	return &ast.Constructor{Name: name, Fields: fields}
}

// Rule application: `@reduce e`
func Rule(rule string, term types.TermId) *ast.RuleApplication {
	return &ast.RuleApplication{Term: term, Rule: rule}
}

// Pattern match: `match e { p => r; ... }`
func Match(scrutinee types.TermId, arms ...ast.Arm) *ast.Match {
	return &ast.Match{Scrutinee: scrutinee, Arms: arms}
}

// Match arm: `p => r`
func Arm(scope ast.ScopeId, lhs, rhs types.TermId) ast.Arm {
	return ast.Arm{Scope: scope, LHS: lhs, RHS: rhs}
}

// Literal built from a single string part
func Literal(text string) *ast.Literal {
	return &ast.Literal{Parts: []ast.LiteralPart{ast.LiteralString{Text: text}}}
}

// Typed, named parameter: `x: T`
func Param(name string, t types.Type) ast.Parameter {
	return ast.Parameter{Name: name, Type: t, Kind: types.KindNil{}}
}

// Let-binding with a single parameter group: `let f(x: T): R = body`
func Let(scope ast.ScopeId, name string, params []ast.Parameter, ret types.Type, body types.TermId) *ast.Let {
	lt := &ast.Let{
		Scope:      scope,
		Name:       name,
		Body:       body,
		ReturnType: ret,
		ReturnKind: types.KindNil{},
	}
	if params != nil {
		lt.Parameters = [][]ast.Parameter{params}
	}
	return lt
}

// Curried let-binding: `let f(x: T)(y: U): R = body`
func LetCurried(scope ast.ScopeId, name string, groups [][]ast.Parameter, ret types.Type, body types.TermId) *ast.Let {
	return &ast.Let{
		Scope:      scope,
		Name:       name,
		Parameters: groups,
		Body:       body,
		ReturnType: ret,
		ReturnKind: types.KindNil{},
	}
}

// Extern binding to a foreign symbol: `extern let f(x: T): R = symbol`. The symbol is an Ident term.
func Extern(scope ast.ScopeId, name string, params []ast.Parameter, ret types.Type, symbol types.TermId) *ast.Let {
	lt := Let(scope, name, params, ret, symbol)
	lt.IsExtern = true
	return lt
}

// LetType returns the declared type of a let-binding: each parameter group becomes the tuple
// domain of an arrow, ending with the return type. A parameter without a declared type is `?`.
func LetType(lt *ast.Let) types.Type {
	var ret types.Type = types.Any{}
	if lt.ReturnType != nil {
		ret = lt.ReturnType
	}
	for i := len(lt.Parameters) - 1; i >= 0; i-- {
		group := lt.Parameters[i]
		args := make([]types.Type, len(group))
		for j, p := range group {
			if p.Type == nil {
				args[j] = types.Any{}
			} else {
				args[j] = p.Type
			}
		}
		ret = TArrow(TTuple(args...), ret)
	}
	return ret
}
