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
	"context"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/wdamron/tlc/ast"
	"github.com/wdamron/tlc/constant"
	"github.com/wdamron/tlc/ir"
	"github.com/wdamron/tlc/types"
)

// DataType lowers a type to the primitive runtime type tag of the evaluator: unparameterized
// nominal types lower to their names, the unit type lowers to Unit, and anything else is a
// boxed Value.
func DataType(t types.Type) ir.DataType {
	switch t := t.(type) {
	case *types.Named:
		if len(t.Params) == 0 {
			return ir.DataType(t.Name)
		}
	case *types.Tuple:
		if len(t.Types) == 0 {
			return ir.UnitType
		}
	}
	return ir.ValueType
}

// Mangle returns the lowered name of a let-binding, encoding the declared types of its
// parameters and its return type: `name:(T1,T2)->R`.
func Mangle(lt *ast.Let) string {
	var sb strings.Builder
	sb.WriteString(lt.Name)
	sb.WriteByte(':')
	for _, group := range lt.Parameters {
		sb.WriteByte('(')
		n := 0
		for _, p := range group {
			if p.Type == nil {
				continue
			}
			if n > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(p.Type.String())
			n++
		}
		sb.WriteString(")->")
	}
	if lt.ReturnType != nil {
		sb.WriteString(lt.ReturnType.String())
	} else {
		sb.WriteString(types.Any{}.String())
	}
	return sb.String()
}

// CompileFunction lowers a let-bound function into prog and returns its mangled name. Each
// mangled name is compiled at most once per program. The binding must have exactly one parameter
// group of named, typed parameters.
func (tlc *TLC) CompileFunction(prog *ir.Program, term types.TermId) (string, error) {
	lt, ok := tlc.rows[term].Term.(*ast.Let)
	if !ok {
		return "", tlc.errorf(Internal, term, "compile function: %s is not a let-binding", tlc.PrintTerm(term))
	}
	mangled := Mangle(lt)
	if prog.Lookup(mangled) != nil {
		tlc.log.Debug("compile function: memoized", "name", mangled)
		return mangled, nil
	}
	if len(lt.Parameters) == 0 {
		return "", tlc.errorf(Unsupported, term, "compile valued let binding %s", lt.Name)
	}
	if len(lt.Parameters) > 1 {
		return "", tlc.errorf(Unsupported, term, "compile curried let binding %s", lt.Name)
	}

	params := make([]ir.Param, 0, len(lt.Parameters[0]))
	for _, p := range lt.Parameters[0] {
		if p.Name == "" {
			return "", tlc.errorf(Unsupported, term, "parameters of %s must be named", lt.Name)
		}
		if p.Type == nil {
			return "", tlc.errorf(Unsupported, term, "parameter %s of %s must be typed", p.Name, lt.Name)
		}
		id, ok := tlc.LookupTerm(lt.Scope, p.Name, p.Type)
		if !ok {
			return "", tlc.errorf(Internal, term, "parameter %s of %s not found in scope", p.Name, lt.Name)
		}
		params = append(params, ir.Param{Id: int(id), Type: DataType(p.Type)})
	}

	// Define before compiling the body, so recursive calls resolve to this definition. A body
	// which fails to compile leaves prog as it was.
	defined := len(prog.Functions)
	fd := ir.Define(mangled, params)
	prog.Functions = append(prog.Functions, fd)
	tlc.log.Debug("compile function", "name", mangled, "params", len(params))

	var preamble []ir.Expression
	if lt.Body != types.NoTerm {
		ret, err := tlc.CompileExpr(lt.Scope, prog, &preamble, lt.Body)
		if err != nil {
			prog.Functions = prog.Functions[:defined]
			return "", err
		}
		preamble = append(preamble, ret)
	}
	fd.Body = preamble
	return mangled, nil
}

// CompileExpr lowers a term to an expression. Statements which only contribute side effects,
// such as all but the last statement of a block, are appended to preamble. Called functions
// are compiled into prog.
func (tlc *TLC) CompileExpr(scope ast.ScopeId, prog *ir.Program, preamble *[]ir.Expression, term types.TermId) (ir.Expression, error) {
	row := &tlc.rows[term]
	tt, span := row.Type, row.Span

	switch t := row.Term.(type) {
	case *ast.Let:
		return ir.NewUnit(span), nil

	case *ast.Tuple:
		if len(t.Elems) == 0 {
			return ir.NewUnit(span), nil
		}

	case *ast.Value:
		return ir.NewLiteral(t.Text, DataType(tt), span), nil

	case *ast.Ident:
		id, ok := tlc.LookupTerm(scope, t.Name, tt)
		if !ok {
			return nil, tlc.errorf(UndefinedName, term, "variable %s: %s not found in scope", t.Name, tlc.PrintType(tt))
		}
		return ir.NewVariable(int(id), DataType(tt), span), nil

	case *ast.Ascript:
		// TODO: coerce to the ascribed type once gradual types are lowered.
		return tlc.CompileExpr(scope, prog, preamble, t.Term)

	case *ast.As:
		return tlc.CompileExpr(scope, prog, preamble, t.Term)

	case *ast.Block:
		if len(t.Stmts) == 0 {
			return ir.NewUnit(span), nil
		}
		inner := t.Scope
		if inner == ast.NoScope {
			inner = scope
		}
		for _, stmt := range t.Stmts[:len(t.Stmts)-1] {
			e, err := tlc.CompileExpr(inner, prog, preamble, stmt)
			if err != nil {
				return nil, err
			}
			*preamble = append(*preamble, e)
		}
		return tlc.CompileExpr(inner, prog, preamble, t.Stmts[len(t.Stmts)-1])

	case *ast.Match:
		scrutinee, err := tlc.CompileExpr(scope, prog, preamble, t.Scrutinee)
		if err != nil {
			return nil, err
		}
		arms := make([]ir.PatternArm, 0, len(t.Arms))
		for _, arm := range t.Arms {
			armScope := arm.Scope
			if armScope == ast.NoScope {
				armScope = scope
			}
			lhs, err := tlc.CompileLHS(armScope, arm.LHS)
			if err != nil {
				return nil, err
			}
			rhs, err := tlc.CompileExpr(armScope, prog, preamble, arm.RHS)
			if err != nil {
				return nil, err
			}
			arms = append(arms, ir.PatternArm{LHS: lhs, RHS: rhs})
		}
		return ir.NewPattern(scrutinee, arms, DataType(tt), span), nil

	case *ast.App:
		return tlc.compileApp(scope, prog, preamble, term, t)
	}
	return nil, tlc.errorf(Unsupported, term, "compile %s", tlc.PrintTerm(term))
}

func (tlc *TLC) compileApp(scope ast.ScopeId, prog *ir.Program, preamble *[]ir.Expression, term types.TermId, t *ast.App) (ir.Expression, error) {
	g, isIdent := tlc.rows[t.Func].Term.(*ast.Ident)
	x, isTuple := tlc.rows[t.Arg].Term.(*ast.Tuple)
	if !isIdent || !isTuple {
		return nil, tlc.errorf(Unsupported, term, "call-by-value application %s", tlc.PrintTerm(term))
	}
	tt, span := tlc.rows[term].Type, tlc.rows[term].Span

	if g.Name == ".flatmap" && len(x.Elems) == 2 {
		if _, ok := tlc.rows[x.Elems[1]].Term.(*ast.Arrow); !ok {
			return nil, tlc.errorf(Internal, term, ".flatmap second argument must be an arrow: %s", tlc.PrintTerm(x.Elems[1]))
		}
		return nil, tlc.errorf(Unsupported, term, ".flatmap %s %s", tlc.PrintTerm(x.Elems[0]), tlc.PrintTerm(x.Elems[1]))
	}

	args := make([]ir.Expression, len(x.Elems))
	for i, p := range x.Elems {
		e, err := tlc.CompileExpr(scope, prog, preamble, p)
		if err != nil {
			return nil, err
		}
		args[i] = e
	}

	binding, ok := tlc.LookupTerm(scope, g.Name, tlc.rows[t.Func].Type)
	if !ok {
		return nil, tlc.errorf(UndefinedName, t.Func, "function %s: %s not found in scope", g.Name, tlc.PrintType(tlc.rows[t.Func].Type))
	}
	lt, ok := tlc.rows[binding].Term.(*ast.Let)
	if !ok {
		return nil, tlc.errorf(Unsupported, term, "call of non-let binding %s", tlc.PrintTerm(binding))
	}
	if len(lt.Parameters) > 1 {
		return nil, tlc.errorf(Unsupported, term, "call of curried function %s", g.Name)
	}
	if lt.IsExtern {
		var symbol *ast.Ident
		if lt.Body != types.NoTerm {
			symbol, _ = tlc.rows[lt.Body].Term.(*ast.Ident)
		}
		if symbol == nil {
			return nil, tlc.errorf(Internal, binding, "extern function body must be a mangled symbol: %s", g.Name)
		}
		return ir.NewApply(symbol.Name, args, DataType(tt), span), nil
	}
	mangled, err := tlc.CompileFunction(prog, binding)
	if err != nil {
		return nil, err
	}
	return ir.NewApply(mangled, args, DataType(tt), span), nil
}

// Compile lowers a top-level term into a program. Functions called from the term are compiled
// into the program's definitions.
func (tlc *TLC) Compile(scope ast.ScopeId, term types.TermId) (*ir.Program, error) {
	prog := &ir.Program{}
	var preamble []ir.Expression
	e, err := tlc.CompileExpr(scope, prog, &preamble, term)
	if err != nil {
		return nil, err
	}
	prog.Main = append(preamble, e)
	return prog, nil
}

// Evaluate compiles a top-level term, runs it with ev, and converts the result to a constant.
func (tlc *TLC) Evaluate(ctx context.Context, scope ast.ScopeId, term types.TermId, ev ir.Evaluator) (constant.Value, error) {
	prog, err := tlc.Compile(scope, term)
	if err != nil {
		return nil, err
	}
	v, err := ev.Eval(ctx, prog)
	if err != nil {
		return nil, errors.Wrapf(err, "evaluate %s", tlc.PrintTerm(term))
	}
	c, err := FromValue(v)
	if err != nil {
		return nil, tlc.errorf(NotReducible, term, "%s", err)
	}
	return c, nil
}

// FromValue converts an evaluated value to a constant.
func FromValue(v ir.Value) (constant.Value, error) {
	switch v := v.(type) {
	case ir.UnitValue:
		return constant.Tuple{}, nil
	case ir.IntegerValue:
		return constant.Integer(v), nil
	case ir.BooleanValue:
		return constant.Boolean(v), nil
	case ir.FloatValue:
		if math.IsNaN(float64(v)) {
			return constant.NaN{}, nil
		}
		return nil, errors.Errorf("no constant for Float value %s", v)
	case ir.StringValue:
		return constant.Parse(string(v)), nil
	case ir.TupleValue:
		cs := make(constant.Tuple, len(v))
		for i, e := range v {
			c, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			cs[i] = c
		}
		return cs, nil
	}
	return nil, errors.Errorf("no constant for value %v", v)
}
