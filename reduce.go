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
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/tlc/ast"
	"github.com/wdamron/tlc/constant"
	"github.com/wdamron/tlc/types"
)

// Constant bindings of reduction, keyed by the row bound in scope: a parameter row of a
// let-binding or an identifier of a pattern. Child environments share structure with their
// parents.
type constEnv struct {
	m *immutable.SortedMap
}

var emptyConstEnv = constEnv{immutable.NewSortedMap(nil)}

func (env constEnv) get(binding types.TermId) (constant.Value, bool) {
	v, ok := env.m.Get(int(binding))
	if !ok {
		return nil, false
	}
	return v.(constant.Value), true
}

func (env constEnv) set(binding types.TermId, c constant.Value) constEnv {
	return constEnv{env.m.Set(int(binding), c)}
}

// Reduce folds a term to a constant. Values and tags fold directly, tuples fold member-wise, and
// applications of let-bound functions with a single parameter group fold by binding each
// parameter to its folded argument and folding the body. Pattern matches fold the scrutinee and
// take the first arm whose pattern matches.
//
// Curried bindings are unsupported. Terms which cannot be folded fail with NotReducible.
func (tlc *TLC) Reduce(scope ast.ScopeId, term types.TermId) (constant.Value, error) {
	c, err := tlc.reduce(scope, emptyConstEnv, term, 0)
	if err != nil {
		return nil, err
	}
	tlc.log.Debug("reduced term", "term", int(term), "constant", c.String())
	return c, nil
}

func (tlc *TLC) reduce(scope ast.ScopeId, env constEnv, term types.TermId, depth int) (constant.Value, error) {
	if depth > tlc.Config.MaxReduceDepth {
		return nil, tlc.errorf(NotReducible, term, "maximum reduction depth %d exceeded", tlc.Config.MaxReduceDepth)
	}
	depth++

	switch t := tlc.rows[term].Term.(type) {
	case *ast.Value:
		return constant.Parse(t.Text), nil

	case *ast.Constructor:
		if len(t.Fields) > 0 {
			return nil, tlc.errorf(NotReducible, term, "constructor with fields %s", tlc.PrintTerm(term))
		}
		return constant.Parse(t.Name), nil

	case *ast.Tuple:
		cs := make(constant.Tuple, len(t.Elems))
		for i, e := range t.Elems {
			c, err := tlc.reduce(scope, env, e, depth)
			if err != nil {
				return nil, err
			}
			cs[i] = c
		}
		return cs, nil

	case *ast.Ident:
		c, ok, err := tlc.reduceName(scope, env, t.Name, tlc.rows[term].Type, depth)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, tlc.errorf(NotReducible, term, "free variable %s", t.Name)
		}
		return c, nil

	case *ast.Ascript:
		return tlc.reduce(scope, env, t.Term, depth)

	case *ast.As:
		return tlc.reduce(scope, env, t.Term, depth)

	case *ast.RuleApplication:
		return tlc.reduce(scope, env, t.Term, depth)

	case *ast.Block:
		if len(t.Stmts) == 0 {
			return constant.Tuple{}, nil
		}
		inner := t.Scope
		if inner == ast.NoScope {
			inner = scope
		}
		last := t.Stmts[len(t.Stmts)-1]
		if _, ok := tlc.rows[last].Term.(*ast.Let); ok {
			return constant.Tuple{}, nil
		}
		return tlc.reduce(inner, env, last, depth)

	case *ast.App:
		return tlc.reduceApp(scope, env, term, t, depth)

	case *ast.Match:
		c, err := tlc.reduce(scope, env, t.Scrutinee, depth)
		if err != nil {
			return nil, err
		}
		for i := range t.Arms {
			arm := &t.Arms[i]
			if arm.Scope == ast.NoScope {
				sid, err := tlc.ScopeOfLHS(scope, arm.LHS)
				if err != nil {
					return nil, err
				}
				arm.Scope = sid
			}
			armEnv, ok, err := tlc.reduceLHS(env, arm.LHS, c)
			if err != nil {
				return nil, err
			}
			if ok {
				return tlc.reduce(arm.Scope, armEnv, arm.RHS, depth)
			}
		}
		return nil, tlc.errorf(NonExhaustive, term, "no arm matches %s", c)

	case *ast.Literal:
		var sb strings.Builder
		for _, p := range t.Parts {
			switch p := p.(type) {
			case ast.LiteralChar:
				sb.WriteRune(p.Char)
			case ast.LiteralString:
				sb.WriteString(p.Text)
			case ast.LiteralVar:
				c, ok, err := tlc.reduceName(scope, env, p.Name, types.Any{}, depth)
				if err != nil {
					return nil, err
				}
				if !ok {
					return nil, tlc.errorf(NotReducible, term, "free variable %s in literal", p.Name)
				}
				sb.WriteString(c.String())
			default:
				return nil, tlc.errorf(NotReducible, term, "literal range %s", p)
			}
		}
		return constant.Parse(sb.String()), nil
	}
	return nil, tlc.errorf(NotReducible, term, "reduce %s", tlc.PrintTerm(term))
}

// Resolve name in scope to a bound constant or a let-binding without parameters. The result is
// false if name has no such binding.
func (tlc *TLC) reduceName(scope ast.ScopeId, env constEnv, name string, required types.Type, depth int) (constant.Value, bool, error) {
	binding, ok := tlc.LookupTerm(scope, name, required)
	if !ok {
		return nil, false, nil
	}
	if c, ok := env.get(binding); ok {
		return c, true, nil
	}
	lt, isLet := tlc.rows[binding].Term.(*ast.Let)
	if !isLet || len(lt.Parameters) != 0 || lt.IsExtern || lt.Body == types.NoTerm {
		return nil, false, nil
	}
	c, err := tlc.reduce(lt.Scope, env, lt.Body, depth)
	return c, err == nil, err
}

func (tlc *TLC) reduceApp(scope ast.ScopeId, env constEnv, term types.TermId, t *ast.App, depth int) (constant.Value, error) {
	switch f := tlc.rows[t.Func].Term.(type) {
	case *ast.Project:
		c, err := tlc.reduce(scope, env, t.Arg, depth)
		if err != nil {
			return nil, err
		}
		tuple, ok := c.(constant.Tuple)
		if !ok {
			return nil, tlc.errorf(NotReducible, term, "project %s from non-tuple %s", f.Index, c)
		}
		i, ok := f.Index.(constant.Integer)
		if !ok || i < 0 || int(i) >= len(tuple) {
			return nil, tlc.errorf(NotReducible, term, "project %s out of range of %s", f.Index, c)
		}
		return tuple[i], nil

	case *ast.Arrow:
		c, err := tlc.reduce(scope, env, t.Arg, depth)
		if err != nil {
			return nil, err
		}
		if f.Scope == ast.NoScope {
			sid, err := tlc.ScopeOfLHS(scope, f.LHS)
			if err != nil {
				return nil, err
			}
			f.Scope = sid
		}
		fnEnv, ok, err := tlc.reduceLHS(env, f.LHS, c)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, tlc.errorf(NonExhaustive, term, "lambda pattern does not match %s", c)
		}
		return tlc.reduce(f.Scope, fnEnv, f.RHS, depth)

	case *ast.Ident:
		binding, ok := tlc.LookupTerm(scope, f.Name, tlc.rows[t.Func].Type)
		if !ok {
			return nil, tlc.errorf(UndefinedName, t.Func, "function %s: %s", f.Name, tlc.PrintType(tlc.rows[t.Func].Type))
		}
		lt, ok := tlc.rows[binding].Term.(*ast.Let)
		if !ok {
			return nil, tlc.errorf(NotReducible, term, "callee %s is not a let-binding", f.Name)
		}
		if lt.IsExtern {
			return nil, tlc.errorf(NotReducible, term, "extern function %s", f.Name)
		}
		if len(lt.Parameters) > 1 {
			return nil, tlc.errorf(Unsupported, term, "beta-reduce curried function %s", f.Name)
		}
		if len(lt.Parameters) == 0 || lt.Body == types.NoTerm {
			return nil, tlc.errorf(NotReducible, term, "apply %s", f.Name)
		}
		args, err := tlc.reduceArgs(scope, env, t.Arg, depth)
		if err != nil {
			return nil, err
		}
		params := lt.Parameters[0]
		if len(args) != len(params) {
			return nil, tlc.errorf(Internal, term, "%s expects %d arguments, got %d", f.Name, len(params), len(args))
		}
		if lt.Scope == ast.NoScope {
			tlc.declareLet(scope, binding, lt)
		}
		fnEnv := env
		for i, p := range params {
			if p.Name == "" {
				continue
			}
			id, ok := tlc.declared(lt.Scope, p.Name)
			if !ok {
				return nil, tlc.errorf(Internal, term, "parameter %s of %s is not bound", p.Name, f.Name)
			}
			fnEnv = fnEnv.set(id, args[i])
		}
		return tlc.reduce(lt.Scope, fnEnv, lt.Body, depth)
	}
	return nil, tlc.errorf(NotReducible, term, "apply %s", tlc.PrintTerm(t.Func))
}

func (tlc *TLC) reduceArgs(scope ast.ScopeId, env constEnv, arg types.TermId, depth int) ([]constant.Value, error) {
	if _, ok := tlc.rows[arg].Term.(*ast.Tuple); ok {
		c, err := tlc.reduce(scope, env, arg, depth)
		if err != nil {
			return nil, err
		}
		return c.(constant.Tuple), nil
	}
	c, err := tlc.reduce(scope, env, arg, depth)
	if err != nil {
		return nil, err
	}
	return []constant.Value{c}, nil
}

// Match a folded constant against a pattern. Identifiers bind their own row, `_` matches
// anything, and literals match by equality.
func (tlc *TLC) reduceLHS(env constEnv, lhs types.TermId, c constant.Value) (constEnv, bool, error) {
	switch t := tlc.rows[lhs].Term.(type) {
	case *ast.Ident:
		if t.Name == "_" {
			return env, true, nil
		}
		return env.set(lhs, c), true, nil

	case *ast.Value:
		return env, constant.Equal(constant.Parse(t.Text), c), nil

	case *ast.Ascript:
		return tlc.reduceLHS(env, t.Term, c)
	}
	return env, false, tlc.errorf(Unsupported, lhs, "reduce pattern %s", tlc.PrintTerm(lhs))
}
