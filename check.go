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
	"strconv"

	"github.com/wdamron/tlc/ast"
	"github.com/wdamron/tlc/constant"
	"github.com/wdamron/tlc/construct"
	"github.com/wdamron/tlc/internal/depgraph"
	"github.com/wdamron/tlc/types"
)

// Check computes and narrows the type of term and every term below it, in scope. Bindings
// introduced by lets are declared in the enclosing scope; scopes missing from lambdas, blocks,
// and match arms are created and recorded on the term.
//
// Check returns the first error found. Type errors name both types and carry the span of the
// offending term.
func (tlc *TLC) Check(scope ast.ScopeId, term types.TermId) error {
	t, err := tlc.check(scope, term)
	if err != nil {
		return err
	}
	tlc.log.Debug("checked term", "term", int(term), "type", tlc.PrintType(t))
	return nil
}

// Implies expands constant-indexed arrays on both sides and returns the type satisfying lt => rt,
// or the bottom type. Array indices are folded in scope.
func (tlc *TLC) Implies(scope ast.ScopeId, lt, rt types.Type) types.Type {
	return types.ImplicationUnifier(tlc.ExpandType(scope, lt), tlc.ExpandType(scope, rt))
}

// ExpandType rewrites arrays indexed by terms which fold to an integer n in scope into n-tuples
// of their element type: `Integer[3]` becomes `(Integer,Integer,Integer)`. Other types are
// rebuilt with their components expanded.
//
// Types met while folding an index are not expanded again.
func (tlc *TLC) ExpandType(scope ast.ScopeId, t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Named:
		if t.Name == construct.ArrayName && len(t.Params) == 2 {
			elem := tlc.ExpandType(scope, t.Params[0])
			if id := types.TermOf(t.Params[1]); id != types.NoTerm && !tlc.expanding {
				tlc.expanding = true
				c, err := tlc.Reduce(scope, id)
				tlc.expanding = false
				if err == nil {
					if n, ok := c.(constant.Integer); ok && n >= 0 {
						ts := make([]types.Type, n)
						for i := range ts {
							ts[i] = elem
						}
						return &types.Tuple{Types: ts}
					}
				}
			}
			return &types.Named{Name: t.Name, Params: []types.Type{elem, t.Params[1]}}
		}
		if len(t.Params) == 0 {
			return t
		}
		return &types.Named{Name: t.Name, Params: tlc.expandTypes(scope, t.Params)}
	case *types.And:
		return &types.And{Types: tlc.expandTypes(scope, t.Types)}
	case *types.Arrow:
		return &types.Arrow{Domain: tlc.ExpandType(scope, t.Domain), Range: tlc.ExpandType(scope, t.Range)}
	case *types.Tuple:
		return &types.Tuple{Types: tlc.expandTypes(scope, t.Types)}
	case *types.Product:
		return &types.Product{Types: tlc.expandTypes(scope, t.Types)}
	case *types.Ratio:
		return &types.Ratio{Num: tlc.ExpandType(scope, t.Num), Den: tlc.ExpandType(scope, t.Den)}
	}
	return t
}

func (tlc *TLC) expandTypes(scope ast.ScopeId, ts []types.Type) []types.Type {
	xs := make([]types.Type, len(ts))
	for i, t := range ts {
		xs[i] = tlc.ExpandType(scope, t)
	}
	return xs
}

func (tlc *TLC) named(name string) types.Type { return &types.Named{Name: name} }

// Type of a literal value, by its spelling.
func (tlc *TLC) literalType(text string) types.Type {
	switch constant.Parse(text).(type) {
	case constant.Integer:
		return tlc.named(tlc.Config.IntegerType)
	case constant.Boolean:
		return tlc.named(tlc.Config.BooleanType)
	case constant.NaN:
		return tlc.named(tlc.Config.FloatType)
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return tlc.named(tlc.Config.FloatType)
	}
	return tlc.named(tlc.Config.StringType)
}

// Narrow the type of a row to t, keeping any type already assigned by the front end.
func (tlc *TLC) narrow(scope ast.ScopeId, term types.TermId, t types.Type) (types.Type, error) {
	prior := tlc.rows[term].Type
	if _, ok := prior.(types.Any); ok || prior == nil {
		tlc.rows[term].Type = t
		return t, nil
	}
	u := tlc.Implies(scope, t, prior)
	if types.IsBottom(u) {
		return nil, tlc.mismatch(scope, term, t, prior)
	}
	tlc.rows[term].Type = u
	return u, nil
}

// Type error for lt => rt, naming tuple arity mismatches.
func (tlc *TLC) mismatch(scope ast.ScopeId, term types.TermId, lt, rt types.Type) error {
	ltt, lok := tlc.ExpandType(scope, lt).(*types.Tuple)
	rtt, rok := tlc.ExpandType(scope, rt).(*types.Tuple)
	if lok && rok && len(ltt.Types) != len(rtt.Types) {
		return tlc.typeError(term, lt, rt, "arity mismatch %d vs %d", len(ltt.Types), len(rtt.Types))
	}
	return tlc.typeError(term, lt, rt, "%s does not imply type", tlc.PrintTerm(term))
}

func (tlc *TLC) check(scope ast.ScopeId, term types.TermId) (types.Type, error) {
	switch t := tlc.rows[term].Term.(type) {
	case *ast.Value:
		return tlc.narrow(scope, term, tlc.literalType(t.Text))

	case *ast.Literal:
		return tlc.narrow(scope, term, tlc.named(tlc.Config.StringType))

	case *ast.Ident:
		if t.Name == "_" {
			return tlc.rows[term].Type, nil
		}
		required := tlc.rows[term].Type
		c := tlc.lookup(scope, t.Name, required)
		if c == nil {
			if tlc.Config.Strict {
				return nil, tlc.errorf(UndefinedName, term, "%s: %s", t.Name, tlc.PrintType(required))
			}
			return required, nil
		}
		u := tlc.Implies(scope, c.Type, required)
		tlc.rows[term].Type = u
		if k, ok := c.Kinds.Get(c.Type); ok {
			tlc.rows[term].Kind = k
		}
		return u, nil

	case *ast.Project, *ast.Fail:
		return tlc.rows[term].Type, nil

	case *ast.Tuple:
		ts := make([]types.Type, len(t.Elems))
		for i, e := range t.Elems {
			et, err := tlc.check(scope, e)
			if err != nil {
				return nil, err
			}
			ts[i] = et
		}
		return tlc.narrow(scope, term, &types.Tuple{Types: ts})

	case *ast.App:
		return tlc.checkApp(scope, term, t)

	case *ast.Let:
		return tlc.checkLet(scope, term, t)

	case *ast.Block:
		if t.Scope == ast.NoScope {
			t.Scope = tlc.PushScope(Scope{Parent: scope})
		}
		if err := tlc.checkLets(t.Scope, t.Stmts); err != nil {
			return nil, err
		}
		var last types.Type = types.Unit()
		for _, stmt := range t.Stmts {
			if _, ok := tlc.rows[stmt].Term.(*ast.Let); ok {
				last = types.Unit()
				continue
			}
			st, err := tlc.check(t.Scope, stmt)
			if err != nil {
				return nil, err
			}
			last = st
		}
		tlc.rows[term].Type = last
		return last, nil

	case *ast.Ascript:
		return tlc.checkAscript(scope, term, t)

	case *ast.As:
		if _, err := tlc.check(scope, t.Term); err != nil {
			return nil, err
		}
		tlc.rows[term].Type = t.Type
		return t.Type, nil

	case *ast.Constructor:
		if len(t.Fields) == 0 {
			return tlc.narrow(scope, term, tlc.named(t.Name))
		}
		ps := make([]types.Type, len(t.Fields))
		for i, f := range t.Fields {
			ft, err := tlc.check(scope, f.Term)
			if err != nil {
				return nil, err
			}
			ps[i] = ft
		}
		return tlc.narrow(scope, term, &types.Named{Name: t.Name, Params: ps})

	case *ast.RuleApplication:
		inner, err := tlc.check(scope, t.Term)
		if err != nil {
			return nil, err
		}
		if t.Rule != "reduce" {
			return nil, tlc.errorf(Unsupported, term, "rule @%s", t.Rule)
		}
		if _, err := tlc.Reduce(scope, t.Term); err != nil {
			return nil, err
		}
		tlc.rows[term].Type = inner
		return inner, nil

	case *ast.Arrow:
		lt := t.Type
		if lt == nil {
			lt = tlc.rows[t.LHS].Type
		}
		tlc.rows[t.LHS].Type = lt
		if t.Scope == ast.NoScope {
			sid, err := tlc.ScopeOfLHS(scope, t.LHS)
			if err != nil {
				return nil, err
			}
			t.Scope = sid
		}
		rt, err := tlc.check(t.Scope, t.RHS)
		if err != nil {
			return nil, err
		}
		ft := &types.Arrow{Domain: tlc.rows[t.LHS].Type, Range: rt}
		tlc.rows[term].Type = ft
		return ft, nil

	case *ast.Match:
		return tlc.checkMatch(scope, term, t)
	}
	return nil, tlc.errorf(Internal, term, "unknown term type: %s", tlc.rows[term].Term.TermName())
}

func (tlc *TLC) checkApp(scope ast.ScopeId, term types.TermId, t *ast.App) (types.Type, error) {
	xt, err := tlc.check(scope, t.Arg)
	if err != nil {
		return nil, err
	}

	switch f := tlc.rows[t.Func].Term.(type) {
	case *ast.Project:
		et, ok := tlc.project(scope, xt, f.Index)
		if !ok {
			return nil, tlc.typeError(term, xt, types.Any{}, "cannot project .%s", f.Index)
		}
		return tlc.narrow(scope, term, et)

	case *ast.Ident:
		required := &types.Arrow{Domain: xt, Range: types.Any{}}
		c := tlc.lookup(scope, f.Name, required)
		if c == nil {
			if tlc.Config.Strict {
				return nil, tlc.errorf(UndefinedName, t.Func, "%s: %s", f.Name, tlc.PrintType(required))
			}
			return tlc.rows[term].Type, nil
		}
		ft := tlc.Implies(scope, c.Type, required)
		tlc.rows[t.Func].Type = ft
		if lt, ok := tlc.rows[c.Term].Term.(*ast.Let); ok {
			if err := tlc.checkArgKinds(t.Arg, lt); err != nil {
				return nil, err
			}
			if kinded(lt.ReturnKind) {
				tlc.rows[term].Kind = lt.ReturnKind
			}
		}
		return tlc.narrow(scope, term, types.Range(ft))
	}

	ft, err := tlc.check(scope, t.Func)
	if err != nil {
		return nil, err
	}
	required := &types.Arrow{Domain: xt, Range: types.Any{}}
	u := tlc.Implies(scope, ft, required)
	if types.IsBottom(u) {
		return nil, tlc.typeError(term, ft, required, "cannot apply %s", tlc.PrintTerm(t.Func))
	}
	tlc.rows[t.Func].Type = u
	return tlc.narrow(scope, term, types.Range(u))
}

// Narrow each argument of a call to the kind its parameter requires. An argument has the kinds
// recorded for its type plus the kind of its row.
func (tlc *TLC) checkArgKinds(arg types.TermId, lt *ast.Let) error {
	if len(lt.Parameters) == 0 {
		return nil
	}
	params := lt.Parameters[0]
	args := []types.TermId{arg}
	if tt, ok := tlc.rows[arg].Term.(*ast.Tuple); ok && len(tt.Elems) == len(params) {
		args = tt.Elems
	} else if len(params) != 1 {
		return nil
	}
	for i, p := range params {
		if !kinded(p.Kind) {
			continue
		}
		row := &tlc.rows[args[i]]
		kinds := tlc.kinds
		if kinded(row.Kind) {
			kinds = kinds.Set(row.Type, types.NewKindAnd(types.KindOf(row.Type, tlc.kinds), row.Kind))
		}
		nt := types.Narrow(row.Type, kinds, p.Kind)
		if types.IsBottom(nt) {
			return tlc.errorf(TypeError, args[i], "argument %s of %s lacks kind %s: %s",
				tlc.PrintTerm(args[i]), lt.Name, p.Kind, tlc.PrintType(row.Type))
		}
		row.Type = nt
		if kinded(row.Kind) {
			row.Kind = types.NewKindAnd(row.Kind, p.Kind)
		} else {
			row.Kind = p.Kind
		}
	}
	return nil
}

func kinded(k types.Kind) bool {
	if k == nil {
		return false
	}
	_, isNil := k.(types.KindNil)
	return !isNil
}

// Element type at index i of a tuple or array type.
func (tlc *TLC) project(scope ast.ScopeId, t types.Type, index constant.Value) (types.Type, bool) {
	i, ok := index.(constant.Integer)
	if !ok || i < 0 {
		return nil, false
	}
	switch t := tlc.ExpandType(scope, t).(type) {
	case *types.Tuple:
		if int(i) < len(t.Types) {
			return t.Types[i], true
		}
	case *types.Named:
		if t.Name == construct.ArrayName && len(t.Params) == 2 {
			return t.Params[0], true
		}
	case types.Any:
		return t, true
	}
	return nil, false
}

// Declare every let-binding among stmts, then check their bodies with dependencies first.
// Mutually dependent bindings are checked in source order.
func (tlc *TLC) checkLets(scope ast.ScopeId, stmts []types.TermId) error {
	var lets []types.TermId
	byName := make(map[string][]int)
	for _, stmt := range stmts {
		if lt, ok := tlc.rows[stmt].Term.(*ast.Let); ok {
			tlc.declareLet(scope, stmt, lt)
			byName[lt.Name] = append(byName[lt.Name], len(lets))
			lets = append(lets, stmt)
		}
	}
	if len(lets) == 0 {
		return nil
	}
	g := depgraph.New(len(lets))
	for i, id := range lets {
		lt := tlc.rows[id].Term.(*ast.Let)
		if lt.IsExtern {
			continue
		}
		ast.WalkTerm(tlc, lt.Body, func(_ types.TermId, t ast.Term) {
			if ident, ok := t.(*ast.Ident); ok {
				for _, j := range byName[ident.Name] {
					g.DependsOn(i, j)
				}
			}
		})
	}
	for _, i := range g.Order() {
		if _, err := tlc.checkLetBody(lets[i], tlc.rows[lets[i]].Term.(*ast.Let)); err != nil {
			return err
		}
	}
	return nil
}

func (tlc *TLC) checkLet(scope ast.ScopeId, term types.TermId, lt *ast.Let) (types.Type, error) {
	tlc.declareLet(scope, term, lt)
	return tlc.checkLetBody(term, lt)
}

// Bind the parameters of a let-binding in its own scope and the binding in the enclosing scope.
func (tlc *TLC) declareLet(scope ast.ScopeId, term types.TermId, lt *ast.Let) {
	if lt.Scope == ast.NoScope {
		lt.Scope = tlc.PushScope(Scope{Parent: scope})
	}
	for _, group := range lt.Parameters {
		for _, p := range group {
			if p.Name == "" || tlc.declares(lt.Scope, p.Name) {
				continue
			}
			pt := p.Type
			if pt == nil {
				pt = types.Any{}
			}
			id := tlc.PushTyped(&ast.Ident{Name: p.Name}, pt, tlc.rows[term].Span)
			kinds := types.NewKindTable()
			if kinded(p.Kind) {
				kinds = kinds.Set(pt, p.Kind)
				tlc.rows[id].Kind = p.Kind
			}
			tlc.Bind(lt.Scope, ScopeChild{Name: p.Name, Kinds: kinds, Type: pt, Term: id})
		}
	}
	if scope != ast.NoScope && !tlc.isBound(scope, lt.Name, term) {
		tlc.Bind(scope, ScopeChild{Name: lt.Name, Kinds: letKinds(lt), Type: construct.LetType(lt), Term: term})
	}
}

// Kinds of the parameter and return types of a let-binding.
func letKinds(lt *ast.Let) types.KindTable {
	kinds := types.NewKindTable()
	for _, group := range lt.Parameters {
		for _, p := range group {
			if p.Type != nil && kinded(p.Kind) {
				kinds = kinds.Set(p.Type, p.Kind)
			}
		}
	}
	if lt.ReturnType != nil && kinded(lt.ReturnKind) {
		kinds = kinds.Set(lt.ReturnType, lt.ReturnKind)
	}
	return kinds
}

func (tlc *TLC) checkLetBody(term types.TermId, lt *ast.Let) (types.Type, error) {
	if !lt.IsExtern && lt.Body != types.NoTerm {
		bt, err := tlc.check(lt.Scope, lt.Body)
		if err != nil {
			return nil, err
		}
		if lt.ReturnType != nil && types.IsBottom(tlc.Implies(lt.Scope, bt, lt.ReturnType)) {
			return nil, tlc.mismatch(lt.Scope, lt.Body, bt, lt.ReturnType)
		}
	}
	tlc.rows[term].Type = types.Unit()
	return tlc.rows[term].Type, nil
}

func (tlc *TLC) checkAscript(scope ast.ScopeId, term types.TermId, t *ast.Ascript) (types.Type, error) {
	it, err := tlc.check(scope, t.Term)
	if err != nil {
		return nil, err
	}
	if ct, ok := t.Type.(*types.Constant); ok {
		want, err := tlc.Reduce(scope, ct.Term)
		if err != nil {
			return nil, err
		}
		got, err := tlc.Reduce(scope, t.Term)
		if err != nil {
			return nil, err
		}
		if !constant.Equal(want, got) {
			return nil, tlc.errorf(TypeError, term, "%s reduces to %s, not %s", tlc.PrintTerm(t.Term), got, want)
		}
		tlc.rows[term].Type = ct
		return ct, nil
	}
	u := tlc.Implies(scope, it, t.Type)
	if types.IsBottom(u) {
		return nil, tlc.mismatch(scope, term, it, t.Type)
	}
	tlc.rows[t.Term].Type = u
	tlc.rows[term].Type = u
	return u, nil
}

func (tlc *TLC) checkMatch(scope ast.ScopeId, term types.TermId, t *ast.Match) (types.Type, error) {
	st, err := tlc.check(scope, t.Scrutinee)
	if err != nil {
		return nil, err
	}
	var result types.Type = types.Any{}
	for i := range t.Arms {
		arm := &t.Arms[i]
		if err := tlc.checkPattern(scope, arm.LHS, st); err != nil {
			return nil, err
		}
		if arm.Scope == ast.NoScope {
			sid, err := tlc.ScopeOfLHS(scope, arm.LHS)
			if err != nil {
				return nil, err
			}
			arm.Scope = sid
		}
		rt, err := tlc.check(arm.Scope, arm.RHS)
		if err != nil {
			return nil, err
		}
		switch {
		case isAny(rt):
		case isAny(result):
			result = rt
		default:
			u := types.MostGeneralUnifier(result, rt)
			if types.IsBottom(u) {
				return nil, tlc.typeError(arm.RHS, result, rt, "match arms disagree")
			}
			result = u
		}
	}
	tlc.rows[term].Type = result
	return result, nil
}

// Assign types to a pattern matched against a scrutinee of type st.
func (tlc *TLC) checkPattern(scope ast.ScopeId, lhs types.TermId, st types.Type) error {
	switch t := tlc.rows[lhs].Term.(type) {
	case *ast.Value:
		lt := tlc.literalType(t.Text)
		if !isAny(st) && types.IsBottom(tlc.Implies(scope, lt, st)) {
			return tlc.mismatch(scope, lhs, lt, st)
		}
		tlc.rows[lhs].Type = lt
		return nil
	case *ast.Ident:
		tlc.rows[lhs].Type = st
		return nil
	case *ast.Ascript:
		if !isAny(st) && types.IsBottom(tlc.Implies(scope, t.Type, st)) {
			return tlc.mismatch(scope, lhs, t.Type, st)
		}
		return tlc.checkPattern(scope, t.Term, t.Type)
	}
	return tlc.errorf(Unsupported, lhs, "pattern %s", tlc.PrintTerm(lhs))
}

func isAny(t types.Type) bool {
	_, ok := t.(types.Any)
	return ok
}
