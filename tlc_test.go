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

package tlc_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/tlc"
	"github.com/wdamron/tlc/ast"
	. "github.com/wdamron/tlc/construct"
	"github.com/wdamron/tlc/ir"
	"github.com/wdamron/tlc/types"
)

var (
	tInteger = TNamed("Integer")
	tBoolean = TNamed("Boolean")
	tString  = TNamed("String")
)

// A compilation unit with a root scope and a silent logger.
func newUnit(t *testing.T, cfg tlc.Config) (*tlc.TLC, ast.ScopeId) {
	t.Helper()
	u := tlc.New(cfg)
	u.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return u, u.PushScope(tlc.Scope{Parent: ast.NoScope})
}

// Push a term spanning line n+1 of test.tlc, where n is its handle.
func push(u *tlc.TLC, term ast.Term) types.TermId {
	return u.Push(term, ast.Span{Filename: "test.tlc", Start: ast.Position{Line: u.Len() + 1, Column: 1}})
}

func TestRows(t *testing.T) {
	u, _ := newUnit(t, tlc.DefaultConfig())

	one := push(u, Value("1"))
	x := u.PushTyped(Ident("x"), tInteger, ast.Span{})
	app := push(u, App(push(u, Ident("f")), push(u, Tuple(one, x))))

	require.Equal(t, 5, u.Len())
	assert.Equal(t, "f(1, x)", u.PrintTerm(app))
	assert.Equal(t, "test.tlc:5:1", u.Row(app).Span.String())
	assert.Equal(t, "[string]:0:0", u.Row(x).Span.String())
	assert.True(t, types.Equal(types.Any{}, u.TypeOf(one)))
	assert.True(t, types.Equal(tInteger, u.TypeOf(x)))

	u.SetType(one, tInteger)
	u.SetKind(one, KNamed("Number"))
	k, ok := u.Kinds().Get(tInteger)
	require.True(t, ok)
	assert.Equal(t, "Number", k.String())
	assert.Equal(t, "Number", u.Row(one).Kind.String())
	assert.Equal(t, "(Integer::Number,String)", u.PrintType(TTuple(tInteger, tString)))

	snapshot := u.Kinds()
	u.DeclareKind(tString, KNamed("Text"))
	_, ok = snapshot.Get(tString)
	assert.False(t, ok, "snapshot must not observe later kinds")
}

func TestLookupOverloads(t *testing.T) {
	u, root := newUnit(t, tlc.DefaultConfig())
	fInt := push(u, Ident("f"))
	fBool := push(u, Ident("f"))
	fInner := push(u, Ident("f"))

	u.Bind(root, tlc.ScopeChild{Name: "f", Type: TFunc([]types.Type{tInteger}, tInteger), Term: fInt})
	u.Bind(root, tlc.ScopeChild{Name: "f", Type: TFunc([]types.Type{tBoolean}, tBoolean), Term: fBool})
	u.Bind(root, tlc.ScopeChild{Name: "g", Type: tInteger, Term: types.NoTerm})
	inner := u.PushScope(tlc.Scope{Parent: root})
	u.Bind(inner, tlc.ScopeChild{Name: "f", Type: TFunc([]types.Type{tInteger}, tInteger), Term: fInner})

	callWith := func(arg types.Type) types.Type { return TFunc([]types.Type{arg}, TAny()) }

	cases := []struct {
		scope    ast.ScopeId
		name     string
		required types.Type
		want     types.TermId
		found    bool
	}{
		{root, "f", callWith(tInteger), fInt, true},
		{root, "f", callWith(tBoolean), fBool, true},
		{root, "f", callWith(tString), types.NoTerm, false},
		{inner, "f", callWith(tInteger), fInner, true},
		{inner, "f", callWith(tBoolean), fBool, true},
		{inner, "f", TAny(), fInner, true},
		{inner, "g", TAny(), types.NoTerm, false},
		{inner, "h", TAny(), types.NoTerm, false},
	}
	for _, c := range cases {
		id, ok := u.LookupTerm(c.scope, c.name, c.required)
		assert.Equal(t, c.found, ok, "lookup %s: %s", c.name, types.TypeString(c.required))
		assert.Equal(t, c.want, id, "lookup %s: %s", c.name, types.TypeString(c.required))
	}
}

func TestEquals(t *testing.T) {
	u, _ := newUnit(t, tlc.DefaultConfig())
	lambda := func(annotation types.Type) types.TermId {
		x := push(u, Ident("x"))
		body := push(u, Tuple(push(u, Ident("x")), push(u, Value("1"))))
		return push(u, Lambda(ast.NoScope, x, annotation, body))
	}

	assert.True(t, u.Equals(lambda(tInteger), lambda(tInteger)))
	assert.True(t, u.Equals(lambda(nil), lambda(nil)))
	assert.False(t, u.Equals(lambda(tInteger), lambda(tBoolean)))
	assert.False(t, u.Equals(lambda(tInteger), lambda(nil)))

	call := func(args ...string) types.TermId {
		ids := make([]types.TermId, len(args))
		for i, a := range args {
			ids[i] = push(u, Value(a))
		}
		return push(u, App(push(u, Ident("f")), push(u, Tuple(ids...))))
	}
	assert.True(t, u.Equals(call("1", "2"), call("1", "2")))
	assert.False(t, u.Equals(call("1", "2"), call("1")))
	assert.False(t, u.Equals(call("1", "2"), call("2", "1")))

	assert.False(t, u.Equals(push(u, Value("x")), push(u, Ident("x"))))
	assert.False(t, u.Equals(push(u, Tag("True")), push(u, Tag("True"))))
	assert.True(t, u.Equals(types.NoTerm, types.NoTerm))
	assert.False(t, u.Equals(types.NoTerm, push(u, Ident("x"))))
}

func TestScopeOfLHS(t *testing.T) {
	u, root := newUnit(t, tlc.DefaultConfig())

	x := push(u, Ident("x"))
	s, err := u.ScopeOfLHS(root, x)
	require.NoError(t, err)
	id, ok := u.LookupTerm(s, "x", TAny())
	require.True(t, ok)
	assert.Equal(t, x, id)
	assert.Equal(t, root, u.Scope(s).Parent)

	y := push(u, Ident("y"))
	asc := push(u, Ascript(y, tInteger))
	s, err = u.ScopeOfLHS(root, asc)
	require.NoError(t, err)
	assert.True(t, types.Equal(tInteger, u.TypeOf(y)))
	assert.True(t, types.Equal(tInteger, u.TypeOf(asc)))
	id, ok = u.LookupTerm(s, "y", tInteger)
	require.True(t, ok)
	assert.Equal(t, y, id)

	for _, lhs := range []types.TermId{push(u, Ident("_")), push(u, Value("1"))} {
		s, err := u.ScopeOfLHS(root, lhs)
		require.NoError(t, err)
		assert.Empty(t, u.Scope(s).Children)
	}

	pair := push(u, Tuple(push(u, Ident("a")), push(u, Ident("b"))))
	_, err = u.ScopeOfLHS(root, pair)
	require.Error(t, err)
	assert.True(t, tlc.IsKind(err, tlc.Unsupported), err.Error())
}

func TestCompileLHS(t *testing.T) {
	u, root := newUnit(t, tlc.DefaultConfig())

	x := push(u, Ident("x"))
	s, err := u.ScopeOfLHS(root, x)
	require.NoError(t, err)

	cases := []struct {
		lhs  types.TermId
		want ir.LHSPart
	}{
		{push(u, Value("1")), ir.LHSLiteral{Text: "1"}},
		{push(u, Ident("_")), ir.LHSAny{}},
		{x, ir.LHSVariable{Id: int(x)}},
		{push(u, Ascript(x, TAny())), ir.LHSVariable{Id: int(x)}},
	}
	for _, c := range cases {
		got, err := u.CompileLHS(s, c.lhs)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, u.PrintTerm(c.lhs))
	}

	_, err = u.CompileLHS(s, push(u, Ident("z")))
	assert.True(t, tlc.IsKind(err, tlc.UndefinedName), "%v", err)
	_, err = u.CompileLHS(s, push(u, Tuple()))
	assert.True(t, tlc.IsKind(err, tlc.Unsupported), "%v", err)
}
