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
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/wdamron/tlc"
	"github.com/wdamron/tlc/ast"
	"github.com/wdamron/tlc/constant"
	. "github.com/wdamron/tlc/construct"
	"github.com/wdamron/tlc/ir"
	"github.com/wdamron/tlc/types"
)

// { extern let add(a: Integer, b: Integer): Integer = int_add; let inc(x: Integer): Integer = add(x, 1); inc(inc(41)) }
func incProgram(t *testing.T) (*tlc.TLC, ast.ScopeId, types.TermId) {
	t.Helper()
	u, root := newUnit(t, tlc.DefaultConfig())

	symbol := push(u, Ident("int_add"))
	add := push(u, Extern(ast.NoScope, "add", []ast.Parameter{Param("a", tInteger), Param("b", tInteger)}, tInteger, symbol))
	x := push(u, Ident("x"))
	one := push(u, Value("1"))
	args := push(u, Tuple(x, one))
	body := push(u, App(push(u, Ident("add")), args))
	inc := push(u, Let(ast.NoScope, "inc", []ast.Parameter{Param("x", tInteger)}, tInteger, body))
	inner := push(u, App(push(u, Ident("inc")), tuple(u, "41")))
	outer := push(u, App(push(u, Ident("inc")), push(u, Tuple(inner))))
	block := push(u, Block(ast.NoScope, add, inc, outer))
	require.Equal(t, types.TermId(15), block)

	require.NoError(t, u.Check(root, block))
	return u, root, block
}

func TestCompile(t *testing.T) {
	u, root, block := incProgram(t)

	prog, err := u.Compile(root, block)
	require.NoError(t, err)
	require.Len(t, prog.Functions, 1, "inc must be compiled once")
	golden.Assert(t, ir.ProgramString(prog), "compile.golden")

	_, err = u.Reduce(root, block)
	assert.True(t, tlc.IsKind(err, tlc.NotReducible), "extern calls do not fold: %v", err)
}

func TestEvaluate(t *testing.T) {
	u, root, block := incProgram(t)

	in := ir.NewInterpreter()
	in.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	in.Bind("int_add", func(args []ir.Value) (ir.Value, error) {
		a, aok := args[0].(ir.IntegerValue)
		b, bok := args[1].(ir.IntegerValue)
		if !aok || !bok {
			return nil, errors.Errorf("int_add: expected integers, got %# v", pretty.Formatter(args))
		}
		return a + b, nil
	})

	c, err := u.Evaluate(context.Background(), root, block, in)
	require.NoError(t, err)
	assert.Equal(t, constant.Integer(43), c)

	_, err = u.Evaluate(context.Background(), root, block, ir.NewInterpreter())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined function int_add")
}

func TestCompileUnsupported(t *testing.T) {
	u, root := newUnit(t, tlc.DefaultConfig())

	k := push(u, LetCurried(ast.NoScope, "k", [][]ast.Parameter{{Param("x", tInteger)}, {Param("y", tInteger)}}, tInteger, push(u, Ident("x"))))
	call := push(u, App(push(u, Ident("k")), tuple(u, "1")))
	untyped := push(u, Let(ast.NoScope, "u", []ast.Parameter{{Name: "x"}}, nil, push(u, Ident("x"))))
	valued := push(u, Let(ast.NoScope, "v", nil, tInteger, push(u, Value("1"))))
	block := push(u, Block(ast.NoScope, k, untyped, valued, call))
	require.NoError(t, u.Check(root, block))

	_, err := u.Compile(root, block)
	assert.True(t, tlc.IsKind(err, tlc.Unsupported), "curried call: %v", err)

	for _, fn := range []types.TermId{k, untyped, valued} {
		_, err := u.CompileFunction(&ir.Program{}, fn)
		assert.True(t, tlc.IsKind(err, tlc.Unsupported), "%s: %v", u.PrintTerm(fn), err)
	}
	_, err = u.CompileFunction(&ir.Program{}, call)
	assert.True(t, tlc.IsKind(err, tlc.Internal), "%v", err)

	flatmap := push(u, App(push(u, Ident(".flatmap")), push(u, Tuple(push(u, Ident("xs")), push(u, Value("1"))))))
	_, err = u.Compile(root, flatmap)
	assert.True(t, tlc.IsKind(err, tlc.Internal), "%v", err)
}

func TestCompileFunctionFailureLeavesProgram(t *testing.T) {
	u, root := newUnit(t, tlc.DefaultConfig())

	k := push(u, LetCurried(ast.NoScope, "k", [][]ast.Parameter{{Param("x", tInteger)}, {Param("y", tInteger)}}, tInteger, push(u, Ident("x"))))
	bad := push(u, Let(ast.NoScope, "bad", []ast.Parameter{Param("x", tInteger)}, nil,
		push(u, App(push(u, Ident("k")), push(u, Tuple(push(u, Ident("x"))))))))
	block := push(u, Block(ast.NoScope, k, bad))
	require.NoError(t, u.Check(root, block))

	prog := &ir.Program{}
	for i := 0; i < 2; i++ {
		_, err := u.CompileFunction(prog, bad)
		assert.True(t, tlc.IsKind(err, tlc.Unsupported), "attempt %d: %v", i, err)
		assert.Empty(t, prog.Functions, "attempt %d", i)
	}
}

func TestMangle(t *testing.T) {
	cases := []struct {
		lt   *ast.Let
		want string
	}{
		{Let(ast.NoScope, "inc", []ast.Parameter{Param("x", tInteger)}, tInteger, types.NoTerm), "inc:(Integer)->Integer"},
		{Let(ast.NoScope, "pair", []ast.Parameter{Param("x", tInteger), Param("y", tBoolean)}, TTuple(tInteger, tBoolean), types.NoTerm), "pair:(Integer,Boolean)->(Integer,Boolean)"},
		{Let(ast.NoScope, "f", []ast.Parameter{{Name: "x"}}, nil, types.NoTerm), "f:()->?"},
		{LetCurried(ast.NoScope, "k", [][]ast.Parameter{{Param("x", tInteger)}, {Param("y", tBoolean)}}, tString, types.NoTerm), "k:(Integer)->(Boolean)->String"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, tlc.Mangle(c.lt))
	}
}

func TestDataType(t *testing.T) {
	assert.Equal(t, ir.DataType("Integer"), tlc.DataType(tInteger))
	assert.Equal(t, ir.UnitType, tlc.DataType(types.Unit()))
	assert.Equal(t, ir.ValueType, tlc.DataType(TNamed("List", tInteger)))
	assert.Equal(t, ir.ValueType, tlc.DataType(TAny()))
	assert.Equal(t, ir.ValueType, tlc.DataType(TTuple(tInteger)))
}

func TestFromValue(t *testing.T) {
	c, err := tlc.FromValue(ir.TupleValue{ir.IntegerValue(1), ir.BooleanValue(false), ir.StringValue("x"), ir.UnitValue{}})
	require.NoError(t, err)
	assert.Equal(t, "(1,False,x,())", c.String())

	_, err = tlc.FromValue(ir.FloatValue(1.5))
	assert.Error(t, err)
}
