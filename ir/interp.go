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

package ir

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
)

// ForeignFunc implements a foreign symbol called by lowered programs.
type ForeignFunc func(args []Value) (Value, error)

// DefaultMaxDepth bounds the call depth of an Interpreter with no MaxDepth.
const DefaultMaxDepth = 10000

// Interpreter is a reference Evaluator which walks expression trees directly.
type Interpreter struct {
	// Foreign symbols callable from programs
	Foreign map[string]ForeignFunc
	// Maximum call depth. Zero means DefaultMaxDepth.
	MaxDepth int
	// Logger for debug records. Nil means slog.Default().
	Logger *slog.Logger
}

// NewInterpreter creates an interpreter with an empty foreign-symbol table.
func NewInterpreter() *Interpreter {
	return &Interpreter{Foreign: make(map[string]ForeignFunc)}
}

// Bind registers a foreign symbol.
func (in *Interpreter) Bind(symbol string, f ForeignFunc) {
	if in.Foreign == nil {
		in.Foreign = make(map[string]ForeignFunc)
	}
	in.Foreign[symbol] = f
}

type frame struct {
	prog  *Program
	env   map[int]Value
	depth int
}

// Eval evaluates the top-level expressions of p in order and returns the value of the last one.
func (in *Interpreter) Eval(ctx context.Context, p *Program) (Value, error) {
	fr := &frame{prog: p, env: make(map[int]Value)}
	var result Value = UnitValue{}
	for _, e := range p.Main {
		v, err := in.eval(ctx, fr, e)
		if err != nil {
			return nil, err
		}
		result = v
	}
	in.logger().Debug("evaluated program", "functions", len(p.Functions), "result", result.String())
	return result, nil
}

func (in *Interpreter) logger() *slog.Logger {
	if in.Logger != nil {
		return in.Logger
	}
	return slog.Default()
}

func (in *Interpreter) maxDepth() int {
	if in.MaxDepth > 0 {
		return in.MaxDepth
	}
	return DefaultMaxDepth
}

func (in *Interpreter) eval(ctx context.Context, fr *frame, e Expression) (Value, error) {
	switch e := e.(type) {
	case *Unit:
		return UnitValue{}, nil

	case *Literal:
		return ParseLiteral(e.Text, e.Type)

	case *Variable:
		v, ok := fr.env[e.Id]
		if !ok {
			return nil, errors.Errorf("%s: unbound variable #%d", e.At, e.Id)
		}
		return v, nil

	case *Apply:
		args := make([]Value, len(e.Args))
		for i, arg := range e.Args {
			v, err := in.eval(ctx, fr, arg)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return in.call(ctx, fr, e, args)

	case *Pattern:
		v, err := in.eval(ctx, fr, e.Scrutinee)
		if err != nil {
			return nil, err
		}
		for _, arm := range e.Arms {
			ok, err := match(fr.env, arm.LHS, v)
			if err != nil {
				return nil, errors.Wrapf(err, "%s", e.At)
			}
			if ok {
				return in.eval(ctx, fr, arm.RHS)
			}
		}
		return nil, errors.Errorf("%s: non-exhaustive pattern for %s", e.At, v)

	case nil:
		return nil, errors.New("nil expression")
	}
	return nil, errors.Errorf("unknown expression type: %s", e.ExprName())
}

func (in *Interpreter) call(ctx context.Context, fr *frame, e *Apply, args []Value) (Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fd := fr.prog.Lookup(e.Func)
	if fd == nil {
		f, ok := in.Foreign[e.Func]
		if !ok {
			return nil, errors.Errorf("%s: undefined function %s", e.At, e.Func)
		}
		v, err := f(args)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: %s", e.At, e.Func)
		}
		return v, nil
	}
	if len(args) != len(fd.Params) {
		return nil, errors.Errorf("%s: %s expects %d arguments, got %d", e.At, fd.Name, len(fd.Params), len(args))
	}
	if fr.depth+1 > in.maxDepth() {
		return nil, errors.Errorf("%s: maximum call depth %d exceeded in %s", e.At, in.maxDepth(), fd.Name)
	}
	callee := &frame{prog: fr.prog, env: make(map[int]Value, len(fd.Params)), depth: fr.depth + 1}
	for i, p := range fd.Params {
		callee.env[p.Id] = args[i]
	}
	var result Value = UnitValue{}
	for _, be := range fd.Body {
		v, err := in.eval(ctx, callee, be)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func match(env map[int]Value, lhs LHSPart, v Value) (bool, error) {
	switch p := lhs.(type) {
	case LHSAny:
		return true, nil
	case LHSVariable:
		env[p.Id] = v
		return true, nil
	case LHSLiteral:
		lv, err := ParseLiteral(p.Text, ValueType)
		if err != nil {
			return false, err
		}
		return EqualValues(lv, v), nil
	}
	return false, errors.Errorf("unsupported pattern %s", lhs.LHSName())
}
