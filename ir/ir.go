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

// Package ir contains the executable intermediate form produced by lowering let-bound terms: named
// function definitions, expression trees tagged with a primitive runtime type, and patterns.
//
// Programs are consumed by an Evaluator. Interpreter is a small reference Evaluator.
package ir

import (
	"context"

	"github.com/wdamron/tlc/ast"
)

// DataType is the primitive runtime type tag of an expression or parameter.
type DataType string

const (
	// Unit values
	UnitType DataType = "Unit"
	// Boxed values of any other shape
	ValueType DataType = "Value"
)

// Program is a list of function definitions and a top-level expression list. The value of a
// program is the value of its last top-level expression.
type Program struct {
	Functions []*FunctionDefinition
	Main      []Expression
}

// Lookup returns the function definition with the given mangled name, or nil.
func (p *Program) Lookup(name string) *FunctionDefinition {
	for _, fd := range p.Functions {
		if fd.Name == name {
			return fd
		}
	}
	return nil
}

// Param is a function parameter, identified by the term it is bound to.
type Param struct {
	Id   int
	Type DataType
}

// FunctionDefinition is a named function. The value of a call is the value of the last
// expression of the body.
type FunctionDefinition struct {
	Name   string
	Params []Param
	Body   []Expression
}

// Define creates a function definition with an empty body.
func Define(name string, params []Param) *FunctionDefinition {
	return &FunctionDefinition{Name: name, Params: params}
}

// Evaluator executes a program and returns its value.
type Evaluator interface {
	Eval(ctx context.Context, p *Program) (Value, error)
}

// Expression is the base for all lowered expressions.
type Expression interface {
	// Name of the expression-type.
	ExprName() string
	// Runtime type of the value of the expression.
	DataType() DataType
	// Source span of the expression.
	Span() ast.Span
}

var (
	_ Expression = (*Unit)(nil)
	_ Expression = (*Literal)(nil)
	_ Expression = (*Variable)(nil)
	_ Expression = (*Apply)(nil)
	_ Expression = (*Pattern)(nil)
)

// Meta holds the runtime type and span shared by all expressions.
type Meta struct {
	Type DataType
	At   ast.Span
}

func (m *Meta) DataType() DataType { return m.Type }
func (m *Meta) Span() ast.Span     { return m.At }

// Unit value: `()`
type Unit struct {
	Meta
}

// Literal value, kept as source text
type Literal struct {
	Meta
	Text string
}

// Reference to the value bound to a term
type Variable struct {
	Meta
	Id int
}

// Call of a defined function or a foreign symbol
type Apply struct {
	Meta
	Func string
	Args []Expression
}

// PatternArm pairs a pattern with the expression evaluated when it matches.
type PatternArm struct {
	LHS LHSPart
	RHS Expression
}

// Pattern match. Arms are tried in order; the first match wins.
type Pattern struct {
	Meta
	Scrutinee Expression
	Arms      []PatternArm
}

func (e *Unit) ExprName() string     { return "Unit" }
func (e *Literal) ExprName() string  { return "Literal" }
func (e *Variable) ExprName() string { return "Variable" }
func (e *Apply) ExprName() string    { return "Apply" }
func (e *Pattern) ExprName() string  { return "Pattern" }

// NewUnit creates a unit expression.
func NewUnit(span ast.Span) *Unit {
	return &Unit{Meta{UnitType, span}}
}

// NewLiteral creates a literal expression of the given runtime type.
func NewLiteral(text string, dt DataType, span ast.Span) *Literal {
	return &Literal{Meta{dt, span}, text}
}

// NewVariable creates a reference to the value bound to term id.
func NewVariable(id int, dt DataType, span ast.Span) *Variable {
	return &Variable{Meta{dt, span}, id}
}

// NewApply creates a call of fn.
func NewApply(fn string, args []Expression, dt DataType, span ast.Span) *Apply {
	return &Apply{Meta{dt, span}, fn, args}
}

// NewPattern creates a pattern match over scrutinee.
func NewPattern(scrutinee Expression, arms []PatternArm, dt DataType, span ast.Span) *Pattern {
	return &Pattern{Meta{dt, span}, scrutinee, arms}
}

// LHSPart is a lowered pattern.
type LHSPart interface {
	LHSName() string
}

// Wildcard pattern: `_`
type LHSAny struct{}

// Literal pattern, matching values equal to the literal
type LHSLiteral struct {
	Text string
}

// Variable pattern, binding the matched value to a term
type LHSVariable struct {
	Id int
}

func (p LHSAny) LHSName() string      { return "Any" }
func (p LHSLiteral) LHSName() string  { return "Literal" }
func (p LHSVariable) LHSName() string { return "Variable" }
