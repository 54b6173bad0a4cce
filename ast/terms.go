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

import (
	"fmt"

	"github.com/wdamron/tlc/constant"
	"github.com/wdamron/tlc/types"
)

// ScopeId is a stable handle into the scope arena of a compilation unit.
type ScopeId int

// NoScope marks an absent scope handle, such as the parent of a root scope.
const NoScope ScopeId = -1

// Position is a 1-based line and column in a source file.
type Position struct {
	Line   int
	Column int
}

// Span is the source range a term was translated from.
type Span struct {
	Filename string
	Start    Position
	End      Position
}

// String returns `file:line:col` for the start of s.
func (s Span) String() string {
	name := s.Filename
	if name == "" {
		name = "[string]"
	}
	return fmt.Sprintf("%s:%d:%d", name, s.Start.Line, s.Start.Column)
}

// Term is the base for all terms. Terms refer to other terms by TermId; they are never cloned
// for identity purposes.
type Term interface {
	// Name of the syntax-type of the term.
	TermName() string
}

var (
	_ Term = (*Ident)(nil)
	_ Term = (*Value)(nil)
	_ Term = (*Project)(nil)
	_ Term = (*Arrow)(nil)
	_ Term = (*App)(nil)
	_ Term = (*Let)(nil)
	_ Term = (*Tuple)(nil)
	_ Term = (*Block)(nil)
	_ Term = (*Ascript)(nil)
	_ Term = (*As)(nil)
	_ Term = (*Constructor)(nil)
	_ Term = (*RuleApplication)(nil)
	_ Term = (*Match)(nil)
	_ Term = (*Fail)(nil)
	_ Term = (*Literal)(nil)
)

// Identifier: `x`
type Ident struct {
	Name string
}

// Literal value, kept as source text: `1`, `True`
type Value struct {
	Text string
}

// Tuple projection by a constant index: `.1`. Applied to a tuple with App.
type Project struct {
	Index constant.Value
}

// Lambda: `fn x: T -> e`. Scope holds the bindings of LHS; Type is nil when the lambda is unannotated.
type Arrow struct {
	Scope ScopeId
	LHS   types.TermId
	Type  types.Type
	RHS   types.TermId
}

// Application: `f(x)`. Arguments of a call are always a Tuple.
type App struct {
	Func types.TermId
	Arg  types.TermId
}

// Parameter of a let-binding. Name is empty for an unnamed parameter; Type is nil for an
// untyped parameter.
type Parameter struct {
	Name string
	Type types.Type
	Kind types.Kind
}

// Let-binding, possibly curried (more than one parameter group) and possibly extern. The body of
// an extern binding is an Ident naming the foreign symbol.
type Let struct {
	IsExtern   bool
	Scope      ScopeId
	Name       string
	Parameters [][]Parameter
	Body       types.TermId
	ReturnType types.Type
	ReturnKind types.Kind
}

// Tuple: `(a, b)`. The empty tuple is the unit value.
type Tuple struct {
	Elems []types.TermId
}

// Block of statements in its own scope: `{a; b}`
type Block struct {
	Scope ScopeId
	Stmts []types.TermId
}

// Ascription: `e: T`
type Ascript struct {
	Term types.TermId
	Type types.Type
}

// Hard cast: `e as T`
type As struct {
	Term types.TermId
	Type types.Type
}

// Field of a constructor
type Field struct {
	Name string
	Term types.TermId
}

// Constructor: `Point{x=1, y=2}`, or a bare tag when there are no fields.
type Constructor struct {
	Name   string
	Fields []Field
}

// Rule application: `@reduce e`
type RuleApplication struct {
	Term types.TermId
	Rule string
}

// Arm of a pattern match. Scope holds the bindings introduced by LHS.
type Arm struct {
	Scope ScopeId
	LHS   types.TermId
	RHS   types.TermId
}

// Pattern match: `match e { p => r; ... }`. Arms are tried in order.
type Match struct {
	Scrutinee types.TermId
	Arms      []Arm
}

// Fail marks a term which does not return a value.
type Fail struct{}

// Literal built from parts: `"abc"x`
type Literal struct {
	Parts []LiteralPart
}

func (t *Ident) TermName() string           { return "Ident" }
func (t *Value) TermName() string           { return "Value" }
func (t *Project) TermName() string         { return "Project" }
func (t *Arrow) TermName() string           { return "Arrow" }
func (t *App) TermName() string             { return "App" }
func (t *Let) TermName() string             { return "Let" }
func (t *Tuple) TermName() string           { return "Tuple" }
func (t *Block) TermName() string           { return "Block" }
func (t *Ascript) TermName() string         { return "Ascript" }
func (t *As) TermName() string              { return "As" }
func (t *Constructor) TermName() string     { return "Constructor" }
func (t *RuleApplication) TermName() string { return "RuleApplication" }
func (t *Match) TermName() string           { return "Match" }
func (t *Fail) TermName() string            { return "Fail" }
func (t *Literal) TermName() string         { return "Literal" }

// LiteralPart is one segment of a Literal.
type LiteralPart interface {
	String() string
}

// Interpolated variable
type LiteralVar struct {
	Name string
}

// Character with a suffix: `'a'u8`
type LiteralChar struct {
	Char   rune
	Suffix string
}

// String with a suffix: `"abc"s`
type LiteralString struct {
	Text   string
	Suffix string
}

// Character ranges with a suffix: `[a-z]c`
type LiteralRange struct {
	Ranges [][2]rune
	Suffix string
}

func (p LiteralVar) String() string    { return p.Name }
func (p LiteralChar) String() string   { return fmt.Sprintf("'%c'%s", p.Char, p.Suffix) }
func (p LiteralString) String() string { return fmt.Sprintf("%q%s", p.Text, p.Suffix) }
func (p LiteralRange) String() string  { return "[?]" + p.Suffix }
