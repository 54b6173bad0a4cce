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
	"strconv"
	"strings"
)

// ProgramString returns a readable listing of p: one block per function definition, followed by
// the top-level expressions.
func ProgramString(p *Program) string {
	var sb strings.Builder
	for _, fd := range p.Functions {
		sb.WriteString("fn ")
		sb.WriteString(fd.Name)
		sb.WriteByte('(')
		for i, param := range fd.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('#')
			sb.WriteString(strconv.Itoa(param.Id))
			sb.WriteString(": ")
			sb.WriteString(string(param.Type))
		}
		sb.WriteString(") {\n")
		for _, e := range fd.Body {
			sb.WriteString("  ")
			exprString(&sb, e)
			sb.WriteByte('\n')
		}
		sb.WriteString("}\n")
	}
	sb.WriteString("main {\n")
	for _, e := range p.Main {
		sb.WriteString("  ")
		exprString(&sb, e)
		sb.WriteByte('\n')
	}
	sb.WriteString("}\n")
	return sb.String()
}

// ExpressionString returns a string representation of e, annotated with its runtime type.
func ExpressionString(e Expression) string {
	var sb strings.Builder
	exprString(&sb, e)
	return sb.String()
}

func exprString(sb *strings.Builder, e Expression) {
	switch e := e.(type) {
	case *Unit:
		sb.WriteString("()")
		return

	case *Literal:
		sb.WriteString(e.Text)

	case *Variable:
		sb.WriteByte('#')
		sb.WriteString(strconv.Itoa(e.Id))

	case *Apply:
		sb.WriteString(e.Func)
		sb.WriteByte('(')
		for i, arg := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, arg)
		}
		sb.WriteByte(')')

	case *Pattern:
		sb.WriteString("match ")
		exprString(sb, e.Scrutinee)
		sb.WriteString(" {")
		for i, arm := range e.Arms {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteByte(' ')
			lhsString(sb, arm.LHS)
			sb.WriteString(" => ")
			exprString(sb, arm.RHS)
		}
		sb.WriteString(" }")
	}
	sb.WriteByte(':')
	sb.WriteString(string(e.DataType()))
}

func lhsString(sb *strings.Builder, p LHSPart) {
	switch p := p.(type) {
	case LHSAny:
		sb.WriteByte('_')
	case LHSLiteral:
		sb.WriteString(p.Text)
	case LHSVariable:
		sb.WriteByte('#')
		sb.WriteString(strconv.Itoa(p.Id))
	}
}
