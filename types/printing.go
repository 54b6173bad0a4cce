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

package types

import (
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} { return &typePrinter{} },
}

func newTypePrinter(kinds KindTable) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.kinds = kinds
	return p
}

func (p *typePrinter) Release() {
	p.sb.Reset()
	p.kinds = KindTable{}
	printerPool.Put(p)
}

type typePrinter struct {
	kinds KindTable
	sb    strings.Builder
}

// TypeString returns a string representation of a Type.
func TypeString(t Type) string { return PrintType(t, KindTable{}) }

// PrintType returns a string representation of a Type, annotating each (sub)type which has an
// assigned kind with `::kind`.
func PrintType(t Type, kinds KindTable) string {
	p := newTypePrinter(kinds)
	p.typeString(t)
	s := p.sb.String()
	p.Release()
	return s
}

func (t Any) String() string       { return TypeString(t) }
func (t *Named) String() string    { return TypeString(t) }
func (t *Var) String() string      { return TypeString(t) }
func (t *And) String() string      { return TypeString(t) }
func (t *Arrow) String() string    { return TypeString(t) }
func (t *Tuple) String() string    { return TypeString(t) }
func (t *Product) String() string  { return TypeString(t) }
func (t *Ratio) String() string    { return TypeString(t) }
func (t *Constant) String() string { return TypeString(t) }

func (p *typePrinter) typeString(t Type) {
	sb := &p.sb
	switch t := t.(type) {
	case Any:
		sb.WriteByte('?')

	case *Named:
		sb.WriteString(t.Name)
		if len(t.Params) > 0 {
			sb.WriteByte('<')
			p.typeList(t.Params, ",")
			sb.WriteByte('>')
		}

	case *Var:
		sb.WriteString(t.Name)

	case *And:
		sb.WriteByte('{')
		p.typeList(t.Types, "+")
		sb.WriteByte('}')

	case *Tuple:
		sb.WriteByte('(')
		p.typeList(t.Types, ",")
		sb.WriteByte(')')

	case *Product:
		sb.WriteByte('(')
		p.typeList(t.Types, "*")
		sb.WriteByte(')')

	case *Arrow:
		sb.WriteByte('(')
		p.typeString(t.Domain)
		sb.WriteString(")=>(")
		p.typeString(t.Range)
		sb.WriteByte(')')

	case *Ratio:
		sb.WriteByte('(')
		p.typeString(t.Num)
		sb.WriteString(")/(")
		p.typeString(t.Den)
		sb.WriteByte(')')

	case *Constant:
		sb.WriteByte('[')
		if t.IsVar {
			sb.WriteByte('\'')
		}
		sb.WriteString("term#")
		sb.WriteString(strconv.Itoa(int(t.Term)))
		sb.WriteByte(']')
	}

	if p.kinds.Len() > 0 {
		if k, ok := p.kinds.Get(t); ok {
			sb.WriteString("::")
			sb.WriteString(k.String())
		}
	}
}

func (p *typePrinter) typeList(ts []Type, sep string) {
	for i, t := range ts {
		if i > 0 {
			p.sb.WriteString(sep)
		}
		p.typeString(t)
	}
}
