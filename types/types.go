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

// TermId is a stable handle into the term arena of a compilation unit.
type TermId int

// NoTerm marks an absent term handle.
const NoTerm TermId = -1

// Type is the base interface for all types.
//
// Ands are kept in conjunctive normal form by Normalize: Ands only occupy the
// highest level of a type. Some algorithms may not work correctly if a type is not
// normalized. Subtyping is expressed with Ands: an implication A + A => B may be
// rewritten as A + B.
type Type interface {
	TypeName() string
	String() string
}

func (t Any) TypeName() string       { return "Any" }
func (t *Named) TypeName() string    { return "Named" }
func (t *Var) TypeName() string      { return "Var" }
func (t *And) TypeName() string      { return "And" }
func (t *Arrow) TypeName() string    { return "Arrow" }
func (t *Tuple) TypeName() string    { return "Tuple" }
func (t *Product) TypeName() string  { return "Product" }
func (t *Ratio) TypeName() string    { return "Ratio" }
func (t *Constant) TypeName() string { return "Constant" }

// Unconstrained type: `?`
type Any struct{}

// Nominal type, possibly parameterized: `Integer` or `List<Integer>`
type Named struct {
	Name   string
	Params []Type
}

// Type-variable: `A`
type Var struct {
	Name string
}

// Conjunction: `{A+B}`. The empty conjunction is the bottom type.
type And struct {
	Types []Type
}

// Function type: `(A)=>(B)`
type Arrow struct {
	Domain Type
	Range  Type
}

// Order-sensitive tuple: `(A,B)`. The empty tuple is the unit type.
type Tuple struct {
	Types []Type
}

// Order-insensitive product: `(A*B)`
type Product struct {
	Types []Type
}

// Ratio: `(A)/(B)`
type Ratio struct {
	Num Type
	Den Type
}

// Type indexed by the value of a term. IsVar marks a term whose value is not yet fixed.
type Constant struct {
	IsVar bool
	Term  TermId
}

// Bottom returns the absurd type, the empty conjunction.
func Bottom() Type { return &And{} }

// Unit returns the empty tuple.
func Unit() Type { return &Tuple{} }

// IsBottom returns true if t is the empty conjunction.
func IsBottom(t Type) bool {
	a, ok := t.(*And)
	return ok && len(a.Types) == 0
}

// IsUnit returns true if t is the empty tuple.
func IsUnit(t Type) bool {
	tt, ok := t.(*Tuple)
	return ok && len(tt.Types) == 0
}

// IsVar returns true if t is a type-variable.
func IsVar(t Type) bool {
	_, ok := t.(*Var)
	return ok
}

// IsConstant returns true if t is indexed by a term.
func IsConstant(t Type) bool {
	_, ok := t.(*Constant)
	return ok
}

// IsConcrete returns true if t contains no wildcards. The bottom type is concrete.
func IsConcrete(t Type) bool {
	switch t := t.(type) {
	case Any:
		return false
	case *Named:
		return allConcrete(t.Params)
	case *Var:
		return true
	case *And:
		return allConcrete(t.Types)
	case *Arrow:
		return IsConcrete(t.Domain) && IsConcrete(t.Range)
	case *Tuple:
		return allConcrete(t.Types)
	case *Product:
		return allConcrete(t.Types)
	case *Ratio:
		return IsConcrete(t.Num) && IsConcrete(t.Den)
	}
	return true
}

func allConcrete(ts []Type) bool {
	for _, t := range ts {
		if !IsConcrete(t) {
			return false
		}
	}
	return true
}

// Conjoin joins two types into a conjunction. Wildcards and type-variables are absorbed by the other side.
func Conjoin(a, b Type) Type {
	if _, ok := a.(Any); ok {
		return b
	}
	if _, ok := b.(Any); ok {
		return a
	}
	if IsVar(a) {
		return b
	}
	if IsVar(b) {
		return a
	}
	var ts []Type
	if at, ok := a.(*And); ok {
		ts = append(ts, at.Types...)
	} else {
		ts = append(ts, a)
	}
	if bt, ok := b.(*And); ok {
		ts = append(ts, bt.Types...)
	} else {
		ts = append(ts, b)
	}
	return &And{Types: sortDedupe(ts)}
}

// Domain returns the domain of an arrow, or the conjunction of domains of a conjunction of arrows.
// Any other type has the bottom type as its domain.
func Domain(t Type) Type {
	switch t := t.(type) {
	case *Arrow:
		return t.Domain
	case *And:
		return distribute(t, Domain)
	}
	return Bottom()
}

// Range returns the range of an arrow, or the conjunction of ranges of a conjunction of arrows.
// Any other type has the bottom type as its range.
func Range(t Type) Type {
	switch t := t.(type) {
	case *Arrow:
		return t.Range
	case *And:
		return distribute(t, Range)
	}
	return Bottom()
}

func distribute(t *And, f func(Type) Type) Type {
	var ts []Type
	for _, ct := range t.Types {
		ft := f(ct)
		if a, ok := ft.(*And); ok {
			ts = append(ts, a.Types...)
		} else {
			ts = append(ts, ft)
		}
	}
	if len(ts) == 1 {
		return ts[0]
	}
	return &And{Types: ts}
}

// TermOf returns the term indexing a constant type, or NoTerm.
func TermOf(t Type) TermId {
	if c, ok := t.(*Constant); ok {
		return c.Term
	}
	return NoTerm
}
