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
	"sort"
	"strings"

	set "github.com/hashicorp/go-set/v3"
)

func typeTag(t Type) int {
	switch t.(type) {
	case Any:
		return 0
	case *Named:
		return 1
	case *Var:
		return 2
	case *And:
		return 3
	case *Arrow:
		return 4
	case *Tuple:
		return 5
	case *Product:
		return 6
	case *Ratio:
		return 7
	case *Constant:
		return 8
	}
	panic("unknown type: " + t.TypeName())
}

// Compare totally orders types: first by variant (Any, Named, Var, And, Arrow, Tuple,
// Product, Ratio, Constant), then field-wise, comparing slices lexicographically.
func Compare(a, b Type) int {
	ta, tb := typeTag(a), typeTag(b)
	if ta != tb {
		if ta < tb {
			return -1
		}
		return 1
	}
	switch a := a.(type) {
	case Any:
		return 0
	case *Named:
		b := b.(*Named)
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return compareLists(a.Params, b.Params)
	case *Var:
		return strings.Compare(a.Name, b.(*Var).Name)
	case *And:
		return compareLists(a.Types, b.(*And).Types)
	case *Arrow:
		b := b.(*Arrow)
		if c := Compare(a.Domain, b.Domain); c != 0 {
			return c
		}
		return Compare(a.Range, b.Range)
	case *Tuple:
		return compareLists(a.Types, b.(*Tuple).Types)
	case *Product:
		return compareLists(a.Types, b.(*Product).Types)
	case *Ratio:
		b := b.(*Ratio)
		if c := Compare(a.Num, b.Num); c != 0 {
			return c
		}
		return Compare(a.Den, b.Den)
	case *Constant:
		b := b.(*Constant)
		if a.IsVar != b.IsVar {
			if !a.IsVar {
				return -1
			}
			return 1
		}
		switch {
		case a.Term < b.Term:
			return -1
		case a.Term > b.Term:
			return 1
		}
		return 0
	}
	return 0
}

func compareLists(as, bs []Type) int {
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}

// Equal returns true if a and b are structurally equal.
func Equal(a, b Type) bool { return Compare(a, b) == 0 }

// Sort and remove duplicates.
func sortDedupe(ts []Type) []Type {
	if len(ts) < 2 {
		return ts
	}
	return set.TreeSetFrom[Type](ts, Compare).Slice()
}

func sortTypes(ts []Type) []Type {
	sorted := make([]Type, len(ts))
	copy(sorted, ts)
	sort.SliceStable(sorted, func(i, j int) bool { return Compare(sorted[i], sorted[j]) < 0 })
	return sorted
}
