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

// Package constant implements the closed-form values produced by constant-folding reduction.
package constant

import (
	"sort"
	"strconv"
	"strings"
)

// Value is a closed-form constant produced by reduction.
type Value interface {
	ConstantName() string
	String() string
}

func (c NaN) ConstantName() string     { return "NaN" }
func (c Boolean) ConstantName() string { return "Boolean" }
func (c Integer) ConstantName() string { return "Integer" }
func (c Op) ConstantName() string      { return "Op" }
func (c Tuple) ConstantName() string   { return "Tuple" }

// Not-a-number
type NaN struct{}

// `True` or `False`
type Boolean bool

// 64-bit signed integer
type Integer int64

// Uninterpreted symbolic constant, such as a constructor tag.
type Op string

// Ordered tuple of constants.
type Tuple []Value

// Parse parses literal text: `NaN`, `True`, and `False` are reserved, text which parses as
// a 64-bit integer is an Integer, and anything else is an Op.
func Parse(text string) Value {
	switch text {
	case "NaN":
		return NaN{}
	case "True":
		return Boolean(true)
	case "False":
		return Boolean(false)
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Integer(i)
	}
	return Op(text)
}

func (c NaN) String() string { return "NaN" }

func (c Boolean) String() string {
	if c {
		return "True"
	}
	return "False"
}

func (c Integer) String() string { return strconv.FormatInt(int64(c), 10) }
func (c Op) String() string      { return string(c) }

func (c Tuple) String() string {
	parts := make([]string, len(c))
	for i, e := range c {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func tag(c Value) int {
	switch c.(type) {
	case NaN:
		return 0
	case Boolean:
		return 1
	case Integer:
		return 2
	case Op:
		return 3
	}
	return 4
}

// Compare totally orders constants: first by variant (NaN, Boolean, Integer, Op,
// Tuple), then by value. Tuples compare lexicographically.
func Compare(a, b Value) int {
	ta, tb := tag(a), tag(b)
	if ta != tb {
		if ta < tb {
			return -1
		}
		return 1
	}
	switch a := a.(type) {
	case Boolean:
		b := b.(Boolean)
		switch {
		case a == b:
			return 0
		case !bool(a):
			return -1
		}
		return 1
	case Integer:
		b := b.(Integer)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	case Op:
		return strings.Compare(string(a), string(b.(Op)))
	case Tuple:
		b := b.(Tuple)
		for i := 0; i < len(a) && i < len(b); i++ {
			if c := Compare(a[i], b[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(a) < len(b):
			return -1
		case len(a) > len(b):
			return 1
		}
	}
	return 0
}

// Equal returns true if a and b are the same value.
func Equal(a, b Value) bool { return Compare(a, b) == 0 }

// Sort sorts constants in place.
func Sort(cs []Value) {
	sort.Slice(cs, func(i, j int) bool { return Compare(cs[i], cs[j]) < 0 })
}
