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

package constant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		text string
		want Value
	}{
		{"True", Boolean(true)},
		{"False", Boolean(false)},
		{"NaN", NaN{}},
		{"42", Integer(42)},
		{"-7", Integer(-7)},
		{"Red", Op("Red")},
		{"+", Op("+")},
	}
	for _, c := range cases {
		got := Parse(c.text)
		require.Equal(t, c.want, got, c.text)
		assert.Equal(t, c.text, got.String())
	}
}

func TestCompare(t *testing.T) {
	ordered := []Value{
		NaN{},
		Boolean(false),
		Boolean(true),
		Integer(-1),
		Integer(3),
		Op("a"),
		Op("b"),
		Tuple{Integer(1)},
		Tuple{Integer(1), Integer(2)},
		Tuple{Integer(2)},
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			switch {
			case i < j:
				assert.Equal(t, -1, got, "%v < %v", ordered[i], ordered[j])
			case i > j:
				assert.Equal(t, 1, got, "%v > %v", ordered[i], ordered[j])
			default:
				assert.Equal(t, 0, got, "%v == %v", ordered[i], ordered[j])
			}
		}
	}

	shuffled := []Value{Op("b"), Integer(3), NaN{}, Tuple{Integer(2)}, Boolean(true)}
	Sort(shuffled)
	assert.Equal(t, []Value{NaN{}, Boolean(true), Integer(3), Op("b"), Tuple{Integer(2)}}, shuffled)
}

func TestTupleString(t *testing.T) {
	c := Tuple{Integer(1), Tuple{Boolean(true), Op("x")}}
	if c.String() != "(1,(True,x))" {
		t.Fatalf("constant: %s", c.String())
	}
	if !Equal(c, Tuple{Integer(1), Tuple{Boolean(true), Op("x")}}) {
		t.Fatalf("expected equal tuples")
	}
}
