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
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Value is the result of evaluating an expression.
type Value interface {
	String() string
}

type (
	UnitValue    struct{}
	IntegerValue int64
	BooleanValue bool
	FloatValue   float64
	StringValue  string
	TupleValue   []Value
)

func (v UnitValue) String() string    { return "()" }
func (v IntegerValue) String() string { return strconv.FormatInt(int64(v), 10) }
func (v FloatValue) String() string {
	if math.IsNaN(float64(v)) {
		return "NaN"
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
func (v StringValue) String() string { return string(v) }

func (v BooleanValue) String() string {
	if v {
		return "True"
	}
	return "False"
}

func (v TupleValue) String() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// EqualValues returns true if a and b are the same value. NaN equals NaN, so literal patterns
// can match it.
func EqualValues(a, b Value) bool {
	switch a := a.(type) {
	case UnitValue:
		_, ok := b.(UnitValue)
		return ok
	case FloatValue:
		b, ok := b.(FloatValue)
		if !ok {
			return false
		}
		if math.IsNaN(float64(a)) {
			return math.IsNaN(float64(b))
		}
		return a == b
	case TupleValue:
		b, ok := b.(TupleValue)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !EqualValues(a[i], b[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}

// ParseLiteral converts literal text to a value of the given runtime type. Literals of any other
// runtime type are classified by their spelling.
func ParseLiteral(text string, dt DataType) (Value, error) {
	switch dt {
	case UnitType:
		return UnitValue{}, nil
	case "Integer":
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid Integer literal %q", text)
		}
		return IntegerValue(i), nil
	case "Boolean":
		switch text {
		case "True":
			return BooleanValue(true), nil
		case "False":
			return BooleanValue(false), nil
		}
		return nil, errors.Errorf("invalid Boolean literal %q", text)
	case "Float":
		if text == "NaN" {
			return FloatValue(math.NaN()), nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid Float literal %q", text)
		}
		return FloatValue(f), nil
	case "String":
		return StringValue(text), nil
	}
	switch text {
	case "True":
		return BooleanValue(true), nil
	case "False":
		return BooleanValue(false), nil
	case "NaN":
		return FloatValue(math.NaN()), nil
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return IntegerValue(i), nil
	}
	if strings.Contains(text, ".") {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return FloatValue(f), nil
		}
	}
	return StringValue(text), nil
}
