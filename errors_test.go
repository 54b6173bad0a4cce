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

package tlc_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/wdamron/tlc"
	"github.com/wdamron/tlc/ast"
)

func TestErrorFormat(t *testing.T) {
	err := &tlc.Error{
		Kind:    tlc.TypeError,
		Span:    ast.Span{Filename: "a.tlc", Start: ast.Position{Line: 1, Column: 2}},
		Message: "Integer does not imply Boolean",
	}
	assert.Equal(t, "type error at a.tlc:1:2: Integer does not imply Boolean", err.Error())

	wrapped := errors.Wrap(err, "check main")
	assert.True(t, tlc.IsKind(wrapped, tlc.TypeError))
	assert.False(t, tlc.IsKind(wrapped, tlc.Internal))
	kind, ok := tlc.ErrorKindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, tlc.TypeError, kind)

	_, ok = tlc.ErrorKindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, tlc.IsKind(nil, tlc.TypeError))
}

func TestErrorKindNames(t *testing.T) {
	names := map[tlc.ErrorKind]string{
		tlc.TypeError:     "type error",
		tlc.UndefinedName: "undefined name",
		tlc.Unsupported:   "unsupported construct",
		tlc.NonExhaustive: "non-exhaustive pattern",
		tlc.NotReducible:  "not reducible",
		tlc.Internal:      "internal error",
		tlc.ErrorKind(42): "ErrorKind(42)",
	}
	for kind, name := range names {
		assert.Equal(t, name, kind.String())
	}
}
