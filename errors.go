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

package tlc

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/wdamron/tlc/ast"
	"github.com/wdamron/tlc/types"
)

// ErrorKind classifies errors raised while checking, reducing, or compiling terms.
type ErrorKind int

const (
	// Unification failed; the message names both types.
	TypeError ErrorKind = iota
	// An identifier has no compatible binding in scope.
	UndefinedName
	// A term shape is outside the supported subset, such as a curried binding or a constructor pattern.
	Unsupported
	// No arm of a pattern match matched the folded scrutinee.
	NonExhaustive
	// A term could not be folded to a constant.
	NotReducible
	// An invariant of the term graph was violated upstream.
	Internal
)

var errorKindNames = [...]string{
	TypeError:     "type error",
	UndefinedName: "undefined name",
	Unsupported:   "unsupported construct",
	NonExhaustive: "non-exhaustive pattern",
	NotReducible:  "not reducible",
	Internal:      "internal error",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a diagnostic attached to the span of the term which raised it.
type Error struct {
	Kind    ErrorKind
	Span    ast.Span
	Message string
}

func (e *Error) Error() string {
	return e.Kind.String() + " at " + e.Span.String() + ": " + e.Message
}

// ErrorKindOf returns the kind of the first *Error in the chain of err.
func ErrorKindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind returns true if err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := ErrorKindOf(err)
	return ok && k == kind
}

func (tlc *TLC) errorf(kind ErrorKind, term types.TermId, format string, args ...interface{}) error {
	var span ast.Span
	if term >= 0 && int(term) < len(tlc.rows) {
		span = tlc.rows[term].Span
	}
	return errors.WithStack(&Error{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)})
}

func (tlc *TLC) typeError(term types.TermId, lt, rt types.Type, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	tlc.log.Debug("type error", "term", int(term), "left", lt.String(), "right", rt.String(), "message", msg)
	return tlc.errorf(TypeError, term, "%s: %s vs %s", msg, tlc.PrintType(lt), tlc.PrintType(rt))
}
