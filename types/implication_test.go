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

package types_test

import (
	"testing"

	. "github.com/wdamron/tlc/construct"
	"github.com/wdamron/tlc/types"
)

func TestImplicationSolvesVars(t *testing.T) {
	integer, boolean := TNamed("Integer"), TNamed("Boolean")
	x := TVar("X")

	// left to right
	expectType(t, TTuple(integer, integer), types.ImplicationUnifier(TTuple(x, x), TTuple(integer, integer)))
	// right to left
	expectType(t, TNamed("List", integer), types.ImplicationUnifier(TNamed("List", integer), TNamed("List", x)))
	// conflicting bindings
	if got := types.ImplicationUnifier(TTuple(x, x), TTuple(integer, boolean)); !types.IsBottom(got) {
		t.Fatalf("expected bottom, got %s", got)
	}
	// a variable is not bound to a type containing itself
	if got := types.ImplicationUnifier(x, TNamed("List", x)); !types.IsBottom(got) {
		t.Fatalf("expected bottom, got %s", got)
	}
	expectType(t, x, types.ImplicationUnifier(x, x))
}

func TestImplicationArrows(t *testing.T) {
	integer, number := TNamed("Integer"), TNamed("Number")
	x := TVar("X")
	sub := TAnd(integer, number)

	// the argument must imply the declared domain
	f := TFunc([]types.Type{number}, number)
	if !types.Implies(f, TArrow(TTuple(sub), TAny())) {
		t.Fatalf("expected %s to accept %s", f, sub)
	}
	if types.Implies(TFunc([]types.Type{sub}, number), TArrow(TTuple(number), TAny())) {
		t.Fatalf("expected contravariant domains")
	}

	id := TFunc([]types.Type{x}, x)
	expectType(t, TFunc([]types.Type{integer}, integer), types.ImplicationUnifier(id, TArrow(TTuple(integer), TAny())))
}

func TestImplicationRules(t *testing.T) {
	a, b, c := TNamed("Aa"), TNamed("Bb"), TNamed("Cc")

	expectType(t, a, types.ImplicationUnifier(a, TAny()))
	if types.Implies(TAny(), a) {
		t.Fatalf("expected ? to not imply %s", a)
	}

	// every member on the right must be satisfied
	expectType(t, TAnd(a, b), types.ImplicationUnifier(TAnd(a, b), TAnd(a, b)))
	if types.Implies(a, TAnd(a, b)) {
		t.Fatalf("expected %s to not imply %s", a, TAnd(a, b))
	}
	// any member on the left may satisfy the right
	expectType(t, a, types.ImplicationUnifier(TAnd(a, c), a))

	expectType(t, TRatio(a, b), types.ImplicationUnifier(TRatio(a, b), TRatio(a, b)))
	expectType(t, a, types.ImplicationUnifier(TRatio(a, TTuple()), a))
	if types.Implies(TRatio(a, b), a) {
		t.Fatalf("expected ratio with a denominator to not imply %s", a)
	}
	if types.Implies(TTuple(a, b), TTuple(a)) || types.Implies(TProduct(a), TTuple(a)) {
		t.Fatalf("expected shape mismatches to fail")
	}
	expectType(t, TConstant(true, 4), types.ImplicationUnifier(TConstant(false, 4), TConstant(true, 4)))
	if types.Implies(TNamed("List", a), TNamed("List", a, a)) {
		t.Fatalf("expected arity mismatch to fail")
	}
}
