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

func TestKindConjunction(t *testing.T) {
	integer, number := KNamed("Integer"), KNamed("Number")

	k := KAnd(number, KAnd(integer, number), types.KindNil{})
	if k.String() != "Integer + Number" {
		t.Fatalf("expected normalized conjunction, got %s", k.String())
	}
	if s := KAnd(number, number).String(); s != "Number" {
		t.Fatalf("expected singleton conjunction to collapse, got %s", s)
	}
	if _, ok := KAnd().(types.KindNil); !ok {
		t.Fatalf("expected empty conjunction to be Nil")
	}
	if s := KNamed("Ord", integer).String(); s != "Ord<Integer>" {
		t.Fatalf("unexpected kind string %s", s)
	}
	if types.CompareKinds(types.FirstKind(k), integer) != 0 {
		t.Fatalf("expected first member Integer, got %s", types.FirstKind(k))
	}
}

func TestHasKind(t *testing.T) {
	integer, number := KNamed("Integer"), KNamed("Number")
	both := KAnd(integer, number)

	for _, k := range []types.Kind{integer, number, both, types.KindNil{}} {
		if !types.HasKind(k, k) {
			t.Fatalf("expected %s to have itself", k)
		}
		if !types.HasKind(k, types.KindNil{}) {
			t.Fatalf("expected %s to have Nil", k)
		}
	}
	if !types.HasKind(both, number) {
		t.Fatalf("expected conjunction to have its member")
	}
	if types.HasKind(integer, both) {
		t.Fatalf("expected member not to have the conjunction")
	}
	if types.HasKind(types.KindNil{}, integer) {
		t.Fatalf("expected Nil not to have Integer")
	}
}

func TestKindOfAndNarrow(t *testing.T) {
	integer, number := KNamed("Integer"), KNamed("Number")
	a, b := TNamed("Aa"), TNamed("Bb")
	kinds := types.NewKindTable().Set(a, integer).Set(b, number)

	if s := types.KindOf(TAnd(a, b), kinds).String(); s != "Integer + Number" {
		t.Fatalf("unexpected kind of conjunction: %s", s)
	}
	if s := types.KindOf(TConstant(false, 3), kinds).String(); s != "Constant" {
		t.Fatalf("unexpected kind of constant: %s", s)
	}
	if _, ok := types.KindOf(TNamed("Cc"), kinds).(types.KindNil); !ok {
		t.Fatalf("expected unassigned type to have Nil kind")
	}

	expectType(t, a, types.Narrow(TAnd(a, b), kinds, integer))
	expectType(t, b, types.Narrow(TAnd(a, b), kinds, number))
	expectType(t, TAnd(a, b), types.Narrow(TAnd(a, b), kinds, types.KindNil{}))
	if !types.IsBottom(types.Narrow(a, kinds, number)) {
		t.Fatalf("expected narrowing to a missing kind to be bottom")
	}
}

func TestKindAsType(t *testing.T) {
	k := KAnd(KNamed("Ord", KNamed("Integer")), KNamed("Eq"))
	expectType(t, TAnd(TNamed("Eq"), TNamed("Ord", TNamed("Integer"))), types.KindAsType(k))
	if !types.IsUnit(types.KindAsType(types.KindNil{})) {
		t.Fatalf("expected Nil to map to the unit type")
	}
}

func TestKindTablePersistence(t *testing.T) {
	a := TNamed("Aa")
	k0 := types.NewKindTable()
	k1 := k0.Set(a, KNamed("Integer"))
	k2 := k1.Set(a, KNamed("Number"))

	if k0.Len() != 0 || k1.Len() != 1 || k2.Len() != 1 {
		t.Fatalf("unexpected table sizes %d %d %d", k0.Len(), k1.Len(), k2.Len())
	}
	if k, _ := k1.Get(TNamed("Aa")); k.String() != "Integer" {
		t.Fatalf("expected earlier snapshot to keep Integer, got %s", k)
	}
	if k, _ := k2.Get(a); k.String() != "Number" {
		t.Fatalf("expected replacement Number, got %s", k)
	}

	var zero types.KindTable
	if _, ok := zero.Get(a); ok || zero.Len() != 0 {
		t.Fatalf("expected zero table to be empty")
	}
	if zero.Set(a, KNamed("Eq")).Len() != 1 {
		t.Fatalf("expected zero table to accept entries")
	}
}

func TestSubsRange(t *testing.T) {
	x, y := TVar("X"), TVar("Y")
	s := types.NewSubs().Set(y, TNamed("Bb")).Set(x, TNamed("Aa"))

	var froms []string
	s.Range(func(from, to types.Type) bool {
		froms = append(froms, types.TypeString(from))
		return true
	})
	if len(froms) != 2 || froms[0] != "X" || froms[1] != "Y" {
		t.Fatalf("expected entries in type order, got %v", froms)
	}
	expectType(t, TTuple(TNamed("Aa"), TNamed("Bb")), types.Substitute(TTuple(x, y), s))
}

func TestPrintType(t *testing.T) {
	a, b := TNamed("Aa"), TNamed("Bb")
	kinds := types.NewKindTable().Set(a, KNamed("Integer"))

	cases := []struct {
		t    types.Type
		want string
	}{
		{TAny(), "?"},
		{TNamed("List", a), "List<Aa>"},
		{TAnd(a, b), "{Aa+Bb}"},
		{TTuple(a, b), "(Aa,Bb)"},
		{TProduct(a, b), "(Aa*Bb)"},
		{TArrow(TTuple(a), b), "((Aa))=>(Bb)"},
		{TRatio(a, b), "(Aa)/(Bb)"},
		{TConstant(false, 4), "[term#4]"},
		{TConstant(true, 4), "['term#4]"},
		{TArray(a, types.NoTerm), "[]<Aa,?>"},
	}
	for _, c := range cases {
		if s := types.TypeString(c.t); s != c.want {
			t.Fatalf("expected %s, got %s", c.want, s)
		}
	}
	if s := types.PrintType(TAnd(a, b), kinds); s != "{Aa::Integer+Bb}" {
		t.Fatalf("unexpected annotated type %s", s)
	}
}
