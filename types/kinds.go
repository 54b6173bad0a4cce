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
	"strings"

	set "github.com/hashicorp/go-set/v3"
)

// Kind is a capability tag attached to a type, such as support for arithmetic.
type Kind interface {
	KindName() string
	String() string
}

func (k KindNil) KindName() string    { return "Nil" }
func (k *KindNamed) KindName() string { return "Named" }
func (k *KindAnd) KindName() string   { return "And" }

// No capabilities.
type KindNil struct{}

// A capability family with sub-parameters: `Number` or `Unit<Meter>`
type KindNamed struct {
	Name   string
	Params []Kind
}

// Conjunction of capabilities. Always flattened, sorted, and deduplicated, with at least 2 members.
type KindAnd struct {
	Kinds []Kind
}

// Create a named kind.
func NewKind(name string, params ...Kind) *KindNamed {
	return &KindNamed{Name: name, Params: params}
}

// Create a normalized conjunction of kinds. Nil kinds are dropped; an empty conjunction is
// KindNil and a singleton conjunction is its only member.
func NewKindAnd(ks ...Kind) Kind {
	var flat []Kind
	for _, k := range ks {
		flat = append(flat, FlattenKind(k)...)
	}
	if len(flat) == 0 {
		return KindNil{}
	}
	flat = set.TreeSetFrom[Kind](flat, CompareKinds).Slice()
	if len(flat) == 1 {
		return flat[0]
	}
	return &KindAnd{Kinds: flat}
}

// HasKind returns true if every member of other is a member of k. Every kind has KindNil.
func HasKind(k, other Kind) bool {
	if _, ok := other.(KindNil); ok {
		return true
	}
	members := set.TreeSetFrom[Kind](FlattenKind(k), CompareKinds)
	return members.ContainsSlice(FlattenKind(other))
}

// FlattenKind returns the members of a conjunction, no members for KindNil, or k itself.
func FlattenKind(k Kind) []Kind {
	switch k := k.(type) {
	case KindNil:
		return nil
	case *KindAnd:
		return k.Kinds
	}
	return []Kind{k}
}

// FirstKind returns the first member of a conjunction, or k itself.
func FirstKind(k Kind) Kind {
	if a, ok := k.(*KindAnd); ok && len(a.Kinds) > 0 {
		return a.Kinds[0]
	}
	return k
}

// KindAsType returns the structural image of k in the type algebra.
func KindAsType(k Kind) Type {
	switch k := k.(type) {
	case *KindNamed:
		ps := make([]Type, len(k.Params))
		for i, p := range k.Params {
			ps[i] = KindAsType(p)
		}
		return &Named{Name: k.Name, Params: ps}
	case *KindAnd:
		ts := make([]Type, len(k.Kinds))
		for i, m := range k.Kinds {
			ts[i] = KindAsType(m)
		}
		return &And{Types: ts}
	}
	return Unit()
}

func kindTag(k Kind) int {
	switch k.(type) {
	case KindNil:
		return 0
	case *KindNamed:
		return 1
	}
	return 2
}

// CompareKinds totally orders kinds: KindNil, then named kinds, then conjunctions.
func CompareKinds(a, b Kind) int {
	ta, tb := kindTag(a), kindTag(b)
	if ta != tb {
		if ta < tb {
			return -1
		}
		return 1
	}
	switch a := a.(type) {
	case *KindNamed:
		b := b.(*KindNamed)
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return compareKindLists(a.Params, b.Params)
	case *KindAnd:
		return compareKindLists(a.Kinds, b.(*KindAnd).Kinds)
	}
	return 0
}

func compareKindLists(as, bs []Kind) int {
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := CompareKinds(as[i], bs[i]); c != 0 {
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

func (k KindNil) String() string { return "Nil" }

func (k *KindNamed) String() string {
	if len(k.Params) == 0 {
		return k.Name
	}
	var sb strings.Builder
	sb.WriteString(k.Name)
	sb.WriteByte('<')
	for i, p := range k.Params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('>')
	return sb.String()
}

func (k *KindAnd) String() string {
	parts := make([]string, len(k.Kinds))
	for i, m := range k.Kinds {
		parts[i] = m.String()
	}
	return strings.Join(parts, " + ")
}

// ConstantKind is the default kind of term-indexed types.
var ConstantKind Kind = NewKind("Constant")

// KindOf returns the kind assigned to t in kinds. Unassigned term-indexed types have
// ConstantKind, unassigned conjunctions have the conjunction of their members' kinds,
// and any other unassigned type has KindNil.
func KindOf(t Type, kinds KindTable) Kind {
	if k, ok := kinds.Get(t); ok {
		return k
	}
	switch t := t.(type) {
	case *Constant:
		return ConstantKind
	case *And:
		ks := make([]Kind, len(t.Types))
		for i, ct := range t.Types {
			ks[i] = KindOf(ct, kinds)
		}
		return NewKindAnd(ks...)
	}
	return KindNil{}
}

// Narrow returns the part of t which has kind k, or the bottom type if nothing in t has k.
func Narrow(t Type, kinds KindTable, k Kind) Type {
	if !HasKind(KindOf(t, kinds), k) {
		return Bottom()
	}
	a, ok := t.(*And)
	if !ok {
		return t
	}
	var ts []Type
	for _, ct := range a.Types {
		nt := Narrow(ct, kinds, k)
		if na, ok := nt.(*And); ok {
			ts = append(ts, na.Types...)
		} else {
			ts = append(ts, nt)
		}
	}
	if len(ts) == 1 {
		return ts[0]
	}
	return &And{Types: ts}
}
