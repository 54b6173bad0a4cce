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
	"github.com/benbjohnson/immutable"
)

type typeComparer struct{}

func (typeComparer) Compare(a, b interface{}) int { return Compare(a.(Type), b.(Type)) }

var emptyMap = immutable.NewSortedMap(typeComparer{})

// KindTable contains immutable mappings from types to kinds, sorted by type.
//
// Kind tables are refined by replacement: Set returns a new table and leaves the
// receiver unchanged, so earlier snapshots stay valid for readers.
type KindTable struct {
	m *immutable.SortedMap
}

func NewKindTable() KindTable { return KindTable{emptyMap} }

// Get the number of entries in the table.
func (kt KindTable) Len() int {
	if kt.m == nil {
		return 0
	}
	return kt.m.Len()
}

// Get the kind assigned to a type.
func (kt KindTable) Get(t Type) (Kind, bool) {
	if kt.m == nil {
		return nil, false
	}
	k, ok := kt.m.Get(t)
	if !ok {
		return nil, false
	}
	return k.(Kind), true
}

// Set the kind for a type, returning the updated table.
func (kt KindTable) Set(t Type, k Kind) KindTable {
	m := kt.m
	if m == nil {
		m = emptyMap
	}
	return KindTable{m.Set(t, k)}
}

// Iterate over entries in the table, in type order.
// If f returns false, iteration will be stopped.
func (kt KindTable) Range(f func(Type, Kind) bool) {
	if kt.m == nil {
		return
	}
	iter := kt.m.Iterator()
	for !iter.Done() {
		t, k := iter.Next()
		if !f(t.(Type), k.(Kind)) {
			return
		}
	}
}

// Subs contains immutable mappings from types (usually type-variables) to their replacements.
type Subs struct {
	m *immutable.SortedMap
}

func NewSubs() Subs { return Subs{emptyMap} }

// Get the number of entries in the substitution.
func (s Subs) Len() int {
	if s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Get the replacement for a type.
func (s Subs) Get(t Type) (Type, bool) {
	if s.m == nil {
		return nil, false
	}
	r, ok := s.m.Get(t)
	if !ok {
		return nil, false
	}
	return r.(Type), true
}

// Set the replacement for a type, returning the updated substitution.
func (s Subs) Set(from, to Type) Subs {
	m := s.m
	if m == nil {
		m = emptyMap
	}
	return Subs{m.Set(from, to)}
}

// Iterate over entries in the substitution, in type order.
// If f returns false, iteration will be stopped.
func (s Subs) Range(f func(from, to Type) bool) {
	if s.m == nil {
		return
	}
	iter := s.m.Iterator()
	for !iter.Done() {
		from, to := iter.Next()
		if !f(from.(Type), to.(Type)) {
			return
		}
	}
}
