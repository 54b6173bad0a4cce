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
	"github.com/wdamron/tlc/ast"
	"github.com/wdamron/tlc/types"
)

// ScopeChild is a named binding. Several children of a scope may share a name; lookup
// disambiguates them by type.
type ScopeChild struct {
	Name string
	// Kinds of the specializations of the binding
	Kinds types.KindTable
	// Declared type
	Type types.Type
	// Bound term, or NoTerm
	Term types.TermId
}

// Scope is a node of the scope tree.
type Scope struct {
	// Parent scope, or NoScope for a root scope
	Parent   ast.ScopeId
	Children []ScopeChild
}

// PushScope appends a scope to the scope arena.
func (tlc *TLC) PushScope(s Scope) ast.ScopeId {
	tlc.scopes = append(tlc.scopes, s)
	id := ast.ScopeId(len(tlc.scopes) - 1)
	tlc.log.Debug("push scope", "scope", int(id), "parent", int(s.Parent), "children", len(s.Children))
	return id
}

// Scope returns a scope of the scope arena.
func (tlc *TLC) Scope(id ast.ScopeId) *Scope { return &tlc.scopes[id] }

// Bind appends a child to a scope.
func (tlc *TLC) Bind(scope ast.ScopeId, child ScopeChild) {
	s := &tlc.scopes[scope]
	s.Children = append(s.Children, child)
}

// LookupTerm resolves name from scope, walking up through parent scopes. Within a scope, the
// first bound child named name whose declared type implies required is chosen. The result is
// false if no scope in the chain has a compatible binding.
func (tlc *TLC) LookupTerm(scope ast.ScopeId, name string, required types.Type) (types.TermId, bool) {
	if c := tlc.lookup(scope, name, required); c != nil {
		return c.Term, true
	}
	return types.NoTerm, false
}

func (tlc *TLC) lookup(scope ast.ScopeId, name string, required types.Type) *ScopeChild {
	for at := scope; at != ast.NoScope; {
		s := &tlc.scopes[at]
		for i := range s.Children {
			c := &s.Children[i]
			if c.Name != name || c.Term == types.NoTerm {
				continue
			}
			if !types.IsBottom(tlc.Implies(scope, c.Type, required)) {
				return c
			}
		}
		at = s.Parent
	}
	return nil
}

func (tlc *TLC) isBound(scope ast.ScopeId, name string, term types.TermId) bool {
	for _, c := range tlc.scopes[scope].Children {
		if c.Name == name && c.Term == term {
			return true
		}
	}
	return false
}

func (tlc *TLC) declares(scope ast.ScopeId, name string) bool {
	_, ok := tlc.declared(scope, name)
	return ok
}

// Term bound to name directly in scope, ignoring parent scopes.
func (tlc *TLC) declared(scope ast.ScopeId, name string) (types.TermId, bool) {
	for _, c := range tlc.scopes[scope].Children {
		if c.Name == name {
			return c.Term, true
		}
	}
	return types.NoTerm, false
}
