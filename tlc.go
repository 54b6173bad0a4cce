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

// tlc is the type-checking core of a small statically typed language with subtyping by
// conjunction, kind annotations, ratio and product types for unit arithmetic, and types indexed
// by the values of terms.
//
// A TLC is a compilation unit. It owns an append-only arena of term rows (term, type, kind, and
// span) and an append-only arena of scopes. Terms and scopes refer to each other by index, so
// handles stay valid for the lifetime of the unit. Rows are only refined in place after they
// are pushed.
//
// The unit checks terms with the unifiers of the types package, folds closed terms to constants,
// and lowers let-bound functions to the ir package for evaluation.
//
//
// Supported Features:
//
//   * Overloaded bindings, disambiguated by type during lookup
//   * Conjunctive (And) types in normal form
//   * Ratio and product types with factor cancellation
//   * Arrays indexed by constant terms, expanded to tuples
//   * Constant folding of applications, projections, and pattern matches
//   * Lowering with deterministic name mangling and extern (foreign) calls
package tlc

import (
	"log/slog"
	"os"

	"github.com/wdamron/tlc/ast"
	"github.com/wdamron/tlc/types"
)

// Row is an entry of the term arena.
type Row struct {
	Term ast.Term
	Type types.Type
	Kind types.Kind
	Span ast.Span
}

// TLC is a compilation unit: the term arena, the scope arena, and the kind table.
//
// A compilation unit cannot be used concurrently. Kind tables are persistent, so a snapshot
// returned by Kinds may be read by other goroutines while the unit continues to refine types.
type TLC struct {
	Config Config

	rows   []Row
	scopes []Scope
	kinds  types.KindTable
	log    *slog.Logger

	// set while an array index is folded by ExpandType
	expanding bool
}

// New creates an empty compilation unit. Zero fields of cfg take their default values. Debug
// records are written to stderr when the configured level allows them.
func New(cfg Config) *TLC {
	cfg = cfg.WithDefaults()
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})
	return &TLC{
		Config: cfg,
		kinds:  types.NewKindTable(),
		log:    slog.New(handler),
	}
}

// SetLogger replaces the logger of the unit. A nil logger restores slog.Default().
func (tlc *TLC) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	tlc.log = l
}

// Push appends a term with an unconstrained type and no kind.
func (tlc *TLC) Push(term ast.Term, span ast.Span) types.TermId {
	return tlc.PushTyped(term, types.Any{}, span)
}

// PushTyped appends a term with an initial type.
func (tlc *TLC) PushTyped(term ast.Term, t types.Type, span ast.Span) types.TermId {
	tlc.rows = append(tlc.rows, Row{Term: term, Type: t, Kind: types.KindNil{}, Span: span})
	return types.TermId(len(tlc.rows) - 1)
}

// Len returns the number of rows in the term arena.
func (tlc *TLC) Len() int { return len(tlc.rows) }

// Row returns a copy of a row of the term arena.
func (tlc *TLC) Row(id types.TermId) Row { return tlc.rows[id] }

// Term returns the term of a row.
func (tlc *TLC) Term(id types.TermId) ast.Term { return tlc.rows[id].Term }

// TypeOf returns the current type of a row.
func (tlc *TLC) TypeOf(id types.TermId) types.Type { return tlc.rows[id].Type }

// SetType refines the type of a row.
func (tlc *TLC) SetType(id types.TermId, t types.Type) { tlc.rows[id].Type = t }

// SetKind refines the kind of a row and records it for the row's type.
func (tlc *TLC) SetKind(id types.TermId, k types.Kind) {
	tlc.rows[id].Kind = k
	tlc.kinds = tlc.kinds.Set(tlc.rows[id].Type, k)
}

// DeclareKind records the kind of a type.
func (tlc *TLC) DeclareKind(t types.Type, k types.Kind) {
	tlc.kinds = tlc.kinds.Set(t, k)
}

// Kinds returns a snapshot of the kind table.
func (tlc *TLC) Kinds() types.KindTable { return tlc.kinds }

// PrintTerm returns a string representation of a term.
func (tlc *TLC) PrintTerm(id types.TermId) string { return ast.TermString(tlc, id) }

// PrintType returns a string representation of a type, annotated with kinds from the kind table.
func (tlc *TLC) PrintType(t types.Type) string { return types.PrintType(t, tlc.kinds) }
