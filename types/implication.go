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

// A candidate binding for a type-variable, discovered during implication.
type binding struct {
	v Type
	t Type
}

type implication struct {
	bindings []binding
}

// ImplicationUnifier returns the type satisfying a => b, or the bottom type if the obligations
// of a are not satisfied by b.
//
// Type-variables on either side are bound to the type on the other side. Bindings are collected
// during structural descent, then merged: repeated bindings of one variable are resolved with
// MostGeneralUnifier, and a conflict fails the whole implication. The merged substitution is
// applied to the result.
//
// Arrow domains are contravariant: the domain of b must imply the domain of a.
func ImplicationUnifier(a, b Type) Type {
	var ctx implication
	t := ctx.unify(a, b)
	if IsBottom(t) {
		return t
	}
	subs, ok := ctx.resolve()
	if !ok {
		return Bottom()
	}
	return Substitute(t, subs)
}

// Implies returns true if a => b holds.
func Implies(a, b Type) bool { return !IsBottom(ImplicationUnifier(a, b)) }

// Merge collected bindings into a single substitution.
func (ctx *implication) resolve() (Subs, bool) {
	subs := NewSubs()
	for _, b := range ctx.bindings {
		t := b.t
		if v, ok := b.v.(*Var); ok && !Equal(v, t) && Occurs(v, t) {
			return subs, false
		}
		if prev, ok := subs.Get(b.v); ok {
			t = MostGeneralUnifier(prev, t)
			if IsBottom(t) {
				return subs, false
			}
		}
		subs = subs.Set(b.v, t)
	}
	return subs, true
}

func (ctx *implication) bind(v, t Type) Type {
	ctx.bindings = append(ctx.bindings, binding{v, t})
	return v
}

func (ctx *implication) unify(a, b Type) Type {
	if IsBottom(a) || IsBottom(b) {
		return Bottom()
	}
	if _, ok := b.(Any); ok {
		return a
	}
	if IsVar(a) {
		return ctx.bind(a, b)
	}
	if IsVar(b) {
		return ctx.bind(b, a)
	}

	// conjunctive normal form takes precedence
	if bt, ok := b.(*And); ok {
		return ctx.unifyAll(bt.Types, func(bc Type) Type { return ctx.unify(a, bc) })
	}
	if at, ok := a.(*And); ok {
		return unifyEach(at.Types, func(ac Type) Type { return ctx.unify(ac, b) })
	}

	// ratios have next precedence
	ar, aIsRatio := a.(*Ratio)
	br, bIsRatio := b.(*Ratio)
	switch {
	case aIsRatio && bIsRatio:
		num := ctx.unify(ar.Num, br.Num)
		if IsBottom(num) {
			return num
		}
		den := ctx.unify(ar.Den, br.Den)
		if IsBottom(den) {
			return den
		}
		return &Ratio{Num: num, Den: den}
	case bIsRatio:
		if !IsUnit(br.Den) {
			return Bottom()
		}
		return ctx.unify(a, br.Num)
	case aIsRatio:
		if !IsUnit(ar.Den) {
			return Bottom()
		}
		return ctx.unify(ar.Num, b)
	}

	switch a := a.(type) {
	case *Named:
		b, ok := b.(*Named)
		if !ok || a.Name != b.Name || len(a.Params) != len(b.Params) {
			return Bottom()
		}
		ps, ok := unifyPairs(a.Params, b.Params, ctx.unify)
		if !ok {
			return Bottom()
		}
		return &Named{Name: a.Name, Params: ps}

	case *Arrow:
		b, ok := b.(*Arrow)
		if !ok {
			return Bottom()
		}
		d := ctx.unify(b.Domain, a.Domain)
		if IsBottom(d) {
			return d
		}
		r := ctx.unify(a.Range, b.Range)
		if IsBottom(r) {
			return r
		}
		return &Arrow{Domain: d, Range: r}

	case *Product:
		b, ok := b.(*Product)
		if !ok || len(a.Types) != len(b.Types) {
			return Bottom()
		}
		ts, ok := unifyPairs(a.Types, b.Types, ctx.unify)
		if !ok {
			return Bottom()
		}
		return &Product{Types: ts}

	case *Tuple:
		b, ok := b.(*Tuple)
		if !ok || len(a.Types) != len(b.Types) {
			return Bottom()
		}
		ts, ok := unifyPairs(a.Types, b.Types, ctx.unify)
		if !ok {
			return Bottom()
		}
		return &Tuple{Types: ts}

	case *Constant:
		return unifyConstants(a, b)
	}
	return Bottom()
}

// Like unifyEach, but every member must unify.
func (ctx *implication) unifyAll(ts []Type, unify func(Type) Type) Type {
	var mts []Type
	for _, t := range ts {
		u := unify(t)
		if IsBottom(u) {
			return u
		}
		if a, ok := u.(*And); ok {
			mts = append(mts, a.Types...)
		} else {
			mts = append(mts, u)
		}
	}
	return collapse(mts)
}
