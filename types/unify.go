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

// MostGeneralUnifier returns the most general type which both a and b specialize to, or the
// bottom type if they do not unify. Type-variables only unify with type-variables of the
// same name.
//
// Members of a conjunction which do not unify with the other side are dropped from the result.
func MostGeneralUnifier(a, b Type) Type {
	if IsBottom(a) || IsBottom(b) {
		return Bottom()
	}
	if _, ok := a.(Any); ok {
		if _, ok := b.(Any); ok {
			return a
		}
	}
	if av, ok := a.(*Var); ok {
		if bv, ok := b.(*Var); ok && av.Name == bv.Name {
			return a
		}
	}

	// conjunctive normal form takes precedence
	if _, ok := a.(*And); ok {
		if bt, ok := b.(*And); ok {
			return unifyEach(bt.Types, func(bc Type) Type { return MostGeneralUnifier(a, bc) })
		}
		return unifyEach(a.(*And).Types, func(ac Type) Type { return MostGeneralUnifier(ac, b) })
	}
	if bt, ok := b.(*And); ok {
		return unifyEach(bt.Types, func(bc Type) Type { return MostGeneralUnifier(a, bc) })
	}

	// ratios have next precedence
	ar, aIsRatio := a.(*Ratio)
	br, bIsRatio := b.(*Ratio)
	switch {
	case aIsRatio && bIsRatio:
		num := MostGeneralUnifier(ar.Num, br.Num)
		if IsBottom(num) {
			return num
		}
		den := MostGeneralUnifier(ar.Den, br.Den)
		if IsBottom(den) {
			return den
		}
		return &Ratio{Num: num, Den: den}
	case bIsRatio:
		if !IsUnit(br.Den) {
			return Bottom()
		}
		return MostGeneralUnifier(a, br.Num)
	case aIsRatio:
		if !IsUnit(ar.Den) {
			return Bottom()
		}
		return MostGeneralUnifier(ar.Num, b)
	}

	switch a := a.(type) {
	case *Named:
		b, ok := b.(*Named)
		if !ok || a.Name != b.Name || len(a.Params) != len(b.Params) {
			return Bottom()
		}
		ps, ok := unifyPairs(a.Params, b.Params, MostGeneralUnifier)
		if !ok {
			return Bottom()
		}
		return &Named{Name: a.Name, Params: ps}

	case *Arrow:
		b, ok := b.(*Arrow)
		if !ok || !Equal(a.Domain, b.Domain) {
			return Bottom()
		}
		r := MostGeneralUnifier(a.Range, b.Range)
		if IsBottom(r) {
			return r
		}
		return &Arrow{Domain: a.Domain, Range: r}

	case *Product:
		b, ok := b.(*Product)
		if !ok || len(a.Types) != len(b.Types) {
			return Bottom()
		}
		ts, ok := unifyPairs(a.Types, b.Types, MostGeneralUnifier)
		if !ok {
			return Bottom()
		}
		return &Product{Types: ts}

	case *Tuple:
		b, ok := b.(*Tuple)
		if !ok || len(a.Types) != len(b.Types) {
			return Bottom()
		}
		ts, ok := unifyPairs(a.Types, b.Types, MostGeneralUnifier)
		if !ok {
			return Bottom()
		}
		return &Tuple{Types: ts}

	case *Constant:
		return unifyConstants(a, b)
	}
	return Bottom()
}

func unifyConstants(a *Constant, b Type) Type {
	bc, ok := b.(*Constant)
	if !ok || a.Term != bc.Term {
		return Bottom()
	}
	return &Constant{IsVar: a.IsVar || bc.IsVar, Term: a.Term}
}

// Unify each member of a conjunction and collect the results into a normalized conjunction.
// Members which fail to unify contribute nothing.
func unifyEach(ts []Type, unify func(Type) Type) Type {
	var mts []Type
	for _, t := range ts {
		u := unify(t)
		if a, ok := u.(*And); ok {
			mts = append(mts, a.Types...)
		} else {
			mts = append(mts, u)
		}
	}
	return collapse(mts)
}

func collapse(ts []Type) Type {
	ts = sortDedupe(ts)
	if len(ts) == 1 {
		return ts[0]
	}
	return &And{Types: ts}
}

func unifyPairs(as, bs []Type, unify func(a, b Type) Type) ([]Type, bool) {
	ts := make([]Type, len(as))
	for i := range as {
		ts[i] = unify(as[i], bs[i])
		if IsBottom(ts[i]) {
			return nil, false
		}
	}
	return ts, true
}
