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

// Normalize rewrites t into its canonical form: conjunctions are flattened, sorted, and
// deduplicated (singletons collapse to their member); products are sorted; ratios and
// products have common factors cancelled. Normalize is idempotent.
func Normalize(t Type) Type {
	switch t := t.(type) {
	case *And:
		var cnf []Type
		for _, ct := range t.Types {
			ct = Normalize(ct)
			if a, ok := ct.(*And); ok {
				cnf = append(cnf, a.Types...)
			} else {
				cnf = append(cnf, ct)
			}
		}
		cnf = sortDedupe(cnf)
		if len(cnf) == 1 {
			return cnf[0]
		}
		return &And{Types: cnf}
	case *Product:
		return sortFactors(SimplifyRatio(&Product{Types: sortTypes(mapTypes(t.Types, Normalize))}))
	case *Ratio:
		return sortFactors(SimplifyRatio(&Ratio{Num: Normalize(t.Num), Den: Normalize(t.Den)}))
	case *Tuple:
		return &Tuple{Types: mapTypes(t.Types, Normalize)}
	case *Named:
		return &Named{Name: t.Name, Params: mapTypes(t.Params, Normalize)}
	case *Arrow:
		return &Arrow{Domain: Normalize(t.Domain), Range: Normalize(t.Range)}
	}
	return t
}

func sortFactors(t Type) Type {
	switch t := t.(type) {
	case *Product:
		return &Product{Types: sortTypes(t.Types)}
	case *Ratio:
		return &Ratio{Num: sortFactors(t.Num), Den: sortFactors(t.Den)}
	}
	return t
}

// ProjectRatio splits t into numerator and denominator factors, distributing over nested
// ratios and products. Any other type, the unit type included, is a single numerator factor.
func ProjectRatio(t Type) (num, den []Type) {
	switch t := t.(type) {
	case *Ratio:
		nn, nd := ProjectRatio(t.Num)
		dn, dd := ProjectRatio(t.Den)
		return append(nn, dd...), append(nd, dn...)
	case *Product:
		for _, ct := range t.Types {
			cn, cd := ProjectRatio(ct)
			num = append(num, cn...)
			den = append(den, cd...)
		}
		return num, den
	}
	return []Type{t}, nil
}

// SimplifyRatio cancels factors common to the numerator and denominator of t. For each
// denominator factor, the first equal numerator factor is removed.
//
// An empty numerator is the unit type. A single factor is returned as itself, several
// factors as a product. An empty denominator leaves just the numerator.
func SimplifyRatio(t Type) Type {
	num, den := ProjectRatio(t)
	var rden []Type
	for _, d := range den {
		cancelled := false
		for i, n := range num {
			if Equal(n, d) {
				num = append(num[:i:i], num[i+1:]...)
				cancelled = true
				break
			}
		}
		if !cancelled {
			rden = append(rden, d)
		}
	}
	var n Type
	switch len(num) {
	case 0:
		n = Unit()
	case 1:
		n = num[0]
	default:
		n = &Product{Types: num}
	}
	switch len(rden) {
	case 0:
		return n
	case 1:
		return &Ratio{Num: n, Den: rden[0]}
	}
	return &Ratio{Num: n, Den: &Product{Types: rden}}
}
