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
	set "github.com/hashicorp/go-set/v3"
)

// Mask erases concrete structure for comparison up to variables: type-variables become
// wildcards and the parameters of nominal types become wildcards.
func Mask(t Type) Type {
	switch t := t.(type) {
	case *Var:
		return Any{}
	case *Named:
		ps := make([]Type, len(t.Params))
		for i := range ps {
			ps[i] = Any{}
		}
		return &Named{Name: t.Name, Params: ps}
	case *Arrow:
		return &Arrow{Domain: Mask(t.Domain), Range: Mask(t.Range)}
	case *Ratio:
		return &Ratio{Num: Mask(t.Num), Den: Mask(t.Den)}
	case *And:
		return &And{Types: mapTypes(t.Types, Mask)}
	case *Tuple:
		return &Tuple{Types: mapTypes(t.Types, Mask)}
	case *Product:
		return &Product{Types: mapTypes(t.Types, Mask)}
	}
	return t
}

// Substitute replaces every occurrence of a key of subs within t. Replacements are not
// substituted again.
func Substitute(t Type, subs Subs) Type {
	if r, ok := subs.Get(t); ok {
		return r
	}
	sub := func(t Type) Type { return Substitute(t, subs) }
	switch t := t.(type) {
	case *Named:
		return &Named{Name: t.Name, Params: mapTypes(t.Params, sub)}
	case *Arrow:
		return &Arrow{Domain: sub(t.Domain), Range: sub(t.Range)}
	case *Ratio:
		return &Ratio{Num: sub(t.Num), Den: sub(t.Den)}
	case *And:
		return &And{Types: mapTypes(t.Types, sub)}
	case *Tuple:
		return &Tuple{Types: mapTypes(t.Types, sub)}
	case *Product:
		return &Product{Types: mapTypes(t.Types, sub)}
	}
	return t
}

// Remove replaces every occurrence of x within t with the bottom type, then normalizes.
func Remove(t, x Type) Type {
	if Equal(t, x) {
		return Bottom()
	}
	rm := func(t Type) Type { return Remove(t, x) }
	switch t := t.(type) {
	case *Named:
		return Normalize(&Named{Name: t.Name, Params: mapTypes(t.Params, rm)})
	case *Arrow:
		return Normalize(&Arrow{Domain: rm(t.Domain), Range: rm(t.Range)})
	case *Ratio:
		return Normalize(&Ratio{Num: rm(t.Num), Den: rm(t.Den)})
	case *And:
		return Normalize(&And{Types: mapTypes(t.Types, rm)})
	case *Tuple:
		return Normalize(&Tuple{Types: mapTypes(t.Types, rm)})
	case *Product:
		return Normalize(&Product{Types: mapTypes(t.Types, rm)})
	}
	return Normalize(t)
}

// Vars returns the names of all nominal types and type-variables appearing in t, in
// order of appearance, with repetition.
func Vars(t Type) []string {
	var names []string
	visitNames(t, func(name string, isVar bool) { names = append(names, name) })
	return names
}

// FreeVars returns the set of type-variable names appearing in t.
func FreeVars(t Type) *set.Set[string] {
	vars := set.New[string](0)
	visitNames(t, func(name string, isVar bool) {
		if isVar {
			vars.Insert(name)
		}
	})
	return vars
}

// Occurs returns true if the type-variable v appears within t.
func Occurs(v *Var, t Type) bool { return FreeVars(t).Contains(v.Name) }

func visitNames(t Type, f func(name string, isVar bool)) {
	switch t := t.(type) {
	case *Named:
		f(t.Name, false)
		for _, p := range t.Params {
			visitNames(p, f)
		}
	case *Var:
		f(t.Name, true)
	case *Arrow:
		visitNames(t.Domain, f)
		visitNames(t.Range, f)
	case *Ratio:
		visitNames(t.Num, f)
		visitNames(t.Den, f)
	case *And:
		for _, ct := range t.Types {
			visitNames(ct, f)
		}
	case *Tuple:
		for _, ct := range t.Types {
			visitNames(ct, f)
		}
	case *Product:
		for _, ct := range t.Types {
			visitNames(ct, f)
		}
	}
}

func mapTypes(ts []Type, f func(Type) Type) []Type {
	if ts == nil {
		return nil
	}
	mapped := make([]Type, len(ts))
	for i, t := range ts {
		mapped[i] = f(t)
	}
	return mapped
}
