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

func BenchmarkImplicationUnifier(b *testing.B) {
	X, Y := TVar("X"), TVar("Y")
	integer, number := TNamed("Integer"), TNamed("Number")
	f := TFunc([]types.Type{X, TNamed("List", Y)}, TTuple(X, Y))
	required := TFunc([]types.Type{TAnd(integer, number), TNamed("List", number)}, TAny())

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if types.IsBottom(types.ImplicationUnifier(f, required)) {
			b.Fatal("expected implication")
		}
	}
}

func BenchmarkNormalize(b *testing.B) {
	a, c, d := TNamed("Aa"), TNamed("Cc"), TNamed("Dd")
	t := TAnd(TRatio(TProduct(a, c, d), TProduct(c, d)), TAnd(a, TTuple(c, TAnd(d, d))), TAny())

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		types.Normalize(t)
	}
}
