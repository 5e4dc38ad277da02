// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values, treating NaN
// as equal to NaN.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for in, want := range vals {
		got := f(in)
		if !(aeq(want, got) || math.IsNaN(want) && math.IsNaN(got) || want == got) {
			t.Errorf("%s(%v) = %v, want %v", name, in, got, want)
		}
	}
}

// testDiscreteCDF checks that dist's CDF is the running sum of its
// PMF over its bounds, and constant between integers.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	lo, hi := dist.Bounds()
	if got := dist.CDF(lo - 1); got != 0 {
		t.Errorf("%s(%v) = %v, want 0", name, lo-1, got)
	}
	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += dist.PMF(k)
		for _, x := range []float64{k, k + 0.5} {
			if got := dist.CDF(x); !aeq(sum, got) {
				t.Errorf("%s(%v) = %v, want %v", name, x, got, sum)
			}
		}
	}
	if got := dist.CDF(hi + 1); got != 1 {
		t.Errorf("%s(%v) = %v, want 1", name, hi+1, got)
	}
}
