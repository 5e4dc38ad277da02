// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// QuantileInterval is a confidence interval for a quantile of a
// population, expressed as a pair of order statistics of a sample
// drawn from it.
type QuantileInterval struct {
	// Quantile is the quantile the interval is for.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of the interval.
	// This is at least the requested confidence, except that the
	// normal approximation used for large N can fall very
	// slightly short.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics
	// bounding the interval: given sorted values Xs, the interval
	// is Xs[LoOrder-1] to Xs[HiOrder-1]. LoOrder of 0 stands for
	// -Inf and HiOrder of N+1 for +Inf.
	LoOrder, HiOrder int

	// Ambiguous indicates that shifting the interval one order
	// statistic to the right gives the same confidence.
	Ambiguous bool
}

// orderCIExactLimit is the largest sample size for which the interval
// is computed from the exact binomial distribution rather than its
// normal approximation. This is a variable for testing.
var orderCIExactLimit = 30

// OrderStatisticCI returns the narrowest interval of order statistics
// of a size-n sample that contains the population's q'th quantile
// with probability at least confidence. Where two intervals are
// equally good, the lower one is returned.
//
// The number of sample values below the population quantile follows
// a binomial distribution B(n, q), so the interval is found by
// accumulating that distribution's mass outward from its mode.
func OrderStatisticCI(n int, q, confidence float64) QuantileInterval {
	ci := QuantileInterval{Quantile: q, N: n}
	if confidence >= 1 {
		ci.Confidence, ci.LoOrder, ci.HiOrder = 1, 0, n+1
		return ci
	}

	b := BinomialDist{N: n, P: q}
	var lo, hi int
	if n <= orderCIExactLimit {
		lo, hi = ci.fromBinomial(b, confidence)
	} else {
		lo, hi = ci.fromNormal(b, confidence)
	}
	ci.LoOrder, ci.HiOrder = max(lo, 0), min(hi, n+1)
	return ci
}

// fromBinomial returns the interval [lo, hi) of b's support found by
// starting at the lower mode and repeatedly adding the more probable
// neighbor, preferring the left one on ties.
func (ci *QuantileInterval) fromBinomial(b BinomialDist, confidence float64) (lo, hi int) {
	mode := int(math.Ceil(float64(b.N+1)*b.P) - 1)
	if b.P == 0 {
		mode = 0
	}
	mass := b.PMF(float64(mode))
	lo, hi = mode, mode+1
	left, right := b.PMF(float64(lo-1)), b.PMF(float64(hi))
	ci.Ambiguous = right == mass

	// Stop if nothing is left to add, in case rounding keeps
	// mass below confidence.
	for mass < confidence && (left > 0 || right > 0) {
		ci.Ambiguous = left == right
		if left >= right {
			mass += left
			lo--
			left = b.PMF(float64(lo - 1))
		} else {
			mass += right
			hi++
			right = b.PMF(float64(hi))
		}
	}
	ci.Confidence = mass
	return lo, hi
}

// fromNormal approximates the interval using b's normal
// approximation.
func (ci *QuantileInterval) fromNormal(b BinomialDist, confidence float64) (lo, hi int) {
	norm := b.NormalApprox()

	// The central confidence mass of the normal approximation,
	// symmetric around the mean.
	l := norm.InvCDF((1 - confidence) / 2)
	r := 2*norm.Mu - l

	// Point k of b covers [k-½, k+½) of the approximation, so round
	// out to those boundaries.
	lo = int(math.Floor(l-0.5)) + 1
	hi = int(math.Ceil(r-0.5)) + 1
	mass := func(lo, hi int) float64 {
		return norm.CDF(float64(hi)-0.5) - norm.CDF(float64(lo)-0.5)
	}
	ci.Confidence = mass(lo, hi)

	// The rounded interval is symmetric. Drop its right end if
	// that still reaches the confidence level.
	if m := mass(lo, hi-1); m >= confidence && m < ci.Confidence {
		ci.Confidence, ci.Ambiguous = m, true
		hi--
	}

	// The approximation has infinite support, so an interval
	// spanning all of b's support would otherwise come out just
	// short of 1.
	if lo <= 0 && hi >= b.N+1 {
		ci.Confidence, ci.Ambiguous = 1, false
	}
	return lo, hi
}

// FromSample returns the bounds of ci as values of s. A bound outside
// the sample is returned as -Inf or +Inf.
//
// FromSample returns ErrSampleSize if s does not have ci.N values.
func (ci QuantileInterval) FromSample(s Sample) (lo, hi float64, err error) {
	if len(s.Xs) != ci.N {
		return 0, 0, ErrSampleSize
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	lo, hi = -inf, inf
	if ci.LoOrder >= 1 {
		lo = s.Xs[ci.LoOrder-1]
	}
	if ci.HiOrder <= len(s.Xs) {
		hi = s.Xs[ci.HiOrder-1]
	}
	return lo, hi, nil
}
