// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
)

// BinomialDist is a binomial distribution.
//
// The Gaussian mechanism samples its noise as a centered binomial,
// so this is the reference its statistical tests are checked against.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// exactChooseLimit is the largest N for which binomial coefficients
// are computed in integer arithmetic, chosen so combin.Binomial's
// intermediate products stay well inside an int64.
const exactChooseLimit = 56

func choose(n, k int) float64 {
	if n <= exactChooseLimit {
		return float64(combin.Binomial(n, k))
	}
	return combin.GeneralizedBinomial(float64(n), float64(k))
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return choose(d.N, ki) * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	ki := int(k)
	if ki < 0 {
		return 0
	} else if ki >= d.N {
		return 1
	}
	// Pr[X <= k] = I_{1-p}(n-k, k+1).
	return mathext.RegIncBeta(float64(d.N-ki), k+1, 1-d.P)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns the normal distribution with the same mean and
// variance as d.
//
// Because the binomial distribution is discrete, callers must apply a
// continuity correction: d.PMF(k) corresponds to
// n.CDF(k+0.5) - n.CDF(k-0.5) and d.CDF(k) to n.CDF(k+0.5).
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
