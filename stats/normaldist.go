// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/privacylab/go-dpmath/mathx"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.398942280401432677939946059934381868475858631164934657665925

func (n NormalDist) PDF(x float64) float64 {
	z := (x - n.Mu) / n.Sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / n.Sigma
}

func (n NormalDist) CDF(x float64) float64 {
	return math.Erfc(-(x-n.Mu)/(n.Sigma*math.Sqrt2)) / 2
}

// InvCDF returns the y'th quantile of n. It is accurate to within
// 4.5e-4 standard deviations (see mathx.Qnorm).
func (n NormalDist) InvCDF(y float64) float64 {
	switch {
	case y == 0:
		return -inf
	case y == 1:
		return inf
	}
	z, err := mathx.Qnorm(y)
	if err != nil {
		return nan
	}
	return n.Mu + n.Sigma*z
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}

// ConfidenceInterval returns the interval centered on n.Mu that holds
// 1-alpha of the distribution's mass. alpha must be in (0, 1).
//
// The lower bound is computed from the alpha/2 quantile and the upper
// bound mirrored from it, since a small alpha/2 is represented more
// precisely than 1-alpha/2.
func (n NormalDist) ConfidenceInterval(alpha float64) (lo, hi float64, err error) {
	if !(alpha > 0 && alpha < 1) {
		return 0, 0, fmt.Errorf("confidence interval with alpha %v: %w", alpha, mathx.ErrInvalidProbability)
	}
	z, err := mathx.Qnorm(alpha / 2)
	if err != nil {
		return 0, 0, err
	}
	return n.Mu + n.Sigma*z, n.Mu - n.Sigma*z, nil
}
