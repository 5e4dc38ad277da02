// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProbability is returned when a probability argument lies
// outside the open interval (0, 1).
var ErrInvalidProbability = errors.New("probability must be in (0, 1)")

// Coefficients of Acklam's rational approximation to the standard
// normal quantile. The relative error of the approximation is below
// 1.15e-9 over the whole domain.
//
// Acklam, P. J. (2003) An algorithm for computing the inverse normal
// cumulative distribution function.
var (
	qCentralNum = [...]float64{
		-3.969683028665376e+01, 2.209460984245205e+02,
		-2.759285104469687e+02, 1.383577518672690e+02,
		-3.066479806614716e+01, 2.506628277459239e+00,
	}
	qCentralDen = [...]float64{
		-5.447609879822406e+01, 1.615858368580409e+02,
		-1.556989798598866e+02, 6.680131188771972e+01,
		-1.328068155288572e+01,
	}
	qTailNum = [...]float64{
		-7.784894002430293e-03, -3.223964580411365e-01,
		-2.400758277161838e+00, -2.549732539343734e+00,
		4.374664141464968e+00, 2.938163982698783e+00,
	}
	qTailDen = [...]float64{
		7.784695709041462e-03, 3.224671290700398e-01,
		2.445134137142996e+00, 3.754408661907416e+00,
	}
)

// qTailBreak is the tail probability below which the tail
// approximation is used.
const qTailBreak = 0.02425

// poly evaluates the polynomial with coefficients cs (highest degree
// first) at x. If one is set, the polynomial has an additional
// trailing coefficient of 1, as all of Acklam's denominators do.
func poly(cs []float64, x float64, one bool) float64 {
	var y float64
	for _, c := range cs {
		y = y*x + c
	}
	if one {
		y = y*x + 1
	}
	return y
}

// InverseErrorFunction returns the inverse of the error function:
// the y in [-Inf, +Inf] with erf(y) = x.
//
// It uses a rational approximation whose result satisfies
// |erf(InverseErrorFunction(x)) - x| < 1e-8 for x in [-1, 1].
//
// Special cases are:
//
//	InverseErrorFunction(1) = +Inf
//	InverseErrorFunction(-1) = -Inf
//	InverseErrorFunction(0) = 0
//	InverseErrorFunction(x) = NaN if x < -1, x > 1, or x is NaN
func InverseErrorFunction(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < -1 || x > 1:
		return nan
	case x == 1:
		return inf
	case x == -1:
		return -inf
	}

	// erfinv(x) = Φ⁻¹((1+x)/2) / √2, and (1+x)/2 - ½ = x/2
	// exactly, so the central region works on x/2 directly.
	var z float64
	if q := x / 2; math.Abs(q) <= 0.5-qTailBreak {
		r := q * q
		z = q * poly(qCentralNum[:], r, false) / poly(qCentralDen[:], r, true)
	} else {
		// The smaller of the two tail masses. For |x| >= 1/2,
		// 1-|x| is exact.
		t := (1 - math.Abs(x)) / 2
		s := math.Sqrt(-2 * math.Log(t))
		z = -poly(qTailNum[:], s, false) / poly(qTailDen[:], s, true)
		z = math.Copysign(z, x)
	}
	return z / math.Sqrt2
}

// Qnorm returns the quantile function of the standard normal
// distribution at p: the z with Pr[Z <= z] = p for Z ~ N(0, 1).
//
// Qnorm is computed as √2 · InverseErrorFunction(2p - 1) and has an
// absolute error below 4.5e-4 (in practice far smaller). p must lie
// in the open interval (0, 1); otherwise Qnorm returns an error
// wrapping ErrInvalidProbability.
func Qnorm(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, fmt.Errorf("qnorm(%v): %w", p, ErrInvalidProbability)
	}
	return math.Sqrt2 * InverseErrorFunction(2*p-1), nil
}
