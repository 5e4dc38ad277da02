// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// NextPowerOfTwo returns the smallest power of two that is >= x.
//
// The result is computed from the binary exponent of x, so it is
// exact for every positive finite x, including x < 1. For example,
// NextPowerOfTwo(0.4) is 0.5 and NextPowerOfTwo(8) is 8.
//
// Special cases are:
//
//	NextPowerOfTwo(0) = 0
//	NextPowerOfTwo(+Inf) = +Inf
//	NextPowerOfTwo(x < 0) = NaN
//	NextPowerOfTwo(NaN) = NaN
func NextPowerOfTwo(x float64) float64 {
	switch {
	case x < 0 || math.IsNaN(x):
		return nan
	case x == 0 || math.IsInf(x, 1):
		return x
	}
	// x = frac × 2^exp with frac in [0.5, 1).
	frac, exp := math.Frexp(x)
	if frac == 0.5 {
		return x
	}
	return math.Ldexp(1, exp)
}

// RoundToNearestMultiple rounds x to the nearest integer multiple of
// granularity. Ties are broken toward +Inf, so 5 rounds to 6 and -5
// rounds to -4 with a granularity of 2.
//
// granularity should be a power of two. In that case both scaling
// steps are exact and the only rounding is the choice of multiple,
// so the result carries none of the low-order bits of x. If
// granularity is not positive, x is returned unchanged.
func RoundToNearestMultiple(x, granularity float64) float64 {
	if !(granularity > 0) {
		return x
	}
	q := x / granularity
	// At |q| >= 2⁵² (or when q overflows to ±Inf) x has no bits
	// below granularity, so it is already a multiple.
	if math.Abs(q) >= 0x1p52 {
		return x
	}
	// Adding 0.5 before flooring would round q itself near 2⁵²,
	// so compare the exact fractional part instead.
	r := math.Floor(q)
	if q-r >= 0.5 {
		r++
	}
	return r * granularity
}
