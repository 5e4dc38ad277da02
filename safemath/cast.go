// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// CastFromDouble converts x to T and stores it in *dst.
//
// If T is an integer type, values at or beyond the range of T
// saturate to the minimum or maximum of T and values inside the range
// are converted directly, truncating toward zero. A NaN cannot be
// converted; CastFromDouble then returns false and leaves *dst
// unmodified.
//
// If T is a floating type, x is converted with the usual IEEE
// narrowing: NaN stays NaN and magnitudes too large for T become
// infinities of the same sign. This always succeeds.
func CastFromDouble[T Number](x float64, dst *T) bool {
	k := kindOf[T]()
	if k.float {
		*dst = T(x)
		return true
	}
	if math.IsNaN(x) {
		return false
	}
	// float64(k.hi) may round up past k.hi (for example 2⁶³ for
	// int64), so the comparisons must include equality.
	switch {
	case x >= float64(k.hi):
		*dst = k.hi
	case x <= float64(k.lo):
		*dst = k.lo
	default:
		*dst = T(x)
	}
	return true
}

// Clamp returns v limited to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](lo, hi, v T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
