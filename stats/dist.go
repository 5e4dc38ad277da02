// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous distribution, such as the NormalDist a
// Gaussian mechanism draws its noise from.
type Dist interface {
	// PDF returns the probability density at x.
	PDF(x float64) float64

	// CDF returns Pr[X <= x].
	CDF(x float64) float64

	// InvCDF returns the y'th quantile, so InvCDF(CDF(x)) = x.
	// y must be in [0, 1]; InvCDF(0) and InvCDF(1) may be
	// infinite.
	InvCDF(y float64) float64

	// Bounds returns an interval holding all but a negligible
	// fraction of the distribution's mass.
	Bounds() (float64, float64)
}

// A DiscreteDist is a distribution over the integers, such as the
// BinomialDist of the count of sample values below a quantile.
type DiscreteDist interface {
	// PMF returns Pr[X = floor(k)].
	PMF(k float64) float64

	// CDF returns Pr[X <= k].
	CDF(k float64) float64

	// Bounds returns the smallest and largest values with
	// non-zero probability.
	Bounds() (float64, float64)
}
