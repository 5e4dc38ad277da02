// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of observations.
//
// The statistics methods of Sample return NaN for an empty sample.
// The package-level functions Mean, Variance, StandardDev, and
// OrderStatistic instead report ErrEmptySample.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (lo, hi float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Sum returns the sum of the Sample.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of the Sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// Variance returns the population variance of the Sample: the mean
// squared deviation from the mean, dividing by N rather than N-1.
func (s Sample) Variance() float64 {
	switch len(s.Xs) {
	case 0:
		return nan
	case 1:
		return 0
	}
	_, v := stat.PopMeanVariance(s.Xs, nil)
	return v
}

// StdDev returns the population standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// OrderStatistic returns the q'th quantile of the Sample, for q in
// [0, 1].
//
// The i'th smallest of N values (counting from 0) is taken to sit at
// quantile (i+½)/N, and quantiles between two such points are
// linearly interpolated. Quantiles below the first point or above the
// last are the minimum and maximum of the Sample, so q=0 is the
// minimum and q=1 is the maximum. This is definition 5 of Hyndman and
// Fan (1996).
//
// If the Sample is empty or q is outside [0, 1], OrderStatistic
// returns NaN. If s is not sorted, OrderStatistic sorts a copy of
// its values; s itself is not modified.
func (s Sample) OrderStatistic(q float64) float64 {
	if len(s.Xs) == 0 || !(q >= 0 && q <= 1) {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	n := len(s.Xs)
	pos := q*float64(n) - 0.5
	if pos <= 0 {
		return s.Xs[0]
	}
	if pos >= float64(n-1) {
		return s.Xs[n-1]
	}
	i := int(pos)
	frac := pos - float64(i)
	if frac == 0 {
		return s.Xs[i]
	}
	return s.Xs[i] + frac*(s.Xs[i+1]-s.Xs[i])
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if !s.Sorted && !sort.Float64sAreSorted(s.Xs) {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return Sample{Xs: xs}.Mean(), nil
}

// Variance returns the population variance of xs.
func Variance(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return Sample{Xs: xs}.Variance(), nil
}

// StandardDev returns the population standard deviation of xs.
func StandardDev(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	return Sample{Xs: xs}.StdDev(), nil
}

// OrderStatistic returns the q'th quantile of xs as described by
// Sample.OrderStatistic. xs is not modified.
func OrderStatistic(q float64, xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySample
	}
	if !(q >= 0 && q <= 1) {
		return 0, ErrQuantileRange
	}
	return Sample{Xs: xs}.OrderStatistic(q), nil
}
