// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the descriptive statistics used to test
// differentially private mechanisms and to estimate their utility
// loss: mean, population variance, standard deviation, and
// interpolated order statistics, plus the normal and binomial
// reference distributions those tests compare against.
package stats // import "github.com/privacylab/go-dpmath/stats"

import (
	"errors"
	"math"
)

var (
	// ErrEmptySample is returned when a statistic is requested
	// of a sample with no values.
	ErrEmptySample = errors.New("sample is empty")

	// ErrQuantileRange is returned when a quantile lies outside
	// [0, 1].
	ErrQuantileRange = errors.New("quantile must be in [0, 1]")

	// ErrSampleSize is returned when a sample does not have the
	// size an interval was computed for.
	ErrSampleSize = errors.New("sample size differs from interval")
)

var inf = math.Inf(1)
var nan = math.NaN()
