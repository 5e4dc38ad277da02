// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements the floating-point helpers used to
// calibrate and publish differentially private noise: snapping values
// onto power-of-two grids, the inverse error function, and the
// standard normal quantile function.
package mathx // import "github.com/privacylab/go-dpmath/mathx"

import "math"

// DefaultEpsilon is the privacy parameter ε used when a caller does
// not choose one. It equals ln 3.
const DefaultEpsilon = 1.0986122886681098

var inf = math.Inf(1)
var nan = math.NaN()
