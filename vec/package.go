// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vec provides small sequence helpers used alongside the
// numeric packages: mask filtering, diagnostic formatting, and
// cyclic byte XOR for mixing seeds or masks of unequal length.
package vec // import "github.com/privacylab/go-dpmath/vec"

import "errors"

// ErrLengthMismatch is returned when a mask does not have the same
// length as the sequence it selects from.
var ErrLengthMismatch = errors.New("mask and sequence lengths differ")
