// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package safemath provides overflow-checked arithmetic over Go's
// fixed-width integer and floating-point types.
//
// Integer operations never wrap. If the exact result of an operation
// is not representable, the operation reports failure and its value
// saturates at whichever end of the type's range the true result lies
// beyond. Floating-point operations follow IEEE-754 and always
// succeed, since ±Inf and NaN are values of the type.
//
// These routines are intended for combining privacy budgets,
// sensitivities, and counts, where a silently wrapped result would
// invalidate a privacy guarantee.
package safemath // import "github.com/privacylab/go-dpmath/safemath"

import "errors"

// ErrOverflow is returned by Result.Value when an integer operation
// overflowed. The accompanying value is saturated at the type's bound.
var ErrOverflow = errors.New("integer overflow")
