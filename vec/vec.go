// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vec

import (
	"fmt"
	"strings"
)

// Filter returns the elements of xs at the positions where mask is
// true, in order. xs is not modified.
func Filter[T any](xs []T, mask []bool) ([]T, error) {
	if len(xs) != len(mask) {
		return nil, fmt.Errorf("filter %d values with %d-element mask: %w", len(xs), len(mask), ErrLengthMismatch)
	}
	out := make([]T, 0, len(xs))
	for i, keep := range mask {
		if keep {
			out = append(out, xs[i])
		}
	}
	return out, nil
}

// String formats xs as "[x0, x1, ...]" using the %v verb for each
// element. It is meant for logs and is not parsed back.
func String[T any](xs []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteByte(']')
	return b.String()
}

// XorBytes returns the XOR of a and b. The result has the length of
// the longer operand, and the shorter operand is repeated cyclically.
// If either operand is empty the result is a copy of the other.
func XorBytes(a, b []byte) []byte {
	if len(b) > len(a) {
		a, b = b, a
	}
	out := make([]byte, len(a))
	copy(out, a)
	if len(b) == 0 {
		return out
	}
	for i := range out {
		out[i] ^= b[i%len(b)]
	}
	return out
}

// XorStrings is XorBytes over the bytes of two strings.
func XorStrings(a, b string) string {
	return string(XorBytes([]byte(a), []byte(b)))
}
