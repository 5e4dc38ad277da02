// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import "fmt"

// A Result is the outcome of a checked operation.
//
// A Result either holds the exact value of the operation or records
// that the operation overflowed, in which case it holds the value
// saturated at the bound of T the true result overflowed toward.
type Result[T Number] struct {
	v    T
	ok   bool
	op   string
	args []T
}

func exact[T Number](v T) Result[T] {
	return Result[T]{v: v, ok: true}
}

func overflow[T Number](v T, op string, args ...T) Result[T] {
	return Result[T]{v: v, op: op, args: args}
}

// OK reports whether the operation produced its exact value.
func (r Result[T]) OK() bool {
	return r.ok
}

// Value returns the value of the operation. If the operation
// overflowed, it returns the saturated value and an error wrapping
// ErrOverflow.
func (r Result[T]) Value() (T, error) {
	if !r.ok {
		return r.v, fmt.Errorf("%s%v: %w", r.op, r.args, ErrOverflow)
	}
	return r.v, nil
}

// Clamped returns the value of the operation whether or not it
// overflowed.
func (r Result[T]) Clamped() T {
	return r.v
}
