// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of types supported by the checked operations.
type Number interface {
	constraints.Integer | constraints.Float
}

// kind describes the representation of a Number type.
type kind[T Number] struct {
	lo, hi T
	float  bool
	signed bool
}

// kindOf derives T's range from its underlying kind, so named types
// such as "type Count int32" get the range of int32.
func kindOf[T Number]() kind[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		m := math.MaxFloat64
		if bits == 32 {
			m = math.MaxFloat32
		}
		return kind[T]{lo: T(-m), hi: T(m), float: true, signed: true}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		hi := int64(1)<<(bits-1) - 1
		return kind[T]{lo: T(-hi - 1), hi: T(hi), signed: true}
	default:
		hi := ^uint64(0) >> (64 - bits)
		return kind[T]{lo: 0, hi: T(hi)}
	}
}

// Limits returns the lowest and highest finite values of T.
func Limits[T Number]() (lo, hi T) {
	k := kindOf[T]()
	return k.lo, k.hi
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	return kindOf[T]().float
}
