// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

import (
	"errors"
	"math"
	"testing"
)

const (
	maxInt64 = math.MaxInt64
	minInt64 = math.MinInt64
)

var inf = math.Inf(1)

func checkResult[T Number](t *testing.T, name string, got Result[T], wantV T, wantOK bool) {
	t.Helper()
	if got.OK() != wantOK || got.Clamped() != wantV {
		t.Errorf("%s = %v/%v, want %v/%v", name, got.Clamped(), got.OK(), wantV, wantOK)
	}
}

func TestAddInt(t *testing.T) {
	checkResult(t, "10+20", Add[int64](10, 20), 30, true)
	checkResult(t, "max+lowest", Add[int64](maxInt64, minInt64), -1, true)
	checkResult(t, "max+1", Add[int64](maxInt64, 1), maxInt64, false)
	checkResult(t, "lowest-1", Add[int64](minInt64, -1), minInt64, false)
	checkResult(t, "lowest+0", Add[int64](minInt64, 0), minInt64, true)
	checkResult(t, "max+max", Add[int64](maxInt64, maxInt64), maxInt64, false)
	checkResult(t, "uint max+1", Add[uint64](math.MaxUint64, 1), math.MaxUint64, false)
}

func TestAddFloat(t *testing.T) {
	checkResult(t, "10+20", Add(10.0, 20.0), 30, true)
	checkResult(t, "max+lowest", Add(math.MaxFloat64, -math.MaxFloat64), 0, true)
	checkResult(t, "max+max", Add(math.MaxFloat64, math.MaxFloat64), inf, true)
	checkResult(t, "lowest-max", Add(-math.MaxFloat64, -math.MaxFloat64), -inf, true)
	checkResult(t, "lowest+0", Add(-math.MaxFloat64, 0), -math.MaxFloat64, true)
	// Adding 1 to the maximum float is absorbed by rounding.
	checkResult(t, "max+1", Add(math.MaxFloat64, 1.0), math.MaxFloat64, true)

	r := Add(math.NaN(), 1.0)
	if !r.OK() || !math.IsNaN(r.Clamped()) {
		t.Errorf("NaN+1 = %v/%v, want NaN/true", r.Clamped(), r.OK())
	}
}

func TestSubtractInt(t *testing.T) {
	checkResult(t, "10-20", Subtract[int64](10, 20), -10, true)
	// 1-lowest overflows upward, so it saturates at max rather than
	// at lowest as some implementations do.
	checkResult(t, "1-lowest", Subtract[int64](1, minInt64), maxInt64, false)
	checkResult(t, "-1-lowest", Subtract[int64](-1, minInt64), maxInt64, true)
	checkResult(t, "lowest-lowest", Subtract[int64](minInt64, minInt64), 0, true)
	checkResult(t, "lowest-1", Subtract[int64](minInt64, 1), minInt64, false)
	checkResult(t, "uint 1-0", Subtract[uint64](1, 0), 1, true)
	checkResult(t, "uint 0-1", Subtract[uint64](0, 1), 0, false)
}

func TestSubtractFloat(t *testing.T) {
	checkResult(t, "10-20", Subtract(10.0, 20.0), -10, true)
	checkResult(t, "-max-max", Subtract(-math.MaxFloat64, math.MaxFloat64), -inf, true)
	checkResult(t, "max-lowest", Subtract(math.MaxFloat64, -math.MaxFloat64), inf, true)
	checkResult(t, "lowest-lowest", Subtract(-math.MaxFloat64, -math.MaxFloat64), 0, true)
}

func TestMultiplyInt(t *testing.T) {
	for _, tc := range []struct {
		a, b   int64
		want   int64
		wantOK bool
	}{
		{1, 1, 1, true},
		{-1, 1, -1, true},
		{1, -1, -1, true},
		{-1, -1, 1, true},
		{10, -20, -200, true},
		{maxInt64, minInt64, minInt64, false},
		{minInt64, maxInt64, minInt64, false},
		{maxInt64, 2, maxInt64, false},
		{minInt64, -2, maxInt64, false},
		{maxInt64, -2, minInt64, false},
		{-2, maxInt64, minInt64, false},
		{minInt64, 2, minInt64, false},
		{2, minInt64, minInt64, false},
		{minInt64, -1, maxInt64, false},
		{-1, minInt64, maxInt64, false},
		{maxInt64, -1, -maxInt64, true},
		{minInt64, 0, 0, true},
		{0, maxInt64, 0, true},
		{minInt64, 1, minInt64, true},
	} {
		checkResult(t, "multiply", Multiply(tc.a, tc.b), tc.want, tc.wantOK)
	}
}

func TestMultiplyFloat(t *testing.T) {
	checkResult(t, "1*1", Multiply(1.0, 1.0), 1, true)
	checkResult(t, "10*-20", Multiply(10.0, -20.0), -200, true)
	checkResult(t, "max*lowest", Multiply(math.MaxFloat64, -math.MaxFloat64), -inf, true)
	checkResult(t, "max*2", Multiply(math.MaxFloat64, 2.0), inf, true)
	checkResult(t, "max*-2", Multiply(math.MaxFloat64, -2.0), -inf, true)
	checkResult(t, "lowest*-2", Multiply(-math.MaxFloat64, -2.0), inf, true)
	checkResult(t, "lowest*2", Multiply(-math.MaxFloat64, 2.0), -inf, true)
	checkResult(t, "lowest*0", Multiply(-math.MaxFloat64, 0.0), 0, true)
	checkResult(t, "0*max", Multiply(0.0, math.MaxFloat64), 0, true)
}

func TestSquare(t *testing.T) {
	checkResult(t, "-9²", Square[int64](-9), 81, true)
	checkResult(t, "(max-1)²", Square[int64](maxInt64-1), maxInt64, false)
	checkResult(t, "(lowest+1)²", Square[int64](minInt64+1), maxInt64, false)
	checkResult(t, "lowest²", Square[int64](minInt64), maxInt64, false)
	checkResult(t, "uint 0²", Square[uint64](0), 0, true)
	checkResult(t, "uint (2³²)²", Square[uint64](1<<32), math.MaxUint64, false)
	checkResult(t, "float max²", Square(math.MaxFloat64), inf, true)
}

// TestExhaustive8 checks every pair of 8-bit operands against
// arithmetic carried out in a wider type.
func TestExhaustive8(t *testing.T) {
	clamp := func(v, lo, hi int) (int, bool) {
		if v > hi {
			return hi, false
		}
		if v < lo {
			return lo, false
		}
		return v, true
	}
	for a := math.MinInt8; a <= math.MaxInt8; a++ {
		for b := math.MinInt8; b <= math.MaxInt8; b++ {
			x, y := int8(a), int8(b)
			for _, op := range []struct {
				name string
				got  Result[int8]
				want int
			}{
				{"add", Add(x, y), a + b},
				{"subtract", Subtract(x, y), a - b},
				{"multiply", Multiply(x, y), a * b},
			} {
				want, ok := clamp(op.want, math.MinInt8, math.MaxInt8)
				if op.got.OK() != ok || int(op.got.Clamped()) != want {
					t.Fatalf("%s(%d, %d) = %d/%v, want %d/%v", op.name, a, b, op.got.Clamped(), op.got.OK(), want, ok)
				}
			}
		}
	}
	for a := 0; a <= math.MaxUint8; a++ {
		for b := 0; b <= math.MaxUint8; b++ {
			x, y := uint8(a), uint8(b)
			for _, op := range []struct {
				name string
				got  Result[uint8]
				want int
			}{
				{"add", Add(x, y), a + b},
				{"subtract", Subtract(x, y), a - b},
				{"multiply", Multiply(x, y), a * b},
			} {
				want, ok := clamp(op.want, 0, math.MaxUint8)
				if op.got.OK() != ok || int(op.got.Clamped()) != want {
					t.Fatalf("uint8 %s(%d, %d) = %d/%v, want %d/%v", op.name, a, b, op.got.Clamped(), op.got.OK(), want, ok)
				}
			}
		}
	}
}

type count int32

func TestNamedType(t *testing.T) {
	checkResult(t, "count max+1", Add[count](math.MaxInt32, 1), math.MaxInt32, false)
	lo, hi := Limits[count]()
	if lo != math.MinInt32 || hi != math.MaxInt32 {
		t.Errorf("Limits[count]() = %d, %d", lo, hi)
	}
}

func TestLimits(t *testing.T) {
	if lo, hi := Limits[int8](); lo != math.MinInt8 || hi != math.MaxInt8 {
		t.Errorf("Limits[int8]() = %d, %d", lo, hi)
	}
	if lo, hi := Limits[uint16](); lo != 0 || hi != math.MaxUint16 {
		t.Errorf("Limits[uint16]() = %d, %d", lo, hi)
	}
	if lo, hi := Limits[uint64](); lo != 0 || hi != math.MaxUint64 {
		t.Errorf("Limits[uint64]() = %d, %d", lo, hi)
	}
	if lo, hi := Limits[float32](); lo != -math.MaxFloat32 || hi != math.MaxFloat32 {
		t.Errorf("Limits[float32]() = %v, %v", lo, hi)
	}
	if !IsFloat[float32]() || !IsFloat[float64]() || IsFloat[int]() || IsFloat[uintptr]() {
		t.Error("IsFloat misclassified a type")
	}
}

func TestResultValue(t *testing.T) {
	v, err := Add[int64](maxInt64, 1).Value()
	if !errors.Is(err, ErrOverflow) || v != maxInt64 {
		t.Errorf("Value() = %v, %v; want %v, ErrOverflow", v, err, int64(maxInt64))
	}
	v, err = Square[int64](-9).Value()
	if err != nil || v != 81 {
		t.Errorf("Value() = %v, %v; want 81, nil", v, err)
	}
}

func TestSum(t *testing.T) {
	checkResult(t, "sum", Sum([]int64{1, 2, 3, -10}), -4, true)
	checkResult(t, "empty sum", Sum[int64](nil), 0, true)
	checkResult(t, "overflowing sum", Sum([]int64{maxInt64 - 1, 1, 1, -5}), maxInt64, false)
	checkResult(t, "float sum", Sum([]float64{0.5, 0.25}), 0.75, true)
}
