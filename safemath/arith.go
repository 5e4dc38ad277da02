// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safemath

// Add returns a + b.
//
// For integer types, if a + b is outside the range of T, the result
// is not OK and its value is the maximum of T if the sum overflowed
// upward or the minimum of T if it overflowed downward. For floating
// types the result is always OK.
func Add[T Number](a, b T) Result[T] {
	k := kindOf[T]()
	sum := a + b
	if k.float {
		return exact(sum)
	}
	// Integer addition wraps, so an overflow shows up as the sum
	// moving in the opposite direction from b.
	if b > 0 && sum < a {
		return overflow(k.hi, "add", a, b)
	}
	if b < 0 && sum > a {
		return overflow(k.lo, "add", a, b)
	}
	return exact(sum)
}

// Subtract returns a - b, saturating on overflow like Add.
func Subtract[T Number](a, b T) Result[T] {
	k := kindOf[T]()
	diff := a - b
	if k.float {
		return exact(diff)
	}
	if b > 0 && diff > a {
		return overflow(k.lo, "subtract", a, b)
	}
	if b < 0 && diff < a {
		return overflow(k.hi, "subtract", a, b)
	}
	return exact(diff)
}

// Multiply returns a * b.
//
// If either operand is zero the result is OK and zero. For integer
// types, an overflowing product saturates at the maximum of T when
// the operands have the same sign and at the minimum of T when their
// signs differ.
func Multiply[T Number](a, b T) Result[T] {
	k := kindOf[T]()
	if k.float {
		return exact(a * b)
	}
	if a == 0 || b == 0 {
		return exact(T(0))
	}

	bound := k.hi
	if (a < 0) != (b < 0) {
		bound = k.lo
	}

	// lo * -1 wraps back to lo, and lo / -1 is lo again, so the
	// division check below cannot see this case.
	var zero T
	minusOne := zero - 1
	if k.signed && ((a == minusOne && b == k.lo) || (b == minusOne && a == k.lo)) {
		return overflow(bound, "multiply", a, b)
	}

	prod := a * b
	if prod/b != a {
		return overflow(bound, "multiply", a, b)
	}
	return exact(prod)
}

// Square returns a * a, saturating on overflow like Multiply.
func Square[T Number](a T) Result[T] {
	r := Multiply(a, a)
	if !r.ok {
		r.op, r.args = "square", []T{a}
	}
	return r
}

// Sum returns the sum of xs. It stops at the first overflowing
// addition and returns that addition's saturated result.
func Sum[T Number](xs []T) Result[T] {
	var total T
	for _, x := range xs {
		r := Add(total, x)
		if !r.ok {
			return r
		}
		total = r.v
	}
	return exact(total)
}
