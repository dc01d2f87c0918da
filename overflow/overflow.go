// Package overflow implements fixed-width signed-integer overflow
// helpers: native 32/64-bit addition, subtraction, and multiplication
// that report whether the exact mathematical result fits in the target
// width, rather than silently wrapping. bignum itself has no
// fixed-width limits, but an embedder mixing native and BigInt
// arithmetic needs exactly this contract at the boundary.
package overflow

import "math"

// AddOverflowInt32 computes x+y and reports whether it fits in an int32.
func AddOverflowInt32(x, y int32) (int32, bool) {
	sum := int64(x) + int64(y)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return 0, false
	}
	return int32(sum), true
}

// SubOverflowInt32 computes x-y and reports whether it fits in an int32.
func SubOverflowInt32(x, y int32) (int32, bool) {
	diff := int64(x) - int64(y)
	if diff < math.MinInt32 || diff > math.MaxInt32 {
		return 0, false
	}
	return int32(diff), true
}

// MulOverflowInt32 computes x*y and reports whether it fits in an int32.
func MulOverflowInt32(x, y int32) (int32, bool) {
	prod := int64(x) * int64(y)
	if prod < math.MinInt32 || prod > math.MaxInt32 {
		return 0, false
	}
	return int32(prod), true
}

// AddOverflowInt64 computes x+y and reports whether it fits in an int64.
func AddOverflowInt64(x, y int64) (int64, bool) {
	sum := x + y
	if (y > 0 && sum < x) || (y < 0 && sum > x) {
		return 0, false
	}
	return sum, true
}

// SubOverflowInt64 computes x-y and reports whether it fits in an int64.
func SubOverflowInt64(x, y int64) (int64, bool) {
	diff := x - y
	if (y < 0 && diff < x) || (y > 0 && diff > x) {
		return 0, false
	}
	return diff, true
}

// MulOverflowInt64 computes x*y and reports whether it fits in an int64.
func MulOverflowInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	prod := x * y
	if prod/y != x {
		return 0, false
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	return prod, true
}
