package bignum

import "errors"

// Recoverable error kinds. Parse failure, conversion overflow, and
// random-range exhaustion are the only three error modes a caller can
// recover from; everything else is a precondition violation and goes
// through AssertHook instead (see below).
var (
	// ErrParse is returned by FromString when no valid digit appears
	// before the end of the string (or before the first invalid rune).
	ErrParse = errors.New("bignum: no valid digits in input")

	// ErrRandomRangeExhausted is returned by RandomRange when the retry
	// budget (see Options.RandomRangeRetryBudget) is exceeded without
	// producing a sample inside [min, max).
	ErrRandomRangeExhausted = errors.New("bignum: random_range retry budget exhausted")
)

// AssertHook is invoked on a precondition violation: an invalid base, a
// non-positive modulus or a negative exponent to ModPow, a negative input
// to Sqrt, min >= max in RandomRange, or division/modulo by zero. Nil
// handles are not checked: passing nil where a value is required panics
// with a nil pointer dereference without going through AssertHook.
// The default aborts the program: fail-fast discipline for
// programmer errors. Embedders may replace it
// (e.g. to log before aborting, or to longjmp out in a runtime that
// supports it) but a replacement that returns normally is a contract
// violation: the caller that triggered it is not in a consistent state.
var AssertHook func(msg string) = func(msg string) {
	panic("bignum: " + msg)
}

func fail(msg string) {
	AssertHook(msg)
}
