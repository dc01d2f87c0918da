package bignum

import "sync/atomic"

// Value identity: retain/release ownership over an otherwise-immutable
// BigInt. Go's garbage collector already reclaims unreachable values;
// the reference count here exists to make that reclamation observable
// on the caller's own schedule, rather than to manage memory the
// runtime already manages.

// Retain increments x's reference count and returns x unchanged (the
// same backing value, not a copy). Pair every Retain with a Release.
func Retain(x *BigInt) *BigInt {
	if x == nil {
		return nil
	}
	atomic.AddInt32(&x.refcount, 1)
	return x
}

// Release decrements the reference count of *x and sets *x to nil. If the
// count reaches zero, the limbs are also dropped (left for the garbage
// collector). Release on a nil handle, or on a pointer to a nil handle,
// is a no-op.
func Release(x **BigInt) {
	if x == nil || *x == nil {
		return
	}
	v := *x
	if atomic.AddInt32(&v.refcount, -1) <= 0 {
		v.limbs = nil
	}
	*x = nil
}

// RefCount returns the current reference count of x. Intended for tests
// and diagnostics.
func RefCount(x *BigInt) int32 {
	if x == nil {
		return 0
	}
	return atomic.LoadInt32(&x.refcount)
}
