// Package bignum implements a sign-magnitude arbitrary-precision signed
// integer, in the lineage of the standard library's math/big.Int but with
// an explicit retain/release ownership contract instead of GC-only
// sharing (see identity.go), and exact (non-floating-point) multiply,
// divide, and string conversion throughout.
package bignum

// BigInt is a signed arbitrary-precision integer in sign-magnitude form.
// The zero value is not ready for use; construct one with Zero, One,
// FromInt32/64, FromUint32/64, or FromString.
//
// A BigInt is treated as immutable after construction: every operation
// that would change its value returns a new BigInt rather than mutating
// the receiver's limbs. Ownership is tracked by reference count; see
// Retain, Release, and RefCount in identity.go, and Copy below.
type BigInt struct {
	negative bool
	limbs    []Word // little-endian, canonical: no trailing zero limb
	refcount int32
}

// newBigInt builds a fresh, normalized BigInt with refcount 1. limbs is
// taken by reference; callers must not retain a mutable alias to it.
func newBigInt(negative bool, limbs []Word) *BigInt {
	limbs = normalize(limbs)
	if len(limbs) == 0 {
		negative = false // zero is never negative
	}
	return &BigInt{negative: negative, limbs: limbs, refcount: 1}
}

// Zero returns a freshly constructed BigInt with value 0.
func Zero() *BigInt {
	return newBigInt(false, nil)
}

// One returns a freshly constructed BigInt with value 1.
func One() *BigInt {
	return newBigInt(false, []Word{1})
}

// FromInt32 constructs a BigInt from a signed 32-bit value. math.MinInt32
// is handled by computing its magnitude in unsigned space, since -MinInt32
// overflows int32.
func FromInt32(v int32) *BigInt {
	if v == 0 {
		return Zero()
	}
	neg := v < 0
	mag := uint32(v)
	if neg {
		mag = uint32(-(v + 1)) + 1 // |MinInt32| computed without overflow
	}
	return newBigInt(neg, limbsFromUint64(uint64(mag)))
}

// FromInt64 constructs a BigInt from a signed 64-bit value. math.MinInt64
// is handled the same way as FromInt32.
func FromInt64(v int64) *BigInt {
	if v == 0 {
		return Zero()
	}
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = uint64(-(v + 1)) + 1
	}
	return newBigInt(neg, limbsFromUint64(mag))
}

// FromUint32 constructs a non-negative BigInt from an unsigned 32-bit value.
func FromUint32(v uint32) *BigInt {
	return newBigInt(false, limbsFromUint64(uint64(v)))
}

// FromUint64 constructs a non-negative BigInt from an unsigned 64-bit value.
func FromUint64(v uint64) *BigInt {
	return newBigInt(false, limbsFromUint64(v))
}

// limbsFromUint64 splits an unsigned 64-bit magnitude into one or more
// limbs of the configured width.
func limbsFromUint64(v uint64) []Word {
	if v == 0 {
		return nil
	}
	var limbs []Word
	for v != 0 {
		limbs = append(limbs, Word(v))
		v >>= wordBits
	}
	return limbs
}

// Copy returns an independent BigInt with the same value and a fresh
// refcount of 1; it shares no backing array with x.
func Copy(x *BigInt) *BigInt {
	return &BigInt{negative: x.negative, limbs: cloneLimbs(x.limbs), refcount: 1}
}
