package bignum

import "math/rand"

// Random generation over math/rand with a masking/rejection step on the
// raw bit pattern. The PRNG is explicitly non-cryptographic.

// Random returns a uniformly random non-negative BigInt drawn from
// [0, 2^bits): enough limbs for bits bits, with the high limb masked
// down so no more than bits bits are ever set. rnd may be nil to use a
// freshly seeded source.
func Random(bits uint, rnd *rand.Rand) *BigInt {
	if bits == 0 {
		return Zero()
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(1))
	}
	n := (bits + wordBits - 1) / wordBits
	limbs := make([]Word, n)
	for i := range limbs {
		limbs[i] = Word(rnd.Uint64())
	}
	extra := n*wordBits - bits
	if extra > 0 {
		limbs[n-1] &= wordMax >> extra
	}
	return newBigInt(false, limbs)
}

// RandomRange returns a uniformly random BigInt in [min, max). It draws
// candidates of bit_length(max-min)+8 bits, rejects any at or above the
// largest multiple of max-min that fits in that many bits, and reduces the
// rest modulo max-min (the +8 bits of slack keep rejections rare); it
// gives up after opts.RandomRangeRetryBudget draws and returns
// ErrRandomRangeExhausted. min >= max is a precondition violation, not a
// recoverable error.
func RandomRange(min, max *BigInt, rnd *rand.Rand, opts Options) (*BigInt, error) {
	if !Less(min, max) {
		fail("random_range: min must be < max")
		return nil, nil
	}
	span := Sub(max, min)
	bits := uint(bitLen(span.limbs)) + 8
	budget := opts.RandomRangeRetryBudget
	if budget <= 0 {
		budget = DefaultOptions().RandomRangeRetryBudget
	}
	limit := Mul(Divide(ShiftLeft(One(), bits), span), span)
	for i := 0; i < budget; i++ {
		candidate := Random(bits, rnd)
		if Less(candidate, limit) {
			return Add(min, Mod(candidate, span)), nil
		}
	}
	return nil, ErrRandomRangeExhausted
}
