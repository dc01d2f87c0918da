package bignum

// Number theory: GCD via the Euclidean algorithm, ExtGCD via iterative
// extended Euclid (oldR/oldS/oldT bookkeeping), ModPow via right-to-left
// binary exponentiation, Sqrt via Newton's method, IsPrime via
// deterministic trial division.

var two = FromInt32(2)

// GCD returns the greatest common divisor of |a| and |b| via the
// Euclidean algorithm: repeatedly replace (a, b) with (b, a mod b) until
// b is zero. gcd(0, x) == |x|.
func GCD(a, b *BigInt) *BigInt {
	x, y := Abs(a), Abs(b)
	for !IsZero(y) {
		x, y = y, Mod(x, y)
	}
	return x
}

// LCM returns the least common multiple of a and b; zero if either
// operand is zero.
func LCM(a, b *BigInt) *BigInt {
	if IsZero(a) || IsZero(b) {
		return Zero()
	}
	g := GCD(a, b)
	prod := Abs(Mul(a, b))
	return Divide(prod, g)
}

// ExtGCD returns (g, x, y) such that a*x + b*y == g, with g >= 0, via the
// iterative extended Euclidean algorithm.
func ExtGCD(a, b *BigInt) (g, x, y *BigInt) {
	oldR, r := Abs(a), Abs(b)
	oldS, s := One(), Zero()
	oldT, t := Zero(), One()
	aNeg, bNeg := IsNegative(a), IsNegative(b)

	for !IsZero(r) {
		q := Divide(oldR, r)
		oldR, r = r, Sub(oldR, Mul(q, r))
		oldS, s = s, Sub(oldS, Mul(q, s))
		oldT, t = t, Sub(oldT, Mul(q, t))
	}

	g = oldR
	x = oldS
	y = oldT
	if aNeg {
		x = Negate(x)
	}
	if bNeg {
		y = Negate(y)
	}
	if IsNegative(g) {
		g = Negate(g)
		x = Negate(x)
		y = Negate(y)
	}
	return g, x, y
}

// Sqrt returns floor(sqrt(n)) for a non-negative n, via Newton's method
// starting from x0 = n/2 (or 1 if that is zero), iterating
// x <- (x + n/x) / 2 until the update stops decreasing. A negative n is a
// precondition violation.
func Sqrt(n *BigInt) *BigInt {
	if IsNegative(n) {
		fail("sqrt of negative value")
		return Zero()
	}
	if IsZero(n) {
		return Zero()
	}
	x := Divide(n, two)
	if IsZero(x) {
		x = One()
	}
	for {
		next := Divide(Add(x, Divide(n, x)), two)
		if !Less(next, x) {
			return x
		}
		x = next
	}
}

// Factorial returns n! for a non-negative 32-bit n; 0! and 1! are both 1.
func Factorial(n uint32) *BigInt {
	result := One()
	for i := uint32(2); i <= n; i++ {
		result = MulI32(result, int32(i))
	}
	return result
}

// ModPow returns base^exp mod m via right-to-left binary exponentiation.
// Preconditions (precondition violations go through AssertHook): m must
// be positive; exp must be non-negative. If m == 1 the result is always
// 0.
func ModPow(base, exp, m *BigInt) *BigInt {
	if !IsPositive(m) {
		fail("mod_pow: modulus must be positive")
		return Zero()
	}
	if IsNegative(exp) {
		fail("mod_pow: negative exponent")
		return Zero()
	}
	if Equal(m, One()) {
		return Zero()
	}
	result := One()
	b := Mod(base, m)
	if IsNegative(b) {
		b = Add(b, m)
	}
	e := exp
	for !IsZero(e) {
		if !IsZero(Mod(e, two)) {
			result = Mod(Mul(result, b), m)
		}
		b = Mod(Mul(b, b), m)
		e = Divide(e, two)
	}
	return result
}

// IsPrime performs deterministic trial division up to floor(sqrt(n)).
// certainty is accepted for interface compatibility with a probabilistic
// tester and ignored: callers expecting Miller-Rabin semantics are not
// served, and cost grows with sqrt(n) rather than staying constant for
// large n.
func IsPrime(n *BigInt, certainty int) bool {
	_ = certainty
	if IsNegative(n) || Less(n, two) {
		return false
	}
	if Equal(n, two) || Equal(n, FromInt32(3)) {
		return true
	}
	if IsZero(Mod(n, two)) {
		return false
	}
	limit := Sqrt(n)
	for d := FromInt32(3); LessEqual(d, limit); d = AddI32(d, 2) {
		if IsZero(Mod(n, d)) {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest odd prime >= n, bumping an even start to
// odd and then stepping forward by 2. For any n <= 2 the result is 3.
func NextPrime(n *BigInt) *BigInt {
	candidate := Copy(n)
	if IsZero(Mod(candidate, two)) {
		candidate = AddI32(candidate, 1)
	}
	for !IsPrime(candidate, 0) {
		candidate = AddI32(candidate, 2)
	}
	return candidate
}
