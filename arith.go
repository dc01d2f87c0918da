package bignum

// Elementary operations on limbs and limb vectors. Ported in spirit from
// the standard library's math/big arith.go (addWW_g, subWW_g, mulWW_g,
// mulAddWWW_g and their vector counterparts), generalized from a single
// platform word to the build-tag-selected Word/dword pair.

// addWW returns z1:z0 = x + y + c, with c in {0, 1}.
func addWW(x, y, c Word) (z1, z0 Word) {
	s := dword(x) + dword(y) + dword(c)
	return Word(s >> wordBits), Word(s)
}

// subWW returns z1:z0 = x - y - c, with c in {0, 1}; z1 is 1 on borrow.
func subWW(x, y, c Word) (z1, z0 Word) {
	yc := dword(y) + dword(c)
	d := dword(x) - yc
	if d > dword(x) {
		z1 = 1
	}
	return z1, Word(d)
}

// mulWW returns z1:z0 = x * y.
func mulWW(x, y Word) (z1, z0 Word) {
	p := dword(x) * dword(y)
	return Word(p >> wordBits), Word(p)
}

// mulAddWWW returns z1:z0 = x*y + c.
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	p := dword(x)*dword(y) + dword(c)
	return Word(p >> wordBits), Word(p)
}

// addVV sets z = x + y for equal-length vectors and returns the carry out.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = addWW(x[i], y[i], c)
	}
	return c
}

// subVV sets z = x - y for equal-length vectors and returns the borrow out.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = subWW(x[i], y[i], c)
	}
	return c
}

// addVW sets z = x + y, where y is a single limb added to the low end.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = addWW(x[i], c, 0)
	}
	return c
}

// subVW sets z = x - y, where y is a single limb subtracted from the low end.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = subWW(x[i], c, 0)
	}
	return c
}

// shlVU sets z = x << s (0 < s < wordBits) and returns the bits shifted out.
// Walks low to high, carrying each limb's spilled high bits forward into
// the next one rather than pre-reading the limb above.
func shlVU(z, x []Word, s uint) (c Word) {
	n := len(z)
	if n == 0 {
		return 0
	}
	inv := wordBits - s
	var carry Word
	for i := 0; i < n; i++ {
		z[i] = x[i]<<s | carry
		carry = x[i] >> inv
	}
	return carry
}

// shrVU sets z = x >> s (0 < s < wordBits) and returns the bits shifted out
// (left-justified in the returned word). Walks high to low, carrying each
// limb's spilled low bits down into the one below it.
func shrVU(z, x []Word, s uint) (c Word) {
	n := len(z)
	if n == 0 {
		return 0
	}
	inv := wordBits - s
	var carry Word
	for i := n - 1; i >= 0; i-- {
		z[i] = x[i]>>s | carry
		carry = x[i] << inv
	}
	return carry
}

// mulAddVWW sets z = x*y + r (r a single limb added to the low end) and
// returns the carry out of the top limb.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return c
}

// addMulVVW sets z += x*y and returns the carry out of the top limb. Used
// by schoolbook multiplication to accumulate one partial product row.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		var cc Word
		cc, z[i] = addWW(z0, c, 0)
		c = z1 + cc
	}
	return c
}

// bitLenWord returns the number of bits required to represent x, the
// position of its highest set bit plus one. bitLenWord(0) == 0.
func bitLenWord(x Word) (n int) {
	for x != 0 {
		x >>= 1
		n++
	}
	return n
}
