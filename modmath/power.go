package modmath

// Power computes x^k mod q using binary (square-and-multiply)
// exponentiation. Any k is accepted, including k = 0 which returns 1.
// q must be nonzero.
func Power(x, k, q uint64) (y uint64) {

	if q == 0 {
		panic("modmath: zero modulus")
	}

	brc := GenBRedConstant(q)

	y = 1
	for i := k; i > 0; i >>= 1 {
		if i&1 == 1 {
			y = BRed(y, x, q, brc)
		}
		x = BRed(x, x, q, brc)
	}

	return
}

// PowerBRed is identical to Power but reuses precomputed Barrett constants,
// for callers evaluating many exponentiations with the same modulus.
func PowerBRed(x, k, q uint64, brc [2]uint64) (y uint64) {
	y = 1
	for i := k; i > 0; i >>= 1 {
		if i&1 == 1 {
			y = BRed(y, x, q, brc)
		}
		x = BRed(x, x, q, brc)
	}
	return
}
