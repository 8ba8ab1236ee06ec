package ntt

import (
	"fmt"

	"github.com/latticetools/nttgen/modmath"
)

// PrimitiveRoot returns the smallest primitive root of the prime q, found
// by ruling candidates out against the prime factors of q-1: g is primitive
// iff g^((q-1)/f) != 1 for every factor f.
func PrimitiveRoot(q uint64) (uint64, error) {

	if !modmath.IsPrime(q) {
		return 0, fmt.Errorf("invalid modulus: %d is not prime", q)
	}

	factors := modmath.Factors(q - 1)

	brc := modmath.GenBRedConstant(q)

	for g := uint64(2); g < q; g++ {

		primitive := true
		for _, f := range factors {
			if modmath.PowerBRed(g, (q-1)/f, q, brc) == 1 {
				primitive = false
				break
			}
		}

		if primitive {
			return g, nil
		}
	}

	// Unreachable for a prime q, which always has a primitive root.
	return 0, fmt.Errorf("no primitive root modulo %d", q)
}

// FindPsi returns the smallest psi accepted by NewParameters for the pair
// (q, n), that is the smallest element of multiplicative order exactly 2n
// modulo the prime q. Such elements exist iff 2n divides q-1; otherwise
// ErrNoRoot is returned.
func FindPsi(q, n uint64) (uint64, error) {

	order := 2 * n

	if (q-1)%order != 0 {
		return 0, fmt.Errorf("%w: %d does not divide %d-1", ErrNoRoot, order, q)
	}

	g, err := PrimitiveRoot(q)
	if err != nil {
		return 0, err
	}

	brc := modmath.GenBRedConstant(q)

	// base generates the cyclic subgroup of order 2n; its powers base^k
	// with gcd(k, 2n) = 1 enumerate every element of order exactly 2n.
	base := modmath.PowerBRed(g, (q-1)/order, q, brc)

	var best uint64
	x := uint64(1)
	for k := uint64(0); k < order; k++ {
		if k > 0 && modmath.GCD(k, order) == 1 && x >= 2 && (best == 0 || x < best) {
			best = x
		}
		x = modmath.BRed(x, base, q, brc)
	}

	if best == 0 {
		return 0, fmt.Errorf("%w: no candidate in [2, %d)", ErrNoRoot, q)
	}

	return best, nil
}
