package ntt

import (
	"fmt"

	"github.com/latticetools/nttgen/modmath"
)

// PowerTable returns the geometric progression x0 * b^i mod q for
// i = 0..n-1, computed by the iterative recurrence a[i] = a[i-1] * b mod q.
// Every element is in [0, q). An n of zero is rejected since the table
// would be undefined.
func PowerTable(n, q, x0, b uint64) ([]uint64, error) {

	if n == 0 {
		return nil, fmt.Errorf("invalid table size: must be nonzero")
	}

	brc := modmath.GenBRedConstant(q)

	a := make([]uint64, n)

	x := modmath.BRedAdd(x0, q, brc)
	for i := range a {
		a[i] = x
		x = modmath.BRed(x, b, q, brc)
	}

	return a, nil
}

// ForwardPowers returns the table psi^i mod q for i = 0..n-1.
func (p Parameters) ForwardPowers() []uint64 {
	return p.mustPowerTable(1, p.Psi)
}

// InversePowers returns the table psi^(-i) mod q for i = 0..n-1.
func (p Parameters) InversePowers() []uint64 {
	return p.mustPowerTable(1, p.InvPsi)
}

// ScaledInversePowers returns the table psi^(-i) * n^(-1) mod q for
// i = 0..n-1, the constants applied by the last pass of an inverse
// transform.
func (p Parameters) ScaledInversePowers() []uint64 {
	return p.mustPowerTable(p.InvN, p.InvPsi)
}

func (p Parameters) mustPowerTable(x0, b uint64) []uint64 {
	a, err := PowerTable(p.N, p.Q, x0, b)
	if err != nil {
		// NewParameters guarantees N >= 2.
		panic(err)
	}
	return a
}
