package ntt

import (
	"fmt"

	"github.com/latticetools/nttgen/modmath"
)

// StageTable builds the flat twiddle table consumed by an iterative
// Cooley-Tukey butterfly network. The table has length n and is logically
// partitioned into log2(n) contiguous segments: for each stage size
// t = 1, 2, 4, ..., n/2, positions [t, 2t) hold the powers
// (phi^(n/2t))^j for j = 0..t-1. Index 0 is reserved and always holds 0.
//
// The butterfly passes index into this table with the identical (t, j)
// scheme, so the layout is part of the contract: indices 1 through n-1 are
// each written exactly once, with the write cursor equal to t+j at every
// step.
//
// n must be a power of two; other sizes are rejected with ErrNotPowerOfTwo.
func StageTable(p Parameters) ([]uint64, error) {
	return stageTable(p, nil)
}

// stageTable additionally reports every written index to trace when it is
// non-nil, which lets tests verify the index coverage of the layout.
func stageTable(p Parameters, trace func(i uint64)) ([]uint64, error) {

	n, q, phi := p.N, p.Q, p.Phi

	if n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	brc := modmath.GenBRedConstant(q)

	a := make([]uint64, n)

	a[0] = 0 // reserved, carries no meaning

	i := uint64(1)
	for t := uint64(1); t < n; t <<= 1 {

		x := uint64(1)
		y := modmath.PowerBRed(phi, n/(2*t), q, brc)

		for j := uint64(0); j < t; j++ {

			// The transform indexes the segment as t+j; a cursor out of
			// step would silently corrupt the butterfly passes.
			if i != t+j {
				panic("ntt: stage table cursor out of step")
			}

			if trace != nil {
				trace(i)
			}

			a[i] = x
			i++
			x = modmath.BRed(x, y, q, brc)
		}
	}

	return a, nil
}
