// Package ntt computes and validates the modular constants that drive a
// Number-Theoretic Transform: it proves that a candidate root satisfies the
// algebraic conditions the transform requires, derives the dependent
// inverses, and builds the precomputed twiddle tables consumed by iterative
// butterfly implementations.
package ntt

import (
	"fmt"

	"github.com/latticetools/nttgen/modmath"
)

const (
	// MaxModulus is the exclusive upper bound on the modulus. Keeping q
	// below 2^16 guarantees that products of two residues fit in 32 bits,
	// which is the headroom the downstream transform arithmetic assumes.
	MaxModulus = 1<<16 - 1

	// MaxSize is the exclusive upper bound on the transform size. The
	// primitivity check enumerates all exponents below n, so the bound also
	// caps the cost of validation.
	MaxSize = 100000
)

// Parameters holds a validated (q, n, psi) triple together with its derived
// constants. The zero value is not valid; use NewParameters.
type Parameters struct {
	// Q is the prime modulus.
	Q uint64

	// N is the transform size.
	N uint64

	// Psi is the 2n-th root of unity: psi^n = -1 mod q.
	Psi uint64

	// Phi is psi^2 mod q, the primitive n-th root of unity used by the
	// transform.
	Phi uint64

	// InvN is the inverse of N modulo Q.
	InvN uint64

	// InvPsi is the inverse of Psi modulo Q.
	InvPsi uint64
}

// NewParameters validates the triple (q, n, psi) and derives the dependent
// constants. The checks run in order and stop at the first failure so that
// a malformed psi is reported with the most specific reason:
//
//  1. bounds on q, n and psi
//  2. psi^n = -1 mod q
//  3. psi^i != 1 for all 0 < i < n (psi^2 is a primitive n-th root of unity)
//  4. n invertible modulo q
//  5. psi invertible modulo q
//
// Each failure wraps one of the sentinel errors of this package.
func NewParameters(q, n, psi uint64) (Parameters, error) {

	if q < 2 || q >= MaxModulus {
		return Parameters{}, fmt.Errorf("%w: %d must be in [2, %d)", ErrModulusOutOfRange, q, MaxModulus)
	}

	if n < 2 || n >= MaxSize {
		return Parameters{}, fmt.Errorf("%w: %d must be in [2, %d)", ErrSizeOutOfRange, n, MaxSize)
	}

	if psi < 2 || psi >= q {
		return Parameters{}, fmt.Errorf("%w: psi must be between 2 and %d", ErrPsiOutOfRange, q-1)
	}

	brc := modmath.GenBRedConstant(q)

	phi := modmath.BRed(psi, psi, q, brc)

	if x := modmath.PowerBRed(psi, n, q, brc); x != q-1 {
		return Parameters{}, fmt.Errorf("%w: %d^n = %d mod %d", ErrInvalidRoot, psi, x, q)
	}

	// Holds whenever psi^n = -1; a violation is a fault in the arithmetic
	// kernel, not a parameter error.
	if modmath.PowerBRed(phi, n, q, brc) != 1 {
		panic("ntt: phi^n != 1 despite psi^n = -1")
	}

	for i := uint64(1); i < n; i++ {
		if modmath.PowerBRed(psi, i, q, brc) == 1 {
			return Parameters{}, fmt.Errorf("%w: psi^2 = %d, (psi^2)^%d = 1", ErrNonPrimitiveRoot, phi, i)
		}
	}

	invN, err := modmath.Inverse(n, q)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %d modulo %d", ErrSizeNotInvertible, n, q)
	}

	invPsi, err := modmath.Inverse(psi, q)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %d modulo %d", ErrPsiNotInvertible, psi, q)
	}

	return Parameters{Q: q, N: n, Psi: psi, Phi: phi, InvN: invN, InvPsi: invPsi}, nil
}

// InvPhi returns the inverse of Phi modulo Q, that is psi^(-2).
func (p Parameters) InvPhi() uint64 {
	return p.InvPsi * p.InvPsi % p.Q
}

// Equal returns true if the receiver and the operand hold identical
// constants.
func (p Parameters) Equal(other Parameters) bool {
	return p == other
}

// String returns the human-readable parameter summary printed by the
// power-table generation tool.
func (p Parameters) String() string {
	return fmt.Sprintf("Parameters\nq = %d\nn = %d\npsi = %d\npsi^2 = %d\npsi^(-1) = %d\npsi^(-2) = %d\nn^(-1) = %d\n",
		p.Q, p.N, p.Psi, p.Phi, p.InvPsi, p.InvPhi(), p.InvN)
}

// StageString returns the parameter summary printed by the stage-table
// generation tool, which omits the psi inverses the stage table does not
// use.
func (p Parameters) StageString() string {
	return fmt.Sprintf("Parameters\nq = %d\nn = %d\npsi = %d\npsi^2 = %d\nn^(-1) = %d\n",
		p.Q, p.N, p.Psi, p.Phi, p.InvN)
}
