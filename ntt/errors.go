package ntt

import "errors"

// The errors below classify the ways a (q, n, psi) triple can fail
// validation. All of them are parameter errors: retrying cannot help, the
// caller has to pick different values.
var (
	// ErrModulusOutOfRange is returned when q is below 2 or at least 2^16-1.
	ErrModulusOutOfRange = errors.New("modulus out of range")

	// ErrSizeOutOfRange is returned when n is below 2 or at least 100000.
	ErrSizeOutOfRange = errors.New("size out of range")

	// ErrPsiOutOfRange is returned when psi is outside [2, q).
	ErrPsiOutOfRange = errors.New("psi out of range")

	// ErrInvalidRoot is returned when psi^n != -1 mod q.
	ErrInvalidRoot = errors.New("psi is not an n-th root of -1")

	// ErrNonPrimitiveRoot is returned when psi^2 has multiplicative order
	// less than n.
	ErrNonPrimitiveRoot = errors.New("psi^2 is not a primitive n-th root of unity")

	// ErrSizeNotInvertible is returned when gcd(n, q) != 1.
	ErrSizeNotInvertible = errors.New("size is not invertible modulo q")

	// ErrPsiNotInvertible is returned when gcd(psi, q) != 1.
	ErrPsiNotInvertible = errors.New("psi is not invertible modulo q")

	// ErrNotPowerOfTwo is returned by StageTable when n is not a power of
	// two, since the stage-doubling loop only terminates exactly at n for
	// powers of two.
	ErrNotPowerOfTwo = errors.New("size is not a power of two")

	// ErrNoRoot is returned by FindPsi when no element of order 2n exists
	// modulo q, that is when 2n does not divide q-1.
	ErrNoRoot = errors.New("no 2n-th root of unity modulo q")
)
