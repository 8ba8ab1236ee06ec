package modmath

import (
	"errors"
	"fmt"
)

// ErrNotInvertible is returned by Inverse when its argument shares a factor
// with the modulus. Callers rely on this to validate user-supplied
// parameters, so it is an expected outcome rather than an internal fault.
var ErrNotInvertible = errors.New("not invertible")

// bezoutState holds the two rows of the extended Euclidean algorithm.
// At every iteration r1 = n*u1 + q*v1 and r2 = n*u2 + q*v2.
type bezoutState struct {
	r1, u1, v1 int64
	r2, u2, v2 int64
}

// extendedGCD runs the extended Euclidean algorithm on (n, q) and returns
// the final state, whose r1 field holds gcd(n, q). When visit is non-nil it
// is called with the state at the top of every iteration, which lets the
// Bezout invariant be checked step by step.
// n and q must fit in an int64.
func extendedGCD(n, q uint64, visit func(bezoutState)) bezoutState {

	s := bezoutState{
		r1: int64(n), u1: 1, v1: 0,
		r2: int64(q), u2: 0, v2: 1,
	}

	for s.r2 > 0 {

		if visit != nil {
			visit(s)
		}

		g := s.r1 / s.r2

		s.r1, s.r2 = s.r2, s.r1-g*s.r2
		s.u1, s.u2 = s.u2, s.u1-g*s.u2
		s.v1, s.v2 = s.v2, s.v1-g*s.v2
	}

	return s
}

// Inverse computes the inverse of n modulo q using the extended Euclidean
// algorithm. The result is normalized into [0, q). It returns
// ErrNotInvertible when gcd(n, q) != 1.
// n and q must be below 2^63; q must be nonzero.
func Inverse(n, q uint64) (uint64, error) {

	if q == 0 {
		panic("modmath: zero modulus")
	}

	s := extendedGCD(n, q, nil)

	// s.r1 is gcd(n, q) = n*u1 + q*v1
	if s.r1 != 1 {
		return 0, fmt.Errorf("%d is %w modulo %d: gcd = %d", n, ErrNotInvertible, q, s.r1)
	}

	u := s.u1 % int64(q)
	if u < 0 {
		u += int64(q)
	}

	return uint64(u), nil
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
