package modmath

import (
	"fmt"
	"math/big"
	"math/bits"
)

// IsPrime applies the Baillie-PSW test, which is 100% accurate for numbers
// below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// Factors returns the distinct prime factors of m in increasing order, by
// trial division. Intended for the small moduli handled by this package;
// callers factoring larger integers should use a dedicated factorization
// method.
func Factors(m uint64) (factors []uint64) {

	for d := uint64(2); d*d <= m; d++ {
		if m%d == 0 {
			factors = append(factors, d)
			for m%d == 0 {
				m /= d
			}
		}
	}

	if m > 1 {
		factors = append(factors, m)
	}

	return
}

// NextNTTPrime returns the next prime p > q with p = 1 mod NthRoot.
// The input q must itself be equal to 1 mod NthRoot.
func NextNTTPrime(q uint64, NthRoot uint64) (qNext uint64, err error) {

	qNext = q + NthRoot

	for !IsPrime(qNext) {

		qNext += NthRoot

		if bits.Len64(qNext) > 61 {
			return 0, fmt.Errorf("next NTT prime exceeds the maximum bit-size of 61 bits")
		}
	}

	return qNext, nil
}

// PreviousNTTPrime returns the previous prime p < q with p = 1 mod NthRoot.
// The input q must itself be equal to 1 mod NthRoot.
func PreviousNTTPrime(q uint64, NthRoot uint64) (qPrev uint64, err error) {

	if q < NthRoot {
		return 0, fmt.Errorf("previous NTT prime is smaller than NthRoot")
	}

	qPrev = q - NthRoot

	for !IsPrime(qPrev) {

		if qPrev < NthRoot {
			return 0, fmt.Errorf("previous NTT prime is smaller than NthRoot")
		}

		qPrev -= NthRoot
	}

	return qPrev, nil
}
