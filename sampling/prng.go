// Package sampling provides deterministic pseudo-random byte generation,
// used by the test suites to derive reproducible probe values.
package sampling

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of pseudo-random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG is a structure storing the parameters used to deterministically
// generate a shared sequence of random bytes from a key, using the hash
// function blake2b. Identical keys produce identical streams.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}

// RandUint64 returns a uint64 drawn from the PRNG.
func RandUint64(prng PRNG) uint64 {
	b := make([]byte, 8)
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(b)
}
