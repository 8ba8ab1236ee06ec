package render

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Digest returns the blake3 digest of a named table over its canonical
// little-endian encoding. Tables are pure functions of their parameters,
// so regenerating one must reproduce the same digest; comparing digests is
// how that idempotency is checked without diffing full outputs.
func Digest(name string, values []uint64) [32]byte {

	hasher := blake3.New()
	hasher.Write([]byte(name))

	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], v)
		hasher.Write(buf[:])
	}

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}
