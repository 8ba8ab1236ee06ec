package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedPRNGIsDeterministic(t *testing.T) {

	prng1, err := NewKeyedPRNG([]byte("key"))
	require.NoError(t, err)

	prng2, err := NewKeyedPRNG([]byte("key"))
	require.NoError(t, err)

	for i := 0; i < 16; i++ {
		require.Equal(t, RandUint64(prng1), RandUint64(prng2))
	}
}

func TestKeyedPRNGReset(t *testing.T) {

	prng, err := NewKeyedPRNG([]byte("key"))
	require.NoError(t, err)

	first := RandUint64(prng)
	prng.Reset()
	require.Equal(t, first, RandUint64(prng))
}

func TestKeyedPRNGKeySeparation(t *testing.T) {

	prng1, err := NewKeyedPRNG([]byte("key 1"))
	require.NoError(t, err)

	prng2, err := NewKeyedPRNG([]byte("key 2"))
	require.NoError(t, err)

	require.NotEqual(t, RandUint64(prng1), RandUint64(prng2))
}
