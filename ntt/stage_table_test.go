package ntt

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/latticetools/nttgen/modmath"
	"github.com/latticetools/nttgen/utils"
)

func powerOfTwoParameters(t *testing.T) (params []Parameters) {
	for _, p := range testParameters(t) {
		if p.N&(p.N-1) == 0 {
			params = append(params, p)
		}
	}
	require.NotEmpty(t, params)
	return
}

// TestStageTableIndexCoverage checks the layout contract: the builder
// writes exactly the indices 1 through n-1, each exactly once, and index 0
// stays 0.
func TestStageTableIndexCoverage(t *testing.T) {

	for _, p := range powerOfTwoParameters(t) {
		t.Run(fmt.Sprintf("q=%d/n=%d/psi=%d", p.Q, p.N, p.Psi), func(t *testing.T) {

			counts := map[uint64]int{}
			table, err := stageTable(p, func(i uint64) { counts[i]++ })
			require.NoError(t, err)

			require.Equal(t, uint64(0), table[0])

			written := utils.GetSortedKeys(counts)
			require.Len(t, written, int(p.N)-1)

			for k, i := range written {
				require.Equal(t, uint64(k+1), i)
				require.Equal(t, 1, counts[i])
			}
		})
	}
}

// TestStageTableValues cross-checks every segment against direct
// exponentiation: position t+j must hold (phi^(n/2t))^j.
func TestStageTableValues(t *testing.T) {

	for _, p := range powerOfTwoParameters(t) {
		t.Run(fmt.Sprintf("q=%d/n=%d/psi=%d", p.Q, p.N, p.Psi), func(t *testing.T) {

			table, err := StageTable(p)
			require.NoError(t, err)
			require.Len(t, table, int(p.N))
			require.Less(t, utils.MaxSlice(table), p.Q)

			for tt := uint64(1); tt < p.N; tt <<= 1 {
				require.Equal(t, uint64(1), table[tt])
				for j := uint64(0); j < tt; j++ {
					require.Equal(t, modmath.Power(p.Phi, p.N/(2*tt)*j, p.Q), table[tt+j])
				}
			}
		})
	}
}

func TestStageTableGolden(t *testing.T) {

	p, err := NewParameters(7681, 8, 527)
	require.NoError(t, err)

	table, err := StageTable(p)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]uint64{0, 1, 1, 4298, 1, 1213, 4298, 5756}, table))

	p, err = NewParameters(7681, 4, 1925)
	require.NoError(t, err)

	table, err = StageTable(p)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([]uint64{0, 1, 1, 3383}, table))
}

func TestStageTableRejectsNonPowerOfTwo(t *testing.T) {

	// 2 has order 12 modulo 13, so (13, 6, 2) passes validation but 6 is
	// not a valid stage-doubling size.
	p, err := NewParameters(13, 6, 2)
	require.NoError(t, err)

	_, err = StageTable(p)
	require.ErrorIs(t, err, ErrNotPowerOfTwo)
}

func TestStageTableDeterministic(t *testing.T) {

	p, err := NewParameters(12289, 16, 1212)
	require.NoError(t, err)

	first, err := StageTable(p)
	require.NoError(t, err)

	second, err := StageTable(p)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(first, second))
}
