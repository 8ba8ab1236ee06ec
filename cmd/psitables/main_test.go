package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticetools/nttgen/ntt"
)

func runTool(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	stdout = new(bytes.Buffer)
	stderr = new(bytes.Buffer)
	err = run(append([]string{"psitables"}, args...), stdout, stderr)
	return
}

func TestRun(t *testing.T) {

	stdout, stderr, err := runTool(t, "7681", "8", "527")
	require.NoError(t, err)

	require.Equal(t, "Parameters\n"+
		"q = 7681\n"+
		"n = 8\n"+
		"psi = 527\n"+
		"psi^2 = 1213\n"+
		"psi^(-1) = 583\n"+
		"psi^(-2) = 1925\n"+
		"n^(-1) = 6721\n", stderr.String())

	out := stdout.String()
	require.Contains(t, out, "const int32_t psi_powers_ntt7681n8[8] = {")
	require.Contains(t, out, "const int32_t inv_psi_powers_ntt7681n8[8] = {")
	require.Contains(t, out, "const int32_t scaled_inv_psi_powers_ntt7681n8[8] = {")

	// psi^1 and psi^(-1) appear on the first table lines
	require.Contains(t, out, "      1,   527,")
	require.Contains(t, out, "      1,   583,")
}

func TestRunRejectsInvalidRoot(t *testing.T) {

	// 2^8 = 256 != -1 mod 7681
	stdout, _, err := runTool(t, "7681", "8", "2")
	require.ErrorIs(t, err, ntt.ErrInvalidRoot)
	require.Empty(t, stdout.String())
}

func TestRunRejectsLargeModulus(t *testing.T) {

	stdout, _, err := runTool(t, "70000", "8", "527")
	require.ErrorIs(t, err, ntt.ErrModulusOutOfRange)
	require.Empty(t, stdout.String())
}

func TestRunRejectsMalformedArguments(t *testing.T) {

	for _, args := range [][]string{
		{},
		{"7681"},
		{"7681", "8"},
		{"7681", "8", "527", "extra"},
		{"abc", "8", "527"},
		{"7681", "-8", "527"},
		{"7681", "8", "5.27"},
	} {
		stdout, _, err := runTool(t, args...)
		require.Error(t, err, strings.Join(args, " "))
		require.Empty(t, stdout.String())
	}
}
