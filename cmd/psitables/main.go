// psitables generates the three tables of powers of psi consumed by the
// forward and inverse NTT: psi^i mod q, psi^(-i) mod q, and
// psi^(-i) * n^(-1) mod q, for i = 0 to n-1.
//
// Usage: psitables <modulus> <size> <psi>
//
// Diagnostics and the parameter summary go to stderr, the generated
// constant tables to stdout.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/latticetools/nttgen/ntt"
	"github.com/latticetools/nttgen/render"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {

	if len(args) != 4 {
		return fmt.Errorf("usage: %s <modulus> <size> <psi>", filepath.Base(args[0]))
	}

	q, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid modulus %q: must be a positive integer", args[1])
	}

	n, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid size %q: must be a positive integer", args[2])
	}

	psi, err := strconv.ParseUint(args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid psi %q: must be a positive integer", args[3])
	}

	p, err := ntt.NewParameters(q, n, psi)
	if err != nil {
		return err
	}

	forward := p.ForwardPowers()
	inverse := p.InversePowers()
	scaled := p.ScaledInversePowers()

	fmt.Fprint(stderr, p.String())

	if err := render.WriteTable(stdout, render.PowerTableName("psi_powers_ntt", q, n), forward); err != nil {
		return err
	}
	if err := render.WriteTable(stdout, render.PowerTableName("inv_psi_powers_ntt", q, n), inverse); err != nil {
		return err
	}
	return render.WriteTable(stdout, render.PowerTableName("scaled_inv_psi_powers_ntt", q, n), scaled)
}
