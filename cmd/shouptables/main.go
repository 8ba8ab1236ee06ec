// shouptables generates the stage-structured (Shoup-style) twiddle table
// used by iterative Cooley-Tukey butterfly passes: a flat table of length n
// where positions [t, 2t) hold the powers of phi^(n/2t) for each stage
// size t = 1, 2, 4, ..., n/2.
//
// Usage: shouptables <modulus> <size> <psi>
//
// The size must be a power of two. Diagnostics and the parameter summary
// go to stderr, the generated table to stdout.
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

	table, err := ntt.StageTable(p)
	if err != nil {
		return err
	}

	fmt.Fprint(stderr, p.StageString())

	return render.WriteTable(stdout, render.StageTableName("shoup_ntt", n, q), table)
}
