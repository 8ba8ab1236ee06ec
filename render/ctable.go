// Package render turns computed constant tables into source text: C
// constant arrays with a fixed number of entries per line, named so that
// tables for different (n, q) pairs can be concatenated into a single
// generated file without collisions.
package render

import (
	"bufio"
	"fmt"
	"io"
)

// entriesPerLine is the fixed layout width of the generated arrays.
const entriesPerLine = 8

// PowerTableName returns the identifier <kind><q>n<n> used for the flat
// power tables, e.g. psi_powers_ntt7681n8.
func PowerTableName(kind string, q, n uint64) string {
	return fmt.Sprintf("%s%dn%d", kind, q, n)
}

// StageTableName returns the identifier <kind><n>_<q> used for the
// stage-structured tables, e.g. shoup_ntt8_7681.
func StageTableName(kind string, n, q uint64) string {
	return fmt.Sprintf("%s%d_%d", kind, n, q)
}

// WriteTable renders values as a C constant array named name, eight
// entries per line. The layout is fixed: generated output for identical
// inputs is byte-for-byte identical.
func WriteTable(w io.Writer, name string, values []uint64) error {

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\nconst int32_t %s[%d] = {\n", name, len(values))

	k := 0
	for _, v := range values {
		if k == 0 {
			fmt.Fprintf(bw, "   ")
		}
		fmt.Fprintf(bw, " %5d,", v)
		k++
		if k == entriesPerLine {
			fmt.Fprintf(bw, "\n")
			k = 0
		}
	}
	if k > 0 {
		fmt.Fprintf(bw, "\n")
	}
	fmt.Fprintf(bw, "};\n\n")

	return bw.Flush()
}
