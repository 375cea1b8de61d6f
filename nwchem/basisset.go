/*Package nwchem reads and writes basis sets in NWChem's library format:
groups of two-column exponent/contraction lines, each introduced by an
"element shell-letter" header. The format carries no principal quantum
numbers and no contraction grouping beyond the shell letter, so every
(element, shell) group maps to one single-shell block.*/
package nwchem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	basis "github.com/rmera/gobasis"
)

// ReadBasisSets parses all basis sets in r. Consecutive groups with the
// same element symbol are collected into one basis set; a group for a new
// element starts a new one. Wrapper lines ("basis ..." / "end") are
// tolerated and ignored.
func ReadBasisSets(r io.Reader) ([]*basis.BasisSet, error) {
	c, err := basis.NewCursor(r)
	if err != nil {
		return nil, err
	}
	var sets []*basis.BasisSet
	var cur *basis.BasisSet
	var block *basis.Block
	flushBlock := func() {
		if block != nil {
			cur.Blocks = append(cur.Blocks, block)
			block = nil
		}
	}
	for {
		line, ok := c.Next()
		if !ok {
			break
		}
		fields := strings.Fields(line)
		low := strings.ToLower(fields[0])
		if low == "basis" || low == "end" {
			continue
		}
		if exp, err := strconv.ParseFloat(fields[0], 64); err == nil {
			//a data row: exponent and contraction coefficient
			if block == nil {
				return nil, Error{message: WrongFormat + ": data row before any shell header", line: c.Line()}
			}
			if len(fields) != 2 {
				return nil, Error{message: fmt.Sprintf("%s: data row with %d fields, want 2", WrongFormat, len(fields)), block: cur.Element, line: c.Line()}
			}
			cont, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, Error{message: WrongFormat + ": " + err.Error(), block: cur.Element, line: c.Line()}
			}
			block.Coefficients = append(block.Coefficients, []float64{exp, cont})
			continue
		}
		//a shell header: element and orbital letter
		if len(fields) < 2 {
			return nil, Error{message: WrongFormat + ": shell header needs an element and an orbital letter", line: c.Line()}
		}
		l, err := basis.AngularMomentum(fields[1])
		if err != nil {
			return nil, Error{message: WrongFormat + ": " + err.Error(), block: fields[0], line: c.Line()}
		}
		flushBlock()
		if cur == nil || cur.Element != fields[0] {
			if cur != nil {
				sets = append(sets, cur)
			}
			cur = &basis.BasisSet{Element: fields[0]}
		}
		block = &basis.Block{L: []basis.Shell{{L: l, N: 1}}}
	}
	if cur != nil {
		flushBlock()
		sets = append(sets, cur)
	}
	return sets, nil
}

// WriteBasisSet writes the basis set to w in NWChem's format: one
// element/shell-letter header per contracted shell of each block, followed
// by the block's exponents paired with that shell's coefficient column.
func WriteBasisSet(w io.Writer, b *basis.BasisSet) error {
	if err := b.Validate(); err != nil {
		return errDecorate(err, "WriteBasisSet")
	}
	bw := bufio.NewWriter(w)
	for _, block := range b.Blocks {
		col := 1
		for _, s := range block.L {
			letter, err := basis.OrbitalLetter(s.L)
			if err != nil {
				return errDecorate(Error{message: WrongFormat + ": " + err.Error(), block: b.Element + " " + b.Name}, "WriteBasisSet")
			}
			for rep := 0; rep < s.N; rep++ {
				fmt.Fprintf(bw, "%s %s\n", b.Element, letter)
				for _, row := range block.Coefficients {
					fmt.Fprintf(bw, "%18.8f %17.8f\n", row[0], row[col])
				}
				col++
			}
		}
	}
	return bw.Flush()
}
