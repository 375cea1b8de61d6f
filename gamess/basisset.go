package gamess

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	basis "github.com/rmera/gobasis"
)

// ReadBasisSet parses one element's basis set from r, in the GAMESS layout:
// an element line, then for each contracted shell a "LETTER nexp" header
// followed by nexp numbered "i exponent coefficient" rows. Every shell
// becomes its own single-shell block, since the format encodes no grouping.
func ReadBasisSet(r io.Reader) (*basis.BasisSet, error) {
	c, err := basis.NewCursor(r)
	if err != nil {
		return nil, err
	}
	first, ok := c.Next()
	if !ok {
		return nil, Error{message: PrematureEOF}
	}
	element := strings.Fields(first)[0]
	b := &basis.BasisSet{Element: element}
	for {
		head, ok := c.Next()
		if !ok {
			break
		}
		fields := strings.Fields(head)
		if len(fields) < 2 {
			return nil, Error{message: WrongHeader + ": shell header needs a letter and a count", block: element, line: c.Line()}
		}
		l, err := basis.AngularMomentum(fields[0])
		if err != nil {
			return nil, Error{message: WrongHeader + ": " + err.Error(), block: element, line: c.Line()}
		}
		nexp, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, Error{message: WrongNumber + ": exponent count: " + err.Error(), block: element, line: c.Line()}
		}
		block := &basis.Block{L: []basis.Shell{{L: l, N: 1}}}
		for j := 0; j < nexp; j++ {
			line, ok := c.Next()
			if !ok {
				return nil, Error{message: PrematureEOF + ": inside a shell", block: element}
			}
			row := strings.Fields(line)
			if len(row) != 3 {
				return nil, Error{message: fmt.Sprintf("%s: data row with %d fields, want 3", WrongHeader, len(row)), block: element, line: c.Line()}
			}
			exp, err1 := strconv.ParseFloat(row[1], 64)
			cont, err2 := strconv.ParseFloat(row[2], 64)
			if err1 != nil || err2 != nil {
				return nil, Error{message: WrongNumber + ": data row", block: element, line: c.Line()}
			}
			block.Coefficients = append(block.Coefficients, []float64{exp, cont})
		}
		b.Blocks = append(b.Blocks, block)
	}
	if err := b.Validate(); err != nil {
		return nil, errDecorate(err, "ReadBasisSet")
	}
	return b, nil
}

// WriteBasisSet writes the basis set to w in GAMESS format: one uppercase
// shell-letter header per contracted shell, with 1-based numbered rows.
func WriteBasisSet(w io.Writer, b *basis.BasisSet) error {
	if err := b.Validate(); err != nil {
		return errDecorate(err, "WriteBasisSet")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", b.Element)
	for _, block := range b.Blocks {
		col := 1
		for _, s := range block.L {
			letter, err := basis.OrbitalLetter(s.L)
			if err != nil {
				return errDecorate(Error{message: WrongHeader + ": " + err.Error(), block: b.Element + " " + b.Name}, "WriteBasisSet")
			}
			for rep := 0; rep < s.N; rep++ {
				fmt.Fprintf(bw, "%s %d\n", strings.ToUpper(letter), len(block.Coefficients))
				for i, row := range block.Coefficients {
					fmt.Fprintf(bw, "%3d %16.8f %16.8f\n", i+1, row[0], row[col])
				}
				col++
			}
		}
	}
	return bw.Flush()
}
