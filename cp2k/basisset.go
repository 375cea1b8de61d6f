package cp2k

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	basis "github.com/rmera/gobasis"
)

//A block starts with a line holding a 1-3 letter element symbol followed by
//at least one identifier. Everything until the next such line (or EOF)
//belongs to the block.
var headerLine = regexp.MustCompile(`^\s*[a-zA-Z]{1,3}\s+\S+`)

//nextBlock consumes one block worth of lines from the cursor. Returns
//io.EOF when the input is exhausted.
func nextBlock(c *basis.Cursor) ([]string, error) {
	first, ok := c.Next()
	if !ok {
		return nil, io.EOF
	}
	if !headerLine.MatchString(first) {
		return nil, Error{message: WrongHeader, line: c.Line()}
	}
	block := []string{strings.TrimSpace(first)}
	for {
		line, ok := c.Peek()
		if !ok || headerLine.MatchString(line) {
			break
		}
		c.Next()
		block = append(block, strings.TrimSpace(line))
	}
	return block, nil
}

func parseInts(fields []string) ([]int, error) {
	ret := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		ret[i] = n
	}
	return ret, nil
}

func parseFloats(fields []string) ([]float64, error) {
	ret := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

// BasisSetReader yields the basis sets of a CP2K basis-set file one at a
// time, in a single forward pass over the input.
type BasisSetReader struct {
	c *basis.Cursor
}

// NewBasisSetReader prepares a reader over r.
func NewBasisSetReader(r io.Reader) (*BasisSetReader, error) {
	c, err := basis.NewCursor(r)
	if err != nil {
		return nil, err
	}
	return &BasisSetReader{c: c}, nil
}

// Next returns the next basis set in the file. It returns io.EOF, and a nil
// basis set, after the last one.
func (r *BasisSetReader) Next() (*basis.BasisSet, error) {
	lines, err := nextBlock(r.c)
	if err != nil {
		return nil, err
	}
	b, err := ParseBasisSet(lines)
	if err != nil {
		return nil, errDecorate(err, "Next")
	}
	return b, nil
}

// ReadBasisSets parses all basis sets in r. A malformed block aborts the
// whole read; there is no partial recovery within a block.
func ReadBasisSets(r io.Reader) ([]*basis.BasisSet, error) {
	br, err := NewBasisSetReader(r)
	if err != nil {
		return nil, err
	}
	var sets []*basis.BasisSet
	for {
		b, err := br.Next()
		if err == io.EOF {
			return sets, nil
		}
		if err != nil {
			return nil, errDecorate(err, "ReadBasisSets")
		}
		sets = append(sets, b)
	}
}

// ParseBasisSet parses a single basis-set block given as stripped lines:
// the header line with element and identifiers, the block count, and then
// for each block its quantum-number header (n lmin lmax nexp
// nshell(lmin)...nshell(lmax)) followed by nexp exponent/coefficient rows.
func ParseBasisSet(lines []string) (*basis.BasisSet, error) {
	if len(lines) < 2 {
		return nil, Error{message: PrematureEOF}
	}
	tokens := strings.Fields(lines[0])
	if len(tokens) < 2 {
		return nil, Error{message: WrongHeader}
	}
	element := tokens[0]
	name, aliases, tags := basis.DeriveNames(tokens[1:])
	id := element + " " + name
	nblocks, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil {
		return nil, Error{message: WrongNumber + ": block count: " + err.Error(), block: id}
	}
	b := &basis.BasisSet{
		Element: element,
		Name:    name,
		Aliases: aliases,
		Tags:    tags,
		NEl:     basis.ValenceElectrons(tags, element),
	}
	nline := 2
	for i := 0; i < nblocks; i++ {
		if nline >= len(lines) {
			return nil, Error{message: PrematureEOF, block: id}
		}
		qn, err := parseInts(strings.Fields(lines[nline]))
		if err != nil {
			return nil, Error{message: WrongNumber + ": block " + strconv.Itoa(i) + " header: " + err.Error(), block: id}
		}
		if len(qn) < 5 {
			return nil, Error{message: fmt.Sprintf("%s: block %d header has %d fields, want at least 5", WrongHeader, i, len(qn)), block: id}
		}
		n, lmin, lmax, nexp := qn[0], qn[1], qn[2], qn[3]
		counts := qn[4:]
		if len(counts) != lmax-lmin+1 {
			return nil, Error{message: fmt.Sprintf("%s: block %d: %d shell counts for l=%d..%d", WrongCounts, i, len(counts), lmin, lmax), block: id}
		}
		nline++
		if nline+nexp > len(lines) {
			return nil, Error{message: PrematureEOF, block: id}
		}
		block := &basis.Block{N: n}
		width := 1
		for l := lmin; l <= lmax; l++ {
			block.L = append(block.L, basis.Shell{L: l, N: counts[l-lmin]})
			width += counts[l-lmin]
		}
		for j := 0; j < nexp; j++ {
			row, err := parseFloats(strings.Fields(lines[nline+j]))
			if err != nil {
				return nil, Error{message: WrongNumber + ": " + err.Error(), block: id}
			}
			if len(row) != width {
				return nil, Error{message: fmt.Sprintf("%s: block %d row %d has %d values, want %d", WrongCounts, i, j, len(row), width), block: id}
			}
			block.Coefficients = append(block.Coefficients, row)
		}
		nline += nexp
		b.Blocks = append(b.Blocks, block)
	}
	if nline != len(lines) {
		return nil, Error{message: UnknownFormat + ": trailing data after last block", block: id}
	}
	return b, nil
}

// WriteBasisSet writes the basis set to w in CP2K format, preceded by a
// #-comment line. Blocks are written exactly as stored; merging contiguous
// shells with identical exponents, when wanted, is the caller's job.
//
// An optional pair of fmt verbs overrides the numeric formats, the first
// for the exponents and the second for the coefficients; the defaults are
// "%18.12f" and "% 14.12f".
func WriteBasisSet(w io.Writer, b *basis.BasisSet, comment string, fmts ...string) error {
	if err := b.Validate(); err != nil {
		return errDecorate(err, "WriteBasisSet")
	}
	efmt, cfmt := "%18.12f", "% 14.12f"
	if len(fmts) > 0 && fmts[0] != "" {
		efmt = fmts[0]
	}
	if len(fmts) > 1 && fmts[1] != "" {
		cfmt = fmts[1]
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", comment)
	fmt.Fprintf(bw, "%s %s\n%d\n", b.Element, b.Name, len(b.Blocks))
	for _, block := range b.Blocks {
		fmt.Fprintf(bw, "%d %d %d %d", block.N, block.L[0].L, block.L[len(block.L)-1].L, len(block.Coefficients))
		for _, s := range block.L {
			fmt.Fprintf(bw, " %d", s.N)
		}
		fmt.Fprintln(bw)
		for _, row := range block.Coefficients {
			fmt.Fprintf(bw, efmt, row[0])
			for _, c := range row[1:] {
				fmt.Fprintf(bw, " "+cfmt, c)
			}
			fmt.Fprintln(bw)
		}
	}
	return bw.Flush()
}
