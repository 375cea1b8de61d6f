package cp2k

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	basis "github.com/rmera/gobasis"
)

// PseudoReader yields the GTH pseudopotentials of a CP2K GTH_POTENTIALS
// style file one at a time, in a single forward pass.
type PseudoReader struct {
	c *basis.Cursor
}

// NewPseudoReader prepares a reader over r.
func NewPseudoReader(r io.Reader) (*PseudoReader, error) {
	c, err := basis.NewCursor(r)
	if err != nil {
		return nil, err
	}
	return &PseudoReader{c: c}, nil
}

// Next returns the next pseudopotential in the file, or io.EOF after the
// last one.
func (r *PseudoReader) Next() (*basis.GTHPseudopotential, error) {
	lines, err := nextBlock(r.c)
	if err != nil {
		return nil, err
	}
	p, err := ParsePseudo(lines)
	if err != nil {
		return nil, errDecorate(err, "Next")
	}
	return p, nil
}

// ReadPseudos parses all pseudopotentials in r.
func ReadPseudos(r io.Reader) ([]*basis.GTHPseudopotential, error) {
	pr, err := NewPseudoReader(r)
	if err != nil {
		return nil, err
	}
	var pseudos []*basis.GTHPseudopotential
	for {
		p, err := pr.Next()
		if err == io.EOF {
			return pseudos, nil
		}
		if err != nil {
			return nil, errDecorate(err, "ReadPseudos")
		}
		pseudos = append(pseudos, p)
	}
}

// ParsePseudo parses a single GTH pseudopotential block given as stripped
// lines: header, electron configuration, local part, projector count, then
// the projector blocks. The upper-triangular projector coefficients may
// continue over several lines; the parser keeps consuming until the
// triangle is complete, and complains if a block supplies too many or too
// few values. Blocks carrying non-linear core corrections are rejected as
// unsupported rather than partially parsed.
func ParsePseudo(lines []string) (*basis.GTHPseudopotential, error) {
	if len(lines) < 4 {
		return nil, Error{message: PrematureEOF}
	}
	tokens := strings.Fields(lines[0])
	if len(tokens) < 2 {
		return nil, Error{message: WrongHeader}
	}
	element := tokens[0]
	name, aliases, tags := basis.DeriveNames(tokens[1:])
	id := element + " " + name
	for _, line := range lines[1:] {
		for _, f := range strings.Fields(line) {
			if strings.EqualFold(f, "NLCC") {
				return nil, Error{message: Unsupported + ": NLCC pseudopotential", block: id}
			}
		}
	}
	nel, err := parseInts(strings.Fields(lines[1]))
	if err != nil {
		return nil, Error{message: WrongNumber + ": electron configuration: " + err.Error(), block: id}
	}
	loc := strings.Fields(lines[2])
	if len(loc) < 2 {
		return nil, Error{message: WrongHeader + ": local part", block: id}
	}
	rloc, err := strconv.ParseFloat(loc[0], 64)
	if err != nil {
		return nil, Error{message: WrongNumber + ": local radius: " + err.Error(), block: id}
	}
	nexp, err := strconv.Atoi(loc[1])
	if err != nil {
		return nil, Error{message: WrongNumber + ": local function count: " + err.Error(), block: id}
	}
	cloc, err := parseFloats(loc[2:])
	if err != nil {
		return nil, Error{message: WrongNumber + ": local coefficients: " + err.Error(), block: id}
	}
	if nexp != len(cloc) {
		return nil, Error{message: fmt.Sprintf("%s: %d local coefficients declared, %d given", WrongCounts, nexp, len(cloc)), block: id}
	}
	nprj, err := strconv.Atoi(strings.TrimSpace(lines[3]))
	if err != nil {
		return nil, Error{message: WrongNumber + ": projector count: " + err.Error(), block: id}
	}
	p := &basis.GTHPseudopotential{
		Element: element,
		Name:    name,
		Aliases: aliases,
		Tags:    tags,
		Version: 1,
		NEl:     nel,
		Local:   basis.LocalPart{R: rloc, Coefficients: cloc},
	}
	nline := 4
	for i := 0; i < nprj; i++ {
		if nline >= len(lines) {
			return nil, Error{message: PrematureEOF + ": projector " + strconv.Itoa(i), block: id}
		}
		fields := strings.Fields(lines[nline])
		nline++
		if len(fields) < 2 {
			return nil, Error{message: WrongHeader + ": projector " + strconv.Itoa(i), block: id}
		}
		r, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, Error{message: WrongNumber + ": projector radius: " + err.Error(), block: id}
		}
		np, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, Error{message: WrongNumber + ": projector size: " + err.Error(), block: id}
		}
		need := np * (np + 1) / 2
		coeffs, err := parseFloats(fields[2:])
		if err != nil {
			return nil, Error{message: WrongNumber + ": projector coefficients: " + err.Error(), block: id}
		}
		//the upper triangle may continue over the next lines
		for len(coeffs) < need {
			if nline >= len(lines) {
				return nil, Error{message: PrematureEOF + ": projector " + strconv.Itoa(i), block: id}
			}
			more, err := parseFloats(strings.Fields(lines[nline]))
			if err != nil {
				return nil, Error{message: WrongNumber + ": projector coefficients: " + err.Error(), block: id}
			}
			nline++
			coeffs = append(coeffs, more...)
		}
		if len(coeffs) > need {
			return nil, Error{message: fmt.Sprintf("%s: projector %d has %d coefficients for a %dx%d triangle", UnknownFormat, i, len(coeffs), np, np), block: id}
		}
		p.NonLocal = append(p.NonLocal, &basis.Projector{R: r, NProj: np, Coefficients: coeffs})
	}
	if nline != len(lines) {
		return nil, Error{message: UnknownFormat + ": trailing data after last projector", block: id}
	}
	if err := p.Validate(); err != nil {
		return nil, errDecorate(err, "ParsePseudo")
	}
	return p, nil
}

// WritePseudo writes the pseudopotential to w in CP2K's GTH_POTENTIALS
// format. The upper triangle of each projector matrix is laid out as the
// conventional staircase: row 0 follows the radius and projector count,
// and each further row is indented to start under its diagonal element.
func WritePseudo(w io.Writer, p *basis.GTHPseudopotential) error {
	if err := p.Validate(); err != nil {
		return errDecorate(err, "WritePseudo")
	}
	bw := bufio.NewWriter(w)
	ids := p.Aliases
	if len(ids) == 0 {
		ids = []string{p.Name}
	}
	fmt.Fprintf(bw, "%s %s\n", p.Element, strings.Join(ids, " "))
	for _, n := range p.NEl {
		fmt.Fprintf(bw, "%5d", n)
	}
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "%15.8f%5d", p.Local.R, len(p.Local.Coefficients))
	for _, c := range p.Local.Coefficients {
		fmt.Fprintf(bw, "%15.8f", c)
	}
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "%5d\n", len(p.NonLocal))
	for _, prj := range p.NonLocal {
		fmt.Fprintf(bw, "%15.8f%5d", prj.R, prj.NProj)
		//row i of the triangle starts at offset i*nproj - i*(i-1)/2 and
		//holds nproj-i values
		for i := 0; i < prj.NProj; i++ {
			if i > 0 {
				fmt.Fprint(bw, strings.Repeat(" ", 20+15*i))
			}
			start := i*prj.NProj - i*(i-1)/2
			for j := 0; j < prj.NProj-i; j++ {
				fmt.Fprintf(bw, "%15.8f", prj.Coefficients[start+j])
			}
			fmt.Fprintln(bw)
		}
		if prj.NProj == 0 {
			fmt.Fprintln(bw)
		}
	}
	return bw.Flush()
}
