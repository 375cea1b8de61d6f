package gaussian

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	basis "github.com/rmera/gobasis"
)

// ReadECP parses one effective core potential in Gaussian layout from r:
// an "element 0" line, a "name lmax core_electrons" line, then lmax+1
// channel groups, each holding a label line, a term count line, and
// "polynom exponent prefactor" term lines. Channels arrive local-first on
// disk and are returned in canonical order (l=0..lmax-1, local last).
func ReadECP(r io.Reader) (*basis.ECPPseudopotential, error) {
	c, err := basis.NewCursor(r)
	if err != nil {
		return nil, err
	}
	first, ok := c.Next()
	if !ok {
		return nil, Error{message: PrematureEOF}
	}
	element := strings.Fields(first)[0]
	z, err := basis.AtomicNumber(element)
	if err != nil {
		return nil, Error{message: WrongHeader + ": " + err.Error(), line: c.Line()}
	}
	element, _ = basis.Symbol(z)
	header, ok := c.Next()
	if !ok {
		return nil, Error{message: PrematureEOF, block: element}
	}
	fields := strings.Fields(header)
	if len(fields) < 3 {
		return nil, Error{message: WrongHeader + `: want "name lmax ncore"`, block: element, line: c.Line()}
	}
	name := fields[0]
	lmax, err1 := strconv.Atoi(fields[1])
	core, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return nil, Error{message: WrongNumber + ": lmax or core electrons", block: name, line: c.Line()}
	}
	disk := make([]*basis.ECPFunction, 0, lmax+1)
	for i := 0; i <= lmax; i++ {
		//the channel label, e.g. "d potential"; only its presence matters
		if _, ok := c.Next(); !ok {
			return nil, Error{message: PrematureEOF + ": missing channel label", block: name}
		}
		head, ok := c.Next()
		if !ok {
			return nil, Error{message: PrematureEOF + ": missing channel term count", block: name}
		}
		nterms, err := strconv.Atoi(strings.Fields(head)[0])
		if err != nil {
			return nil, Error{message: WrongNumber + ": channel term count: " + err.Error(), block: name, line: c.Line()}
		}
		f := new(basis.ECPFunction)
		for t := 0; t < nterms; t++ {
			line, ok := c.Next()
			if !ok {
				return nil, Error{message: PrematureEOF + ": missing channel terms", block: name}
			}
			row := strings.Fields(line)
			if len(row) != 3 {
				return nil, Error{message: fmt.Sprintf("%s: term with %d fields, want 3", WrongHeader, len(row)), block: name, line: c.Line()}
			}
			pol, err1 := strconv.ParseFloat(row[0], 64)
			exp, err2 := strconv.ParseFloat(row[1], 64)
			pref, err3 := strconv.ParseFloat(row[2], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, Error{message: WrongNumber + ": channel term", block: name, line: c.Line()}
			}
			f.Polynoms = append(f.Polynoms, int(pol))
			f.Exponents = append(f.Exponents, exp)
			f.Prefactors = append(f.Prefactors, pref)
		}
		disk = append(disk, f)
	}
	if _, ok := c.Next(); ok {
		return nil, Error{message: UnknownFormat + ": trailing data after last channel", block: name, line: c.Line()}
	}
	p := &basis.ECPPseudopotential{
		Element:       element,
		Name:          name,
		Aliases:       []string{name},
		CoreElectrons: core,
		LMax:          lmax,
		Functions:     basis.CanonicalOrder(disk),
	}
	if err := p.Validate(); err != nil {
		return nil, errDecorate(err, "ReadECP")
	}
	return p, nil
}

// WriteECP writes the potential to w in Gaussian layout, rotating the
// channels back to their on-disk order (local first).
func WriteECP(w io.Writer, p *basis.ECPPseudopotential) error {
	if err := p.Validate(); err != nil {
		return errDecorate(err, "WriteECP")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s 0\n", p.Element)
	fmt.Fprintf(bw, "%s %d %d\n", p.Name, p.LMax, p.CoreElectrons)
	for i, f := range p.DiskOrder() {
		label := "ul"
		if i > 0 {
			letter, err := basis.OrbitalLetter(i - 1)
			if err != nil {
				return errDecorate(Error{message: WrongHeader + ": " + err.Error(), block: p.Name}, "WriteECP")
			}
			label = letter + "-ul"
		}
		fmt.Fprintf(bw, "%s potential\n", label)
		fmt.Fprintf(bw, "%d\n", len(f.Prefactors))
		for t := range f.Prefactors {
			fmt.Fprintf(bw, "%d %16.8f %16.8f\n", f.Polynoms[t], f.Exponents[t], f.Prefactors[t])
		}
	}
	return bw.Flush()
}
