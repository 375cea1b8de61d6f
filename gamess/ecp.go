/*Package gamess reads and writes basis sets and effective core potentials
in the formats of the GAMESS quantum-chemistry package, as used by
pseudopotential collections distributed as one file per element (the
ccECP/Mitas library layout, for one).*/
package gamess

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	basis "github.com/rmera/gobasis"
)

// ReadECP parses one effective core potential from r. The header line is
// "name GEN core_electrons lmax"; then lmax+1 channel groups follow, each
// introduced by its term count (anything after the count on that line is
// treated as a comment) and holding one "prefactor polynom exponent" line
// per term. Polynomial powers of r are integers but GAMESS files often
// write them with a decimal point, so they are parsed as floats and cast.
//
// The on-disk channel order is local ("ul") first, then l=0..lmax-1; the
// returned record holds them in canonical order, l=0..lmax-1 with the
// local channel last.
func ReadECP(r io.Reader) (*basis.ECPPseudopotential, error) {
	c, err := basis.NewCursor(r)
	if err != nil {
		return nil, err
	}
	header, ok := c.Next()
	if !ok {
		return nil, Error{message: PrematureEOF}
	}
	fields := strings.Fields(header)
	if len(fields) < 4 || !strings.EqualFold(fields[1], "GEN") {
		return nil, Error{message: WrongHeader + `: want "name GEN ncore lmax"`, line: c.Line()}
	}
	name := fields[0]
	core, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, Error{message: WrongNumber + ": core electrons: " + err.Error(), block: name}
	}
	lmax, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, Error{message: WrongNumber + ": lmax: " + err.Error(), block: name}
	}
	//the element is encoded in the name, e.g. "Ne-ccECP"
	symbol := strings.SplitN(name, "-", 2)[0]
	z, err := basis.AtomicNumber(symbol)
	if err != nil {
		return nil, Error{message: WrongHeader + ": " + err.Error(), block: name}
	}
	element, _ := basis.Symbol(z) //normalizes capitalization
	disk := make([]*basis.ECPFunction, 0, lmax+1)
	for i := 0; i <= lmax; i++ {
		f, err := readChannel(c, name)
		if err != nil {
			return nil, errDecorate(err, "ReadECP")
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

func readChannel(c *basis.Cursor, name string) (*basis.ECPFunction, error) {
	head, ok := c.Next()
	if !ok {
		return nil, Error{message: PrematureEOF + ": missing channel header", block: name}
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
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, Error{message: fmt.Sprintf("%s: term with %d fields, want 3", WrongHeader, len(fields)), block: name, line: c.Line()}
		}
		pref, err1 := strconv.ParseFloat(fields[0], 64)
		pol, err2 := strconv.ParseFloat(fields[1], 64)
		exp, err3 := strconv.ParseFloat(fields[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, Error{message: WrongNumber + ": channel term", block: name, line: c.Line()}
		}
		f.Prefactors = append(f.Prefactors, pref)
		f.Polynoms = append(f.Polynoms, int(pol))
		f.Exponents = append(f.Exponents, exp)
	}
	return f, nil
}

// WriteECP writes the potential to w in GAMESS format, rotating the
// channels back to their on-disk order (local first).
func WriteECP(w io.Writer, p *basis.ECPPseudopotential) error {
	if err := p.Validate(); err != nil {
		return errDecorate(err, "WriteECP")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s GEN %d %d\n", p.Name, p.CoreElectrons, p.LMax)
	for i, f := range p.DiskOrder() {
		label := "ul"
		if i > 0 {
			letter, err := basis.OrbitalLetter(i - 1)
			if err != nil {
				return errDecorate(Error{message: WrongHeader + ": " + err.Error(), block: p.Name}, "WriteECP")
			}
			label = letter + "-ul"
		}
		fmt.Fprintf(bw, "%d ----- %s potential -----\n", len(f.Prefactors), label)
		for t := range f.Prefactors {
			fmt.Fprintf(bw, "%16.8f %4d %16.8f\n", f.Prefactors[t], f.Polynoms[t], f.Exponents[t])
		}
	}
	return bw.Flush()
}
