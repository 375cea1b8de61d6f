package library

import (
	"fmt"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/cp2k"
	"github.com/rmera/gobasis/gamess"
	"github.com/rmera/gobasis/nwchem"
)

// Filter selects records by element and/or tags. Empty fields match
// everything; all listed tags must be present.
type Filter struct {
	Element string
	Tags    []string
}

func (f Filter) match(element string, tags []string) bool {
	if f.Element != "" && f.Element != element {
		return false
	}
	for _, want := range f.Tags {
		found := false
		for _, tag := range tags {
			if tag == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// BasisSets parses the named entry and returns the basis sets matching the
// filter.
func (m *Manifest) BasisSets(name string, f Filter) ([]*basis.BasisSet, error) {
	e := m.Entry(name)
	if e == nil {
		return nil, fmt.Errorf("library: no entry %q in manifest", name)
	}
	r, err := Open(m.path(e))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var sets []*basis.BasisSet
	switch e.Format {
	case FormatCP2KBasisSet:
		sets, err = cp2k.ReadBasisSets(r)
	case FormatNWChemBasis:
		sets, err = nwchem.ReadBasisSets(r)
	case FormatGamessBasis:
		var b *basis.BasisSet
		b, err = gamess.ReadBasisSet(r)
		if b != nil {
			sets = []*basis.BasisSet{b}
		}
	default:
		return nil, fmt.Errorf("library: entry %q holds %s, not basis sets", name, e.Format)
	}
	if err != nil {
		return nil, err
	}
	var out []*basis.BasisSet
	for _, b := range sets {
		if f.match(b.Element, b.Tags) {
			out = append(out, b)
		}
	}
	return out, nil
}

// Pseudos parses the named entry and returns the GTH pseudopotentials
// matching the filter.
func (m *Manifest) Pseudos(name string, f Filter) ([]*basis.GTHPseudopotential, error) {
	e := m.Entry(name)
	if e == nil {
		return nil, fmt.Errorf("library: no entry %q in manifest", name)
	}
	if e.Format != FormatCP2KPseudo {
		return nil, fmt.Errorf("library: entry %q holds %s, not GTH pseudopotentials", name, e.Format)
	}
	r, err := Open(m.path(e))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	pseudos, err := cp2k.ReadPseudos(r)
	if err != nil {
		return nil, err
	}
	var out []*basis.GTHPseudopotential
	for _, p := range pseudos {
		if f.match(p.Element, p.Tags) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ECPs parses the named entry and returns the effective core potentials
// matching the filter. ECP names carry no tag convention, so only the
// element filter applies.
func (m *Manifest) ECPs(name string, f Filter) ([]*basis.ECPPseudopotential, error) {
	e := m.Entry(name)
	if e == nil {
		return nil, fmt.Errorf("library: no entry %q in manifest", name)
	}
	if e.Format != FormatGamessECP {
		return nil, fmt.Errorf("library: entry %q holds %s, not ECPs", name, e.Format)
	}
	r, err := Open(m.path(e))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	p, err := gamess.ReadECP(r)
	if err != nil {
		return nil, err
	}
	if !f.match(p.Element, nil) {
		return nil, nil
	}
	return []*basis.ECPPseudopotential{p}, nil
}
