/*
 * basisset.go, part of gobasis.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package basis

// Shell gives the number of contracted shells sharing one angular momentum
// within a block.
type Shell struct {
	L int //angular momentum quantum number
	N int //how many shells with this l
}

// Block is one set of basis functions sharing a principal quantum number, a
// contiguous angular-momentum range and one list of exponents. Each row of
// Coefficients starts with the exponent, followed by one contraction
// coefficient per shell, in the order the shells appear in L.
type Block struct {
	N            int
	L            []Shell
	Coefficients [][]float64
}

//shells returns the total number of contraction columns in the block.
func (b *Block) shells() int {
	n := 0
	for _, s := range b.L {
		n += s.N
	}
	return n
}

// BasisSet is the canonical in-memory shape of a Gaussian basis set for one
// element. It is plain data: the parsers build it, the writers read it, and
// no codec ever mutates one after handing it out.
type BasisSet struct {
	Element string
	Name    string
	Aliases []string
	Tags    []string
	NEl     int //valence electrons targeted, 0 if unknown
	Blocks  []*Block
}

// Validate checks the internal consistency of the basis set: every block
// must have at least one shell and every coefficient row must hold exactly
// one exponent plus one coefficient per shell.
func (b *BasisSet) Validate() error {
	id := b.Element + " " + b.Name
	if b.Element == "" {
		return newValidationError(id, "missing element")
	}
	if len(b.Blocks) == 0 {
		return newValidationError(id, "basis set has no blocks")
	}
	for i, block := range b.Blocks {
		if len(block.L) == 0 {
			return newValidationError(id, "block %d has no angular momenta", i)
		}
		for j := 1; j < len(block.L); j++ {
			if block.L[j].L != block.L[j-1].L+1 {
				return newValidationError(id, "block %d angular momenta are not contiguous", i)
			}
		}
		want := 1 + block.shells()
		for j, row := range block.Coefficients {
			if len(row) != want {
				return newValidationError(id, "block %d row %d has %d values, want %d", i, j, len(row), want)
			}
		}
	}
	return nil
}

// OrbitalFunctions returns the total number of orbital basis functions
// described by the basis set, counting 2l+1 functions per shell of angular
// momentum l.
func (b *BasisSet) OrbitalFunctions() int {
	total := 0
	for _, block := range b.Blocks {
		for _, s := range block.L {
			total += (2*s.L + 1) * s.N
		}
	}
	return total
}

// Uncontract returns a new basis set where every primitive of every shell
// becomes its own single-exponent block with a unit coefficient. The name
// gets an -uncont suffix; element, aliases, tags and electron count carry
// over unchanged.
func (b *BasisSet) Uncontract() *BasisSet {
	un := &BasisSet{
		Element: b.Element,
		Name:    b.Name + "-uncont",
		Aliases: append([]string{}, b.Aliases...),
		Tags:    append([]string{}, b.Tags...),
		NEl:     b.NEl,
	}
	for _, block := range b.Blocks {
		for _, row := range block.Coefficients {
			l := make([]Shell, len(block.L))
			copy(l, block.L)
			prim := make([]float64, 1+block.shells())
			prim[0] = row[0]
			for i := 1; i < len(prim); i++ {
				prim[i] = 1.0
			}
			un.Blocks = append(un.Blocks, &Block{
				N:            block.N,
				L:            l,
				Coefficients: [][]float64{prim},
			})
		}
	}
	return un
}

// MatchesPseudo reports whether the basis set and the given GTH
// pseudopotential target the same element and the same number of valence
// electrons. An unknown electron count on the basis-set side never matches.
func (b *BasisSet) MatchesPseudo(p *GTHPseudopotential) bool {
	if p == nil || b.Element != p.Element || b.NEl == 0 {
		return false
	}
	return b.NEl == p.ValenceElectrons()
}
