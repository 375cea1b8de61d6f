/*
 * pseudo.go, part of gobasis.
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

import (
	"gonum.org/v1/gonum/mat"
)

// LocalPart is the local Gaussian part of a GTH pseudopotential: the radius
// defining the Gaussian exponent, and the coefficients of the local
// pseudopotential functions.
type LocalPart struct {
	R            float64
	Coefficients []float64
}

// Projector is one non-local projector block of a GTH pseudopotential.
// Coefficients holds only the upper triangle of the symmetric NProj x NProj
// coupling matrix, row by row, so it must have NProj*(NProj+1)/2 entries.
type Projector struct {
	R            float64
	NProj        int
	Coefficients []float64
}

// GTHPseudopotential is a Goedecker-Teter-Hutter separable pseudopotential:
// one local Gaussian part plus one non-local projector block per angular
// momentum. NEl holds the number of valence electrons per angular momentum
// (s, p, d, ...). NLCC carries non-linear core-correction data when a
// format supplies it; this library only passes it through.
type GTHPseudopotential struct {
	Element  string
	Name     string
	Aliases  []string
	Tags     []string
	Version  int
	NEl      []int
	Local    LocalPart
	NonLocal []*Projector
	NLCC     [][]float64
}

// ValenceElectrons returns the total number of valence electrons, summed
// over the angular momenta.
func (p *GTHPseudopotential) ValenceElectrons() int {
	total := 0
	for _, n := range p.NEl {
		total += n
	}
	return total
}

// Validate checks the declared-vs-actual count invariants, most importantly
// that each projector carries exactly the upper triangle of its coupling
// matrix.
func (p *GTHPseudopotential) Validate() error {
	id := p.Element + " " + p.Name
	if p.Element == "" {
		return newValidationError(id, "missing element")
	}
	if len(p.NEl) == 0 {
		return newValidationError(id, "missing electron configuration")
	}
	for i, prj := range p.NonLocal {
		want := prj.NProj * (prj.NProj + 1) / 2
		if len(prj.Coefficients) != want {
			return newValidationError(id, "projector %d: %d coefficients for a %dx%d matrix, want %d",
				i, len(prj.Coefficients), prj.NProj, prj.NProj, want)
		}
	}
	return nil
}

// ProjectorMatrix expands the packed upper triangle of the ith non-local
// projector into a full symmetric matrix.
func (p *GTHPseudopotential) ProjectorMatrix(i int) (*mat.SymDense, error) {
	if i < 0 || i >= len(p.NonLocal) {
		return nil, newValidationError(p.Element+" "+p.Name, "no projector %d", i)
	}
	prj := p.NonLocal[i]
	if len(prj.Coefficients) != prj.NProj*(prj.NProj+1)/2 {
		return nil, newValidationError(p.Element+" "+p.Name, "projector %d has an incomplete triangle", i)
	}
	m := mat.NewSymDense(prj.NProj, nil)
	k := 0
	for row := 0; row < prj.NProj; row++ {
		for col := row; col < prj.NProj; col++ {
			m.SetSym(row, col, prj.Coefficients[k])
			k++
		}
	}
	return m, nil
}

// ECPFunction is one angular-momentum channel of an effective core
// potential: a sum of terms prefactor * r^polynom * exp(-exponent*r^2).
// The three slices run in parallel, one entry per term.
type ECPFunction struct {
	Prefactors []float64
	Polynoms   []int
	Exponents  []float64
}

// ECPPseudopotential is an effective core potential in the GAMESS/Gaussian
// convention. Functions holds the channels in canonical order: l=0 up to
// l=LMax-1, then the local ("ul") channel last. The on-disk order of the
// GAMESS and Gaussian formats puts the local channel first; the codecs
// rotate between the two orders.
type ECPPseudopotential struct {
	Element       string
	Name          string
	Aliases       []string
	CoreElectrons int
	LMax          int
	Functions     []*ECPFunction
}

// DiskOrder returns the channels in the order the GAMESS and Gaussian
// formats put them on disk: the local ("ul") channel first, then l=0 up to
// l=LMax-1. It is the inverse of CanonicalOrder.
func (p *ECPPseudopotential) DiskOrder() []*ECPFunction {
	if len(p.Functions) == 0 {
		return nil
	}
	disk := make([]*ECPFunction, 0, len(p.Functions))
	disk = append(disk, p.Functions[len(p.Functions)-1])
	disk = append(disk, p.Functions[:len(p.Functions)-1]...)
	return disk
}

// CanonicalOrder rotates channels from the on-disk order (local channel
// first) into the canonical in-memory order (l=0..lmax-1, local last).
func CanonicalOrder(disk []*ECPFunction) []*ECPFunction {
	if len(disk) == 0 {
		return nil
	}
	can := make([]*ECPFunction, 0, len(disk))
	can = append(can, disk[1:]...)
	can = append(can, disk[0])
	return can
}

// Validate checks that the channel list matches LMax and that every
// channel's term slices agree in length.
func (p *ECPPseudopotential) Validate() error {
	id := p.Element + " " + p.Name
	if p.Element == "" {
		return newValidationError(id, "missing element")
	}
	if len(p.Functions) != p.LMax+1 {
		return newValidationError(id, "%d channels for lmax=%d, want %d", len(p.Functions), p.LMax, p.LMax+1)
	}
	for i, f := range p.Functions {
		if len(f.Prefactors) != len(f.Polynoms) || len(f.Prefactors) != len(f.Exponents) {
			return newValidationError(id, "channel %d term lists disagree: %d prefactors, %d polynoms, %d exponents",
				i, len(f.Prefactors), len(f.Polynoms), len(f.Exponents))
		}
	}
	return nil
}

// ValenceElectrons returns the number of valence electrons left after
// removing the core, via the periodic table.
func (p *ECPPseudopotential) ValenceElectrons() (int, error) {
	z, err := AtomicNumber(p.Element)
	if err != nil {
		return 0, err
	}
	return z - p.CoreElectrons, nil
}
