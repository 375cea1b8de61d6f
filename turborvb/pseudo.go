/*Package turborvb writes effective core potentials in TurboRVB's tabular
pseudopotential layout. Unlike the other writers in this library it does a
small amount of numerics: the cutoff radius printed in the header is found
by sampling the radial potential of every channel and taking the largest
radius where it still exceeds a tolerance.*/
package turborvb

import (
	"bufio"
	"fmt"
	"io"
	"math"

	basis "github.com/rmera/gobasis"
	"gonum.org/v1/gonum/floats"
)

//The sampling grid is r in [0, 10) with a step of 0.01, and the comparison
//against the tolerance is strict. Reference outputs depend on both, so
//neither is configurable.
const (
	gridPoints = 1000
	gridStep   = 0.01
)

// DefaultTolerance is the radial-potential threshold below which a channel
// is considered to have died off.
const DefaultTolerance = 1e-5

// Options adjusts the TurboRVB writer. The zero value (or a nil *Options)
// means: index 1, DefaultTolerance, and no fallback cutoff radius.
type Options struct {
	Index     int     //the atom-type index printed in the header
	Tolerance float64 //threshold for the cutoff-radius scan
	R0        float64 //cutoff radius to fall back on when the scan finds nothing
}

//Radial evaluates one channel's potential V(r) = (1/r^2) sum_t
//prefactor_t * r^polynom_t * exp(-exponent_t*r^2).
func Radial(f *basis.ECPFunction, r float64) float64 {
	v := 0.0
	for t := range f.Prefactors {
		v += f.Prefactors[t] * math.Pow(r, float64(f.Polynoms[t])) * math.Exp(-f.Exponents[t]*r*r)
	}
	return v / (r * r)
}

// CutoffRadius samples every channel of p on the fixed grid and returns the
// largest sampled radius at which any channel's |V(r)| still exceeds tol.
// The second return is false if no sample exceeded the tolerance.
func CutoffRadius(p *basis.ECPPseudopotential, tol float64) (float64, bool) {
	grid := make([]float64, gridPoints)
	floats.Span(grid, 0, gridStep*float64(gridPoints-1))
	r0 := 0.0
	found := false
	for _, f := range p.Functions {
		//walk backwards: the first hit is the channel's largest radius
		for i := len(grid) - 1; i >= 0; i-- {
			if math.Abs(Radial(f, grid[i])) > tol {
				if grid[i] > r0 || !found {
					r0 = grid[i]
				}
				found = true
				break
			}
		}
	}
	return r0, found
}

// WritePseudo writes the potential to w in TurboRVB's layout: an "ECP"
// header, a line with the atom-type index, the cutoff radius and the
// channel count, a line with the per-channel term counts, and then each
// channel's "prefactor polynom exponent" terms. Channels are written
// exactly as stored.
func WritePseudo(w io.Writer, p *basis.ECPPseudopotential, o *Options) error {
	if err := p.Validate(); err != nil {
		return errDecorate(err, "WritePseudo")
	}
	index := 1
	tol := DefaultTolerance
	fallback := 0.0
	if o != nil {
		if o.Index > 0 {
			index = o.Index
		}
		if o.Tolerance > 0 {
			tol = o.Tolerance
		}
		fallback = o.R0
	}
	r0, found := CutoffRadius(p, tol)
	if !found {
		if fallback <= 0 {
			return errDecorate(Error{message: NoCutoff, block: p.Name}, "WritePseudo")
		}
		r0 = fallback
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "ECP")
	fmt.Fprintf(bw, "%d %.2f %d\n", index, r0, len(p.Functions))
	for i, f := range p.Functions {
		if i > 0 {
			fmt.Fprint(bw, " ")
		}
		fmt.Fprintf(bw, "%d", len(f.Prefactors))
	}
	fmt.Fprintln(bw)
	for _, f := range p.Functions {
		for t := range f.Prefactors {
			fmt.Fprintf(bw, "%16.8f %4d %16.8f\n", f.Prefactors[t], f.Polynoms[t], f.Exponents[t])
		}
	}
	return bw.Flush()
}
