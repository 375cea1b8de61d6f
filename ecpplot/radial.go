/*Package ecpplot draws the radial channel potentials of an effective core
potential, mostly as a sanity check for the cutoff radius the TurboRVB
writer derives from them.*/
package ecpplot

import (
	"fmt"

	basis "github.com/rmera/gobasis"
	"github.com/rmera/gobasis/turborvb"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Radial plots |V_l(r)| for every channel of p, for r in (0, rmax], and
// saves the result as plotname.png. The r=0 sample is left out since the
// potentials diverge there.
func Radial(p *basis.ECPPseudopotential, rmax float64, plotname string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if rmax <= 0 {
		rmax = 10.0
	}
	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("%s radial potentials", p.Name)
	plt.X.Label.Text = "r / bohr"
	plt.Y.Label.Text = "|V(r)| / hartree"
	const samples = 500
	step := rmax / samples
	for i, f := range p.Functions {
		pts := make(plotter.XYs, samples)
		for j := 0; j < samples; j++ {
			r := step * float64(j+1)
			v := turborvb.Radial(f, r)
			if v < 0 {
				v = -v
			}
			pts[j].X = r
			pts[j].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		plt.Add(line)
		label := "local"
		if i < p.LMax {
			letter, err := basis.OrbitalLetter(i)
			if err != nil {
				return err
			}
			label = letter
		}
		plt.Legend.Add(label, line)
	}
	return plt.Save(6*vg.Inch, 4*vg.Inch, plotname+".png")
}
