package turborvb

import (
	"bytes"
	"math"
	"strings"
	"testing"

	basis "github.com/rmera/gobasis"
)

//a potential whose s channel is exp(-r^2) and whose local channel never
//rises above any sensible tolerance
func gaussianECP() *basis.ECPPseudopotential {
	return &basis.ECPPseudopotential{
		Element:       "Ne",
		Name:          "Ne-test",
		Aliases:       []string{"Ne-test"},
		CoreElectrons: 2,
		LMax:          1,
		Functions: []*basis.ECPFunction{
			{Prefactors: []float64{1.0}, Polynoms: []int{2}, Exponents: []float64{1.0}},
			{Prefactors: []float64{1e-8}, Polynoms: []int{2}, Exponents: []float64{1.0}},
		},
	}
}

func TestRadial(Te *testing.T) {
	f := gaussianECP().Functions[0]
	//r^2 * exp(-r^2) / r^2 collapses to exp(-r^2)
	for _, r := range []float64{0.1, 1.0, 2.5} {
		want := math.Exp(-r * r)
		if got := Radial(f, r); math.Abs(got-want) > 1e-14 {
			Te.Errorf("Radial(%g) = %g, want %g", r, got, want)
		}
	}
}

func TestCutoffRadius(Te *testing.T) {
	p := gaussianECP()
	//exp(-r^2) > 1e-5 holds up to r = sqrt(ln(1e5)) = 3.3930...
	r0, found := CutoffRadius(p, DefaultTolerance)
	if !found {
		Te.Fatal("no cutoff found")
	}
	if math.Abs(r0-3.39) > 1e-9 {
		Te.Errorf("cutoff = %g, want 3.39", r0)
	}
	//a looser tolerance moves the cutoff inwards
	r0, found = CutoffRadius(p, 1e-2)
	if !found || math.Abs(r0-2.14) > 1e-9 {
		Te.Errorf("cutoff at 1e-2 = %g, want 2.14", r0)
	}
}

func TestWritePseudo(Te *testing.T) {
	p := gaussianECP()
	var out bytes.Buffer
	if err := WritePseudo(&out, p, nil); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if lines[0] != "ECP" {
		Te.Errorf("header: %q", lines[0])
	}
	if lines[1] != "1 3.39 2" {
		Te.Errorf("index/cutoff/channels: %q", lines[1])
	}
	if lines[2] != "1 1" {
		Te.Errorf("term counts: %q", lines[2])
	}
	if len(lines) != 5 {
		Te.Fatalf("%d lines:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[3], "1.00000000") || !strings.Contains(lines[3], "   2 ") {
		Te.Errorf("term line: %q", lines[3])
	}
}

func TestWritePseudoFallback(Te *testing.T) {
	p := gaussianECP()
	//both channels below threshold everywhere on the grid
	p.Functions[0].Prefactors[0] = 1e-8
	var out bytes.Buffer
	err := WritePseudo(&out, p, nil)
	if err == nil || !strings.Contains(err.Error(), NoCutoff) {
		Te.Fatalf("expected a no-cutoff error, got %v", err)
	}
	out.Reset()
	if err := WritePseudo(&out, p, &Options{Index: 3, R0: 1.5}); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if lines[1] != "3 1.50 2" {
		Te.Errorf("fallback header: %q", lines[1])
	}
}
