package basis

import (
	"math"
	"reflect"
	"testing"
)

func TestTriangularInvariant(Te *testing.T) {
	p := &GTHPseudopotential{
		Element: "Mo",
		Name:    "GTH-PBE-q14",
		NEl:     []int{4, 6, 4},
		Local:   LocalPart{R: 0.43, Coefficients: []float64{28.60936832, -4.72180336}},
		NonLocal: []*Projector{
			{R: 0.43453528, NProj: 3, Coefficients: []float64{-0.05587037, 3.89325687, -1.10343993, -7.06722982, 2.84903341, -2.26419200}},
		},
	}
	if err := p.Validate(); err != nil {
		Te.Error(err)
	}
	//6 coefficients make a 3x3 upper triangle; 5 do not
	p.NonLocal[0].Coefficients = p.NonLocal[0].Coefficients[:5]
	if err := p.Validate(); err == nil {
		Te.Error("expected a validation error for an incomplete triangle")
	}
}

func TestProjectorMatrix(Te *testing.T) {
	p := &GTHPseudopotential{
		Element: "O",
		Name:    "GTH-PBE-q6",
		NEl:     []int{2, 4},
		NonLocal: []*Projector{
			{R: 0.22, NProj: 2, Coefficients: []float64{1.0, 2.0, 3.0}},
		},
	}
	m, err := p.ProjectorMatrix(0)
	if err != nil {
		Te.Fatal(err)
	}
	want := [2][2]float64{{1.0, 2.0}, {2.0, 3.0}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if math.Abs(m.At(i, j)-want[i][j]) > 1e-15 {
				Te.Errorf("matrix element (%d,%d) = %v, want %v", i, j, m.At(i, j), want[i][j])
			}
		}
	}
	if _, err := p.ProjectorMatrix(1); err == nil {
		Te.Error("expected an error for a projector out of range")
	}
}

func TestECPChannelRotation(Te *testing.T) {
	l0 := &ECPFunction{Prefactors: []float64{1}, Polynoms: []int{0}, Exponents: []float64{1}}
	l1 := &ECPFunction{Prefactors: []float64{2}, Polynoms: []int{1}, Exponents: []float64{2}}
	local := &ECPFunction{Prefactors: []float64{3}, Polynoms: []int{2}, Exponents: []float64{3}}
	canonical := []*ECPFunction{l0, l1, local}
	disk := (&ECPPseudopotential{Element: "Ne", LMax: 2, Functions: canonical}).DiskOrder()
	if disk[0] != local || disk[1] != l0 || disk[2] != l1 {
		Te.Error("wrong on-disk channel order")
	}
	back := CanonicalOrder(disk)
	if !reflect.DeepEqual(back, canonical) {
		Te.Error("rotation is not inverse-consistent")
	}
}

func TestECPValidate(Te *testing.T) {
	p := &ECPPseudopotential{
		Element:       "Ne",
		Name:          "Ne-ccECP",
		CoreElectrons: 2,
		LMax:          1,
		Functions: []*ECPFunction{
			{Prefactors: []float64{22.5}, Polynoms: []int{2}, Exponents: []float64{13.6}},
			{Prefactors: []float64{8.0, 98.5}, Polynoms: []int{1, 3}, Exponents: []float64{12.3, 11.9}},
		},
	}
	if err := p.Validate(); err != nil {
		Te.Error(err)
	}
	n, err := p.ValenceElectrons()
	if err != nil || n != 8 {
		Te.Errorf("ValenceElectrons = %d, %v; want 8", n, err)
	}
	p.Functions[1].Polynoms = p.Functions[1].Polynoms[:1]
	if err := p.Validate(); err == nil {
		Te.Error("expected a validation error for disagreeing term lists")
	}
	p.Functions = p.Functions[:1]
	if err := p.Validate(); err == nil {
		Te.Error("expected a validation error for a missing channel")
	}
}
