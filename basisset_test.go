package basis

import (
	"testing"
)

func demoBasis() *BasisSet {
	return &BasisSet{
		Element: "H",
		Name:    "DZVP-MOLOPT-GTH-q1",
		Aliases: []string{"DZVP-MOLOPT-GTH-q1", "DZVP-MOLOPT-GTH"},
		Tags:    []string{"DZVP", "MOLOPT", "GTH", "q1"},
		NEl:     1,
		Blocks: []*Block{
			{
				N: 2,
				L: []Shell{{L: 0, N: 2}, {L: 1, N: 1}},
				Coefficients: [][]float64{
					{11.478000339908, 0.0249162432, -0.0125124214, 0.0245109182},
					{3.700758562763, 0.07982549, -0.0564490711, 0.0581407941},
				},
			},
		},
	}
}

func TestBasisSetValidate(Te *testing.T) {
	b := demoBasis()
	if err := b.Validate(); err != nil {
		Te.Error(err)
	}
	//a row that is too short for the declared shells
	b.Blocks[0].Coefficients[1] = []float64{3.7, 0.08}
	if err := b.Validate(); err == nil {
		Te.Error("expected a validation error for a short row")
	}
	b = demoBasis()
	b.Blocks[0].L = []Shell{{L: 0, N: 2}, {L: 2, N: 1}} //gap in l
	if err := b.Validate(); err == nil {
		Te.Error("expected a validation error for non-contiguous angular momenta")
	}
}

func TestOrbitalFunctions(Te *testing.T) {
	b := &BasisSet{
		Element: "X",
		Blocks: []*Block{
			{L: []Shell{{L: 0, N: 3}}},
			{L: []Shell{{L: 1, N: 2}}},
			{L: []Shell{{L: 2, N: 2}}},
			{L: []Shell{{L: 3, N: 1}}},
		},
	}
	// 1*3 + 3*2 + 5*2 + 7*1
	if n := b.OrbitalFunctions(); n != 26 {
		Te.Errorf("got %d orbital functions, want 26", n)
	}
}

func TestUncontract(Te *testing.T) {
	b := demoBasis()
	un := b.Uncontract()
	if un.Name != "DZVP-MOLOPT-GTH-q1-uncont" {
		Te.Errorf("wrong uncontracted name %q", un.Name)
	}
	if len(un.Blocks) != 2 {
		Te.Fatalf("got %d uncontracted blocks, want 2", len(un.Blocks))
	}
	if err := un.Validate(); err != nil {
		Te.Error(err)
	}
	for i, block := range un.Blocks {
		if len(block.Coefficients) != 1 {
			Te.Errorf("block %d: %d rows, want 1", i, len(block.Coefficients))
		}
		if block.Coefficients[0][0] != b.Blocks[0].Coefficients[i][0] {
			Te.Errorf("block %d: exponent not preserved", i)
		}
		for _, c := range block.Coefficients[0][1:] {
			if c != 1.0 {
				Te.Errorf("block %d: coefficient %v, want 1.0", i, c)
			}
		}
	}
}

func TestMatchesPseudo(Te *testing.T) {
	b := demoBasis()
	p := &GTHPseudopotential{Element: "H", Name: "GTH-PBE-q1", NEl: []int{1}}
	if !b.MatchesPseudo(p) {
		Te.Error("expected a match")
	}
	p.NEl = []int{2}
	if b.MatchesPseudo(p) {
		Te.Error("expected no match on electron count")
	}
	p.NEl = []int{1}
	p.Element = "He"
	if b.MatchesPseudo(p) {
		Te.Error("expected no match on element")
	}
}
