package cp2k

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"

	basis "github.com/rmera/gobasis"
)

func TestParseBasisSet(Te *testing.T) {
	lines := []string{
		"H DZVP-MOLOPT-GTH DZVP-MOLOPT-GTH-q1",
		"1",
		"2 0 1 7 2 1",
		"11.478000339908 0.024916243200 -0.012512421400 0.024510918200",
		"3.700758562763 0.079825490000 -0.056449071100 0.058140794100",
		"1.446884268432 0.128862675300 0.011242684700 0.444709498500",
		"0.716814589696 0.379448894600 -0.418587548300 0.646207973100",
		"0.247918564176 0.324552432600 0.590363216700 0.803385018200",
		"0.066918004004 0.037148121400 0.438703133000 0.892971208700",
		"0.021708243634 -0.001125195500 -0.059693171300 0.120101316500",
	}
	b, err := ParseBasisSet(lines)
	if err != nil {
		Te.Fatal(err)
	}
	if b.Element != "H" || b.Name != "DZVP-MOLOPT-GTH-q1" {
		Te.Errorf("got %s %s", b.Element, b.Name)
	}
	if !reflect.DeepEqual(b.Aliases, []string{"DZVP-MOLOPT-GTH-q1", "DZVP-MOLOPT-GTH"}) {
		Te.Errorf("aliases: %v", b.Aliases)
	}
	if b.NEl != 1 {
		Te.Errorf("NEl = %d, want 1", b.NEl)
	}
	if len(b.Blocks) != 1 {
		Te.Fatalf("%d blocks", len(b.Blocks))
	}
	block := b.Blocks[0]
	want := []basis.Shell{{L: 0, N: 2}, {L: 1, N: 1}}
	if block.N != 2 || !reflect.DeepEqual(block.L, want) {
		Te.Errorf("block header: n=%d shells=%v", block.N, block.L)
	}
	if len(block.Coefficients) != 7 {
		Te.Fatalf("%d rows", len(block.Coefficients))
	}
	if block.Coefficients[0][0] != 11.478000339908 || block.Coefficients[6][2] != -0.059693171300 {
		Te.Error("coefficients misread")
	}
	if b.OrbitalFunctions() != 5 {
		Te.Errorf("OrbitalFunctions = %d, want 5", b.OrbitalFunctions())
	}
}

func TestBasisSetReader(Te *testing.T) {
	f, err := os.Open("../test/BASIS_MOLOPT.H")
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	r, err := NewBasisSetReader(f)
	if err != nil {
		Te.Fatal(err)
	}
	b, err := r.Next()
	if err != nil {
		Te.Fatal(err)
	}
	if b.Element != "H" || b.NEl != 1 {
		Te.Errorf("got %s NEl=%d", b.Element, b.NEl)
	}
	if _, err := r.Next(); err != io.EOF {
		Te.Errorf("expected io.EOF, got %v", err)
	}
}

// The fixture uses the default exponent and coefficient formats, so after a
// read/write cycle each line should match modulo leading whitespace and the
// extra identifier in the original header.
func TestBasisSetRoundtrip(Te *testing.T) {
	data, err := os.ReadFile("../test/BASIS_MOLOPT.H")
	if err != nil {
		Te.Fatal(err)
	}
	sets, err := ReadBasisSets(bytes.NewReader(data))
	if err != nil {
		Te.Fatal(err)
	}
	if len(sets) != 1 {
		Te.Fatalf("%d sets", len(sets))
	}
	var out bytes.Buffer
	if err := WriteBasisSet(&out, sets[0], "written back"); err != nil {
		Te.Fatal(err)
	}
	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	//got[0] is the comment, got[1] the header without the alias
	if !strings.HasPrefix(got[0], "# ") || !strings.HasPrefix(got[1], "H DZVP-MOLOPT-GTH-q1") {
		Te.Fatalf("unexpected preamble: %q / %q", got[0], got[1])
	}
	if len(got)-2 != len(want)-1 {
		Te.Fatalf("line counts differ: %d written, %d read", len(got)-2, len(want)-1)
	}
	for i := range want[1:] {
		w, g := strings.TrimSpace(want[1+i]), strings.TrimSpace(got[2+i])
		if w != g {
			Te.Errorf("line %d:\nwant %q\ngot  %q", i, w, g)
		}
	}
}

func TestBasisSetRoundtripMultiBlock(Te *testing.T) {
	data, err := os.ReadFile("../test/BASIS_pob-TZVP.H")
	if err != nil {
		Te.Fatal(err)
	}
	sets, err := ReadBasisSets(bytes.NewReader(data))
	if err != nil {
		Te.Fatal(err)
	}
	if len(sets) != 1 || len(sets[0].Blocks) != 4 {
		Te.Fatalf("misread: %d sets", len(sets))
	}
	var out bytes.Buffer
	if err := WriteBasisSet(&out, sets[0], "pob roundtrip", "% 12.9f", "% 12.9f"); err != nil {
		Te.Fatal(err)
	}
	got := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(got)-1 != len(want) {
		Te.Fatalf("line counts differ: %d written, %d read", len(got)-1, len(want))
	}
	for i := range want {
		w, g := strings.TrimSpace(want[i]), strings.TrimSpace(got[1+i])
		if w != g {
			Te.Errorf("line %d:\nwant %q\ngot  %q", i, w, g)
		}
	}
}

func TestBasisSetErrors(Te *testing.T) {
	cases := [][]string{
		{"H SZV", "2", "1 0 0 1 1", "0.5 1.0"},             //fewer blocks than declared
		{"H SZV", "1", "1 0 1 1 1", "0.5 1.0"},             //shell counts vs l range
		{"H SZV", "1", "1 0 0 1 1", "0.5 1.0 2.0"},         //row too wide
		{"H SZV", "1", "1 0 0 1 1", "0.5 1.0", "0.1 1.0"},  //trailing data
		{"H SZV", "one", "1 0 0 1 1", "0.5 1.0"},           //bad block count
	}
	for i, lines := range cases {
		if _, err := ParseBasisSet(lines); err == nil {
			Te.Errorf("case %d: parse should have failed", i)
		}
	}
}
