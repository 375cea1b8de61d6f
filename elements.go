/*
 * elements.go, part of gobasis.
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
	"fmt"
	"strings"
)

//A map from element symbols to atomic numbers. Unlike the bio-centric
//tables of goChem, pseudopotential libraries cover most of the periodic
//table, so the whole thing is here.
var symbolNumber = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8,
	"F": 9, "Ne": 10, "Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15,
	"S": 16, "Cl": 17, "Ar": 18, "K": 19, "Ca": 20, "Sc": 21, "Ti": 22,
	"V": 23, "Cr": 24, "Mn": 25, "Fe": 26, "Co": 27, "Ni": 28, "Cu": 29,
	"Zn": 30, "Ga": 31, "Ge": 32, "As": 33, "Se": 34, "Br": 35, "Kr": 36,
	"Rb": 37, "Sr": 38, "Y": 39, "Zr": 40, "Nb": 41, "Mo": 42, "Tc": 43,
	"Ru": 44, "Rh": 45, "Pd": 46, "Ag": 47, "Cd": 48, "In": 49, "Sn": 50,
	"Sb": 51, "Te": 52, "I": 53, "Xe": 54, "Cs": 55, "Ba": 56, "La": 57,
	"Ce": 58, "Pr": 59, "Nd": 60, "Pm": 61, "Sm": 62, "Eu": 63, "Gd": 64,
	"Tb": 65, "Dy": 66, "Ho": 67, "Er": 68, "Tm": 69, "Yb": 70, "Lu": 71,
	"Hf": 72, "Ta": 73, "W": 74, "Re": 75, "Os": 76, "Ir": 77, "Pt": 78,
	"Au": 79, "Hg": 80, "Tl": 81, "Pb": 82, "Bi": 83, "Po": 84, "At": 85,
	"Rn": 86, "Fr": 87, "Ra": 88, "Ac": 89, "Th": 90, "Pa": 91, "U": 92,
	"Np": 93, "Pu": 94, "Am": 95, "Cm": 96, "Bk": 97, "Cf": 98, "Es": 99,
	"Fm": 100, "Md": 101, "No": 102, "Lr": 103, "Rf": 104, "Db": 105,
	"Sg": 106, "Bh": 107, "Hs": 108, "Mt": 109, "Ds": 110, "Rg": 111,
	"Cn": 112, "Nh": 113, "Fl": 114, "Mc": 115, "Lv": 116, "Ts": 117,
	"Og": 118,
}

//the reverse table, built once at init time and read-only afterwards.
var numberSymbol = func() map[int]string {
	m := make(map[int]string, len(symbolNumber))
	for s, z := range symbolNumber {
		m[z] = s
	}
	return m
}()

// AtomicNumber returns the atomic number for the given element symbol.
// Lookup is case-insensitive on the usual capitalization ("he" and "HE"
// both resolve to helium), since GAMESS-style files often shout.
func AtomicNumber(symbol string) (int, error) {
	if z, ok := symbolNumber[symbol]; ok {
		return z, nil
	}
	if len(symbol) >= 1 && len(symbol) <= 3 {
		norm := strings.ToUpper(symbol[:1]) + strings.ToLower(symbol[1:])
		if z, ok := symbolNumber[norm]; ok {
			return z, nil
		}
	}
	return 0, fmt.Errorf("gobasis: unknown element symbol %q", symbol)
}

// Symbol returns the element symbol for the given atomic number.
func Symbol(z int) (string, error) {
	if s, ok := numberSymbol[z]; ok {
		return s, nil
	}
	return "", fmt.Errorf("gobasis: no element with atomic number %d", z)
}

//The orbital letters in angular-momentum order, shared by the NWChem,
//GAMESS and Gaussian codecs: s=0, p=1, d=2, f=3, g=4, h=5, i=6.
var orbitalLetters = []string{"s", "p", "d", "f", "g", "h", "i"}

// OrbitalLetter returns the lowercase letter for an angular momentum
// quantum number (0 -> "s", 1 -> "p", ...).
func OrbitalLetter(l int) (string, error) {
	if l < 0 || l >= len(orbitalLetters) {
		return "", fmt.Errorf("gobasis: no orbital letter for l=%d", l)
	}
	return orbitalLetters[l], nil
}

// AngularMomentum returns the angular momentum quantum number for an
// orbital letter, accepting either case.
func AngularMomentum(letter string) (int, error) {
	low := strings.ToLower(letter)
	for l, s := range orbitalLetters {
		if s == low {
			return l, nil
		}
	}
	return 0, fmt.Errorf("gobasis: unknown orbital letter %q", letter)
}
