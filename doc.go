/*
 * doc.go, part of gobasis.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package basis provides in-memory representations of Gaussian-type-orbital
basis sets and pseudopotentials, together with codecs for the line-oriented
text formats used to exchange them between quantum-chemistry programs.


	**goBasis capabilities**

    Reads/writes CP2K basis sets (GTO_BASIS_SETS style) and GTH
	pseudopotentials (GTH_POTENTIALS style), including the triangular
	non-local projector matrices.

    Reads/writes NWChem and GAMESS basis sets, and GAMESS/Gaussian94
	effective core potentials.

    Writes TurboRVB pseudopotential tables, determining the cutoff
	radius by sampling the radial potential.

    Opens basis-set/pseudopotential library files transparently,
	including gzip- and zstd-compressed ones, and filters their
	contents by element and tags (package library).

    Plots the radial channel potentials of an ECP (package ecpplot).

The root package holds the value types shared by all format subpackages:
BasisSet, GTHPseudopotential and ECPPseudopotential. They are plain data,
produced by the format parsers and consumed by the writers; nothing in this
library persists them or gives them identity. Each format lives in its own
subpackage (cp2k, nwchem, gamess, gaussian, turborvb), all of which take an
io.Reader/io.Writer and either fully parse, fully write, or return an error
naming the offending block.
*/
package basis
