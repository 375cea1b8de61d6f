/*Package cp2k reads and writes basis sets and GTH pseudopotentials in the
text formats of CP2K's GTO_BASIS_SETS and GTH_POTENTIALS data files. Both
formats are sequences of blocks, one per (element, name) entry, introduced
by a header line with the element symbol and one or more identifiers; blank
lines and #-comments may appear anywhere between blocks.*/
package cp2k
