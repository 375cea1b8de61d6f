/*Package gaussian writes basis sets and reads/writes effective core
potentials in the Gaussian94-style general-basis layout ("element 0"
sections terminated by "****", ECP channels labeled by comment lines).*/
package gaussian

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	basis "github.com/rmera/gobasis"
)

// WriteBasisSet writes the basis set to w as a Gaussian94 general-basis
// section: "element 0", one "LETTER nexp 1.00" group per contracted shell,
// and a closing "****".
func WriteBasisSet(w io.Writer, b *basis.BasisSet) error {
	if err := b.Validate(); err != nil {
		return errDecorate(err, "WriteBasisSet")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s 0\n", b.Element)
	for _, block := range b.Blocks {
		col := 1
		for _, s := range block.L {
			letter, err := basis.OrbitalLetter(s.L)
			if err != nil {
				return errDecorate(Error{message: WrongHeader + ": " + err.Error(), block: b.Element + " " + b.Name}, "WriteBasisSet")
			}
			for rep := 0; rep < s.N; rep++ {
				fmt.Fprintf(bw, "%s %d 1.00\n", strings.ToUpper(letter), len(block.Coefficients))
				for _, row := range block.Coefficients {
					fmt.Fprintf(bw, "%18.8f %17.8f\n", row[0], row[col])
				}
				col++
			}
		}
	}
	fmt.Fprintln(bw, "****")
	return bw.Flush()
}
