package basis

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var valenceTag = regexp.MustCompile(`^q(\d+)$`)

// DeriveNames takes the identifier tokens of a header line (everything after
// the element symbol) and returns the primary name, the full alias list and
// the tags. The longest identifier becomes the name: families that encode
// their valence-electron count do it by appending -qN to one of the
// identifiers, so the longest one carries the most information. The alias
// list keeps the name itself first, then the remaining identifiers, longest
// first.
func DeriveNames(identifiers []string) (name string, aliases, tags []string) {
	ids := make([]string, len(identifiers))
	copy(ids, identifiers)
	sort.SliceStable(ids, func(i, j int) bool { return len(ids[i]) > len(ids[j]) })
	if len(ids) == 0 {
		return "", nil, nil
	}
	name = ids[0]
	tags = strings.Split(name, "-")
	aliases = ids
	return name, aliases, tags
}

// ValenceElectrons derives the number of valence electrons targeted by a
// basis set or pseudopotential from its tags. A qN tag gives the count
// directly; if several qN tags with *different* N are present the encoding
// is ambiguous and treated as unknown rather than as an error. Failing
// that, an ALL or ALLELECTRON tag means the full electron count of the
// element. Returns 0 when the count is unknown.
func ValenceElectrons(tags []string, element string) int {
	nel := 0
	for _, tag := range tags {
		m := valenceTag.FindStringSubmatch(tag)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		if nel == 0 {
			nel = n
			continue //keep going, there may be conflicting tags
		}
		if nel != n {
			//several different qN tags, ignore all of them
			nel = 0
			break
		}
	}
	if nel != 0 {
		return nel
	}
	for _, tag := range tags {
		if tag == "ALL" || tag == "ALLELECTRON" {
			if z, err := AtomicNumber(element); err == nil {
				return z
			}
			return 0
		}
	}
	return 0
}
