/*Package library gives access to collections of basis-set and
pseudopotential data files through a small TOML manifest, with element- and
tag-based filtering of their contents. Data files may be stored plain or
compressed (gzip or zstd); they are decompressed transparently based on the
file extension. The manifest only describes files already on disk: fetching
a collection from wherever it is published is somebody else's job.*/
package library

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//Formats a manifest entry may declare.
const (
	FormatCP2KBasisSet = "cp2k-basisset"
	FormatCP2KPseudo   = "cp2k-pseudopotential"
	FormatGamessBasis  = "gamess-basisset"
	FormatGamessECP    = "gamess-ecp"
	FormatNWChemBasis  = "nwchem-basisset"
)

// Entry describes one data file of a library: a name to look it up by, the
// format of its contents, and its path, relative to the manifest file.
type Entry struct {
	Name   string `toml:"name"`
	Format string `toml:"format"`
	Path   string `toml:"path"`
}

// Manifest is the parsed description of a data library.
type Manifest struct {
	Entries []Entry `toml:"entry"`
	dir     string
}

// LoadManifest reads a TOML manifest from path. Entry paths are resolved
// relative to the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	m := new(Manifest)
	if _, err := toml.DecodeFile(path, m); err != nil {
		return nil, fmt.Errorf("library: reading manifest %s: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	for _, e := range m.Entries {
		if e.Name == "" || e.Format == "" || e.Path == "" {
			return nil, fmt.Errorf("library: manifest %s: every entry needs name, format and path", path)
		}
	}
	return m, nil
}

// Entry returns the manifest entry with the given name, or nil.
func (m *Manifest) Entry(name string) *Entry {
	for i := range m.Entries {
		if m.Entries[i].Name == name {
			return &m.Entries[i]
		}
	}
	return nil
}

//path resolves an entry's path against the manifest directory.
func (m *Manifest) path(e *Entry) string {
	if filepath.IsAbs(e.Path) {
		return e.Path
	}
	return filepath.Join(m.dir, e.Path)
}
