package testrom

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Manifest lists the roms a batch run synthesizes, one [[rom]] table
// per output file.
type Manifest struct {
	Roms []Recipe `toml:"rom"`
}

// LoadManifest reads a TOML manifest. Absent recipe fields take the
// same defaults as in LoadRecipe.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, err
	}
	if len(m.Roms) == 0 {
		return Manifest{}, fmt.Errorf("no [[rom]] table in %s", path)
	}

	seen := make(map[string]int, len(m.Roms))
	for i := range m.Roms {
		m.Roms[i].fillDefaults()

		// concurrent writes to the same path would race
		out := m.Roms[i].Out
		if j, ok := seen[out]; ok {
			return Manifest{}, fmt.Errorf("rom #%d and #%d both write to %s", j, i, out)
		}
		seen[out] = i
	}
	return m, nil
}
