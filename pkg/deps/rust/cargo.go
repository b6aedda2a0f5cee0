package rust

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/airseal/airseal/pkg/deps"
)

type cargoFile struct {
	Dependencies    map[string]any `toml:"dependencies"`
	DevDependencies map[string]any `toml:"dev-dependencies"`
}

// parseCargo reads a Cargo.toml next to path, if one exists, and adds its
// dependencies/dev-dependencies entries as crate dependencies. Values may be
// a bare version string or a table with a version field. A malformed file is
// logged and skipped.
func parseCargo(set *deps.Set, path string, opts deps.Options) {
	data, err := os.ReadFile(filepath.Join(filepath.Dir(path), "Cargo.toml"))
	if err != nil {
		return
	}

	var cargo cargoFile
	if err := toml.Unmarshal(data, &cargo); err != nil {
		opts.Logger("Cargo.toml skipped: %v", err)
		return
	}

	for _, section := range []map[string]any{cargo.Dependencies, cargo.DevDependencies} {
		for name, value := range section {
			set.Add(deps.Dependency{
				Kind:     deps.KindCrate,
				Name:     name,
				Version:  cargoVersion(value),
				Language: deps.Rust,
			})
		}
	}
}

// cargoVersion extracts the version from a dependency value: either a bare
// string ("1.0") or a table with a version key ({ version = "1.0", ... }).
func cargoVersion(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["version"].(string); ok {
			return s
		}
	}
	return ""
}
