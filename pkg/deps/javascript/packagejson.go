package javascript

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/airseal/airseal/pkg/deps"
)

type packageFile struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// parsePackageJSON reads a package.json next to path, if one exists, and
// adds every dependencies/devDependencies entry to set with its recorded
// version. A malformed file is logged and skipped.
func parsePackageJSON(set *deps.Set, path string, opts deps.Options) {
	pkgPath := filepath.Join(filepath.Dir(path), "package.json")
	data, err := os.ReadFile(pkgPath)
	if err != nil {
		return
	}

	var pkg packageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		opts.Logger("package.json skipped: %v", err)
		return
	}

	for _, section := range []map[string]string{pkg.Dependencies, pkg.DevDependencies} {
		for name, version := range section {
			set.Add(deps.Dependency{
				Kind:     deps.KindPackage,
				Name:     name,
				Version:  version,
				Language: deps.JavaScript,
			})
		}
	}
}
