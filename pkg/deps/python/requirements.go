package python

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/airseal/airseal/pkg/deps"
)

var depNameRE = regexp.MustCompile(`^([a-zA-Z0-9][-a-zA-Z0-9._]*)`)

// parseRequirements reads a requirements.txt next to path, if one exists,
// and adds each listed package to set. Version-comparison operators are
// stripped; when the pin is an exact "==" the version is recorded.
// A missing or malformed file contributes nothing and is never fatal.
func parseRequirements(set *deps.Set, path string, opts deps.Options) {
	reqPath := filepath.Join(filepath.Dir(path), "requirements.txt")
	f, err := os.Open(reqPath)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '-' {
			continue
		}
		if strings.Contains(line, "://") || strings.HasPrefix(line, "git+") {
			continue
		}

		m := depNameRE.FindStringSubmatch(line)
		if len(m) < 2 {
			continue
		}
		name := m[1]

		version := ""
		if i := strings.Index(line, "=="); i >= 0 {
			version = strings.TrimSpace(line[i+2:])
			if j := strings.IndexAny(version, " #;"); j >= 0 {
				version = strings.TrimSpace(version[:j])
			}
		}

		set.Add(deps.Dependency{
			Kind:     deps.KindPackage,
			Name:     name,
			Version:  version,
			Language: deps.Python,
		})
	}
	if err := scanner.Err(); err != nil {
		opts.Logger("requirements.txt skipped: %v", err)
	}
}
