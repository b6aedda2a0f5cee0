package golang

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/airseal/airseal/pkg/deps"
)

// parseGoMod reads a go.mod next to path, if one exists, and adds its
// direct require entries to set with their versions. Indirect dependencies
// are skipped. A missing file contributes nothing.
func parseGoMod(set *deps.Set, path string) {
	f, err := os.Open(filepath.Join(filepath.Dir(path), "go.mod"))
	if err != nil {
		return
	}
	defer f.Close()

	inRequire := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "require (") || line == "require(" {
			inRequire = true
			continue
		}
		if inRequire && line == ")" {
			inRequire = false
			continue
		}

		if strings.HasPrefix(line, "require ") && !strings.Contains(line, "(") {
			line = strings.TrimPrefix(line, "require ")
		} else if !inRequire {
			continue
		}

		if name, version, ok := parseRequireLine(line); ok {
			set.Add(deps.Dependency{
				Kind:     deps.KindPackage,
				Name:     name,
				Version:  version,
				Language: deps.Go,
			})
		}
	}
}

func parseRequireLine(line string) (name, version string, ok bool) {
	if strings.Contains(line, "// indirect") {
		return "", "", false
	}
	if idx := strings.Index(line, "//"); idx != -1 {
		line = line[:idx]
	}
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 {
		return "", "", false
	}
	name = fields[0]
	if len(fields) > 1 {
		version = fields[1]
	}
	return name, version, true
}
