package java

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/airseal/airseal/pkg/deps"
)

var gradleDepRE = regexp.MustCompile(`implementation\s+['"]([^'"]+)['"]`)

// parseBuildFile merges dependencies from a sibling build file into set.
// build.gradle takes precedence over pom.xml when both exist. Malformed
// files are logged and skipped.
func parseBuildFile(set *deps.Set, path string, opts deps.Options) {
	dir := filepath.Dir(path)

	if data, err := os.ReadFile(filepath.Join(dir, "build.gradle")); err == nil {
		parseGradle(set, data)
		return
	}
	if data, err := os.ReadFile(filepath.Join(dir, "pom.xml")); err == nil {
		parsePOM(set, data, opts)
	}
}

// parseGradle extracts implementation "group:artifact:version" coordinates.
func parseGradle(set *deps.Set, data []byte) {
	for _, m := range gradleDepRE.FindAllSubmatch(data, -1) {
		parts := strings.Split(string(m[1]), ":")
		if len(parts) < 2 {
			continue
		}
		version := ""
		if len(parts) > 2 {
			version = parts[2]
		}
		set.Add(deps.Dependency{
			Kind:     deps.KindPackage,
			Name:     parts[0] + ":" + parts[1],
			Version:  version,
			Language: deps.Java,
		})
	}
}

type pomProject struct {
	Dependencies []pomDependency `xml:"dependencies>dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

// parsePOM extracts groupId:artifactId coordinates with optional versions.
func parsePOM(set *deps.Set, data []byte, opts deps.Options) {
	var pom pomProject
	if err := xml.Unmarshal(data, &pom); err != nil {
		opts.Logger("pom.xml skipped: %v", err)
		return
	}
	for _, dep := range pom.Dependencies {
		if dep.GroupID == "" || dep.ArtifactID == "" {
			continue
		}
		set.Add(deps.Dependency{
			Kind:     deps.KindPackage,
			Name:     dep.GroupID + ":" + dep.ArtifactID,
			Version:  dep.Version,
			Language: deps.Java,
		})
	}
}
