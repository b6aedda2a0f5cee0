// Package cpp extracts C and C++ dependencies.
//
// Source files are scanned for #include directives. System headers
// (#include <...>) become plain header dependencies; local headers
// (#include "...") are resolved relative to the including file, and when the
// resolved path exists the dependency records it as SourcePath, which later
// drives resolver expansion. A sibling CMakeLists.txt contributes
// find_package entries as package dependencies.
package cpp

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/airseal/airseal/pkg/deps"
)

var (
	systemIncludeRE = regexp.MustCompile(`#include\s*<([^>]+)>`)
	localIncludeRE  = regexp.MustCompile(`#include\s*"([^"]+)"`)
	findPackageRE   = regexp.MustCompile(`find_package\s*\(\s*(\w+)(?:\s+(\d+(?:\.\d+)*))?[^)]*\)`)
)

// Extractor implements deps.Extractor for C/C++ source and header files.
type Extractor struct{}

// NewExtractor creates a C/C++ extractor.
func NewExtractor() *Extractor { return &Extractor{} }

func (e *Extractor) Language() deps.Language { return deps.CPP }

func (e *Extractor) Extensions() []string {
	return []string{".cpp", ".cc", ".cxx", ".hpp", ".h"}
}

// Extract scans content for includes and merges in the sibling
// CMakeLists.txt, if any.
func (e *Extractor) Extract(content []byte, path string, opts deps.Options) (*deps.Set, error) {
	opts = opts.WithDefaults()
	set := deps.NewSet()
	dir := filepath.Dir(path)

	for _, m := range systemIncludeRE.FindAllSubmatch(content, -1) {
		set.Add(deps.Dependency{
			Kind:     deps.KindHeader,
			Name:     string(m[1]),
			Language: deps.CPP,
		})
	}

	for _, m := range localIncludeRE.FindAllSubmatch(content, -1) {
		include := string(m[1])
		dep := deps.Dependency{
			Kind:     deps.KindHeader,
			Name:     include,
			Language: deps.CPP,
		}
		resolved := filepath.Join(dir, include)
		if _, err := os.Stat(resolved); err == nil {
			dep.SourcePath = resolved
		}
		set.Add(dep)
	}

	parseCMake(set, dir)
	return set, nil
}

// parseCMake adds find_package(NAME [VERSION]) entries from a sibling
// CMakeLists.txt. A missing file contributes nothing.
func parseCMake(set *deps.Set, dir string) {
	data, err := os.ReadFile(filepath.Join(dir, "CMakeLists.txt"))
	if err != nil {
		return
	}
	for _, m := range findPackageRE.FindAllSubmatch(data, -1) {
		set.Add(deps.Dependency{
			Kind:     deps.KindPackage,
			Name:     string(m[1]),
			Version:  string(m[2]),
			Language: deps.CPP,
		})
	}
}
