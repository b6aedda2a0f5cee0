// Package golang extracts Go dependencies.
//
// Source files are scanned for both block-style and single-line import
// forms. A sibling go.mod contributes its direct require entries as
// versioned package dependencies.
package golang

import (
	"regexp"
	"strings"

	"github.com/airseal/airseal/pkg/deps"
)

var (
	importBlockRE  = regexp.MustCompile(`(?s)import\s*\((.*?)\)`)
	singleImportRE = regexp.MustCompile(`import\s+(?:\w+\s+)?"([^"]+)"`)
	quotedPathRE   = regexp.MustCompile(`"([^"]+)"`)
)

// Extractor implements deps.Extractor for Go source files.
type Extractor struct{}

// NewExtractor creates a Go extractor.
func NewExtractor() *Extractor { return &Extractor{} }

func (e *Extractor) Language() deps.Language { return deps.Go }
func (e *Extractor) Extensions() []string    { return []string{".go"} }

// Extract scans content for imports and merges in the sibling go.mod,
// if any.
func (e *Extractor) Extract(content []byte, path string, opts deps.Options) (*deps.Set, error) {
	opts = opts.WithDefaults()
	set := deps.NewSet()

	for _, block := range importBlockRE.FindAllSubmatch(content, -1) {
		for _, line := range strings.Split(string(block[1]), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "//") {
				continue
			}
			if m := quotedPathRE.FindStringSubmatch(line); len(m) > 1 {
				addImport(set, m[1])
			}
		}
	}

	for _, m := range singleImportRE.FindAllSubmatch(content, -1) {
		addImport(set, string(m[1]))
	}

	parseGoMod(set, path)
	return set, nil
}

func addImport(set *deps.Set, path string) {
	set.Add(deps.Dependency{
		Kind:     deps.KindPackage,
		Name:     path,
		Language: deps.Go,
	})
}
