// Package java extracts Java dependencies.
//
// Source files are scanned for package and import statements. A sibling
// build file contributes versioned package dependencies: build.gradle wins
// when present, otherwise pom.xml is consulted.
package java

import (
	"regexp"

	"github.com/airseal/airseal/pkg/deps"
)

var (
	packageRE = regexp.MustCompile(`(?m)^\s*package\s+([\w.]+)\s*;`)
	importRE  = regexp.MustCompile(`(?m)^\s*import\s+(?:static\s+)?([\w.]+(?:\.\*)?)\s*;`)
)

// Extractor implements deps.Extractor for Java source files.
type Extractor struct{}

// NewExtractor creates a Java extractor.
func NewExtractor() *Extractor { return &Extractor{} }

func (e *Extractor) Language() deps.Language { return deps.Java }
func (e *Extractor) Extensions() []string    { return []string{".java"} }

// Extract scans content for package/import statements and merges in the
// sibling build file, if any.
func (e *Extractor) Extract(content []byte, path string, opts deps.Options) (*deps.Set, error) {
	opts = opts.WithDefaults()
	set := deps.NewSet()

	for _, re := range []*regexp.Regexp{packageRE, importRE} {
		for _, m := range re.FindAllSubmatch(content, -1) {
			set.Add(deps.Dependency{
				Kind:     deps.KindPackage,
				Name:     string(m[1]),
				Language: deps.Java,
			})
		}
	}

	parseBuildFile(set, path, opts)
	return set, nil
}
