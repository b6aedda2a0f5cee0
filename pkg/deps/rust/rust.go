// Package rust extracts Rust dependencies.
//
// Source files are scanned for use paths, which become module dependencies.
// A sibling Cargo.toml contributes its dependencies and dev-dependencies
// tables as versioned crate dependencies.
package rust

import (
	"regexp"

	"github.com/airseal/airseal/pkg/deps"
)

var useRE = regexp.MustCompile(`use\s+((?:(?:crate|self|super)::)?\w+(?:::\w+)*)`)

// Extractor implements deps.Extractor for Rust source files.
type Extractor struct{}

// NewExtractor creates a Rust extractor.
func NewExtractor() *Extractor { return &Extractor{} }

func (e *Extractor) Language() deps.Language { return deps.Rust }
func (e *Extractor) Extensions() []string    { return []string{".rs"} }

// Extract scans content for use paths and merges in the sibling Cargo.toml,
// if any.
func (e *Extractor) Extract(content []byte, path string, opts deps.Options) (*deps.Set, error) {
	opts = opts.WithDefaults()
	set := deps.NewSet()

	for _, m := range useRE.FindAllSubmatch(content, -1) {
		set.Add(deps.Dependency{
			Kind:     deps.KindModule,
			Name:     string(m[1]),
			Language: deps.Rust,
		})
	}

	parseCargo(set, path, opts)
	return set, nil
}
