// Package javascript extracts JavaScript dependencies.
//
// Source files are scanned for require(...) and import ... from '...'
// string literals, which become module dependencies. A sibling package.json
// contributes its dependencies and devDependencies as versioned package
// dependencies.
package javascript

import (
	"regexp"

	"github.com/airseal/airseal/pkg/deps"
)

var (
	requireRE = regexp.MustCompile(`(?:require|import)\s*\(\s*['"]([^'"]+)['"]\s*\)`)
	importRE  = regexp.MustCompile(`(?:import|export)[^'"\n]*?from\s+['"]([^'"]+)['"]`)
)

// Extractor implements deps.Extractor for JavaScript source files.
type Extractor struct{}

// NewExtractor creates a JavaScript extractor.
func NewExtractor() *Extractor { return &Extractor{} }

func (e *Extractor) Language() deps.Language { return deps.JavaScript }
func (e *Extractor) Extensions() []string    { return []string{".js"} }

// Extract scans content for module references and merges in the sibling
// package.json, if any.
func (e *Extractor) Extract(content []byte, path string, opts deps.Options) (*deps.Set, error) {
	opts = opts.WithDefaults()
	set := deps.NewSet()

	for _, re := range []*regexp.Regexp{requireRE, importRE} {
		for _, m := range re.FindAllSubmatch(content, -1) {
			set.Add(deps.Dependency{
				Kind:     deps.KindModule,
				Name:     string(m[1]),
				Language: deps.JavaScript,
			})
		}
	}

	parsePackageJSON(set, path, opts)
	return set, nil
}
