package deps

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/airseal/airseal/pkg/errors"
)

// Extractor parses the direct dependencies of one language.
type Extractor interface {
	// Language returns the ecosystem this extractor handles.
	Language() Language
	// Extensions returns the file extensions (with leading dot) that map to
	// this extractor.
	Extensions() []string
	// Extract parses content and returns its direct dependencies. The path is
	// used to locate sibling manifest files and to resolve local references;
	// content is never re-read from disk.
	Extract(content []byte, path string, opts Options) (*Set, error)
}

// Registry maps file extensions to their extraction strategy.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry builds a Registry from the given extractors.
// Later extractors win on extension collisions.
func NewRegistry(extractors ...Extractor) *Registry {
	r := &Registry{byExt: make(map[string]Extractor)}
	for _, ex := range extractors {
		for _, ext := range ex.Extensions() {
			r.byExt[strings.ToLower(ext)] = ex
		}
	}
	return r
}

// ForPath selects the extractor for path based on its extension alone.
// No file content is read; unknown extensions fail fast with
// UNSUPPORTED_LANGUAGE.
func (r *Registry) ForPath(path string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	ex, ok := r.byExt[ext]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedLanguage,
			"unsupported file type: %s (supported: %s)", ext, strings.Join(r.Extensions(), ", "))
	}
	return ex, nil
}

// Extensions returns the sorted list of registered extensions.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
