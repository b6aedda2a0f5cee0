// Package languages provides the complete list of supported language
// extractors.
//
// This package exists to break import cycles: the individual language
// packages (python, rust, etc.) import pkg/deps, so pkg/deps cannot import
// them back. Consumers that need the full extractor list import this package
// instead.
//
// Usage:
//
//	import "github.com/airseal/airseal/pkg/deps/languages"
//
//	registry := languages.NewDefaultRegistry()
package languages

import (
	"github.com/airseal/airseal/pkg/deps"
	"github.com/airseal/airseal/pkg/deps/cpp"
	"github.com/airseal/airseal/pkg/deps/golang"
	"github.com/airseal/airseal/pkg/deps/java"
	"github.com/airseal/airseal/pkg/deps/javascript"
	"github.com/airseal/airseal/pkg/deps/python"
	"github.com/airseal/airseal/pkg/deps/rust"
)

// All returns the canonical list of supported language extractors.
func All() []deps.Extractor {
	return []deps.Extractor{
		python.NewExtractor(),
		javascript.NewExtractor(),
		java.NewExtractor(),
		cpp.NewExtractor(),
		golang.NewExtractor(),
		rust.NewExtractor(),
	}
}

// NewDefaultRegistry builds a Registry covering every supported language.
func NewDefaultRegistry() *deps.Registry {
	return deps.NewRegistry(All()...)
}
