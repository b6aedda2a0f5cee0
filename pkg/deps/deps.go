// Package deps defines the dependency data model shared by all language
// extractors: the immutable Dependency value, the identity-deduplicated Set,
// the Extractor contract, and the extension-keyed Registry.
//
// The individual language packages (python, javascript, java, cpp, golang,
// rust) implement Extractor for their ecosystem. Consumers that need the full
// extractor list should import pkg/deps/languages, which exists to break the
// import cycle between this hub package and the language spokes.
package deps

import "sort"

// Kind classifies what a dependency refers to.
type Kind string

// Supported dependency kinds.
const (
	KindPackage Kind = "package" // registry package (pip, npm, maven, go modules)
	KindModule  Kind = "module"  // bare source-level module reference
	KindHeader  Kind = "header"  // C/C++ header
	KindCrate   Kind = "crate"   // Rust crate
)

// Language identifies a supported source ecosystem.
type Language string

// Supported languages.
const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	Java       Language = "java"
	CPP        Language = "cpp"
	Go         Language = "go"
	Rust       Language = "rust"
)

// Dependency is a single named requirement discovered during analysis.
//
// Identity is the tuple (Kind, Name, Version, Language). SourcePath, when
// set, is the resolved local file that satisfies the dependency; it drives
// resolver expansion but never participates in equality.
type Dependency struct {
	Kind       Kind
	Name       string
	Version    string
	SourcePath string
	Language   Language
}

// identity is the comparable dedup key for a Dependency.
type identity struct {
	kind     Kind
	name     string
	version  string
	language Language
}

func (d Dependency) id() identity {
	return identity{kind: d.Kind, name: d.Name, version: d.Version, language: d.Language}
}

// Set is a collection of Dependencies deduplicated by identity.
// Growth is union-only; nothing is ever removed during resolution.
type Set struct {
	items map[identity]Dependency
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{items: make(map[identity]Dependency)}
}

// Add inserts d unless an entry with the same identity already exists.
// It reports whether d was newly added. The first insertion wins, so a
// SourcePath recorded at discovery time is preserved.
func (s *Set) Add(d Dependency) bool {
	k := d.id()
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = d
	return true
}

// Union adds every entry of other and returns the dependencies that were
// newly inserted, preserving a stable order.
func (s *Set) Union(other *Set) []Dependency {
	var added []Dependency
	for _, d := range other.Sorted() {
		if s.Add(d) {
			added = append(added, d)
		}
	}
	return added
}

// Contains reports whether a dependency with d's identity is present.
func (s *Set) Contains(d Dependency) bool {
	_, ok := s.items[d.id()]
	return ok
}

// Len returns the number of distinct dependencies.
func (s *Set) Len() int { return len(s.items) }

// Sorted returns all dependencies ordered by language, kind, name, version.
// The ordering is stable across runs regardless of insertion order.
func (s *Set) Sorted() []Dependency {
	out := make([]Dependency, 0, len(s.items))
	for _, d := range s.items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Language != b.Language {
			return a.Language < b.Language
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Version < b.Version
	})
	return out
}

// Names returns the sorted, de-duplicated dependency names in the set.
func (s *Set) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, d := range s.Sorted() {
		if !seen[d.Name] {
			seen[d.Name] = true
			names = append(names, d.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Options configures extraction and resolution behavior.
type Options struct {
	Logger func(string, ...any) // Progress/warning callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}
