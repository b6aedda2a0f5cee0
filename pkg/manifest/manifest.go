// Package manifest converts an accumulated dependency set into an
// ecosystem-native manifest document: a requirements list for Python, a
// package.json for JavaScript, a Cargo.toml for Rust, and so on.
//
// Only dependencies whose kind matches the ecosystem's installable package
// concept are included; header and bare module references are informational
// and excluded. Output ordering is stable by name, so identical inputs
// always synthesize byte-identical manifests.
package manifest

import (
	"sort"

	"github.com/airseal/airseal/pkg/deps"
)

// Entry is a single manifest line: a package name with an optional pinned
// version. An empty version means unconstrained (the ecosystem picks latest).
type Entry struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// Manifest is the per-language structured form of a dependency set.
type Manifest struct {
	Language deps.Language `json:"language"`
	Entries  []Entry       `json:"entries"`
}

// Synthesize builds the manifest for lang from set.
//
// When the same name appears both bare and pinned (e.g. a flask import next
// to flask==2.0.1 in requirements.txt), the pinned version wins. Conflicting
// pins are resolved deterministically by keeping the lexically greatest
// version.
func Synthesize(set *deps.Set, lang deps.Language) *Manifest {
	native := nativeKind(lang)
	versions := make(map[string]string)
	var names []string

	for _, d := range set.Sorted() {
		if d.Language != lang || d.Kind != native {
			continue
		}
		cur, seen := versions[d.Name]
		if !seen {
			names = append(names, d.Name)
			versions[d.Name] = d.Version
			continue
		}
		if d.Version != "" && (cur == "" || d.Version > cur) {
			versions[d.Name] = d.Version
		}
	}

	sort.Strings(names)
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Version: versions[name]})
	}

	return &Manifest{Language: lang, Entries: entries}
}

// nativeKind returns the installable dependency kind for lang.
func nativeKind(lang deps.Language) deps.Kind {
	if lang == deps.Rust {
		return deps.KindCrate
	}
	return deps.KindPackage
}

// Empty reports whether the manifest has no installable entries.
func (m *Manifest) Empty() bool { return len(m.Entries) == 0 }

// Filename returns the ecosystem-native manifest file name.
func (m *Manifest) Filename() string {
	switch m.Language {
	case deps.Python:
		return "requirements.txt"
	case deps.JavaScript:
		return "package.json"
	case deps.Java:
		return "build.gradle"
	case deps.CPP:
		return "CMakeLists.txt"
	case deps.Go:
		return "go.mod"
	case deps.Rust:
		return "Cargo.toml"
	}
	return "manifest.txt"
}
