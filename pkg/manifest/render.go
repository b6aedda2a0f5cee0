package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/airseal/airseal/pkg/deps"
)

// Render produces the manifest as ecosystem-native text. Entries are already
// name-sorted, and map-backed formats (package.json, Cargo.toml) encode with
// sorted keys, so the output is deterministic.
func (m *Manifest) Render() string {
	switch m.Language {
	case deps.Python:
		return m.renderRequirements()
	case deps.JavaScript:
		return m.renderPackageJSON()
	case deps.Java:
		return m.renderGradle()
	case deps.CPP:
		return m.renderCMake()
	case deps.Go:
		return m.renderGoMod()
	case deps.Rust:
		return m.renderCargo()
	}
	return ""
}

func (m *Manifest) renderRequirements() string {
	var b strings.Builder
	for _, e := range m.Entries {
		if e.Version != "" {
			fmt.Fprintf(&b, "%s==%s\n", e.Name, e.Version)
		} else {
			fmt.Fprintf(&b, "%s\n", e.Name)
		}
	}
	return b.String()
}

func (m *Manifest) renderPackageJSON() string {
	pkg := struct {
		Name         string            `json:"name"`
		Version      string            `json:"version"`
		Dependencies map[string]string `json:"dependencies"`
	}{
		Name:         "app",
		Version:      "1.0.0",
		Dependencies: make(map[string]string),
	}
	for _, e := range m.Entries {
		version := e.Version
		if version == "" {
			version = "latest"
		}
		pkg.Dependencies[e.Name] = version
	}
	data, _ := json.MarshalIndent(pkg, "", "  ")
	return string(data) + "\n"
}

func (m *Manifest) renderGradle() string {
	var b strings.Builder
	b.WriteString("dependencies {\n")
	for _, e := range m.Entries {
		coord := e.Name
		if e.Version != "" {
			coord += ":" + e.Version
		}
		fmt.Fprintf(&b, "    implementation \"%s\"\n", coord)
	}
	b.WriteString("}\n")
	return b.String()
}

func (m *Manifest) renderCMake() string {
	var b strings.Builder
	b.WriteString("cmake_minimum_required(VERSION 3.10)\n")
	b.WriteString("project(app)\n\n")
	b.WriteString("set(CMAKE_CXX_STANDARD 17)\n")
	for _, e := range m.Entries {
		if e.Version != "" {
			fmt.Fprintf(&b, "find_package(%s %s REQUIRED)\n", e.Name, e.Version)
		} else {
			fmt.Fprintf(&b, "find_package(%s REQUIRED)\n", e.Name)
		}
	}
	return b.String()
}

func (m *Manifest) renderGoMod() string {
	var b strings.Builder
	b.WriteString("module app\n\ngo 1.22\n")
	if len(m.Entries) > 0 {
		b.WriteString("\nrequire (\n")
		for _, e := range m.Entries {
			version := e.Version
			if version == "" {
				version = "latest"
			}
			fmt.Fprintf(&b, "\t%s %s\n", e.Name, version)
		}
		b.WriteString(")\n")
	}
	return b.String()
}

func (m *Manifest) renderCargo() string {
	cargo := struct {
		Package struct {
			Name    string `toml:"name"`
			Version string `toml:"version"`
			Edition string `toml:"edition"`
		} `toml:"package"`
		Dependencies map[string]string `toml:"dependencies"`
	}{Dependencies: make(map[string]string)}
	cargo.Package.Name = "app"
	cargo.Package.Version = "0.1.0"
	cargo.Package.Edition = "2021"

	for _, e := range m.Entries {
		version := e.Version
		if version == "" {
			version = "*"
		}
		cargo.Dependencies[e.Name] = version
	}

	var buf bytes.Buffer
	_ = toml.NewEncoder(&buf).Encode(cargo)
	return buf.String()
}
