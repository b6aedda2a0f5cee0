package golang

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/airseal/airseal/pkg/deps"
)

func TestExtractor_ImportForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			"import block",
			"package main\n\nimport (\n\t\"fmt\"\n\n\t\"github.com/spf13/cobra\"\n\tlog \"github.com/charmbracelet/log\"\n)\n",
			[]string{"fmt", "github.com/charmbracelet/log", "github.com/spf13/cobra"},
		},
		{
			"single import",
			"package main\n\nimport \"net/http\"\n",
			[]string{"net/http"},
		},
		{
			"aliased single import",
			"package main\n\nimport stdjson \"encoding/json\"\n",
			[]string{"encoding/json"},
		},
		{
			"no imports",
			"package main\n\nfunc main() {}\n",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewExtractor().Extract([]byte(tt.src), filepath.Join(t.TempDir(), "main.go"), deps.Options{})
			if err != nil {
				t.Fatalf("Extract failed: %v", err)
			}
			if got := set.Names(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseGoMod(t *testing.T) {
	dir := t.TempDir()
	gomod := `module example.com/demo

go 1.22

require (
	github.com/google/uuid v1.6.0
	github.com/spf13/cobra v1.10.1
	golang.org/x/sys v0.25.0 // indirect
)

require github.com/joho/godotenv v1.5.1
`
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0644); err != nil {
		t.Fatal(err)
	}

	set := deps.NewSet()
	parseGoMod(set, filepath.Join(dir, "main.go"))

	tests := []struct {
		name    string
		version string
	}{
		{"github.com/google/uuid", "v1.6.0"},
		{"github.com/spf13/cobra", "v1.10.1"},
		{"github.com/joho/godotenv", "v1.5.1"},
	}
	if set.Len() != len(tests) {
		t.Errorf("Len = %d, want %d (indirect entries skipped)", set.Len(), len(tests))
	}
	for _, tt := range tests {
		want := deps.Dependency{Kind: deps.KindPackage, Name: tt.name, Version: tt.version, Language: deps.Go}
		if !set.Contains(want) {
			t.Errorf("missing %s %s", tt.name, tt.version)
		}
	}
}

func TestParseRequireLine(t *testing.T) {
	tests := []struct {
		line    string
		name    string
		version string
		ok      bool
	}{
		{"github.com/google/uuid v1.6.0", "github.com/google/uuid", "v1.6.0", true},
		{"golang.org/x/sys v0.25.0 // indirect", "", "", false},
		{"github.com/x/y v1.0.0 // direct note", "github.com/x/y", "v1.0.0", true},
		{"", "", "", false},
	}

	for _, tt := range tests {
		name, version, ok := parseRequireLine(tt.line)
		if name != tt.name || version != tt.version || ok != tt.ok {
			t.Errorf("parseRequireLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.line, name, version, ok, tt.name, tt.version, tt.ok)
		}
	}
}
