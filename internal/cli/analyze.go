package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/airseal/airseal/pkg/deps"
	"github.com/airseal/airseal/pkg/deps/languages"
	"github.com/airseal/airseal/pkg/errors"
	"github.com/airseal/airseal/pkg/manifest"
)

// analysis is the outcome of the extraction+resolution phase, shared by the
// analyze and build commands.
type analysis struct {
	path     string
	language deps.Language
	direct   *deps.Set
	all      *deps.Set
	manifest *manifest.Manifest
	content  []byte
}

// analyzeReport is the JSON document printed by the analyze command.
type analyzeReport struct {
	File          string           `json:"file"`
	Language      deps.Language    `json:"language"`
	DirectImports []string         `json:"direct_imports"`
	Dependencies  []dependencyJSON `json:"dependencies"`
	Manifest      *manifestJSON    `json:"manifest"`
}

type dependencyJSON struct {
	Kind     deps.Kind     `json:"kind"`
	Name     string        `json:"name"`
	Version  string        `json:"version,omitempty"`
	Source   string        `json:"source,omitempty"`
	Language deps.Language `json:"language"`
}

type manifestJSON struct {
	Filename string           `json:"filename"`
	Entries  []manifest.Entry `json:"entries"`
	Content  string           `json:"content"`
}

// newAnalyzeCmd creates the analyze command: the extraction-only path.
// It prints the direct-import list and the synthesized manifest as JSON.
func newAnalyzeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a source file's dependencies",
		Long: `Analyze a source file's dependencies and synthesize its manifest.

The file's language is selected by extension. Direct dependencies are
extracted, locally-reachable dependency sources are followed recursively,
and the result is printed as a JSON document with the direct-import list
and the ecosystem-native manifest.

Examples:
  airseal analyze main.py
  airseal analyze server.js -o report.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			a, err := analyze(c.Context(), args[0])
			if err != nil {
				return err
			}
			return writeReport(a, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// analyze runs extraction and resolution for path and synthesizes the
// manifest for its language.
func analyze(ctx context.Context, path string) (*analysis, error) {
	logger := loggerFromContext(ctx)
	registry := languages.NewDefaultRegistry()

	// Unsupported extensions fail before the file is read.
	ex, err := registry.ForPath(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "reading %s", path)
	}

	opts := deps.Options{
		Logger: func(msg string, args ...any) { logger.Warnf(msg, args...) },
	}

	logger.Infof("Analyzing %s (%s)", path, ex.Language())
	prog := newProgress(logger)

	direct, err := ex.Extract(content, path, opts)
	if err != nil {
		return nil, err
	}

	all, err := deps.NewResolver(registry, opts).Resolve(path)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Found %d direct and %d total dependencies", direct.Len(), all.Len()))

	return &analysis{
		path:     path,
		language: ex.Language(),
		direct:   direct,
		all:      all,
		manifest: manifest.Synthesize(all, ex.Language()),
		content:  content,
	}, nil
}

// writeReport serializes the analysis as JSON to path (or stdout if empty).
func writeReport(a *analysis, path string) error {
	report := analyzeReport{
		File:          a.path,
		Language:      a.language,
		DirectImports: a.direct.Names(),
		Dependencies:  make([]dependencyJSON, 0, a.all.Len()),
		Manifest: &manifestJSON{
			Filename: a.manifest.Filename(),
			Entries:  a.manifest.Entries,
			Content:  a.manifest.Render(),
		},
	}
	for _, d := range a.all.Sorted() {
		report.Dependencies = append(report.Dependencies, dependencyJSON{
			Kind:     d.Kind,
			Name:     d.Name,
			Version:  d.Version,
			Source:   d.SourcePath,
			Language: d.Language,
		})
	}

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}
