package deps

import (
	"os"
	"path/filepath"

	"github.com/airseal/airseal/pkg/errors"
)

// Resolver expands a dependency set by following locally-resolvable source
// paths until fixpoint. Each Resolver carries its own visited-path set, so a
// fresh Resolver must be created per analysis run; state never leaks between
// requests.
type Resolver struct {
	registry *Registry
	opts     Options
	visited  map[string]bool
}

// NewResolver creates a resolver for a single analysis run.
func NewResolver(registry *Registry, opts Options) *Resolver {
	return &Resolver{
		registry: registry,
		opts:     opts.WithDefaults(),
		visited:  make(map[string]bool),
	}
}

// Resolve analyzes entryPath and every locally-reachable dependency source,
// returning the accumulated dependency set.
//
// The traversal is an explicit worklist over absolute paths with a visited
// set, so it terminates even when local includes form a cycle: a path is
// expanded at most once. Dependencies without a SourcePath are leaves.
//
// Failures on the entry file (unsupported extension, unreadable content,
// parse error) abort the run. Failures on transitively discovered files
// degrade to leaves: the dependency that referenced them stays in the set,
// a warning is logged, and traversal continues.
func (r *Resolver) Resolve(entryPath string) (*Set, error) {
	abs, err := filepath.Abs(entryPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolving %s", entryPath)
	}

	// Fail on unknown extensions before touching file content.
	if _, err := r.registry.ForPath(abs); err != nil {
		return nil, err
	}

	all := NewSet()
	queue := []string{abs}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		if r.visited[path] {
			continue
		}
		r.visited[path] = true

		entry := path == abs
		found, err := r.extractFile(path)
		if err != nil {
			if entry {
				return nil, err
			}
			r.opts.Logger("skipping %s: %v", path, err)
			continue
		}

		for _, d := range all.Union(found) {
			if d.SourcePath == "" || r.visited[d.SourcePath] {
				continue
			}
			queue = append(queue, d.SourcePath)
		}
	}

	return all, nil
}

// extractFile reads path and runs its language's extraction strategy.
func (r *Resolver) extractFile(path string) (*Set, error) {
	ex, err := r.registry.ForPath(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		// Discovered but unreadable: the path vanished between discovery
		// and read, or was never accessible.
		return nil, errors.Wrap(errors.ErrCodeResolution, err, "reading %s", path)
	}
	return ex.Extract(content, path, r.opts)
}
