package artifact

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore copies artifacts into a directory on the local filesystem.
type LocalStore struct {
	Dir string
}

// NewLocalStore creates a store rooted at dir, creating it if necessary.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{Dir: dir}, nil
}

// Put copies the file at path to <dir>/<name> and returns the destination
// path. If the source already lives at the destination it is left in place.
func (s *LocalStore) Put(_ context.Context, name, path string) (string, error) {
	dest := filepath.Join(s.Dir, filepath.Base(name))
	if abs, err := filepath.Abs(path); err == nil {
		if destAbs, err := filepath.Abs(dest); err == nil && abs == destAbs {
			return dest, nil
		}
	}

	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dest)
		return "", err
	}
	return dest, nil
}
