// Package artifact persists exported image archives for the delivery layer.
//
// Two stores are provided: LocalStore copies artifacts into a directory on
// disk, and S3Store uploads them to an S3-compatible object store. The
// active store is chosen by configuration; local is the default.
package artifact

import "context"

// Store persists a build artifact and returns its final location.
type Store interface {
	// Put stores the file at path under name and returns a location string
	// (a filesystem path or an object URL) suitable for display.
	Put(ctx context.Context, name, path string) (string, error)
}
