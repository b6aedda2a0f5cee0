// Package build submits build descriptors to a container build service and
// collects the resulting artifact.
//
// The external service is abstracted behind the narrow ContainerService
// interface so the orchestrator can be tested against a fake without a
// running daemon; the docker subpackage provides the real implementation.
package build

import (
	"context"
	"io"
)

// ContainerService is the external collaborator that compiles a build
// context into an image and can export it as a portable artifact.
type ContainerService interface {
	// Build builds the image tagged tag from the Dockerfile in contextDir
	// and returns the captured build log. A non-nil error means the build
	// failed; the log is still returned when available.
	Build(ctx context.Context, contextDir, tag string) (string, error)

	// Export writes the image tagged tag as a portable tar stream to dest.
	Export(ctx context.Context, tag string, dest io.Writer) error
}
