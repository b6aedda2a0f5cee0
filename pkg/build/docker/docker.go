// Package docker implements build.ContainerService using the Docker SDK.
package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/archive"
)

// Adapter talks to a Docker daemon.
type Adapter struct {
	cli *client.Client
}

// NewAdapter creates an adapter from the environment (DOCKER_HOST etc.),
// negotiating the API version with the daemon.
func NewAdapter() (*Adapter, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Adapter{cli: cli}, nil
}

// Build tars contextDir, runs the image build, and returns the streamed
// build log. A daemon-reported error is returned alongside whatever log was
// captured before the failure.
func (a *Adapter) Build(ctx context.Context, contextDir, tag string) (string, error) {
	tarStream, err := archive.TarWithOptions(contextDir, &archive.TarOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to create build context: %w", err)
	}
	defer tarStream.Close()

	resp, err := a.cli.ImageBuild(ctx, tarStream, types.ImageBuildOptions{
		Tags:       []string{tag},
		Dockerfile: "Dockerfile",
		Remove:     true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start build: %w", err)
	}
	defer resp.Body.Close()

	return drainBuildLog(resp.Body)
}

// Export streams the image as a tar archive to dest.
func (a *Adapter) Export(ctx context.Context, tag string, dest io.Writer) error {
	rc, err := a.cli.ImageSave(ctx, []string{tag})
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	defer rc.Close()

	if _, err := io.Copy(dest, rc); err != nil {
		return fmt.Errorf("failed to write image archive: %w", err)
	}
	return nil
}

// buildMessage is one JSON message on the daemon's build stream.
type buildMessage struct {
	Stream string `json:"stream"`
	Error  string `json:"error"`
}

// drainBuildLog reads the build stream to completion, collecting stream
// lines. The daemon reports build failures in-band as error messages.
func drainBuildLog(body io.Reader) (string, error) {
	var log strings.Builder
	dec := json.NewDecoder(body)
	for {
		var msg buildMessage
		if err := dec.Decode(&msg); err != nil {
			if err == io.EOF {
				break
			}
			return log.String(), fmt.Errorf("reading build output: %w", err)
		}
		if msg.Stream != "" {
			log.WriteString(msg.Stream)
		}
		if msg.Error != "" {
			return log.String(), fmt.Errorf("build failed: %s", msg.Error)
		}
	}
	return log.String(), nil
}
