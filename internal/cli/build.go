package cli

import (
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/airseal/airseal/pkg/build"
	"github.com/airseal/airseal/pkg/build/docker"
	"github.com/airseal/airseal/pkg/descriptor"
)

// newBuildCmd creates the build command: the full pipeline from source file
// to exported container image artifact.
func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Build a container image for a source file",
		Long: `Build a self-contained container image for a source file.

The file is analyzed, its dependencies are written as an ecosystem-native
manifest, and a deterministic build descriptor is generated and submitted
to the Docker daemon. On success the image is exported as a portable tar
artifact.

Examples:
  airseal build main.py
  AIRSEAL_OUTPUT_DIR=./out airseal build server.js`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runBuild(c, args[0])
		},
	}
	return cmd
}

func runBuild(c *cobra.Command, path string) error {
	ctx := c.Context()
	logger := loggerFromContext(ctx)
	cfg := loadConfig()

	a, err := analyze(ctx, path)
	if err != nil {
		return err
	}

	d := descriptor.Generate(a.manifest, filepath.Base(a.path), a.content)
	logger.Debugf("descriptor:\n%s", d.ContextFiles["Dockerfile"])

	svc, err := docker.NewAdapter()
	if err != nil {
		return err
	}
	orch := build.NewOrchestrator(svc, cfg.outputDir, cfg.buildTimeout, logger)

	spinner := newSpinnerWithContext(ctx, "Building image "+build.ImageTag(a.path))
	spinner.Start()
	result, err := orch.Submit(ctx, d, filepath.Base(a.path))
	spinner.Stop()

	if err != nil {
		if result != nil && result.Log != "" {
			logger.Debugf("build log:\n%s", result.Log)
		}
		printError("Build failed: %v", err)
		return err
	}

	store, err := cfg.store(ctx)
	if err != nil {
		return err
	}
	location, err := store.Put(ctx, filepath.Base(result.ArtifactPath), result.ArtifactPath)
	if err != nil {
		return err
	}

	printSuccess("Image built and exported")
	printKeyValue("image", build.ImageTag(a.path))
	printKeyValue("size", humanize.Bytes(uint64(result.SizeBytes)))
	printFile(location)
	return nil
}
