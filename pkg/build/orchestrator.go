package build

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/airseal/airseal/pkg/descriptor"
	"github.com/airseal/airseal/pkg/errors"
)

// DefaultTimeout bounds the external build call.
const DefaultTimeout = 10 * time.Minute

var tagSanitizeRE = regexp.MustCompile(`[^a-z0-9._-]+`)

// Result is the outcome of one build invocation.
type Result struct {
	ArtifactPath string // exported image tar, empty on failure
	SizeBytes    int64
	Success      bool
	Log          string
}

// Orchestrator materializes build contexts, drives the container build
// service, and exports the produced image. It is safe for concurrent use:
// every submission gets its own uniquely named context directory.
type Orchestrator struct {
	service ContainerService
	timeout time.Duration
	outDir  string
	logger  *log.Logger
}

// NewOrchestrator creates an orchestrator around svc. Artifacts are written
// to outDir (the system temp directory if empty). A non-positive timeout
// falls back to DefaultTimeout.
func NewOrchestrator(svc ContainerService, outDir string, timeout time.Duration, logger *log.Logger) *Orchestrator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if outDir == "" {
		outDir = os.TempDir()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Orchestrator{service: svc, timeout: timeout, outDir: outDir, logger: logger}
}

// Submit builds d into an image named after name and exports it as a tar
// artifact. The build context directory is removed on every exit path.
//
// Failures are never retried: a failed compile step is not transient. When
// the wall-clock budget is exceeded the returned error carries
// BUILD_TIMEOUT; other build failures carry BUILD_ERROR. In both cases the
// Result holds the captured log with Success=false.
func (o *Orchestrator) Submit(ctx context.Context, d *descriptor.Descriptor, name string) (*Result, error) {
	dir := filepath.Join(os.TempDir(), "airseal-build-"+uuid.NewString())
	if err := materialize(dir, d.ContextFiles); err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	tag := ImageTag(name)
	o.logger.Info("building image", "tag", tag, "context", dir)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	buildLog, err := o.service.Build(ctx, dir, tag)
	if err != nil {
		res := &Result{Success: false, Log: buildLog}
		if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return res, errors.Wrap(errors.ErrCodeBuildTimeout, err,
				"build of %s exceeded %s budget", tag, o.timeout)
		}
		return res, errors.Wrap(errors.ErrCodeBuildError, err, "build of %s failed", tag)
	}

	artifact, size, err := o.export(ctx, tag, name)
	if err != nil {
		return &Result{Success: false, Log: buildLog}, err
	}

	o.logger.Info("image exported", "tag", tag, "artifact", artifact, "bytes", size)
	return &Result{
		ArtifactPath: artifact,
		SizeBytes:    size,
		Success:      true,
		Log:          buildLog,
	}, nil
}

// export writes the image to a tar file in the output directory and returns
// its path and size.
func (o *Orchestrator) export(ctx context.Context, tag, name string) (string, int64, error) {
	path := filepath.Join(o.outDir, "airseal-"+sanitize(name)+".tar")
	f, err := os.Create(path)
	if err != nil {
		return "", 0, errors.Wrap(errors.ErrCodeInternal, err, "creating artifact file")
	}
	defer f.Close()

	if err := o.service.Export(ctx, tag, f); err != nil {
		os.Remove(path)
		return "", 0, errors.Wrap(errors.ErrCodeBuildError, err, "exporting %s", tag)
	}

	info, err := f.Stat()
	if err != nil {
		return "", 0, errors.Wrap(errors.ErrCodeInternal, err, "sizing artifact")
	}
	return path, info.Size(), nil
}

// materialize writes the context files into dir, creating any subdirectories
// the file names require.
func materialize(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating build context")
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			os.RemoveAll(dir)
			return errors.Wrap(errors.ErrCodeInternal, err, "creating build context")
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			os.RemoveAll(dir)
			return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", name)
		}
	}
	return nil
}

// ImageTag derives a valid image tag from an entry file name, e.g.
// "Main.java" -> "airseal-app:main.java".
func ImageTag(name string) string {
	return fmt.Sprintf("airseal-app:%s", sanitize(name))
}

func sanitize(name string) string {
	s := strings.ToLower(filepath.Base(name))
	s = tagSanitizeRE.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-.")
	if s == "" {
		s = "app"
	}
	return s
}
