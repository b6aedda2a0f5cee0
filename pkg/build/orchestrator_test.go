package build

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/airseal/airseal/pkg/descriptor"
	"github.com/airseal/airseal/pkg/errors"
)

// fakeService records calls and returns scripted results.
type fakeService struct {
	buildLog   string
	buildErr   error
	buildDelay time.Duration
	exportData string
	exportErr  error

	contextDir string
	builtTag   string
}

func (f *fakeService) Build(ctx context.Context, contextDir, tag string) (string, error) {
	f.contextDir = contextDir
	f.builtTag = tag
	if f.buildDelay > 0 {
		select {
		case <-time.After(f.buildDelay):
		case <-ctx.Done():
			return f.buildLog, ctx.Err()
		}
	}
	return f.buildLog, f.buildErr
}

func (f *fakeService) Export(ctx context.Context, tag string, dest io.Writer) error {
	if f.exportErr != nil {
		return f.exportErr
	}
	_, err := dest.Write([]byte(f.exportData))
	return err
}

func testDescriptor() *descriptor.Descriptor {
	return &descriptor.Descriptor{
		BaseImage:  "python:3.11-slim",
		RunCommand: `["python","app.py"]`,
		ContextFiles: map[string]string{
			"app.py":      "print('hi')\n",
			"Dockerfile":  "FROM python:3.11-slim\n",
			"src/nest.py": "x = 1\n",
		},
	}
}

func TestSubmit_Success(t *testing.T) {
	svc := &fakeService{buildLog: "Step 1/3 : FROM ...", exportData: "tar-bytes"}
	outDir := t.TempDir()
	o := NewOrchestrator(svc, outDir, time.Minute, nil)

	res, err := o.Submit(context.Background(), testDescriptor(), "app.py")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if !res.Success {
		t.Error("Success = false, want true")
	}
	if res.Log != svc.buildLog {
		t.Errorf("Log = %q, want %q", res.Log, svc.buildLog)
	}
	if want := filepath.Join(outDir, "airseal-app.py.tar"); res.ArtifactPath != want {
		t.Errorf("ArtifactPath = %q, want %q", res.ArtifactPath, want)
	}
	if res.SizeBytes != int64(len(svc.exportData)) {
		t.Errorf("SizeBytes = %d, want %d", res.SizeBytes, len(svc.exportData))
	}

	data, err := os.ReadFile(res.ArtifactPath)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if string(data) != svc.exportData {
		t.Errorf("artifact content = %q, want %q", data, svc.exportData)
	}
}

func TestSubmit_MaterializesContext(t *testing.T) {
	var seen map[string]bool
	svc := &fakeService{}
	probe := &probeService{inner: svc, onBuild: func(contextDir string) {
		seen = map[string]bool{}
		for _, name := range []string{"app.py", "Dockerfile", filepath.Join("src", "nest.py")} {
			if _, err := os.Stat(filepath.Join(contextDir, name)); err == nil {
				seen[name] = true
			}
		}
	}}

	o := NewOrchestrator(probe, t.TempDir(), time.Minute, nil)
	if _, err := o.Submit(context.Background(), testDescriptor(), "app.py"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	for _, name := range []string{"app.py", "Dockerfile", filepath.Join("src", "nest.py")} {
		if !seen[name] {
			t.Errorf("context file %s not materialized", name)
		}
	}
}

// probeService wraps a fakeService to observe the context dir mid-build.
type probeService struct {
	inner   *fakeService
	onBuild func(contextDir string)
}

func (p *probeService) Build(ctx context.Context, contextDir, tag string) (string, error) {
	if p.onBuild != nil {
		p.onBuild(contextDir)
	}
	return p.inner.Build(ctx, contextDir, tag)
}

func (p *probeService) Export(ctx context.Context, tag string, dest io.Writer) error {
	return p.inner.Export(ctx, tag, dest)
}

func TestSubmit_ContextDirRemoved(t *testing.T) {
	tests := []struct {
		name string
		svc  *fakeService
	}{
		{"success", &fakeService{exportData: "x"}},
		{"build failure", &fakeService{buildErr: stderrors.New("compile failed")}},
		{"export failure", &fakeService{exportErr: stderrors.New("daemon gone")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &probeService{inner: tt.svc}
			var contextDir string
			probe.onBuild = func(dir string) { contextDir = dir }

			o := NewOrchestrator(probe, t.TempDir(), time.Minute, nil)
			o.Submit(context.Background(), testDescriptor(), "app.py")

			if contextDir == "" {
				t.Fatal("build never invoked")
			}
			if _, err := os.Stat(contextDir); !os.IsNotExist(err) {
				t.Errorf("context dir %s still exists", contextDir)
			}
		})
	}
}

func TestSubmit_BuildFailure(t *testing.T) {
	svc := &fakeService{buildLog: "error: expected ';'", buildErr: stderrors.New("exit 1")}
	o := NewOrchestrator(svc, t.TempDir(), time.Minute, nil)

	res, err := o.Submit(context.Background(), testDescriptor(), "app.py")
	if err == nil {
		t.Fatal("expected error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeBuildError {
		t.Errorf("code = %q, want %q", code, errors.ErrCodeBuildError)
	}
	if res == nil || res.Success {
		t.Fatal("want failed Result alongside the error")
	}
	if res.Log != svc.buildLog {
		t.Errorf("Log = %q, want captured build output", res.Log)
	}
}

func TestSubmit_Timeout(t *testing.T) {
	svc := &fakeService{buildDelay: time.Second}
	o := NewOrchestrator(svc, t.TempDir(), 10*time.Millisecond, nil)

	res, err := o.Submit(context.Background(), testDescriptor(), "app.py")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeBuildTimeout {
		t.Errorf("code = %q, want %q", code, errors.ErrCodeBuildTimeout)
	}
	if res == nil || res.Success {
		t.Fatal("want failed Result alongside the error")
	}
}

func TestImageTag(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"app.py", "airseal-app:app.py"},
		{"Main.java", "airseal-app:main.java"},
		{"/uploads/My Script!.py", "airseal-app:my-script-.py"},
		{"...", "airseal-app:app"},
	}
	for _, tt := range tests {
		if got := ImageTag(tt.name); got != tt.want {
			t.Errorf("ImageTag(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
