// Package descriptor synthesizes deterministic build descriptors: the base
// image, dependency-install and compile steps, run command, and build
// context files needed to turn a manifest plus an entry file into a
// container image.
//
// Generation is pure: the same (manifest, language, entry content) always
// yields byte-identical descriptor text.
package descriptor

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/airseal/airseal/pkg/deps"
	"github.com/airseal/airseal/pkg/manifest"
)

// Pinned base images per language runtime.
const (
	baseImagePython     = "python:3.11-slim"
	baseImageJavaScript = "node:20-slim"
	baseImageJava       = "eclipse-temurin:17-jdk-jammy"
	baseImageCPP        = "gcc:13"
	baseImageGo         = "golang:1.22"
	baseImageRust       = "rust:1.75"
)

var publicClassRE = regexp.MustCompile(`public\s+class\s+(\w+)`)

// Descriptor fully determines one container build invocation.
type Descriptor struct {
	BaseImage     string
	DepCommands   []string
	BuildCommands []string
	RunCommand    string
	// ContextFiles maps build-context file names (which may contain
	// subdirectories) to their content. It always includes the entry file
	// and a Dockerfile.
	ContextFiles map[string]string
}

// Generate builds the descriptor for m's language from the entry file.
// entryName is the base name of the uploaded file; entryContent its text.
func Generate(m *manifest.Manifest, entryName string, entryContent []byte) *Descriptor {
	entryName = filepath.Base(entryName)

	var d *Descriptor
	switch m.Language {
	case deps.Python:
		d = generatePython(m, entryName)
	case deps.JavaScript:
		d = generateJavaScript(m, entryName)
	case deps.Java:
		// javac requires the file name to match its public class.
		if m := publicClassRE.FindSubmatch(entryContent); m != nil {
			entryName = string(m[1]) + ".java"
		}
		d = generateJava(entryName)
	case deps.CPP:
		d = generateCPP(m, entryName)
	case deps.Go:
		d = generateGo(m, entryName)
	case deps.Rust:
		// cargo expects the binary source at src/main.rs.
		entryName = "src/main.rs"
		d = generateRust(m)
	default:
		d = &Descriptor{ContextFiles: make(map[string]string)}
	}

	d.ContextFiles[entryName] = string(entryContent)
	d.ContextFiles["Dockerfile"] = d.Dockerfile()
	return d
}

func generatePython(m *manifest.Manifest, entryName string) *Descriptor {
	d := &Descriptor{
		BaseImage:    baseImagePython,
		RunCommand:   runCommand("python", entryName),
		ContextFiles: make(map[string]string),
	}
	if !m.Empty() {
		d.DepCommands = []string{
			"COPY requirements.txt .",
			"RUN pip install --no-cache-dir -r requirements.txt",
		}
		d.ContextFiles[m.Filename()] = m.Render()
	}
	return d
}

func generateJavaScript(m *manifest.Manifest, entryName string) *Descriptor {
	d := &Descriptor{
		BaseImage:    baseImageJavaScript,
		RunCommand:   runCommand("node", entryName),
		ContextFiles: make(map[string]string),
	}
	if !m.Empty() {
		d.DepCommands = []string{
			"COPY package.json .",
			"RUN npm install",
		}
		d.ContextFiles[m.Filename()] = m.Render()
	}
	return d
}

// generateJava compiles the single file with javac and packages a runnable
// jar.
func generateJava(entryName string) *Descriptor {
	base := strings.TrimSuffix(entryName, ".java")

	return &Descriptor{
		BaseImage: baseImageJava,
		BuildCommands: []string{
			fmt.Sprintf("RUN mkdir -p build && javac -d build %s && cd build && jar cfe %s.jar %s *.class",
				entryName, base, base),
		},
		RunCommand:   runCommand("java", "-jar", "build/"+base+".jar"),
		ContextFiles: make(map[string]string),
	}
}

func generateCPP(m *manifest.Manifest, entryName string) *Descriptor {
	cmake := m.Render() + fmt.Sprintf("\nadd_executable(app %s)\n", entryName)

	return &Descriptor{
		BaseImage: baseImageCPP,
		DepCommands: []string{
			"RUN apt-get update && apt-get install -y cmake",
		},
		BuildCommands: []string{"RUN cmake . && make"},
		RunCommand:    runCommand("./app"),
		ContextFiles:  map[string]string{m.Filename(): cmake},
	}
}

func generateGo(m *manifest.Manifest, entryName string) *Descriptor {
	d := &Descriptor{
		BaseImage:     baseImageGo,
		BuildCommands: []string{"RUN go build -o app"},
		RunCommand:    runCommand("./app"),
		// go build needs a module file even without dependencies.
		ContextFiles: map[string]string{m.Filename(): m.Render()},
	}
	if !m.Empty() {
		d.DepCommands = []string{
			"COPY go.mod .",
			"RUN go mod download",
		}
	}
	return d
}

// generateRust pre-builds dependencies against a stub main in the install
// step so they are cached independently of the entry source.
func generateRust(m *manifest.Manifest) *Descriptor {
	d := &Descriptor{
		BaseImage:     baseImageRust,
		BuildCommands: []string{"RUN cargo build --release"},
		RunCommand:    runCommand("./target/release/app"),
		ContextFiles:  map[string]string{m.Filename(): m.Render()},
	}
	if !m.Empty() {
		d.DepCommands = []string{
			"COPY Cargo.toml .",
			"RUN mkdir src && echo 'fn main() {}' > src/main.rs",
			"RUN cargo build --release",
			"RUN rm -rf src",
		}
	}
	return d
}

// Dockerfile renders the descriptor as Dockerfile text.
func (d *Descriptor) Dockerfile() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FROM %s\n", d.BaseImage)
	b.WriteString("WORKDIR /app\n")
	for _, cmd := range d.DepCommands {
		b.WriteString(cmd + "\n")
	}
	b.WriteString("COPY . .\n")
	for _, cmd := range d.BuildCommands {
		b.WriteString(cmd + "\n")
	}
	fmt.Fprintf(&b, "CMD %s\n", d.RunCommand)
	return b.String()
}

// runCommand renders an exec-form CMD argument list.
func runCommand(args ...string) string {
	data, _ := json.Marshal(args)
	return string(data)
}
