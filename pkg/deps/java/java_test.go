package java

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/airseal/airseal/pkg/deps"
)

func TestExtractor_ImportStatements(t *testing.T) {
	src := `package com.example.app;

import java.util.List;
import static org.junit.Assert.assertEquals;
import com.google.common.collect.ImmutableList;

public class Main {}
`
	set, err := NewExtractor().Extract([]byte(src), "Main.java", deps.Options{})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	want := []string{
		"com.example.app",
		"com.google.common.collect.ImmutableList",
		"java.util.List",
		"org.junit.Assert.assertEquals",
	}
	if got := set.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestExtractor_WildcardImport(t *testing.T) {
	set, err := NewExtractor().Extract([]byte("import java.util.*;\n"), "App.java", deps.Options{})
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !set.Contains(deps.Dependency{Kind: deps.KindPackage, Name: "java.util.*", Language: deps.Java}) {
		t.Error("wildcard import missing")
	}
}

func TestParseGradle(t *testing.T) {
	set := deps.NewSet()
	data := `dependencies {
    implementation 'com.google.guava:guava:32.1.3-jre'
    implementation "org.slf4j:slf4j-api"
    implementation 'junit:junit:4.13.2'
    implementation 'broken'
}`
	parseGradle(set, []byte(data))

	tests := []struct {
		name    string
		version string
	}{
		{"com.google.guava:guava", "32.1.3-jre"},
		{"org.slf4j:slf4j-api", ""},
		{"junit:junit", "4.13.2"},
	}
	if set.Len() != len(tests) {
		t.Errorf("Len = %d, want %d", set.Len(), len(tests))
	}
	for _, tt := range tests {
		want := deps.Dependency{Kind: deps.KindPackage, Name: tt.name, Version: tt.version, Language: deps.Java}
		if !set.Contains(want) {
			t.Errorf("missing %s version=%q", tt.name, tt.version)
		}
	}
}

func TestParsePOM(t *testing.T) {
	set := deps.NewSet()
	data := `<?xml version="1.0"?>
<project>
  <dependencies>
    <dependency>
      <groupId>org.springframework</groupId>
      <artifactId>spring-core</artifactId>
      <version>6.1.0</version>
    </dependency>
    <dependency>
      <groupId>com.fasterxml.jackson.core</groupId>
      <artifactId>jackson-databind</artifactId>
    </dependency>
    <dependency>
      <artifactId>orphan</artifactId>
    </dependency>
  </dependencies>
</project>`
	parsePOM(set, []byte(data), deps.Options{}.WithDefaults())

	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2", set.Len())
	}
	if !set.Contains(deps.Dependency{Kind: deps.KindPackage, Name: "org.springframework:spring-core", Version: "6.1.0", Language: deps.Java}) {
		t.Error("spring-core entry missing")
	}
	if !set.Contains(deps.Dependency{Kind: deps.KindPackage, Name: "com.fasterxml.jackson.core:jackson-databind", Language: deps.Java}) {
		t.Error("unversioned jackson-databind entry missing")
	}
}

func TestParseBuildFile_GradleWinsOverPOM(t *testing.T) {
	dir := t.TempDir()
	gradle := `implementation 'com.google.guava:guava:32.1.3-jre'`
	pom := `<project><dependencies><dependency><groupId>org.x</groupId><artifactId>y</artifactId></dependency></dependencies></project>`
	if err := os.WriteFile(filepath.Join(dir, "build.gradle"), []byte(gradle), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pom.xml"), []byte(pom), 0644); err != nil {
		t.Fatal(err)
	}

	set := deps.NewSet()
	parseBuildFile(set, filepath.Join(dir, "Main.java"), deps.Options{}.WithDefaults())

	if set.Len() != 1 {
		t.Fatalf("Len = %d, want 1", set.Len())
	}
	if !set.Contains(deps.Dependency{Kind: deps.KindPackage, Name: "com.google.guava:guava", Version: "32.1.3-jre", Language: deps.Java}) {
		t.Error("gradle entry missing; pom.xml should be ignored when build.gradle exists")
	}
}
