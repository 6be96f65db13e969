package build

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/odingame/forge/internal/runner"
)

func TestShaderSteps(t *testing.T) {
	p := newProject(t, "")
	f := runner.NewFake()
	var out bytes.Buffer
	c := newConfigurator(t, p, "linux-x86_64", f, &out)

	if err := c.ShaderSteps().Execute(context.Background(), &out); err != nil {
		t.Fatalf("shader steps failed: %v", err)
	}

	dir := filepath.Join(p.Root, "src", "vulkan_test")
	want := []string{
		"glslc " + filepath.Join(dir, "base.vert") + " -o " + filepath.Join(dir, "vert.spv"),
		"glslc " + filepath.Join(dir, "base.frag") + " -o " + filepath.Join(dir, "frag.spv"),
	}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestShaderSteps_FailureHalts(t *testing.T) {
	p := newProject(t, "")
	f := runner.NewFake().Respond("glslc", runner.Output{ExitCode: 2})
	var out bytes.Buffer
	c := newConfigurator(t, p, "linux-x86_64", f, &out)

	if err := c.ShaderSteps().Execute(context.Background(), &out); err == nil {
		t.Fatal("expected failure")
	}
	if len(f.Commands) != 1 {
		t.Errorf("second shader compiled after a failure: %v", f.Lines())
	}
}

func TestNativeSteps_BuildAndStage(t *testing.T) {
	p := newProject(t, `native_libs:
  - name: cgltf
    repo: https://example.com/cgltf.git
    ref: v1.14
    cmake_args: ["-DBUILD_SHARED_LIBS=ON"]
`)
	src := filepath.Join(p.Root, "lib", "cgltf", "src")
	buildDir := filepath.Join(src, "build")

	f := runner.NewFake()
	f.OnRun = func(cmd runner.Command) {
		// Pretend CMake produced the library in a nested output directory.
		if cmd.Name == "cmake" && cmd.Args[0] == "--build" {
			out := filepath.Join(buildDir, "out")
			if err := os.MkdirAll(out, 0755); err != nil {
				t.Error(err)
				return
			}
			if err := os.WriteFile(filepath.Join(out, "libcgltf.so"), []byte("so"), 0644); err != nil {
				t.Error(err)
			}
		}
	}
	var out bytes.Buffer
	c := newConfigurator(t, p, "linux-x86_64", f, &out)

	if err := c.NativeSteps().Execute(context.Background(), &out); err != nil {
		t.Fatalf("native steps failed: %v", err)
	}

	want := []string{
		"git clone --depth 1 --branch v1.14 https://example.com/cgltf.git " + src,
		"cmake -S " + src + " -B " + buildDir + " -DBUILD_SHARED_LIBS=ON",
		"cmake --build " + buildDir + " --config Release",
	}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	staged := filepath.Join(p.Root, "lib", "cgltf", "linux", "shared", "libcgltf.so")
	if _, err := os.Stat(staged); err != nil {
		t.Errorf("library not staged: %v", err)
	}
}

func TestNativeSteps_SkipsCloneWhenPresent(t *testing.T) {
	p := newProject(t, "native_libs:\n  - name: cgltf\n    repo: https://example.com/cgltf.git\n")
	src := filepath.Join(p.Root, "lib", "cgltf", "src")
	if err := os.MkdirAll(filepath.Join(src, "build"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "build", "libcgltf.so"), []byte("so"), 0644); err != nil {
		t.Fatal(err)
	}

	f := runner.NewFake()
	var out bytes.Buffer
	c := newConfigurator(t, p, "linux-x86_64", f, &out)

	if err := c.NativeSteps().Execute(context.Background(), &out); err != nil {
		t.Fatal(err)
	}
	if f.Count("git") != 0 {
		t.Errorf("existing checkout was cloned again: %v", f.Lines())
	}
}

func TestNativeSteps_MissingArtifact(t *testing.T) {
	p := newProject(t, "native_libs:\n  - name: cgltf\n    repo: https://example.com/cgltf.git\n")
	if err := os.MkdirAll(filepath.Join(p.Root, "lib", "cgltf", "src", "build"), 0755); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	c := newConfigurator(t, p, "windows-x86_64", runner.NewFake(), &out)

	err := c.NativeSteps().Execute(context.Background(), &out)
	if err == nil || !strings.Contains(err.Error(), "no cgltf.dll produced") {
		t.Errorf("expected missing artifact error, got %v", err)
	}
}
