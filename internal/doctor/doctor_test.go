package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/odingame/forge/internal/config"
	"github.com/odingame/forge/internal/platform"
	"github.com/odingame/forge/internal/runner"
)

func setup(t *testing.T, yaml string) (*config.Project, platform.Policy) {
	t.Helper()
	root := t.TempDir()
	if yaml != "" {
		if err := os.WriteFile(filepath.Join(root, "forge.yaml"), []byte(yaml), 0644); err != nil {
			t.Fatal(err)
		}
	}
	p, err := config.Load(root, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	pol, err := platform.ForTarget("linux-x86_64")
	if err != nil {
		t.Fatal(err)
	}
	return p, pol
}

func lookPathFor(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestCheckTools(t *testing.T) {
	p, pol := setup(t, "")
	var out bytes.Buffer
	f := runner.NewFake().Respond("odin", runner.Output{Stdout: "odin version dev-2024-05\n"})
	d := New(&out, f, p, pol)
	d.LookPath = lookPathFor("odin", "ps")

	d.CheckTools(context.Background())

	s := out.String()
	if !strings.Contains(s, "[ OK ] odin found") || !strings.Contains(s, "odin version dev-2024-05") {
		t.Errorf("compiler not reported:\n%s", s)
	}
	if !strings.Contains(s, "[WARN] glslc not found (optional)") {
		t.Errorf("optional shader compiler not reported:\n%s", s)
	}
	if strings.Contains(s, "cmake") {
		t.Errorf("cmake checked without native libs:\n%s", s)
	}
	if r := d.Report(); !r.OK() || r.Warnings != 1 {
		t.Errorf("report = %+v", r)
	}
}

func TestCheckTools_MissingCompiler(t *testing.T) {
	p, pol := setup(t, "native_libs:\n  - name: cgltf\n    repo: https://example.com/cgltf.git\n")
	var out bytes.Buffer
	d := New(&out, runner.NewFake(), p, pol)
	d.LookPath = lookPathFor("ps", "glslc", "git")

	d.CheckTools(context.Background())

	if !strings.Contains(out.String(), "[MISS] odin not found") || !strings.Contains(out.String(), "[MISS] cmake not found") {
		t.Errorf("missing tools not reported:\n%s", out.String())
	}
	if r := d.Report(); r.OK() || r.Missing != 2 {
		t.Errorf("report = %+v", r)
	}
}

func TestCheckConfig(t *testing.T) {
	p, pol := setup(t, "game_name: odingame\n")
	var out bytes.Buffer
	d := New(&out, runner.NewFake(), p, pol)
	d.CheckConfig()
	if !strings.Contains(out.String(), "is valid") {
		t.Errorf("output:\n%s", out.String())
	}

	// Break the file after loading.
	if err := os.WriteFile(p.File, []byte("log_level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	d.CheckConfig()
	if !strings.Contains(out.String(), "[FAIL]") || !strings.Contains(out.String(), "/log_level") {
		t.Errorf("output:\n%s", out.String())
	}
	if d.Report().Failures != 1 {
		t.Errorf("report = %+v", d.Report())
	}
}

func TestCheckConfig_Defaults(t *testing.T) {
	p, pol := setup(t, "")
	var out bytes.Buffer
	d := New(&out, runner.NewFake(), p, pol)
	d.CheckConfig()
	if !strings.Contains(out.String(), "using defaults") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestCheckRelease(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses symlinks")
	}
	p, pol := setup(t, "")
	release := filepath.Join(p.Root, "bin")
	assets := filepath.Join(p.Root, "assets")
	for _, dir := range []string{release, assets} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"odingame", "libgame_code.so"} {
		if err := os.WriteFile(filepath.Join(release, name), nil, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Symlink(assets, filepath.Join(release, "assets")); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	d := New(&out, runner.NewFake(), p, pol)
	d.CheckRelease()

	if strings.Contains(out.String(), "[MISS]") || strings.Contains(out.String(), "[WARN]") {
		t.Errorf("unexpected problems:\n%s", out.String())
	}
	if r := d.Report(); !r.OK() {
		t.Errorf("report = %+v", d.Report())
	}
}

func TestCheckRelease_Missing(t *testing.T) {
	p, pol := setup(t, "")
	var out bytes.Buffer
	d := New(&out, runner.NewFake(), p, pol)
	d.CheckRelease()
	if !strings.Contains(out.String(), "does not exist") || d.Report().Missing != 1 {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestCheckRelease_AssetsNotALink(t *testing.T) {
	p, pol := setup(t, "")
	if err := os.MkdirAll(filepath.Join(p.Root, "bin", "assets"), 0755); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	d := New(&out, runner.NewFake(), p, pol)
	d.CheckRelease()
	if !strings.Contains(out.String(), "is not a link") {
		t.Errorf("output:\n%s", out.String())
	}
}
