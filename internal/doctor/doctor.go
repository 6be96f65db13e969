// Package doctor runs diagnostic checks on a project: are the external tools
// installed, does the config file validate, and does the release directory
// hold what a full build produces.
package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/odingame/forge/internal/config"
	"github.com/odingame/forge/internal/platform"
	"github.com/odingame/forge/internal/runner"
	"github.com/odingame/forge/internal/toolchain"
)

// Report counts problems found across checks.
type Report struct {
	Missing  int
	Warnings int
	Failures int
}

// OK reports whether no check failed or found something missing.
func (r *Report) OK() bool {
	return r.Missing == 0 && r.Failures == 0
}

// Doctor runs checks for one project and platform.
type Doctor struct {
	Out      io.Writer
	Runner   runner.Runner
	Project  *config.Project
	Policy   platform.Policy
	LookPath func(string) (string, error)

	report Report
}

// New returns a Doctor that resolves binaries on PATH.
func New(out io.Writer, r runner.Runner, project *config.Project, policy platform.Policy) *Doctor {
	return &Doctor{Out: out, Runner: r, Project: project, Policy: policy, LookPath: exec.LookPath}
}

// RunAll runs every check and returns the combined report.
func (d *Doctor) RunAll(ctx context.Context) Report {
	d.CheckTools(ctx)
	d.CheckConfig()
	d.CheckRelease()
	return d.report
}

// Report returns the problems found so far.
func (d *Doctor) Report() Report { return d.report }

// CheckTools verifies the external tools the build invokes are on PATH.
func (d *Doctor) CheckTools(ctx context.Context) {
	s := d.Project.Settings
	fmt.Fprintln(d.Out, "Toolchain check:")

	compiler := toolchain.NewCompiler(s.Compiler)
	if d.checkBinary(compiler.Binary, true) {
		if v, err := compiler.Version(ctx, d.Runner); err != nil {
			fmt.Fprintf(d.Out, "  [WARN] %s version could not be read: %v\n", compiler.Binary, err)
			d.report.Warnings++
		} else {
			fmt.Fprintf(d.Out, "         %s\n", v)
		}
	}
	d.checkBinary(d.Policy.ProcessList().Name, true)
	d.checkBinary(toolchain.NewShaderCompiler(s.Shaders.Compiler).Binary, false)
	if len(s.NativeLibs) > 0 {
		d.checkBinary("git", true)
		d.checkBinary("cmake", true)
	}
}

func (d *Doctor) checkBinary(name string, required bool) bool {
	path, err := d.LookPath(name)
	if err != nil {
		if required {
			fmt.Fprintf(d.Out, "  [MISS] %s not found\n", name)
			d.report.Missing++
		} else {
			fmt.Fprintf(d.Out, "  [WARN] %s not found (optional)\n", name)
			d.report.Warnings++
		}
		return false
	}
	fmt.Fprintf(d.Out, "  [ OK ] %s found at %s\n", name, path)
	return true
}

// CheckConfig validates the project's config file against the schema.
func (d *Doctor) CheckConfig() {
	fmt.Fprintln(d.Out, "Config check:")

	path := config.FilePath(d.Project.Root)
	if d.Project.File != "" {
		path = d.Project.File
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(d.Out, "  [INFO] %s not found, using defaults\n", path)
		return
	}

	issues, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(d.Out, "  [FAIL] %v\n", err)
		d.report.Failures++
		return
	}
	if len(issues) > 0 {
		fmt.Fprintf(d.Out, "  [FAIL] %s: %d validation issue(s)\n", path, len(issues))
		for _, issue := range issues {
			fmt.Fprintf(d.Out, "    - %s\n", issue)
		}
		d.report.Failures++
		return
	}
	fmt.Fprintf(d.Out, "  [ OK ] %s is valid\n", path)
}

// CheckRelease inspects the release directory for the artifacts of a full
// build.
func (d *Doctor) CheckRelease() {
	s := d.Project.Settings
	release := d.Project.Path(s.ReleasePath)
	fmt.Fprintf(d.Out, "Release check (%s):\n", d.Policy.OS())

	if _, err := os.Stat(release); os.IsNotExist(err) {
		fmt.Fprintf(d.Out, "  [MISS] %s does not exist (run a full build)\n", release)
		d.report.Missing++
		return
	}

	d.checkFile(d.Policy.ExecutableName(filepath.Join(release, s.GameName)))
	d.checkFile(d.Policy.SharedLibraryName(filepath.Join(release, s.GameLibrary)))
	for _, rel := range d.Policy.CompanionLibraries() {
		d.checkFile(filepath.Join(release, filepath.Base(rel)))
	}
	d.checkAssetLink(filepath.Join(release, "assets"), d.Project.Path(s.AssetsDir))
}

func (d *Doctor) checkFile(path string) {
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(d.Out, "  [MISS] %s\n", path)
		d.report.Missing++
		return
	}
	fmt.Fprintf(d.Out, "  [ OK ] %s\n", path)
}

func (d *Doctor) checkAssetLink(link, want string) {
	target, err := platform.ReadLinkTarget(link)
	if err != nil {
		if _, statErr := os.Lstat(link); statErr == nil {
			fmt.Fprintf(d.Out, "  [WARN] %s exists but is not a link; asset edits will not show up\n", link)
			d.report.Warnings++
			return
		}
		fmt.Fprintf(d.Out, "  [MISS] %s link not found\n", link)
		d.report.Missing++
		return
	}
	if filepath.Clean(target) != filepath.Clean(want) {
		fmt.Fprintf(d.Out, "  [WARN] %s -> %s (expected %s)\n", link, target, want)
		d.report.Warnings++
		return
	}
	if _, err := os.Stat(target); err != nil {
		fmt.Fprintf(d.Out, "  [WARN] %s -> %s (target does not exist)\n", link, target)
		d.report.Warnings++
		return
	}
	fmt.Fprintf(d.Out, "  [ OK ] %s -> %s\n", link, target)
}
