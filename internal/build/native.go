package build

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/odingame/forge/internal/config"
	"github.com/odingame/forge/internal/ctxlog"
	"github.com/odingame/forge/internal/platform"
	"github.com/odingame/forge/internal/runner"
	"github.com/odingame/forge/internal/toolchain"
)

// Native libraries live under <deps_dir>/<name>/: the clone in src/, the
// CMake tree in src/build/, and the staged shared library in
// <os>/shared/, which is what full builds copy into the release directory.

func (c *Configurator) nativeDir(name string) string {
	return filepath.Join(c.Project.Path(c.Project.Settings.DepsDir), name)
}

func (c *Configurator) stagedLibrary(name string) string {
	dir := filepath.Join(c.nativeDir(name), c.Policy.OS(), "shared")
	return c.Policy.SharedLibraryName(filepath.Join(dir, name))
}

// NativeSteps fetches, builds and stages every configured native library.
func (c *Configurator) NativeSteps() Steps {
	var steps Steps
	for _, lib := range c.Project.Settings.NativeLibs {
		steps = append(steps, c.nativeLibSteps(lib)...)
	}
	return steps
}

func (c *Configurator) nativeLibSteps(lib config.NativeLib) Steps {
	src := filepath.Join(c.nativeDir(lib.Name), "src")
	buildDir := filepath.Join(src, "build")
	staged := c.stagedLibrary(lib.Name)

	clone := toolchain.Clone(lib.Repo, lib.Ref, src)
	clone.Dir = c.Project.Root

	return Steps{
		{
			Name:   "fetch " + lib.Name,
			Detail: clone.String(),
			Run: func(ctx context.Context) error {
				if _, err := os.Stat(src); err == nil {
					ctxlog.FromContext(ctx).Debug("source already present", "lib", lib.Name, "path", src)
					return nil
				}
				if err := os.MkdirAll(filepath.Dir(src), 0755); err != nil {
					return err
				}
				_, err := runner.Check(ctx, c.Runner, clone)
				return err
			},
		},
		c.commandStep("configure "+lib.Name, toolchain.CMakeConfigure(src, buildDir, lib.CMakeArgs)),
		c.commandStep("build "+lib.Name, toolchain.CMakeBuild(buildDir)),
		{
			Name:   "stage " + lib.Name,
			Detail: buildDir + " -> " + staged,
			Run: func(ctx context.Context) error {
				built, err := findFile(buildDir, filepath.Base(staged))
				if err != nil {
					return err
				}
				if err := os.MkdirAll(filepath.Dir(staged), 0755); err != nil {
					return err
				}
				if err := platform.CopyFile(built, staged); err != nil {
					return fmt.Errorf("staging %s: %w", lib.Name, err)
				}
				return nil
			},
		},
	}
}

var errFound = errors.New("found")

// findFile returns the first file named name under root.
func findFile(root, name string) (string, error) {
	var match string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() == name {
			match = path
			return errFound
		}
		return nil
	})
	if errors.Is(err, errFound) {
		return match, nil
	}
	if err != nil {
		return "", fmt.Errorf("searching %s: %w", root, err)
	}
	return "", fmt.Errorf("no %s produced under %s", name, root)
}
