package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/odingame/forge/internal/runner"
)

type windowsPolicy struct{}

func (windowsPolicy) OS() string { return Windows }

func (windowsPolicy) ExecutableName(path string) string    { return executableName(true, path) }
func (windowsPolicy) SharedLibraryName(path string) string { return sharedLibraryName(true, path) }
func (windowsPolicy) StaticLibraryName(path string) string { return staticLibraryName(true, path) }

func (windowsPolicy) ProcessList() runner.Command {
	return runner.Command{Name: "tasklist", Capture: true}
}

func (windowsPolicy) DebugSymbolPattern() string { return "*.pdb" }

func (windowsPolicy) CompanionLibraries() []string {
	return []string{"vendor/glfw/lib/glfw3.dll"}
}

// GameLibraryFlags names the PDB after the time of day. A running driver
// keeps the previous library's PDB open, so every hot reload needs a fresh
// file name.
func (windowsPolicy) GameLibraryFlags(releasePath, libBase string, now time.Time) []string {
	stamp := now.Unix() % (60 * 60 * 24)
	return []string{fmt.Sprintf("-pdb-name:%s/%s-%d.pdb", filepath.ToSlash(releasePath), libBase, stamp)}
}

// LinkDir creates a directory junction, which unlike a symlink does not
// need developer mode.
func (windowsPolicy) LinkDir(ctx context.Context, r runner.Runner, target, link string) (bool, error) {
	if _, err := os.Lstat(link); err == nil {
		return false, nil
	}
	cmd := runner.Command{
		Name:    "cmd",
		Args:    []string{"/c", "mklink", "/J", backslashes(link), backslashes(target)},
		Capture: true,
	}
	if _, err := runner.Check(ctx, r, cmd); err != nil {
		return false, fmt.Errorf("creating junction %s: %w", link, err)
	}
	return true, nil
}

func (windowsPolicy) LaunchCommand(exe string) runner.Command {
	return runner.Command{Name: backslashes(exe)}
}

func backslashes(path string) string {
	return strings.ReplaceAll(path, "/", `\`)
}
