package platform

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/odingame/forge/internal/runner"
)

type linuxPolicy struct{}

func (linuxPolicy) OS() string { return Linux }

func (linuxPolicy) ExecutableName(path string) string    { return executableName(false, path) }
func (linuxPolicy) SharedLibraryName(path string) string { return sharedLibraryName(false, path) }
func (linuxPolicy) StaticLibraryName(path string) string { return staticLibraryName(false, path) }

func (linuxPolicy) ProcessList() runner.Command {
	return runner.Command{Name: "ps", Args: []string{"-A"}, Capture: true}
}

func (linuxPolicy) DebugSymbolPattern() string { return "" }

// CompanionLibraries is empty: GLFW comes from the system library path.
func (linuxPolicy) CompanionLibraries() []string { return nil }

func (linuxPolicy) GameLibraryFlags(string, string, time.Time) []string { return nil }

func (linuxPolicy) LinkDir(_ context.Context, _ runner.Runner, target, link string) (bool, error) {
	if _, err := os.Lstat(link); err == nil {
		return false, nil
	}
	if err := os.Symlink(target, link); err != nil {
		return false, fmt.Errorf("creating symlink %s: %w", link, err)
	}
	return true, nil
}

func (linuxPolicy) LaunchCommand(exe string) runner.Command {
	return runner.Command{Name: exe}
}
