package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/odingame/forge/internal/runner"
)

// Supported operating system identifiers.
const (
	Windows = "windows"
	Linux   = "linux"
)

// Policy answers the OS-specific questions of a build.
type Policy interface {
	// OS returns Windows or Linux.
	OS() string

	// ExecutableName normalizes path to this OS's executable naming rule.
	ExecutableName(path string) string
	// SharedLibraryName normalizes path to this OS's shared library rule.
	SharedLibraryName(path string) string
	// StaticLibraryName normalizes path to this OS's static library rule.
	StaticLibraryName(path string) string

	// ProcessList returns the command that lists running processes.
	ProcessList() runner.Command
	// DebugSymbolPattern is the glob for stale debug symbol files in the
	// release directory, or "" when the OS keeps symbols in the binary.
	DebugSymbolPattern() string
	// CompanionLibraries lists shared libraries, relative to the compiler
	// root, that must sit next to the driver executable.
	CompanionLibraries() []string
	// GameLibraryFlags returns extra compiler flags for the reloadable
	// library built into releasePath.
	GameLibraryFlags(releasePath, libBase string, now time.Time) []string

	// LinkDir makes link point at the directory target. It reports false
	// when link already exists and was left untouched.
	LinkDir(ctx context.Context, r runner.Runner, target, link string) (bool, error)
	// LaunchCommand returns the command that starts the built executable.
	LaunchCommand(exe string) runner.Command
}

// ForTarget selects the policy for a target tag such as "windows-x86_64".
func ForTarget(target string) (Policy, error) {
	t := strings.ToLower(target)
	switch {
	case strings.Contains(t, Windows):
		return windowsPolicy{}, nil
	case strings.Contains(t, Linux):
		return linuxPolicy{}, nil
	default:
		return nil, fmt.Errorf("unsupported target %q: expected a %s or %s target", target, Windows, Linux)
	}
}

// HostTarget returns the target tag of the running host, e.g. "linux-x86_64".
func HostTarget() string {
	return runtime.GOOS + "-" + archTag(runtime.GOARCH)
}

// MatchHost returns an error unless target names the same OS and
// architecture as host. Tags compare case-insensitively and "amd64" equals
// "x86_64".
func MatchHost(target, host string) error {
	if normalizeTarget(target) == normalizeTarget(host) {
		return nil
	}
	return fmt.Errorf("target %s cannot be built on a %s host: cross-compilation is not supported", target, host)
}

func normalizeTarget(tag string) string {
	osName, arch, _ := strings.Cut(strings.ToLower(tag), "-")
	return osName + "-" + archTag(arch)
}

func archTag(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	default:
		return goarch
	}
}
