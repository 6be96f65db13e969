package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/odingame/forge/internal/runner"
)

// FindRoot locates the project root for start: the nearest ancestor holding
// a config file, else the enclosing git work tree, else start itself.
func FindRoot(ctx context.Context, r runner.Runner, start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return start
	}

	for d := dir; ; {
		if _, err := os.Stat(FilePath(d)); err == nil {
			return d
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	cmd := runner.Command{Name: "git", Args: []string{"rev-parse", "--show-toplevel"}, Dir: dir, Capture: true}
	if out, err := r.Run(ctx, cmd); err == nil && out.ExitCode == 0 {
		if top := strings.TrimSpace(out.Stdout); top != "" {
			return filepath.FromSlash(top)
		}
	}
	return dir
}
