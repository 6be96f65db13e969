// Package procscan decides whether a named process is running by searching
// the output of the OS process-listing command.
package procscan

import (
	"context"
	"fmt"
	"strings"

	"github.com/odingame/forge/internal/runner"
)

// IsRunning runs list and reports whether name appears in its output. A
// listing command that exits non-zero is an error carrying its output.
func IsRunning(ctx context.Context, r runner.Runner, list runner.Command, name string) (bool, error) {
	list.Capture = true
	out, err := r.Run(ctx, list)
	if err != nil {
		return false, fmt.Errorf("listing processes: %w", err)
	}
	if out.ExitCode != 0 {
		return false, fmt.Errorf("%w\n%s", &runner.CommandError{Command: list, ExitCode: out.ExitCode}, out.Stdout)
	}
	return strings.Contains(out.Stdout, name), nil
}
