package runner

import (
	"context"
	"fmt"
	"strings"
)

// Runner runs a single external command to completion.
type Runner interface {
	// Run executes cmd and blocks until it exits. The error return is
	// reserved for failures to start the process; a non-zero exit is
	// reported through Output.ExitCode.
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Capture collects stdout/stderr into Output instead of streaming them.
	Capture bool
}

// String renders the command line the way a user would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t\"") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandError reports an external command that exited non-zero.
type CommandError struct {
	Command  Command
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed: %s (exit code %d)", e.Command, e.ExitCode)
}

// Check runs cmd and converts a non-zero exit into a *CommandError.
func Check(ctx context.Context, r Runner, cmd Command) (*Output, error) {
	out, err := r.Run(ctx, cmd)
	if err != nil {
		return out, fmt.Errorf("running %s: %w", cmd, err)
	}
	if out.ExitCode != 0 {
		return out, &CommandError{Command: cmd, ExitCode: out.ExitCode}
	}
	return out, nil
}
