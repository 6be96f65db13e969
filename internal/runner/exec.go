package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ExecRunner runs commands as child processes of the current process.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes cmd. Streamed commands still have their output recorded so
// callers can print it on failure.
func (e *ExecRunner) Run(ctx context.Context, cmd Command) (*Output, error) {
	bin, err := exec.LookPath(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", cmd.Name, err)
	}

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = cmd.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	if cmd.Capture {
		c.Stdout = &stdoutBuf
		c.Stderr = &stderrBuf
	} else {
		c.Stdin = os.Stdin
		c.Stdout = io.MultiWriter(e.stdout(), &stdoutBuf)
		c.Stderr = io.MultiWriter(e.stderr(), &stderrBuf)
	}

	err = c.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", cmd.Name, err)
	}

	return output, nil
}

func (e *ExecRunner) stdout() io.Writer {
	if e.Stdout == nil {
		return os.Stdout
	}
	return e.Stdout
}

func (e *ExecRunner) stderr() io.Writer {
	if e.Stderr == nil {
		return os.Stderr
	}
	return e.Stderr
}
