package toolchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/odingame/forge/internal/runner"
)

// DefaultCompiler is the compiler binary used when none is configured.
const DefaultCompiler = "odin"

// Compiler wraps the Odin compiler command line.
type Compiler struct {
	Binary string
}

// NewCompiler returns a Compiler for binary, falling back to DefaultCompiler.
func NewCompiler(binary string) *Compiler {
	if binary == "" {
		binary = DefaultCompiler
	}
	return &Compiler{Binary: binary}
}

// Root asks the compiler for its installation root, where vendored
// libraries such as GLFW live.
func (c *Compiler) Root(ctx context.Context, r runner.Runner) (string, error) {
	out, err := runner.Check(ctx, r, runner.Command{Name: c.Binary, Args: []string{"root"}, Capture: true})
	if err != nil {
		if out != nil && out.Stdout != "" {
			return "", fmt.Errorf("%w\n%s", err, out.Stdout)
		}
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

// Version returns the first line of `odin version`.
func (c *Compiler) Version(ctx context.Context, r runner.Runner) (string, error) {
	out, err := runner.Check(ctx, r, runner.Command{Name: c.Binary, Args: []string{"version"}, Capture: true})
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(strings.TrimSpace(out.Stdout), "\n")
	return strings.TrimSpace(line), nil
}

// BuildLibrary compiles pkg as a dynamically loadable library at out.
func (c *Compiler) BuildLibrary(pkg string, flags []string, out string) runner.Command {
	args := append(c.buildArgs(pkg, flags), "-build-mode:dynamic", "-out:"+out)
	return runner.Command{Name: c.Binary, Args: args}
}

// BuildExecutable compiles pkg as an executable at out.
func (c *Compiler) BuildExecutable(pkg string, flags []string, out string) runner.Command {
	args := append(c.buildArgs(pkg, flags), "-out:"+out)
	return runner.Command{Name: c.Binary, Args: args}
}

func (c *Compiler) buildArgs(pkg string, flags []string) []string {
	args := make([]string, 0, len(flags)+4)
	args = append(args, "build", pkg)
	return append(args, flags...)
}

// Define formats a compile-time constant definition.
func Define(name, value string) string {
	return "-define:" + name + "=" + value
}
