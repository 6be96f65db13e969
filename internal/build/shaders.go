package build

import (
	"path/filepath"

	"github.com/odingame/forge/internal/toolchain"
)

// ShaderSteps compiles every configured shader to SPIR-V. Inputs and
// outputs are both resolved against the shader directory.
func (c *Configurator) ShaderSteps() Steps {
	sh := c.Project.Settings.Shaders
	compiler := toolchain.NewShaderCompiler(sh.Compiler)
	dir := c.Project.Path(sh.Dir)

	steps := make(Steps, 0, len(sh.Sources))
	for _, src := range sh.Sources {
		in := filepath.Join(dir, filepath.FromSlash(src.Input))
		out := filepath.Join(dir, filepath.FromSlash(src.Output))
		steps = append(steps, c.commandStep("compile "+src.Input, compiler.Compile(in, out)))
	}
	return steps
}
