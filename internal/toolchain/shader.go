package toolchain

import "github.com/odingame/forge/internal/runner"

// DefaultShaderCompiler is the SPIR-V compiler used when none is configured.
const DefaultShaderCompiler = "glslc"

// ShaderCompiler wraps a glslc-compatible command line.
type ShaderCompiler struct {
	Binary string
}

// NewShaderCompiler returns a ShaderCompiler for binary, falling back to glslc.
func NewShaderCompiler(binary string) *ShaderCompiler {
	if binary == "" {
		binary = DefaultShaderCompiler
	}
	return &ShaderCompiler{Binary: binary}
}

// Compile returns the command that compiles input into the SPIR-V file output.
func (s *ShaderCompiler) Compile(input, output string) runner.Command {
	return runner.Command{Name: s.Binary, Args: []string{input, "-o", output}}
}
