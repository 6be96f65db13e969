// Package toolchain builds the command lines for the external tools the
// build drives: the Odin compiler, the glslc shader compiler, git and CMake.
// It only constructs commands and parses their output; running them is the
// job of a runner.Runner.
package toolchain
