package toolchain

import "github.com/odingame/forge/internal/runner"

// Clone returns a shallow git clone of repo into dir, pinned to ref when set.
func Clone(repo, ref, dir string) runner.Command {
	args := []string{"clone", "--depth", "1"}
	if ref != "" {
		args = append(args, "--branch", ref)
	}
	args = append(args, repo, dir)
	return runner.Command{Name: "git", Args: args}
}

// CMakeConfigure generates the native build tree for src in buildDir.
func CMakeConfigure(src, buildDir string, extra []string) runner.Command {
	args := []string{"-S", src, "-B", buildDir}
	args = append(args, extra...)
	return runner.Command{Name: "cmake", Args: args}
}

// CMakeBuild builds the release configuration of buildDir.
func CMakeBuild(buildDir string) runner.Command {
	return runner.Command{Name: "cmake", Args: []string{"--build", buildDir, "--config", "Release"}}
}
