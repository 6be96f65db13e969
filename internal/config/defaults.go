package config

import "github.com/odingame/forge/internal/platform"

// Default values applied when neither the file, the environment nor a flag
// sets a key.
const (
	DefaultGameName      = "odingame"
	DefaultVersion       = "0.0.0-dev"
	DefaultReleasePath   = "bin"
	DefaultCompiler      = "odin"
	DefaultGamePackage   = "src/game"
	DefaultDriverPackage = "src/driver"
	DefaultGameLibrary   = "game_code"
	DefaultAssetsDir     = "assets"
	DefaultDepsDir       = "lib"
	DefaultBaseFlags     = "-debug -o:none"
	DefaultGameFlags     = "-define:GLFW_SHARED=true"
	DefaultShaderDir     = "src/vulkan_test"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

func defaultValues() map[string]any {
	return map[string]any{
		"game_name":        DefaultGameName,
		"version":          DefaultVersion,
		"target":           platform.HostTarget(),
		"release_path":     DefaultReleasePath,
		"compiler":         DefaultCompiler,
		"game_package":     DefaultGamePackage,
		"driver_package":   DefaultDriverPackage,
		"game_library":     DefaultGameLibrary,
		"assets_dir":       DefaultAssetsDir,
		"deps_dir":         DefaultDepsDir,
		"flags.base":       DefaultBaseFlags,
		"flags.game":       DefaultGameFlags,
		"flags.driver":     "",
		"shaders.compiler": "glslc",
		"shaders.dir":      DefaultShaderDir,
		"shaders.sources": []map[string]any{
			{"input": "base.vert", "output": "vert.spv"},
			{"input": "base.frag", "output": "frag.spv"},
		},
		"native_libs": []map[string]any{},
		"log_level":   DefaultLogLevel,
		"log_format":  DefaultLogFormat,
	}
}

// flagKeys maps persistent CLI flag names to config keys.
var flagKeys = map[string]string{
	"target":          "target",
	"release-path":    "release_path",
	"release-version": "version",
	"log-level":       "log_level",
	"log-format":      "log_format",
}
