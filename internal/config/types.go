package config

// Settings is the decoded project configuration.
type Settings struct {
	GameName      string      `mapstructure:"game_name"`
	Version       string      `mapstructure:"version"`
	Target        string      `mapstructure:"target"`
	ReleasePath   string      `mapstructure:"release_path"`
	Compiler      string      `mapstructure:"compiler"`
	GamePackage   string      `mapstructure:"game_package"`
	DriverPackage string      `mapstructure:"driver_package"`
	GameLibrary   string      `mapstructure:"game_library"`
	AssetsDir     string      `mapstructure:"assets_dir"`
	DepsDir       string      `mapstructure:"deps_dir"`
	Flags         Flags       `mapstructure:"flags"`
	Shaders       Shaders     `mapstructure:"shaders"`
	NativeLibs    []NativeLib `mapstructure:"native_libs"`
	LogLevel      string      `mapstructure:"log_level"`
	LogFormat     string      `mapstructure:"log_format"`
}

// Flags are shell-quoted compiler flag strings.
type Flags struct {
	Base   string `mapstructure:"base"`
	Game   string `mapstructure:"game"`
	Driver string `mapstructure:"driver"`
}

// Shaders configures `forge shaders`.
type Shaders struct {
	Compiler string         `mapstructure:"compiler"`
	Dir      string         `mapstructure:"dir"`
	Sources  []ShaderSource `mapstructure:"sources"`
}

// ShaderSource is one input shader and the SPIR-V file it compiles to.
type ShaderSource struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
}

// NativeLib is a third-party C library fetched with git and built with CMake.
type NativeLib struct {
	Name      string   `mapstructure:"name"`
	Repo      string   `mapstructure:"repo"`
	Ref       string   `mapstructure:"ref"`
	CMakeArgs []string `mapstructure:"cmake_args"`
}
