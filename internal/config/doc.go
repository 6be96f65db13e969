// Package config loads the project settings stored in forge.yaml at the
// project root. Values are layered by Viper: command-line flags override
// FORGE_* environment variables, which override the file, which overrides
// built-in defaults. The file is validated against an embedded JSON schema
// before it is read.
package config
