// Package cli defines the Cobra command tree for the forge CLI. Each file
// in this package registers one top-level command with the root command.
// Command implementations delegate to internal packages for the work and
// only handle flag parsing, output and wiring of the project, platform
// policy and command runner.
package cli
