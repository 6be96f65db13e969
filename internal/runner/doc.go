// Package runner executes external commands for the build. ExecRunner runs
// real processes, streaming or capturing their output; Fake records commands
// and replays scripted results so build plans can be tested without a
// toolchain installed.
package runner
