// Command forge builds and launches an Odin game with a hot-reloadable game
// library.
package main

import (
	"os"

	"github.com/odingame/forge/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
