// Command fef packs files into FEF spectral containers and restores them.
package main

import (
	"fmt"
	"os"

	"github.com/mfrancis33/fef/internal/commands"
	"github.com/mfrancis33/fef/internal/config"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	var cfg config.Config

	if err := commands.NewRootCommand(&cfg, version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
