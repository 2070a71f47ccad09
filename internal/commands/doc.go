// Package commands provides the command-line interface for the fef tool.
//
// It implements commands for:
//   - encoding files into a container
//   - decoding a container back into files
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mfrancis33/fef/internal/config"
)

// preRun returns a PreRunE handler that merges flags and environment into cfg,
// resolves positional args into cfg.Files and validates the configuration.
func preRun(v *viper.Viper, cfg *config.Config, decode bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return fmt.Errorf("binding flags: %w", err)
		}

		if err := v.Unmarshal(cfg); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}

		cfg.Files = args
		cfg.Decode = decode

		return cfg.Validate()
	}
}
