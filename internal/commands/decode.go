package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mfrancis33/fef/internal/config"
	"github.com/mfrancis33/fef/internal/logic"
	"github.com/mfrancis33/fef/internal/spectral"
)

// NewDecodeCommand creates a new cobra command for the decode subcommand.
func NewDecodeCommand(v *viper.Viper, cfg *config.Config, prompt logic.Prompter) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decode [flags] file",
		Aliases: []string{"dec"},
		Short:   "Restore the files of a container",
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun(v, cfg, true),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunDecode(cfg, prompt)
		},
	}

	cmd.Flags().StringP("folder", "f", "", "Output folder, defaults to the container path without its extension (or with a _files suffix)")
	cmd.Flags().StringP("password", "p", "", "Password of an encrypted container")
	cmd.Flags().Bool("no-password", false, "Decode an encrypted container without a password instead of prompting")
	cmd.Flags().String("rounding", spectral.Clamp.String(), "Handling of samples outside the byte range: clamp, wrap or strict")

	return cmd
}
