package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mfrancis33/fef/internal/config"
	"github.com/mfrancis33/fef/internal/convert"
	"github.com/mfrancis33/fef/internal/logic"
)

// NewEncodeCommand creates a new cobra command for the encode subcommand.
func NewEncodeCommand(v *viper.Viper, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Pack files into a container",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(v, cfg, false),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.RunEncode(cfg)
		},
	}

	cmd.Flags().StringP("output", "o", "output.fef", "Path of the container to write")
	cmd.Flags().IntP("block-size", "b", convert.DefaultBlockSize, "Number of bytes per spectral section")
	cmd.Flags().StringP("password", "p", "", "Encrypt the container with this password")

	return cmd
}
