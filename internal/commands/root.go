package commands

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mfrancis33/fef/internal/config"
	"github.com/mfrancis33/fef/internal/logic"
)

// EnvPrefix prefixes every environment variable read as a flag, e.g. FEF_PASSWORD.
const EnvPrefix = "FEF"

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "fef [flags] command [flags]",
		Short: "Spectral file container utility",
		Long: `Packs files into an FEF container of per-block spectral coefficients and back.
Containers can be protected with a password using the Serpent block cipher.

Every flag can also be set through the environment, e.g. FEF_PASSWORD.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print statistics after the run")

	root.AddCommand(
		NewEncodeCommand(v, cfg),
		NewDecodeCommand(v, cfg, logic.NewTerminalPrompter()),
	)

	return root
}
