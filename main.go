package main

import (
	"golv/config"
	"golv/logging"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every command needs once the root has loaded the config.
type app struct {
	configPath string
	cfg        *config.Config
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "golv",
		Short:         "Exact and equilibrium solvers for small games",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (defaults apply when empty)")

	root.AddCommand(
		newSolveCmd(a),
		newAnalyzeCmd(a),
		newPlayoutCmd(a),
		newPushCmd(a),
		newExperimentCmd(a),
		newEquilibriumCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := logging.New("error", "console", os.Stderr)
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
