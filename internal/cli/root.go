package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpusched/config"
	"cpusched/internal/logging"
)

type rootOptions struct {
	configPath string
	debug      bool
	logLevel   string
	logFormat  string

	config *config.SchedulerConfig
	logger *slog.Logger
}

// NewRootCmd creates the root cobra command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cpusched",
		Short: "CPU scheduling simulator",
		Long:  "cpusched simulates FCFS, SJF, SRTF and round-robin scheduling over a set of processes.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = opts.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = opts.logFormat
			}
			if opts.debug {
				cfg.LogLevel = "debug"
			}
			opts.config = cfg
			opts.logger = logging.FromConfig(cfg, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(opts),
		newSimulateCmd(opts),
	)

	return root
}
