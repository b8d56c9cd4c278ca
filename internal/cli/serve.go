package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cpusched/api"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				opts.config.Port = port
			}
			app := api.NewApp(opts.config, opts.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			addr := fmt.Sprintf(":%d", opts.config.Port)
			go func() {
				opts.logger.Info("listening", "addr", addr,
					"max_time_unit", opts.config.MaxTimeUnit,
					"time_quantum", opts.config.RoundRobinTimeQuantum)
				errCh <- app.Listen(addr)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				opts.logger.Info("shutting down")
				return app.Shutdown()
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")
	return cmd
}
