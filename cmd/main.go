package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"strided/internal/runner"
	"strided/pkg/config"
	"strided/pkg/workspace"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "stridewalk",
		Short:         "Run strided walks and matrix products over named buffers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig(configFile)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			initLogger(&cfg, cmd.OutOrStdout())

			ws := workspace.New()
			results, err := runner.New(ws, slog.Default()).Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			for _, res := range results {
				switch {
				case res.Values != nil:
					slog.Info("result", "walk", res.Name, "values", res.Values)
				case res.Op == config.OpSum:
					slog.Info("result", "walk", res.Name, "sum", res.Sum)
				}
			}
			for _, name := range ws.Names() {
				data, _ := ws.Get(name)
				slog.Debug("buffer", "name", name, "data", data)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "stridewalk.yaml", "config file path")
	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		slog.Error("stridewalk failed", "error", err)
		os.Exit(1)
	}
}
