package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ncobase/taskboard/config"
	"github.com/spf13/cobra"
)

func newConfigCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.LoadConfig(o.conf)
				if err != nil {
					return err
				}
				return printConfig(cmd.OutOrStdout(), cfg)
			},
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Print the configuration every time the file changes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				config.SetPath(o.conf)
				cfg, err := config.GetConfig()
				if err != nil {
					return err
				}
				if err := printConfig(out, cfg); err != nil {
					return err
				}
				if err := config.Watch(func(c *config.Config) {
					fmt.Fprintln(out, "# reloaded")
					_ = printConfig(out, c)
				}); err != nil {
					return err
				}

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				<-ctx.Done()
				return nil
			},
		},
	)

	return cmd
}

func printConfig(w io.Writer, cfg *config.Config) error {
	view := struct {
		AppName string         `json:"app_name"`
		RunMode string         `json:"run_mode"`
		Logger  any            `json:"logger"`
		Board   *config.Board  `json:"board"`
		Sentry  map[string]any `json:"sentry"`
	}{
		AppName: cfg.AppName,
		RunMode: cfg.RunMode,
		Logger:  cfg.Logger,
		Board:   cfg.Board,
	}
	if s := cfg.Observes; s != nil && s.Sentry != nil {
		view.Sentry = map[string]any{
			"enabled":     s.Sentry.Endpoint != "",
			"environment": s.Sentry.Environment,
			"release":     s.Sentry.Release,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
