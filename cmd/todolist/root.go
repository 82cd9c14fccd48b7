package main

import (
	"context"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sandeepkv93/todolist/internal/config"
	"github.com/sandeepkv93/todolist/internal/logging"
	"github.com/sandeepkv93/todolist/internal/reconcile"
	"github.com/sandeepkv93/todolist/internal/update"
	"github.com/spf13/cobra"
)

// runner drives the built model. Tests swap it out so no terminal is needed.
type runner func(ctx context.Context, m update.Model) error

func newRootCmd(run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todolist",
		Short:         "A keyboard driven checklist",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
				cfg.MarkdownStyle = "notty"
			}

			var out io.Writer
			if cfg.LogFile != "" {
				f, err := logging.OpenFile(cfg.LogFile)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			logger := logging.New(logging.Options{Writer: out, JSON: cfg.LogJSON, Level: cfg.LogLevel})
			logger.Info("starting", "mode", string(cfg.Mode), "hide_completed", cfg.HideCompleted, "tasks", len(cfg.Seed()))

			m, err := update.NewModelWithConfig(cfg, logger)
			if err != nil {
				return err
			}
			return run(cmd.Context(), m)
		},
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Path to a YAML configuration file")
	flags.String("mode", "", "Reconciliation mode: keyed or positional")
	flags.String("log-file", "", "Append logs to this file")
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Bool("hide-completed", false, "Start with completed tasks hidden")
	flags.Bool("no-color", false, "Render without colors or styles")
	return cmd
}

// resolveConfig layers the config file, then the environment, then any
// flags the user set explicitly.
func resolveConfig(cmd *cobra.Command) (config.Runtime, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Runtime{}, err
	}
	cfg = config.FromEnv(cfg)

	if flags.Changed("mode") {
		v, _ := flags.GetString("mode")
		cfg.Mode = reconcile.Mode(v)
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-json") {
		cfg.LogJSON, _ = flags.GetBool("log-json")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("hide-completed") {
		cfg.HideCompleted, _ = flags.GetBool("hide-completed")
	}
	return cfg, cfg.Validate()
}
