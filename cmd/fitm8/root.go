package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/internal/config"
	"github.com/goliatone/go-fitm8/internal/logging"
	"github.com/goliatone/go-fitm8/pkg/renderers/tui"
)

type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	logger     *zap.Logger

	// prompts overrides the terminal driver used by validate.
	prompts tui.PromptDriver
}

func newRootCommand() *cobra.Command {
	return newRootCommandFor(&app{v: config.New()})
}

func newRootCommandFor(a *app) *cobra.Command {

	root := &cobra.Command{
		Use:           "fitm8",
		Short:         "FitM8 marketing site and account forms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.configFile)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "YAML config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", logging.FormatJSON, "log format (json, console)")
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	root.AddCommand(newServeCommand(a), newValidateCommand(a))
	return root
}
