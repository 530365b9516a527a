package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/internal/config"
	"github.com/goliatone/go-fitm8/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			srv, err := server.New(ctx, a.cfg, a.logger)
			if err != nil {
				return err
			}
			a.logger.Info("starting",
				zap.String("addr", a.cfg.Addr),
				zap.String("content", a.cfg.Content.Path),
				zap.Bool("watch", a.cfg.Content.Watch),
			)
			return srv.ListenAndServe(ctx)
		},
	}

	flags := cmd.Flags()
	flags.String("addr", ":8080", "HTTP listen address")
	flags.Duration("grace", 5*time.Second, "shutdown grace period")
	flags.String("content", "", "YAML copy document (embedded copy when empty)")
	flags.Bool("watch", false, "reload the copy document when it changes")
	flags.String("templates", "", "template directory overriding the embedded templates")
	flags.Bool("reload", false, "re-read templates on every render")
	flags.Bool("cookie-secure", false, "mark the theme cookie Secure")

	bind := map[string]string{
		config.KeyAddr:            "addr",
		config.KeyGrace:           "grace",
		config.KeyContentPath:     "content",
		config.KeyContentWatch:    "watch",
		config.KeyTemplatesDir:    "templates",
		config.KeyTemplatesReload: "reload",
		config.KeyCookieSecure:    "cookie-secure",
	}
	for key, name := range bind {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}
	return cmd
}
