package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/pkg/model"
	"github.com/goliatone/go-fitm8/pkg/render"
	"github.com/goliatone/go-fitm8/pkg/renderers/tui"
	"github.com/goliatone/go-fitm8/pkg/validation"
)

type validateOptions struct {
	output      string
	maxAttempts int
}

func newValidateCommand(a *app) *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:       "validate [login|signup]",
		Short:     "Fill in a form interactively and print the validated result",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: validation.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, a, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", string(tui.OutputFormatPrettyText), "output format (pretty, json, form)")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", tui.DefaultMaxAttempts, "submissions before giving up")
	return cmd
}

func runValidate(cmd *cobra.Command, a *app, opts *validateOptions, formID string) error {
	f, err := model.ByName(formID)
	if err != nil {
		return err
	}
	validator, err := validation.ByName(formID)
	if err != nil {
		return err
	}

	format := tui.OutputFormat(opts.output)
	switch format {
	case tui.OutputFormatPrettyText, tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded:
	default:
		return fmt.Errorf("validate: unknown output format %q", opts.output)
	}

	rendererOpts := []tui.Option{
		tui.WithOutputFormat(format),
		tui.WithMaxAttempts(opts.maxAttempts),
		tui.WithTheme(tui.Theme{ErrorPrefix: "! "}),
	}
	if a.prompts != nil {
		rendererOpts = append(rendererOpts, tui.WithPromptDriver(a.prompts))
	}
	renderer := tui.New(rendererOpts...)

	state, collectErr := renderer.Collect(cmd.Context(), f, validator)
	if errors.Is(collectErr, tui.ErrAborted) {
		return collectErr
	}
	if a.logger != nil {
		a.logger.Debug("form collected",
			zap.String("form", formID),
			zap.Int("attempts", state.Attempts),
			zap.Bool("valid", state.Errors.Valid()),
		)
	}
	if collectErr != nil && !errors.Is(collectErr, tui.ErrTooManyAttempts) {
		return collectErr
	}

	out, err := renderer.Render(cmd.Context(), render.Page{Name: f.ID, Data: f}, render.RenderOptions{
		Values: state.Values,
		Errors: state.Errors,
	})
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}
	return collectErr
}
