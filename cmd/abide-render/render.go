package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-abideform/pkg/orchestrator"
	"github.com/goliatone/go-abideform/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output        string
		page          bool
		namedPatterns bool
		validate      bool
		values        map[string]string
		themeName     string
		themeVariant  string
	)

	cmd := &cobra.Command{
		Use:   "render FORM_ID",
		Short: "Render a form as Foundation grid rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			source, _, err := a.source(ctx)
			if err != nil {
				return err
			}

			req := orchestrator.Request{
				Source:        source,
				FormID:        args[0],
				Validate:      validate,
				Translator:    a.cfg.Translator(),
				RenderOptions: render.RenderOptions{Values: values},
				ThemeName:     themeName,
				ThemeVariant:  themeVariant,
			}
			gen, err := a.orchestrator(namedPatterns)
			if err != nil {
				return err
			}

			var out []byte
			if page {
				out, err = gen.GeneratePage(ctx, req, render.Page{
					Title:       a.cfg.PageTitle,
					Lang:        a.cfg.Locale,
					Stylesheets: a.cfg.Stylesheets,
					Scripts:     a.cfg.Scripts,
				})
			} else {
				out, err = gen.Generate(ctx, req)
			}
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVar(&page, "page", false, "wrap the form in a standalone HTML page")
	flags.BoolVar(&namedPatterns, "named-patterns", false, "reference synthesised patterns by field id")
	flags.BoolVar(&validate, "validate", false, "validate values and render the messages")
	flags.StringToStringVar(&values, "value", nil, "prefill a field value (id=value), repeatable")
	flags.StringVar(&themeName, "theme", "", "theme supplying page assets (default $ABIDE_THEME)")
	flags.StringVar(&themeVariant, "variant", "", "theme variant (default $ABIDE_THEME_VARIANT)")
	return cmd
}
