package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-abideform/pkg/render"
	"github.com/goliatone/go-abideform/pkg/renderers/foundation"
)

func newPatternsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "patterns [FORM_ID...]",
		Short: "Print the Abide pattern script for the given forms (all when omitted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			source, ids, err := a.source(ctx)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				ids = args
			}

			renderer := foundation.New(foundation.WithLogger(a.logger))
			for _, id := range ids {
				form, err := source.Form(ctx, id)
				if err != nil {
					return err
				}
				if _, err := renderer.Render(ctx, form, render.RenderOptions{}); err != nil {
					return fmt.Errorf("form %q: %w", id, err)
				}
			}
			_, err = io.WriteString(cmd.OutOrStdout(), renderer.Patterns())
			return err
		},
	}
}

func newFormsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forms",
		Short: "List the forms available from the source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, ids, err := a.source(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
