package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-abideform/internal/prompt"
	"github.com/goliatone/go-abideform/pkg/render"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FORM_ID",
		Short: "Prompt for each field and validate the answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			source, _, err := a.source(ctx)
			if err != nil {
				return err
			}
			form, err := source.Form(ctx, args[0])
			if err != nil {
				return err
			}

			collector := prompt.New(prompt.WithTranslator(a.cfg.Translator()))
			failures, err := collector.Collect(ctx, &form)
			if errors.Is(err, prompt.ErrAborted) {
				return nil
			}
			if err != nil {
				return err
			}
			if len(failures) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "all fields valid")
				return err
			}

			ids := make([]string, 0, len(failures))
			for id := range failures {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				for _, message := range render.MergeFormErrors(failures[id]) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, message)
				}
			}
			return fmt.Errorf("%d field(s) invalid", len(ids))
		},
	}
}
