package main

import (
	"encoding/json"
	"fmt"

	"exam_results_bot/internal/app"
	"exam_results_bot/internal/infra/presenter"

	"github.com/spf13/cobra"
)

func newLookupCmd(state *cliState) *cobra.Command {
	var (
		stream string
		asJSON bool
		locale string
	)
	cmd := &cobra.Command{
		Use:   "lookup <phone>",
		Short: "Resolve a phone number against every subject source and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.withService(cmd.Context(), func(svc *app.LookupService) error {
				var opts []app.LookupOption
				if stream != "" {
					opts = append(opts, app.WithStream(stream))
				}
				summary, err := svc.Lookup(cmd.Context(), args[0], opts...)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(summary)
				}
				p := presenter.New(presenter.ForLocale(locale))
				_, err = fmt.Fprintln(out, p.Render(summary, presenter.Options{Format: presenter.FormatPlain}))
				return err
			})
		},
	}
	cmd.Flags().StringVar(&stream, "stream", "", "limit the lookup to one stream")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	cmd.Flags().StringVar(&locale, "locale", "en", "report language (en or am)")
	return cmd
}
