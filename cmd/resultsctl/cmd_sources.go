package main

import (
	"fmt"
	"text/tabwriter"

	"exam_results_bot/internal/app"

	"github.com/spf13/cobra"
)

func newSourcesCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Read every subject source once and report availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.withService(cmd.Context(), func(svc *app.LookupService) error {
				statuses := svc.ProbeSources(cmd.Context())

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "SUBJECT\tSTATUS\tRECORDS\tSOURCE\tERROR")
				for _, st := range statuses {
					status := "up"
					if !st.Up {
						status = "down"
					}
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", st.SubjectID, status, st.Records, st.Source, st.Error)
				}
				if err := w.Flush(); err != nil {
					return err
				}
				if !app.AllUp(statuses) {
					return fmt.Errorf("one or more sources are unavailable")
				}
				return nil
			})
		},
	}
}
