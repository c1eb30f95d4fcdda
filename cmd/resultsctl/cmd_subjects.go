package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"exam_results_bot/internal/infra/bootstrap"

	"github.com/spf13/cobra"
)

func newSubjectsCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "Print the subject catalog, streams and tier thresholds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := bootstrap.LoadDefinition(state.cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SUBJECT\tMAX\tSOURCE")
			for _, s := range def.Catalog.Subjects() {
				spec := def.Sources[s.ID]
				loc := spec.Path + spec.URL + spec.Table
				fmt.Fprintf(w, "%s\t%g\t%s:%s\n", s.ID, s.MaxScore, spec.Kind, loc)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "STREAM\tSUBJECTS")
			for _, st := range def.Catalog.Streams() {
				fmt.Fprintf(w, "%s\t%s\n", st.ID, strings.Join(st.Subjects, ", "))
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "TIER\tMIN AVERAGE")
			for _, t := range def.Catalog.Tiers() {
				fmt.Fprintf(w, "%s\t%g\n", t.Tier, t.Min)
			}
			return w.Flush()
		},
	}
}
