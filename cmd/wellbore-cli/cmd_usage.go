package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
)

func newUsageCmd(opts *rootOptions) *cobra.Command {
	var raw bool
	var days int

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Show API usage statistics",
		Long:  `Print per-day call counts of every WellBore operation. --raw prints the server's JSON document.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := opts.client().UsageStatistics(cmd.Context())
			if err != nil {
				return err
			}
			if raw {
				return printJSON(cmd.OutOrStdout(), snap)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "OPERATION\tDATE\tCOUNT")
			for _, m := range usage.Metrics {
				data := snap.History(m).Data
				if days > 0 && len(data) > days {
					data = data[len(data)-days:]
				}
				for _, bucket := range data {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", m, bucket.Date.Format("2006-01-02"), bucket.Count)
				}
			}
			fmt.Fprintf(tw, "\nlast saved\t%s\t\n", snap.LastSavedAt.Format("2006-01-02T15:04:05Z07:00"))
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the JSON document")
	cmd.Flags().IntVar(&days, "days", 0, "Only show the most recent N days of each operation")
	return cmd
}
