package main

import (
	"github.com/spf13/cobra"

	"github.com/frederic-klein/altcmp/internal/report"
)

func newStatsCmd(a *app) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Display statistics about package versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmp, err := a.comparator(cmd.Context())
			if err != nil {
				return err
			}

			stats := cmp.Stats()
			return a.present(cmd, func(useColor bool) (report.Presenter, error) {
				if a.cfg.Output == "table" {
					return report.NewStats(stats, detailed, a.reportOptions(useColor).Labels), nil
				}
				return report.ForFormat(a.cfg.Output, nil, stats, a.reportOptions(useColor))
			})
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "break the missing count down by side")
	return cmd
}
