package main

import (
	"github.com/spf13/cobra"

	"github.com/frederic-klein/altcmp/internal/compare"
	"github.com/frederic-klein/altcmp/internal/report"
)

func newCompareCmd(a *app) *cobra.Command {
	var filter compare.Filter

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare all mapped packages and display the comparison table",
		Long:  "Compare all mapped packages. With both --alt-newer and --second-newer only packages whose versions are equal are shown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmp, err := a.comparator(cmd.Context())
			if err != nil {
				return err
			}

			records := cmp.Compare(filter)
			stats := cmp.Stats()
			return a.present(cmd, func(useColor bool) (report.Presenter, error) {
				return report.ForFormat(a.cfg.Output, records, stats, a.reportOptions(useColor))
			})
		},
	}

	cmd.Flags().BoolVar(&filter.ANewer, "alt-newer", false, "show only packages where the ALT version is newer")
	cmd.Flags().BoolVar(&filter.BNewer, "second-newer", false, "show only packages where the second repository version is newer")
	return cmd
}
