package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frederic-klein/altcmp/internal/fetch"
)

func newFetchCmd(a *app) *cobra.Command {
	var destDir string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch and save package lists without comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := a.fetcher()
			results := f.Fetch(cmd.Context(), a.jobs())
			if err := fetch.Errors(results); err != nil {
				return err
			}

			if err := f.Save(destDir, results); err != nil {
				return err
			}

			if !a.cfg.Silent {
				fmt.Fprintf(cmd.OutOrStdout(), "Package lists saved to %s\n", destDir)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&destDir, "dest-dir", "d", "./", "directory to save fetched package lists")
	return cmd
}
