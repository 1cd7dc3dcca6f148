package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paycycle-dev/paycycle/internal/config"
	"github.com/paycycle-dev/paycycle/internal/period"
)

func newPeriodsCommand(opts *rootOptions) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List the pay-cycle windows of the analysis range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" || end == "" {
				cfg, err := config.Load(opts.configPath)
				if err != nil {
					return err
				}
				if start == "" {
					start = cfg.Analysis.Start
				}
				if end == "" {
					end = cfg.Analysis.End
				}
			}

			windows, err := period.ParseRange(start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, w := range windows {
				fmt.Fprintf(out, "%s  %s .. %s  %d days\n",
					w.Label, w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"), w.Days())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first month (YYYY-MM), overrides the config")
	cmd.Flags().StringVar(&end, "end", "", "last month (YYYY-MM), overrides the config")

	return cmd
}
