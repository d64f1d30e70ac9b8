package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/DukeRupert/jobboard/internal/domain"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print dashboard reports as JSON",
}

var (
	reportRange string
	reportYear  int
)

var reportNewPostsCmd = &cobra.Command{
	Use:   "new-posts",
	Short: "Count listings created in a window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			report, err := a.reports.NewPosts(ctx, domain.ReportRange(reportRange), reportYear, time.Now())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		})
	},
}

func init() {
	reportNewPostsCmd.Flags().StringVar(&reportRange, "range", "7d", "Window: 7d, 1m, 3m, 6m, 1y or year")
	reportNewPostsCmd.Flags().IntVar(&reportYear, "year", time.Now().Year(), "Calendar year when --range=year")

	reportCmd.AddCommand(reportNewPostsCmd)
}
