package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/DukeRupert/jobboard/internal/domain"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Moderate job listings",
}

var (
	jobsLimit  int32
	jobsOffset int32
)

var jobsPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List listings awaiting review, soonest expiry first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			jobs, err := a.moderation.ListPending(ctx, domain.Page{Limit: jobsLimit, Offset: jobsOffset})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCOMPANY\tTITLE\tEXPIRES")
			for _, j := range jobs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					j.ID, j.CompanyName, j.Title,
					j.ExpiresAt.In(domain.RegionZone).Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		})
	},
}

var jobsApproveCmd = &cobra.Command{
	Use:   "approve <job-id>",
	Short: "Publish a pending listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid job id %q: %w", args[0], err)
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.moderation.Approve(ctx, id, time.Now()); err != nil {
				return fmt.Errorf("%s", domain.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "approved %s\n", id)
			return nil
		})
	},
}

var jobsRejectCmd = &cobra.Command{
	Use:   "reject <job-id>",
	Short: "Reject a pending listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid job id %q: %w", args[0], err)
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			if err := a.moderation.Reject(ctx, id); err != nil {
				return fmt.Errorf("%s", domain.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rejected %s\n", id)
			return nil
		})
	},
}

func init() {
	jobsPendingCmd.Flags().Int32Var(&jobsLimit, "limit", 50, "Maximum rows to list")
	jobsPendingCmd.Flags().Int32Var(&jobsOffset, "offset", 0, "Rows to skip")

	jobsCmd.AddCommand(jobsPendingCmd)
	jobsCmd.AddCommand(jobsApproveCmd)
	jobsCmd.AddCommand(jobsRejectCmd)
}
