package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var promotionCmd = &cobra.Command{
	Use:   "promotion",
	Short: "Inspect push-to-top allowances",
}

var promotionStatusCmd = &cobra.Command{
	Use:   "status <uid>",
	Short: "Show an employer's push allowance and current plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			now := time.Now()
			status, err := a.promotions.Status(ctx, args[0], now)
			if err != nil {
				return err
			}
			history, err := a.entitlements.History(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"status":        status,
				"subscriptions": len(history),
			})
		})
	},
}

func init() {
	promotionCmd.AddCommand(promotionStatusCmd)
}
