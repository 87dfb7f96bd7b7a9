package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lg/macromate-go-api/internal/macro"
)

func newActivitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activities",
		Short: "List activity levels and their multipliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range macro.ActivityTiers() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %-6g %s\n", t.Key, t.Multiplier, t.Label)
			}
			return nil
		},
	}
}
