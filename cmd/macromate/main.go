// CLI for computing daily calorie and macro targets and requesting a sample
// meal plan.
// Usage: go run ./cmd/macromate targets --weight 80 --goal cut
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	// .env is optional for the CLI; only the plan command needs a key.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "macromate",
		Short:         "Daily calorie and macro targets from your body profile",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newTargetsCmd(), newPlanCmd(), newActivitiesCmd())
	return rootCmd
}
