package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"lg/macromate-go-api/internal/macro"
)

func newTargetsCmd() *cobra.Command {
	var flags profileFlags
	var format string

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Compute daily calorie and macro targets",
		Long: `Compute daily targets from a body profile.

BMR uses Mifflin-St Jeor, TDEE scales it by the activity multiplier, and the
goal/pace adjustment sets the calorie target (never below 1200, rounded to
10 kcal). Protein and fat are set by bodyweight; carbs take the rest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.profile()
			if err != nil {
				return err
			}
			result, err := macro.Calculate(p)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), result, format)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text/json/yaml)")
	return cmd
}

// writeResult renders result in the requested format.
func writeResult(w io.Writer, result macro.Result, format string) error {
	switch format {
	case "text":
		writeResultText(w, result)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

func writeResultText(w io.Writer, r macro.Result) {
	plan, split := r.Plan, r.Split
	fmt.Fprintln(w, "Your targets")
	fmt.Fprintf(w, "  Calories: %d kcal\n", plan.Calories)
	fmt.Fprintf(w, "  Protein:  %d g\n", plan.ProteinG)
	fmt.Fprintf(w, "  Carbs:    %d g\n", plan.CarbsG)
	fmt.Fprintf(w, "  Fat:      %d g\n", plan.FatG)
	fmt.Fprintf(w, "Macro split (approx): Protein %.0f%% • Carbs %.0f%% • Fat %.0f%%\n",
		split.ProteinPct, split.CarbsPct, split.FatPct)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "How this was estimated")
	fmt.Fprintf(w, "  - BMR (Mifflin-St Jeor): %.0f kcal/day\n", r.BMR)
	fmt.Fprintf(w, "  - Activity multiplier: %g\n", r.ActivityMultiplier)
	fmt.Fprintf(w, "  - Estimated TDEE: %.0f kcal/day\n", r.TDEE)
	fmt.Fprintf(w, "  - Goal adjustment (%s, %s): built into calorie target\n", r.Profile.Goal, r.Profile.Pace)
	fmt.Fprintln(w, "  - Macros: protein + fat set by bodyweight, carbs = remaining calories")
}
