package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lg/macromate-go-api/internal/macro"
	"lg/macromate-go-api/internal/mealplan"
)

// newGenerator is swapped in tests to avoid real provider calls.
var newGenerator = mealplan.NewGenerator

func newPlanCmd() *cobra.Command {
	var flags profileFlags
	var provider, model string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a sample meal plan for your targets",
		Long: `Compute targets, then ask a text-generation service for a sample day of
meals. Requires OPENAI_API_KEY (or ANTHROPIC_API_KEY with --provider anthropic).
General guidance only, not medical advice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := mealplan.LoadConfig()
			if provider != "" {
				cfg.Provider = provider
			}
			if model != "" {
				cfg.Model = model
			}
			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}
			svc := mealplan.NewService(gen, cfg.Timeout())
			if !svc.Available() {
				return fmt.Errorf("%w: set the API key for %s in your environment or .env", mealplan.ErrMissingCredential, gen.Name())
			}

			p, err := flags.profile()
			if err != nil {
				return err
			}
			result, err := macro.Calculate(p)
			if err != nil {
				return err
			}

			text, err := svc.Generate(cmd.Context(), result.Profile, result.Plan)
			if err != nil {
				return fmt.Errorf("generating meal plan: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&provider, "provider", "", "Text provider (openai/anthropic); defaults to MACROMATE_LLM_PROVIDER or openai")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to use (provider-specific)")
	return cmd
}
