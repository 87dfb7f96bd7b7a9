package main

import (
	"github.com/spf13/cobra"

	"lg/macromate-go-api/internal/macro"
)

// profileFlags holds the raw flag values shared by targets and plan. The
// defaults match the input form's initial state.
type profileFlags struct {
	sex      string
	age      int
	height   float64
	weight   float64
	activity string
	goal     string
	pace     string
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sex, "sex", "male", "Sex (male/female)")
	cmd.Flags().IntVar(&f.age, "age", 19, "Age in years (13-90)")
	cmd.Flags().Float64Var(&f.height, "height", 180, "Height in cm (120-230)")
	cmd.Flags().Float64Var(&f.weight, "weight", 80, "Weight in kg (35-200)")
	cmd.Flags().StringVarP(&f.activity, "activity", "a", string(macro.Sedentary), "Activity level (see 'macromate activities')")
	cmd.Flags().StringVarP(&f.goal, "goal", "g", string(macro.Maintain), "Goal (cut/maintain/bulk)")
	cmd.Flags().StringVarP(&f.pace, "pace", "p", string(macro.Standard), "Pace (slow/standard/aggressive)")
}

// profile parses the flags into a range-checked Profile.
func (f *profileFlags) profile() (macro.Profile, error) {
	sex, err := macro.ParseSex(f.sex)
	if err != nil {
		return macro.Profile{}, err
	}
	activity, err := macro.ParseActivityLevel(f.activity)
	if err != nil {
		return macro.Profile{}, err
	}
	goal, err := macro.ParseGoal(f.goal)
	if err != nil {
		return macro.Profile{}, err
	}
	pace, err := macro.ParsePace(f.pace)
	if err != nil {
		return macro.Profile{}, err
	}

	p := macro.Profile{
		Sex:           sex,
		Age:           f.age,
		HeightCM:      f.height,
		WeightKG:      f.weight,
		ActivityLevel: activity,
		Goal:          goal,
		Pace:          pace,
	}
	if err := p.Validate(); err != nil {
		return macro.Profile{}, err
	}
	return p, nil
}
