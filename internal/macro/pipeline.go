package macro

import "fmt"

// Result is the full output of one calculation, including the intermediate
// values used to explain how the targets were estimated.
type Result struct {
	Profile            Profile `json:"profile" yaml:"profile"`
	BMR                float64 `json:"bmr" yaml:"bmr"`
	ActivityMultiplier float64 `json:"activity_multiplier" yaml:"activity_multiplier"`
	TDEE               float64 `json:"tdee" yaml:"tdee"`
	Plan               Plan    `json:"plan" yaml:"plan"`
	Split              Split   `json:"split" yaml:"split"`
}

// Calculate runs the whole pipeline: BMR, TDEE, calorie target, macro
// allocation and percentage split. Range checks are the caller's concern
// (see Profile.Validate); enumerated fields are checked here.
func Calculate(p Profile) (Result, error) {
	if p.Sex != Male && p.Sex != Female {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidSex, p.Sex)
	}
	mult, err := ActivityMultiplier(p.ActivityLevel)
	if err != nil {
		return Result{}, err
	}
	bmr := EstimateBMR(p.Sex, p.WeightKG, p.HeightCM, p.Age)
	tdee := bmr * mult

	calories, err := ComputeCalorieTarget(tdee, p.Goal, p.Pace)
	if err != nil {
		return Result{}, err
	}
	plan := AllocateMacros(p.WeightKG, calories, p.Goal)

	return Result{
		Profile:            p,
		BMR:                bmr,
		ActivityMultiplier: mult,
		TDEE:               tdee,
		Plan:               plan,
		Split:              Percentages(plan),
	}, nil
}
