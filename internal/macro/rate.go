package macro

import "fmt"

// ActivityLevel is the key of one activity tier, e.g. "sedentary".
type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	VeryActive ActivityLevel = "very_active"
	Athlete    ActivityLevel = "athlete"
)

// ActivityTier binds an activity level to its display label and TDEE multiplier.
type ActivityTier struct {
	Key        ActivityLevel `json:"key" yaml:"key"`
	Label      string        `json:"label" yaml:"label"`
	Multiplier float64       `json:"multiplier" yaml:"multiplier"`
}

// activityTiers is the ordered tier table, least to most active. It is the
// single source of truth for valid activity levels.
var activityTiers = []ActivityTier{
	{Key: Sedentary, Label: "Sedentary (little/no exercise)", Multiplier: 1.2},
	{Key: Light, Label: "Light (1–3 days/wk)", Multiplier: 1.375},
	{Key: Moderate, Label: "Moderate (3–5 days/wk)", Multiplier: 1.55},
	{Key: VeryActive, Label: "Very active (6–7 days/wk)", Multiplier: 1.725},
	{Key: Athlete, Label: "Athlete (2x/day training)", Multiplier: 1.9},
}

// activityMultipliers maps activity level keys to their TDEE multiplier.
var activityMultipliers = func() map[ActivityLevel]float64 {
	m := make(map[ActivityLevel]float64, len(activityTiers))
	for _, t := range activityTiers {
		m[t.Key] = t.Multiplier
	}
	return m
}()

// ActivityTiers returns a copy of the tier table in display order.
func ActivityTiers() []ActivityTier {
	out := make([]ActivityTier, len(activityTiers))
	copy(out, activityTiers)
	return out
}

// ParseActivityLevel resolves a tier by its exact key or its exact display label.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	for _, t := range activityTiers {
		if s == string(t.Key) || s == t.Label {
			return t.Key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidActivityLevel, s)
}

// ActivityMultiplier returns the TDEE multiplier for level.
func ActivityMultiplier(level ActivityLevel) (float64, error) {
	mult, found := activityMultipliers[level]
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrInvalidActivityLevel, level)
	}
	return mult, nil
}

// EstimateBMR returns the Mifflin-St Jeor basal metabolic rate in kcal/day.
// Any sex other than Male takes the female constant; callers parse sex first.
func EstimateBMR(sex Sex, weightKG, heightCM float64, age int) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if sex == Male {
		return bmr + 5
	}
	return bmr - 161
}

// EstimateTDEE scales the BMR by the activity multiplier. The result is not
// clamped or rounded.
func EstimateTDEE(sex Sex, weightKG, heightCM float64, age int, level ActivityLevel) (float64, error) {
	mult, err := ActivityMultiplier(level)
	if err != nil {
		return 0, err
	}
	return EstimateBMR(sex, weightKG, heightCM, age) * mult, nil
}
