package mealplan

import (
	"encoding/json"
	"fmt"

	"lg/macromate-go-api/internal/macro"
)

// promptPreamble sets up the coaching persona. It must stay non-diagnostic.
const promptPreamble = `You are MacroMate, a helpful fitness nutrition coach.
You provide general educational guidance. You do NOT diagnose or treat medical conditions.
Be practical, concise, and supportive.`

// promptInstructions lists the four required sections and the constraints.
const promptInstructions = `Output:
1) A short plan for hitting the daily targets (meals structure + protein strategy).
2) A 1-day sample menu (breakfast/lunch/dinner/snack) with rough macros per meal.
3) A "weekly check-in rule" (how to adjust calories if weight trend is not moving).
4) 3 simple grocery staples list.

Constraints:
- Avoid medical claims.
- Prefer generally accessible whole foods.`

// promptTargets mirrors macro.Plan in the field order the prompt uses.
type promptTargets struct {
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
	CarbsG   int `json:"carbs_g"`
	Calories int `json:"calories"`
}

// promptContext is the user profile dump embedded in the prompt.
type promptContext struct {
	Age      int           `json:"age"`
	Sex      macro.Sex     `json:"sex"`
	HeightCM float64       `json:"height_cm"`
	WeightKG float64       `json:"weight_kg"`
	Activity string        `json:"activity"`
	Goal     macro.Goal    `json:"goal"`
	Pace     macro.Pace    `json:"pace"`
	Targets  promptTargets `json:"targets"`
}

// BuildPrompt composes the meal-plan request for the text-generation service
// from the profile and its computed targets. The activity tier is written
// using its display label.
func BuildPrompt(p macro.Profile, plan macro.Plan) (string, error) {
	activity := string(p.ActivityLevel)
	for _, tier := range macro.ActivityTiers() {
		if tier.Key == p.ActivityLevel {
			activity = tier.Label
			break
		}
	}

	ctxJSON, err := json.MarshalIndent(promptContext{
		Age:      p.Age,
		Sex:      p.Sex,
		HeightCM: p.HeightCM,
		WeightKG: p.WeightKG,
		Activity: activity,
		Goal:     p.Goal,
		Pace:     p.Pace,
		Targets: promptTargets{
			ProteinG: plan.ProteinG,
			FatG:     plan.FatG,
			CarbsG:   plan.CarbsG,
			Calories: plan.Calories,
		},
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}

	return fmt.Sprintf("%s\n\nGiven this user profile (JSON):\n%s\n\n%s\n",
		promptPreamble, ctxJSON, promptInstructions), nil
}
