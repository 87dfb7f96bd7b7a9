package main

import (
	"lg/macromate-go-api/internal/macro"
)

// profileRequest is the request body for POST /api/targets and
// POST /api/meal-plan. Enumerated fields arrive as strings and are parsed
// into their macro types by toProfile.
type profileRequest struct {
	Sex           string  `json:"sex"            binding:"required"`
	Age           int     `json:"age"            binding:"required"`
	HeightCM      float64 `json:"height_cm"      binding:"required"`
	WeightKG      float64 `json:"weight_kg"      binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	Goal          string  `json:"goal"           binding:"required"`
	Pace          string  `json:"pace"`
}

// toProfile parses and range-checks the request. Pace defaults to standard
// because maintain ignores it and the form preselects it.
func (r profileRequest) toProfile() (macro.Profile, error) {
	sex, err := macro.ParseSex(r.Sex)
	if err != nil {
		return macro.Profile{}, err
	}
	activity, err := macro.ParseActivityLevel(r.ActivityLevel)
	if err != nil {
		return macro.Profile{}, err
	}
	goal, err := macro.ParseGoal(r.Goal)
	if err != nil {
		return macro.Profile{}, err
	}
	pace := macro.Standard
	if r.Pace != "" {
		if pace, err = macro.ParsePace(r.Pace); err != nil {
			return macro.Profile{}, err
		}
	}

	p := macro.Profile{
		Sex:           sex,
		Age:           r.Age,
		HeightCM:      r.HeightCM,
		WeightKG:      r.WeightKG,
		ActivityLevel: activity,
		Goal:          goal,
		Pace:          pace,
	}
	if err := p.Validate(); err != nil {
		return macro.Profile{}, err
	}
	return p, nil
}

// mealPlanResponse is the response shape for POST /api/meal-plan. Text is the
// provider's answer, unmodified.
type mealPlanResponse struct {
	ID       string       `json:"id"`
	Provider string       `json:"provider"`
	Targets  macro.Result `json:"targets"`
	Text     string       `json:"text"`
}
