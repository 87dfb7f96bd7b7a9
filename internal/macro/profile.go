// Package macro computes daily calorie and macronutrient targets from a body
// profile. Every function is a pure function of its inputs.
package macro

import (
	"fmt"
	"strings"
)

// Sex selects the Mifflin-St Jeor constant. Only the two categories the
// formula defines are supported.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Goal is the direction of the intended weight change.
type Goal string

const (
	Cut      Goal = "cut"
	Maintain Goal = "maintain"
	Bulk     Goal = "bulk"
)

// Pace modulates the size of the calorie deficit or surplus.
type Pace string

const (
	Slow       Pace = "slow"
	Standard   Pace = "standard"
	Aggressive Pace = "aggressive"
)

// Input ranges enforced at the boundary (HTTP / CLI).
const (
	MinAge      = 13
	MaxAge      = 90
	MinHeightCM = 120.0
	MaxHeightCM = 230.0
	MinWeightKG = 35.0
	MaxWeightKG = 200.0
)

// Profile is the set of inputs for one calculation. It is built once per
// request and never mutated.
type Profile struct {
	Sex           Sex           `json:"sex" yaml:"sex"`
	Age           int           `json:"age" yaml:"age"`
	HeightCM      float64       `json:"height_cm" yaml:"height_cm"`
	WeightKG      float64       `json:"weight_kg" yaml:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level" yaml:"activity_level"`
	Goal          Goal          `json:"goal" yaml:"goal"`
	Pace          Pace          `json:"pace" yaml:"pace"`
}

// ParseSex accepts "male" or "female" in any case.
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToLower(strings.TrimSpace(s))) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSex, s)
}

// ParseGoal accepts a goal name in any case. Membership is checked against
// the delta table so that adding a goal there is enough to accept it here.
func ParseGoal(s string) (Goal, error) {
	g := Goal(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := calorieDeltas[g]; !ok {
		return "", fmt.Errorf("%w: unknown goal %q", ErrInvalidGoalOrPace, s)
	}
	return g, nil
}

// ParsePace accepts a pace name in any case.
func ParsePace(s string) (Pace, error) {
	p := Pace(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Slow, Standard, Aggressive:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown pace %q", ErrInvalidGoalOrPace, s)
}

// Validate reports the first field that falls outside the ranges the input
// form allows. Enumerated fields are checked by their parsers and lookups.
func (p Profile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrOutOfRange, MinAge, MaxAge)
	}
	if p.HeightCM < MinHeightCM || p.HeightCM > MaxHeightCM {
		return fmt.Errorf("%w: height_cm must be between %.0f and %.0f", ErrOutOfRange, MinHeightCM, MaxHeightCM)
	}
	if p.WeightKG < MinWeightKG || p.WeightKG > MaxWeightKG {
		return fmt.Errorf("%w: weight_kg must be between %.0f and %.0f", ErrOutOfRange, MinWeightKG, MaxWeightKG)
	}
	return nil
}
