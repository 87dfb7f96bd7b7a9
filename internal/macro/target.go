package macro

import (
	"fmt"
	"math"
)

// MinCalories is the floor applied to every calorie target.
const MinCalories = 1200

// calorieDeltas is the kcal/day adjustment from TDEE for each goal and pace.
// Maintain carries an entry for every pace so that pace is ignored rather
// than rejected.
var calorieDeltas = map[Goal]map[Pace]int{
	Cut:      {Slow: -300, Standard: -500, Aggressive: -700},
	Maintain: {Slow: 0, Standard: 0, Aggressive: 0},
	Bulk:     {Slow: 200, Standard: 300, Aggressive: 450},
}

// CalorieDelta returns the adjustment for goal and pace.
func CalorieDelta(goal Goal, pace Pace) (int, error) {
	byPace, ok := calorieDeltas[goal]
	if !ok {
		return 0, fmt.Errorf("%w: goal %q", ErrInvalidGoalOrPace, goal)
	}
	delta, ok := byPace[pace]
	if !ok {
		return 0, fmt.Errorf("%w: goal %q with pace %q", ErrInvalidGoalOrPace, goal, pace)
	}
	return delta, nil
}

// ComputeCalorieTarget applies the goal/pace delta to tdee, floors the result
// at MinCalories and rounds it to the nearest multiple of 10.
func ComputeCalorieTarget(tdee float64, goal Goal, pace Pace) (int, error) {
	delta, err := CalorieDelta(goal, pace)
	if err != nil {
		return 0, err
	}
	return RoundTo(math.Max(MinCalories, tdee+float64(delta)), 10), nil
}

// RoundTo rounds n to the nearest multiple of base. Ties on n/base go to the
// even quotient, so 2205 rounds to 2200 and 2215 to 2220.
func RoundTo(n float64, base int) int {
	return base * int(math.RoundToEven(n/float64(base)))
}
