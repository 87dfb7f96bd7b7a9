package macro

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.05
}

// TestPercentages_WorkedExample: 576/2200, 1048/2200, 576/2200.
func TestPercentages_WorkedExample(t *testing.T) {
	s := Percentages(Plan{Calories: 2200, ProteinG: 144, FatG: 64, CarbsG: 262})
	if !approxEqual(s.ProteinPct, 26.18) {
		t.Errorf("ProteinPct = %f, want ~26.2", s.ProteinPct)
	}
	if !approxEqual(s.FatPct, 26.18) {
		t.Errorf("FatPct = %f, want ~26.2", s.FatPct)
	}
	if !approxEqual(s.CarbsPct, 47.64) {
		t.Errorf("CarbsPct = %f, want ~47.6", s.CarbsPct)
	}
}

// TestPercentages_NonPositiveCalories verifies the zero-calorie guard returns
// a zero split instead of dividing by zero.
func TestPercentages_NonPositiveCalories(t *testing.T) {
	for _, cals := range []int{0, -1, -2200} {
		s := Percentages(Plan{Calories: cals, ProteinG: 144, FatG: 64, CarbsG: 262})
		if s != (Split{}) {
			t.Errorf("calories=%d: got %+v, want zero split", cals, s)
		}
	}
}
