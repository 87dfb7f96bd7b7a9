package macro

import (
	"errors"
	"math"
	"testing"
)

/* ─── BMR accuracy tests ─────────────────────────────────────────────── */

// TestEstimateBMR_Male verifies the male Mifflin-St Jeor formula.
//
// Inputs: 80kg, 180cm, 19 years. 10*80 + 6.25*180 - 5*19 + 5 = 1835.
func TestEstimateBMR_Male(t *testing.T) {
	bmr := EstimateBMR(Male, 80, 180, 19)
	if bmr != 1835 {
		t.Errorf("male BMR = %f, want 1835", bmr)
	}
}

// TestEstimateBMR_Female verifies the female constant (-161 instead of +5).
func TestEstimateBMR_Female(t *testing.T) {
	bmr := EstimateBMR(Female, 80, 180, 19)
	if bmr != 1669 {
		t.Errorf("female BMR = %f, want 1669", bmr)
	}
}

/* ─── TDEE tests ─────────────────────────────────────────────────────── */

// TestEstimateTDEE_AllTiers checks every tier multiplies the same BMR by its
// table value.
func TestEstimateTDEE_AllTiers(t *testing.T) {
	cases := []struct {
		level ActivityLevel
		mult  float64
	}{
		{Sedentary, 1.2},
		{Light, 1.375},
		{Moderate, 1.55},
		{VeryActive, 1.725},
		{Athlete, 1.9},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			tdee, err := EstimateTDEE(Male, 80, 180, 19, tc.level)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := 1835 * tc.mult
			if math.Abs(tdee-want) > 1e-9 {
				t.Errorf("TDEE = %f, want %f", tdee, want)
			}
		})
	}
}

// TestEstimateTDEE_UnknownActivityLevel verifies an unrecognised tier fails
// with ErrInvalidActivityLevel.
func TestEstimateTDEE_UnknownActivityLevel(t *testing.T) {
	_, err := EstimateTDEE(Male, 80, 180, 19, "couch")
	if !errors.Is(err, ErrInvalidActivityLevel) {
		t.Errorf("expected ErrInvalidActivityLevel, got %v", err)
	}
}

/* ─── Activity tier parsing ──────────────────────────────────────────── */

func TestParseActivityLevel_KeyAndLabel(t *testing.T) {
	for _, tier := range ActivityTiers() {
		byKey, err := ParseActivityLevel(string(tier.Key))
		if err != nil || byKey != tier.Key {
			t.Errorf("ParseActivityLevel(%q) = %q, %v", tier.Key, byKey, err)
		}
		byLabel, err := ParseActivityLevel(tier.Label)
		if err != nil || byLabel != tier.Key {
			t.Errorf("ParseActivityLevel(%q) = %q, %v", tier.Label, byLabel, err)
		}
	}
}

// TestParseActivityLevel_ExactMatchOnly verifies that near-misses (case,
// truncated labels) are rejected rather than guessed.
func TestParseActivityLevel_ExactMatchOnly(t *testing.T) {
	for _, s := range []string{"Sedentary", "SEDENTARY", "sedentary ", "Light", ""} {
		if _, err := ParseActivityLevel(s); !errors.Is(err, ErrInvalidActivityLevel) {
			t.Errorf("ParseActivityLevel(%q): expected ErrInvalidActivityLevel, got %v", s, err)
		}
	}
}

// TestActivityTiers_Ordered verifies the table is ordered by increasing
// multiplier and that callers get a copy.
func TestActivityTiers_Ordered(t *testing.T) {
	tiers := ActivityTiers()
	if len(tiers) != 5 {
		t.Fatalf("expected 5 tiers, got %d", len(tiers))
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Multiplier <= tiers[i-1].Multiplier {
			t.Errorf("tier %q multiplier %f not above %q", tiers[i].Key, tiers[i].Multiplier, tiers[i-1].Key)
		}
	}
	tiers[0].Multiplier = 99
	if m, _ := ActivityMultiplier(Sedentary); m != 1.2 {
		t.Errorf("mutating the returned slice changed the table: %f", m)
	}
	if ActivityTiers()[0].Multiplier != 1.2 {
		t.Error("mutating the returned slice changed ActivityTiers()")
	}
}
