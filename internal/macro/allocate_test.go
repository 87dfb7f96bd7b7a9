package macro

import "testing"

// TestAllocateMacros_Maintain checks the worked example: 80kg at 2200 kcal.
// protein = 1.8*80 = 144, fat = 0.8*80 = 64, carbs = (2200-576-576)/4 = 262.
func TestAllocateMacros_Maintain(t *testing.T) {
	got := AllocateMacros(80, 2200, Maintain)
	want := Plan{Calories: 2200, ProteinG: 144, FatG: 64, CarbsG: 262}
	if got != want {
		t.Errorf("AllocateMacros = %+v, want %+v", got, want)
	}
}

// TestAllocateMacros_Cut uses the same coefficients as maintain.
func TestAllocateMacros_Cut(t *testing.T) {
	got := AllocateMacros(80, 1700, Cut)
	want := Plan{Calories: 1700, ProteinG: 144, FatG: 64, CarbsG: 137}
	if got != want {
		t.Errorf("AllocateMacros = %+v, want %+v", got, want)
	}
}

// TestAllocateMacros_Bulk verifies the bulk coefficients (1.6 / 0.9 g/kg).
// protein = 128, fat = 72, carbs = (2500-512-648)/4 = 335.
func TestAllocateMacros_Bulk(t *testing.T) {
	got := AllocateMacros(80, 2500, Bulk)
	want := Plan{Calories: 2500, ProteinG: 128, FatG: 72, CarbsG: 335}
	if got != want {
		t.Errorf("AllocateMacros = %+v, want %+v", got, want)
	}
}

// TestAllocateMacros_CarbsClampToZero verifies that when protein and fat
// calories exceed the target, carbs are zero instead of negative.
func TestAllocateMacros_CarbsClampToZero(t *testing.T) {
	// 200kg maintain: protein 360g (1440 kcal) alone exceeds 1200.
	got := AllocateMacros(200, 1200, Maintain)
	if got.CarbsG != 0 {
		t.Errorf("CarbsG = %d, want 0", got.CarbsG)
	}
	if got.ProteinG != 360 || got.FatG != 160 {
		t.Errorf("protein/fat = %d/%d, want 360/160", got.ProteinG, got.FatG)
	}
	if got.Calories != 1200 {
		t.Errorf("Calories = %d, want 1200", got.Calories)
	}
}

// TestAllocateMacros_PerFieldRounding verifies each gram value rounds on its
// own. 72.5kg maintain: protein 130.5 -> 130 (half to even), fat 58.
func TestAllocateMacros_PerFieldRounding(t *testing.T) {
	got := AllocateMacros(72.5, 2000, Maintain)
	if got.ProteinG != 130 {
		t.Errorf("ProteinG = %d, want 130", got.ProteinG)
	}
	if got.FatG != 58 {
		t.Errorf("FatG = %d, want 58", got.FatG)
	}
	// remaining = 2000 - 522 - 522 = 956 -> 239g
	if got.CarbsG != 239 {
		t.Errorf("CarbsG = %d, want 239", got.CarbsG)
	}
}
