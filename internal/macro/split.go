package macro

// Split is the share of total calories contributed by each macro, in percent.
// The three values sum to roughly 100; per-field gram rounding causes drift.
type Split struct {
	ProteinPct float64 `json:"protein_pct" yaml:"protein_pct"`
	CarbsPct   float64 `json:"carbs_pct" yaml:"carbs_pct"`
	FatPct     float64 `json:"fat_pct" yaml:"fat_pct"`
}

// Percentages returns the calorie share of each macro in plan. A plan with no
// positive calorie total yields a zero Split.
func Percentages(plan Plan) Split {
	if plan.Calories <= 0 {
		return Split{}
	}
	total := float64(plan.Calories)
	return Split{
		ProteinPct: float64(plan.ProteinG*ProteinKcalPerGram) / total * 100,
		CarbsPct:   float64(plan.CarbsG*CarbsKcalPerGram) / total * 100,
		FatPct:     float64(plan.FatG*FatKcalPerGram) / total * 100,
	}
}
