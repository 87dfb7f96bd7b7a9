package macro

import "math"

// Energy density of each macronutrient, kcal per gram.
const (
	ProteinKcalPerGram = 4
	CarbsKcalPerGram   = 4
	FatKcalPerGram     = 9
)

// Plan is the daily target: calories plus gram targets for each macro.
type Plan struct {
	Calories int `json:"calories" yaml:"calories"`
	ProteinG int `json:"protein_g" yaml:"protein_g"`
	FatG     int `json:"fat_g" yaml:"fat_g"`
	CarbsG   int `json:"carbs_g" yaml:"carbs_g"`
}

// gramsPerKG holds the bodyweight-scaled protein and fat coefficients.
type gramsPerKG struct {
	protein float64
	fat     float64
}

// macroCoefficients is keyed by goal. Goals without an entry use
// defaultCoefficients.
var macroCoefficients = map[Goal]gramsPerKG{
	Bulk: {protein: 1.6, fat: 0.9},
}

var defaultCoefficients = gramsPerKG{protein: 1.8, fat: 0.8}

// AllocateMacros sets protein and fat from bodyweight and gives the remaining
// calories to carbs. Carbs never go negative: if protein and fat already cover
// the target, carbs are zero.
//
// Each gram value is rounded on its own (half to even) from the unrounded
// intermediate, so the macros reconstruct the calorie target only approximately.
func AllocateMacros(weightKG float64, calories int, goal Goal) Plan {
	coef, ok := macroCoefficients[goal]
	if !ok {
		coef = defaultCoefficients
	}

	proteinG := coef.protein * weightKG
	fatG := coef.fat * weightKG

	proteinCal := proteinG * ProteinKcalPerGram
	fatCal := fatG * FatKcalPerGram
	remaining := math.Max(0, float64(calories)-(proteinCal+fatCal))
	carbsG := remaining / CarbsKcalPerGram

	return Plan{
		Calories: calories,
		ProteinG: int(math.RoundToEven(proteinG)),
		FatG:     int(math.RoundToEven(fatG)),
		CarbsG:   int(math.RoundToEven(carbsG)),
	}
}
