package lrfd

// LoadCombination represents an AASHTO LRFD limit state load combination
// Based on AASHTO LRFD Table 3.4.1-1, maximum permanent load factors
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each user load case
	DC   float64 // Dead load of components and attachments
	DW   float64 // Dead load of wearing surfaces and utilities
	LLIM float64 // Vehicular live load with dynamic allowance
}

// LoadCombinations lists the limit states reported by the summary command
var LoadCombinations = []LoadCombination{
	{
		ID:          "Strength I",
		Description: "1.25DC + 1.50DW + 1.75(LL+IM)",
		DC:          1.25,
		DW:          1.50,
		LLIM:        1.75,
	},
	{
		ID:          "Strength II",
		Description: "1.25DC + 1.50DW + 1.35(LL+IM)",
		DC:          1.25,
		DW:          1.50,
		LLIM:        1.35,
	},
	{
		ID:          "Service I",
		Description: "1.00DC + 1.00DW + 1.00(LL+IM)",
		DC:          1.00,
		DW:          1.00,
		LLIM:        1.00,
	},
	{
		ID:          "Service III",
		Description: "1.00DC + 1.00DW + 0.80(LL+IM)",
		DC:          1.00,
		DW:          1.00,
		LLIM:        0.80,
	},
	{
		ID:          "Fatigue I",
		Description: "1.50(LL+IM)",
		LLIM:        1.50,
	},
}

// StrengthCombinations are the combinations used to pick a governing
// ultimate effect
var StrengthCombinations = LoadCombinations[:2]

// LoadEffects holds unfactored effects from the user load cases
type LoadEffects struct {
	DC   float64 // kN or kN-m
	DW   float64 // kN or kN-m
	LLIM float64 // kN or kN-m
}

// Add returns the component-wise sum of two effect sets
func (e LoadEffects) Add(o LoadEffects) LoadEffects {
	return LoadEffects{DC: e.DC + o.DC, DW: e.DW + o.DW, LLIM: e.LLIM + o.LLIM}
}

// CalculateFactored calculates the factored effect for a given load combination
func (lc LoadCombination) CalculateFactored(effects LoadEffects) float64 {
	return lc.DC*effects.DC +
		lc.DW*effects.DW +
		lc.LLIM*effects.LLIM
}

// CalculateGoverning finds the largest factored effect magnitude from all combinations.
// The sign of the governing effect is preserved.
func CalculateGoverning(effects LoadEffects, combinations []LoadCombination) (float64, LoadCombination) {
	var governing float64
	var governingCombo LoadCombination

	for i, combo := range combinations {
		u := combo.CalculateFactored(effects)
		if i == 0 || abs(u) > abs(governing) {
			governing = u
			governingCombo = combo
		}
	}

	return governing, governingCombo
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
