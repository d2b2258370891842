package lrfd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateFactored(t *testing.T) {
	effects := LoadEffects{DC: 100, DW: 20, LLIM: 50}

	assert.InDelta(t, 1.25*100+1.5*20+1.75*50, LoadCombinations[0].CalculateFactored(effects), 1e-9)
	assert.InDelta(t, 170, LoadCombinations[2].CalculateFactored(effects), 1e-9)
}

func TestCalculateGoverning(t *testing.T) {
	effects := LoadEffects{DC: 100, DW: 20, LLIM: 50}

	u, combo := CalculateGoverning(effects, LoadCombinations)
	assert.Equal(t, "Strength I", combo.ID)
	assert.InDelta(t, 242.5, u, 1e-9)
}

func TestCalculateGoverningKeepsSign(t *testing.T) {
	effects := LoadEffects{DC: -10}

	u, combo := CalculateGoverning(effects, StrengthCombinations)
	assert.InDelta(t, -12.5, u, 1e-9)
	assert.Equal(t, "Strength I", combo.ID)
}

func TestLoadEffectsAdd(t *testing.T) {
	sum := LoadEffects{DC: 1, DW: 2, LLIM: 3}.Add(LoadEffects{DC: 1, DW: 1, LLIM: 1})
	assert.Equal(t, LoadEffects{DC: 2, DW: 3, LLIM: 4}, sum)
}
