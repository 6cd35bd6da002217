package screener

import (
	"fmt"

	"github.com/wonny/divscreen/internal/contracts"
)

// Preset names as exposed to the UI and API
const (
	PresetHighYield      = "High Yield"
	PresetValuePlay      = "Value Play"
	PresetGrowthDividend = "Growth Dividend"
	PresetSafeIncome     = "Safe Income"
)

// PresetNames lists every preset in display order
var PresetNames = []string{
	PresetHighYield,
	PresetValuePlay,
	PresetGrowthDividend,
	PresetSafeIncome,
}

// presets are fixed predicate instances
var presets = map[string]Criteria{
	PresetHighYield: {
		MinYield: Bound(8.0),
	},
	PresetValuePlay: {
		MinDiscount: Bound(20.0),
		MinROE:      Bound(10.0),
	},
	PresetGrowthDividend: {
		MinROE:   Bound(15.0),
		MinYield: Bound(5.0),
	},
	PresetSafeIncome: {
		MinROE:   Bound(10.0),
		MinYield: Bound(5.0),
	},
}

// PresetCriteria resolves a preset name to its criteria
func PresetCriteria(name string) (Criteria, bool) {
	c, ok := presets[name]
	return c, ok
}

// ApplyPreset filters records through a named preset
func ApplyPreset(name string, records []contracts.EnrichedRecord) ([]contracts.EnrichedRecord, error) {
	criteria, ok := PresetCriteria(name)
	if !ok {
		return nil, fmt.Errorf("unknown preset: %q", name)
	}
	return Apply(records, criteria), nil
}
