package nscp

import (
	"fmt"
	"math"
	"strings"
)

// Load case codes used to tag loads
const (
	CaseDead       = "D"
	CaseLive       = "L"
	CaseRoof       = "Lr"
	CaseWind       = "W"
	CaseEarthquake = "E"
	CaseRain       = "R"
)

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// Unfactored applies every load at its service value
var Unfactored = LoadCombination{
	ID:          "0",
	Description: "Service (unfactored)",
	Dead:        1,
	Live:        1,
	Roof:        1,
	Wind:        1,
	Earthquake:  1,
	Rain:        1,
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for common beam design scenarios
// These are the most frequently used combinations for gravity loads
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// ValidCase reports whether code names a load case. An empty code is
// treated as dead load.
func ValidCase(code string) bool {
	switch NormalizeCase(code) {
	case CaseDead, CaseLive, CaseRoof, CaseWind, CaseEarthquake, CaseRain:
		return true
	}
	return false
}

// NormalizeCase maps the accepted spellings of a load case to its code
func NormalizeCase(code string) string {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "", "d", "dead":
		return CaseDead
	case "l", "live":
		return CaseLive
	case "lr", "roof":
		return CaseRoof
	case "w", "wind":
		return CaseWind
	case "e", "earthquake":
		return CaseEarthquake
	case "r", "rain":
		return CaseRain
	}
	return code
}

// Factor returns the load factor the combination applies to a load case
func (lc LoadCombination) Factor(code string) float64 {
	switch NormalizeCase(code) {
	case CaseDead:
		return lc.Dead
	case CaseLive:
		return lc.Live
	case CaseRoof:
		return lc.Roof
	case CaseWind:
		return lc.Wind
	case CaseEarthquake:
		return lc.Earthquake
	case CaseRain:
		return lc.Rain
	}
	return 0
}

// Find looks a combination up by ID
func Find(combinations []LoadCombination, id string) (LoadCombination, error) {
	for _, c := range combinations {
		if c.ID == id {
			return c, nil
		}
	}
	return LoadCombination{}, fmt.Errorf("unknown load combination %q", id)
}

// CalculateGoverning evaluates every combination and returns the one with
// the largest absolute result, e.g. the peak bending moment of the beam
// under that combination.
func CalculateGoverning(combinations []LoadCombination, eval func(LoadCombination) (float64, error)) (float64, LoadCombination, error) {
	var maxValue float64
	var governingCombo LoadCombination
	found := false

	for _, combo := range combinations {
		v, err := eval(combo)
		if err != nil {
			return 0, LoadCombination{}, fmt.Errorf("combination %s: %w", combo.ID, err)
		}
		if !found || math.Abs(v) > math.Abs(maxValue) {
			maxValue = v
			governingCombo = combo
			found = true
		}
	}

	return maxValue, governingCombo, nil
}
