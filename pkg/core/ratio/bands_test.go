package ratio

import (
	"strings"
	"testing"
)

// Boundary checks for every threshold table. Cutoffs are strict upper
// bounds: a value exactly at a cutoff belongs to the next band up.
func TestBandBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		bands    []band
		terminal string
		value    float64
		want     string // label prefix
	}{
		{"roe just below poor cutoff", roeBands, roeTerminal, 0.0499, "Poor"},
		{"roe at fair cutoff", roeBands, roeTerminal, 0.05, "Fair"},
		{"roe at good cutoff", roeBands, roeTerminal, 0.10, "Good"},
		{"roe at very good cutoff", roeBands, roeTerminal, 0.15, "Very Good"},
		{"roe at excellent cutoff", roeBands, roeTerminal, 0.20, "Excellent"},
		{"roe negative", roeBands, roeTerminal, -0.10, "Poor"},

		{"roa at fair cutoff", roaBands, roaTerminal, 0.02, "Fair"},
		{"roa at good cutoff", roaBands, roaTerminal, 0.05, "Good"},
		{"roa at excellent cutoff", roaBands, roaTerminal, 0.10, "Excellent"},

		{"current below one", currentRatioBands, currentRatioTerminal, 0.99, "Weak"},
		{"current at one", currentRatioBands, currentRatioTerminal, 1.0, "Fair"},
		{"current at one point five", currentRatioBands, currentRatioTerminal, 1.5, "Good"},
		{"current at three", currentRatioBands, currentRatioTerminal, 3.0, "Excellent"},

		{"quick at half", quickRatioBands, quickRatioTerminal, 0.5, "Fair"},
		{"quick at one", quickRatioBands, quickRatioTerminal, 1.0, "Good"},

		{"cash below point two", cashRatioBands, cashRatioTerminal, 0.19, "Low"},
		{"cash at point two", cashRatioBands, cashRatioTerminal, 0.2, "Adequate"},
		{"cash at half", cashRatioBands, cashRatioTerminal, 0.5, "Strong"},

		{"dte at half", debtToEquityBands, debtToEquityTerminal, 0.5, "Moderate"},
		{"dte at one", debtToEquityBands, debtToEquityTerminal, 1.0, "Elevated"},
		{"dte at two", debtToEquityBands, debtToEquityTerminal, 2.0, "High"},

		{"dta at point three", debtToAssetsBands, debtToAssetsTerminal, 0.3, "Moderate"},
		{"dta at point five", debtToAssetsBands, debtToAssetsTerminal, 0.5, "Elevated"},
		{"dta at point seven", debtToAssetsBands, debtToAssetsTerminal, 0.7, "High"},

		{"turnover at half", assetTurnoverBands, assetTurnoverTerminal, 0.5, "Moderate"},
		{"turnover at one", assetTurnoverBands, assetTurnoverTerminal, 1.0, "Good"},
		{"turnover at two", assetTurnoverBands, assetTurnoverTerminal, 2.0, "Excellent"},

		{"inventory at two", inventoryTurnoverBands, inventoryTurnoverTerminal, 2, "Moderate"},
		{"inventory at five", inventoryTurnoverBands, inventoryTurnoverTerminal, 5, "Good"},
		{"inventory at ten", inventoryTurnoverBands, inventoryTurnoverTerminal, 10, "Excellent"},
	}

	for _, tc := range cases {
		got := interpret(tc.value, tc.bands, tc.terminal)
		if !strings.HasPrefix(got, tc.want) {
			t.Errorf("%s: interpret(%v) = %q, want prefix %q", tc.name, tc.value, got, tc.want)
		}
	}
}

// Band tables must be sorted ascending or interpret silently misclassifies.
func TestBandTablesSorted(t *testing.T) {
	tables := map[string][]band{
		"roe":                roeBands,
		"roa":                roaBands,
		"current_ratio":      currentRatioBands,
		"quick_ratio":        quickRatioBands,
		"cash_ratio":         cashRatioBands,
		"debt_to_equity":     debtToEquityBands,
		"debt_to_assets":     debtToAssetsBands,
		"asset_turnover":     assetTurnoverBands,
		"inventory_turnover": inventoryTurnoverBands,
	}
	for name, table := range tables {
		for i := 1; i < len(table); i++ {
			if table[i].Upper <= table[i-1].Upper {
				t.Errorf("%s band table not strictly ascending at index %d", name, i)
			}
		}
	}
}
