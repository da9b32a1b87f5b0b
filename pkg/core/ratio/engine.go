package ratio

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Engine computes the four ratio groups for a single financial record.
// Validation runs once at construction; the diagnostics it records are
// advisory and never stop a computation.
type Engine struct {
	data   FinancialRecord
	errors []string
}

// NewEngine builds an engine around one record and validates it.
func NewEngine(data FinancialRecord) *Engine {
	e := &Engine{data: data}
	e.validate()
	return e
}

// ValidationErrors returns the diagnostics recorded at construction.
func (e *Engine) ValidationErrors() []string {
	return e.errors
}

func (e *Engine) validate() {
	for _, field := range requiredFields {
		if v, ok := e.data[field]; !ok || v == nil {
			e.errors = append(e.errors, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	// Negative checks run in sorted field order so diagnostics are stable.
	fields := make([]string, 0, len(e.data))
	for f := range e.data {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, field := range fields {
		v := e.data[field]
		if v != nil && *v < 0 && !strings.Contains(field, "liabilities") {
			e.errors = append(e.errors, fmt.Sprintf("Negative value for %s: %s", field, formatNumber(*v)))
		}
	}
}

// has reports whether the field is present with a usable (non-null) value.
func (e *Engine) has(field string) bool {
	v, ok := e.data[field]
	return ok && v != nil
}

// get returns the field value, defaulting absent or null fields to 0.
func (e *Engine) get(field string) float64 {
	if v, ok := e.data[field]; ok && v != nil {
		return *v
	}
	return 0
}

// divisor returns the field value and whether it is usable as a divisor:
// present, non-null, and non-zero.
func (e *Engine) divisor(field string) (float64, bool) {
	if !e.has(field) {
		return 0, false
	}
	v := e.get(field)
	return v, v != 0
}

// Profitability computes ROE, ROA and net profit margin. Missing or zero
// divisors produce explicit "<ratio>_error" entries for ROE and ROA; the
// margin is simply left out when revenue is unavailable.
func (e *Engine) Profitability() map[string]any {
	profitability := map[string]any{}

	if equity, ok := e.divisor(FieldTotalEquity); ok {
		roe := e.get(FieldNetIncome) / equity
		profitability["roe"] = round(roe, 4)
		profitability["roe_percentage"] = round(roe*100, 2)
		profitability["roe_interpretation"] = interpret(roe, roeBands, roeTerminal)
	} else {
		profitability["roe_error"] = "Cannot calculate ROE: missing or zero total equity"
	}

	if assets, ok := e.divisor(FieldTotalAssets); ok {
		roa := e.get(FieldNetIncome) / assets
		profitability["roa"] = round(roa, 4)
		profitability["roa_percentage"] = round(roa*100, 2)
		profitability["roa_interpretation"] = interpret(roa, roaBands, roaTerminal)
	} else {
		profitability["roa_error"] = "Cannot calculate ROA: missing or zero total assets"
	}

	if revenue, ok := e.divisor(FieldRevenue); ok {
		margin := e.get(FieldNetIncome) / revenue
		profitability["net_profit_margin"] = round(margin, 4)
		profitability["net_profit_margin_percentage"] = round(margin*100, 2)
	}

	return profitability
}

// Liquidity computes current, quick and cash ratios. Ratios whose required
// fields are absent are omitted without an error entry.
func (e *Engine) Liquidity() map[string]any {
	liquidity := map[string]any{}

	if e.has(FieldCurrentAssets) && e.has(FieldCurrentLiabilities) {
		if liabilities, ok := e.divisor(FieldCurrentLiabilities); ok {
			current := e.get(FieldCurrentAssets) / liabilities
			liquidity["current_ratio"] = round(current, 2)
			liquidity["current_ratio_interpretation"] = interpret(current, currentRatioBands, currentRatioTerminal)

			quickAssets := e.get(FieldCurrentAssets) - e.get(FieldInventory)
			quick := quickAssets / liabilities
			liquidity["quick_ratio"] = round(quick, 2)
			liquidity["quick_ratio_interpretation"] = interpret(quick, quickRatioBands, quickRatioTerminal)
		}
	}

	if e.has(FieldCash) && e.has(FieldCurrentLiabilities) {
		if liabilities, ok := e.divisor(FieldCurrentLiabilities); ok {
			cash := e.get(FieldCash) / liabilities
			liquidity["cash_ratio"] = round(cash, 2)
			liquidity["cash_ratio_interpretation"] = interpret(cash, cashRatioBands, cashRatioTerminal)
		}
	}

	return liquidity
}

// Leverage computes debt-to-equity, debt-to-assets and the equity ratio,
// with the same omission-on-missing policy as Liquidity.
func (e *Engine) Leverage() map[string]any {
	leverage := map[string]any{}

	if e.has(FieldTotalDebt) {
		if equity, ok := e.divisor(FieldTotalEquity); ok {
			dte := e.get(FieldTotalDebt) / equity
			leverage["debt_to_equity_ratio"] = round(dte, 2)
			leverage["debt_to_equity_interpretation"] = interpret(dte, debtToEquityBands, debtToEquityTerminal)
		}
		if assets, ok := e.divisor(FieldTotalAssets); ok {
			dta := e.get(FieldTotalDebt) / assets
			leverage["debt_to_assets_ratio"] = round(dta, 2)
			leverage["debt_to_assets_interpretation"] = interpret(dta, debtToAssetsBands, debtToAssetsTerminal)
		}
	}

	if e.has(FieldTotalEquity) {
		if assets, ok := e.divisor(FieldTotalAssets); ok {
			// No interpretation band for the equity ratio.
			leverage["equity_ratio"] = round(e.get(FieldTotalEquity)/assets, 2)
		}
	}

	return leverage
}

// Efficiency computes asset turnover and inventory turnover, omitting each
// when its inputs are missing or the divisor is zero.
func (e *Engine) Efficiency() map[string]any {
	efficiency := map[string]any{}

	if e.has(FieldRevenue) {
		if assets, ok := e.divisor(FieldTotalAssets); ok {
			turnover := e.get(FieldRevenue) / assets
			efficiency["asset_turnover"] = round(turnover, 2)
			efficiency["asset_turnover_interpretation"] = interpret(turnover, assetTurnoverBands, assetTurnoverTerminal)
		}
	}

	if e.has(FieldCostOfGoodsSold) {
		if inventory, ok := e.divisor(FieldInventory); ok {
			turnover := e.get(FieldCostOfGoodsSold) / inventory
			efficiency["inventory_turnover"] = round(turnover, 2)
			efficiency["inventory_turnover_interpretation"] = interpret(turnover, inventoryTurnoverBands, inventoryTurnoverTerminal)
		}
	}

	return efficiency
}

// Analyze runs every group and assembles the full report.
func (e *Engine) Analyze() *Report {
	profitability := e.Profitability()
	liquidity := e.Liquidity()
	leverage := e.Leverage()
	efficiency := e.Efficiency()

	return &Report{
		Profitability:    profitability,
		Liquidity:        liquidity,
		Leverage:         leverage,
		Efficiency:       efficiency,
		ValidationErrors: e.errors,
		Summary:          e.summarize(profitability, liquidity, leverage),
	}
}

// summarize produces the one-line health summary. A ratio that was never
// computed reads as 0 here, which can understate or overstate health for
// sparse records; that behavior matches the upstream calculator and is kept
// on purpose.
func (e *Engine) summarize(profitability, liquidity, leverage map[string]any) string {
	if len(e.errors) > 0 {
		return "Analysis incomplete due to missing data"
	}

	roeHealth := "moderate"
	if numberAt(profitability, "roe") > 0.10 {
		roeHealth = "strong"
	}
	liquidityHealth := "weak"
	if numberAt(liquidity, "current_ratio") > 1.5 {
		liquidityHealth = "strong"
	}
	leverageHealth := "elevated"
	if numberAt(leverage, "debt_to_equity_ratio") < 1.0 {
		leverageHealth = "strong"
	}

	return fmt.Sprintf("Overall financial health: %s profitability, %s liquidity, %s leverage",
		roeHealth, liquidityHealth, leverageHealth)
}

// numberAt reads a numeric group entry, defaulting to 0 when the key is
// missing or holds a non-numeric value (e.g. an error string).
func numberAt(group map[string]any, key string) float64 {
	if v, ok := group[key].(float64); ok {
		return v
	}
	return 0
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// formatNumber renders a float the shortest way (-50 not -50.000000) for
// diagnostic messages.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
