// Package ratio computes standard financial-statement ratios from a single
// flat record of numeric fields and classifies each into a qualitative
// health band. The engine is stateless and pure: one record in, one report
// out, no I/O.
package ratio

// FinancialRecord maps field names to values. A nil value means the field
// was supplied as an explicit null; a missing key means it was absent.
type FinancialRecord map[string]*float64

// Recognized field names. All are optional; the three required-for-validity
// fields produce diagnostics (not failures) when absent.
const (
	FieldRevenue            = "revenue"
	FieldNetIncome          = "net_income"
	FieldTotalAssets        = "total_assets"
	FieldTotalEquity        = "total_equity"
	FieldCurrentAssets      = "current_assets"
	FieldCurrentLiabilities = "current_liabilities"
	FieldInventory          = "inventory"
	FieldCash               = "cash"
	FieldTotalDebt          = "total_debt"
	FieldCostOfGoodsSold    = "cost_of_goods_sold"
)

// requiredFields gate the summary wording when missing. Order is fixed so
// diagnostics come out deterministically.
var requiredFields = []string{FieldNetIncome, FieldTotalEquity, FieldTotalAssets}

// Report aggregates the four ratio groups plus record-level diagnostics and
// a one-line qualitative summary.
//
// Each group maps ratio name to its value, percentage form, and
// interpretation under separate keys (e.g. "roe", "roe_percentage",
// "roe_interpretation"), or carries an "<name>_error" entry when the
// profitability divisor was missing or zero. The other three groups omit
// uncomputable ratios silently instead of emitting error entries; that
// asymmetry is deliberate and callers depend on it.
type Report struct {
	Profitability map[string]any `json:"profitability"`
	Liquidity     map[string]any `json:"liquidity"`
	Leverage      map[string]any `json:"leverage"`
	Efficiency    map[string]any `json:"efficiency"`

	// ValidationErrors is null in JSON when no diagnostics were recorded.
	ValidationErrors []string `json:"validation_errors"`

	Summary string `json:"summary"`
}

// Value returns a field pointer convenience for building records in callers
// and tests.
func Value(f float64) *float64 { return &f }
