package ratio

// band is one row of an ordered threshold table: values strictly below Upper
// take Label. Tables are sorted ascending; the terminal label catches
// everything at or above the last cutoff, so boundaries always resolve to
// the higher band (an ROE of exactly 0.20 is "Excellent", not "Very Good").
type band struct {
	Upper float64
	Label string
}

func interpret(v float64, bands []band, terminal string) string {
	for _, b := range bands {
		if v < b.Upper {
			return b.Label
		}
	}
	return terminal
}

var roeBands = []band{
	{0.05, "Poor - Below 5% indicates weak profitability"},
	{0.10, "Fair - 5-10% is below average performance"},
	{0.15, "Good - 10-15% is healthy return on equity"},
	{0.20, "Very Good - 15-20% indicates strong performance"},
}

const roeTerminal = "Excellent - Above 20% is outstanding return on equity"

var roaBands = []band{
	{0.02, "Poor - Below 2% indicates inefficient asset use"},
	{0.05, "Fair - 2-5% is average asset efficiency"},
	{0.10, "Good - 5-10% indicates healthy asset efficiency"},
}

const roaTerminal = "Excellent - Above 10% shows strong asset efficiency"

var currentRatioBands = []band{
	{1.0, "Weak - Below 1.0 indicates potential liquidity problems"},
	{1.5, "Fair - 1.0-1.5 indicates adequate short-term liquidity"},
	{3.0, "Good - 1.5-3.0 indicates healthy liquidity position"},
}

const currentRatioTerminal = "Excellent - Above 3.0 indicates very strong liquidity"

var quickRatioBands = []band{
	{0.5, "Weak - Below 0.5 indicates potential liquidity stress"},
	{1.0, "Fair - 0.5-1.0 indicates adequate immediate liquidity"},
}

const quickRatioTerminal = "Good - Above 1.0 indicates strong immediate liquidity"

var cashRatioBands = []band{
	{0.2, "Low - Below 0.2 is typical for most companies"},
	{0.5, "Adequate - 0.2-0.5 indicates good cash reserves"},
}

const cashRatioTerminal = "Strong - Above 0.5 indicates excellent cash position"

var debtToEquityBands = []band{
	{0.5, "Conservative - Low leverage with good equity cushion"},
	{1.0, "Moderate - Balanced capital structure"},
	{2.0, "Elevated - Higher leverage requires monitoring"},
}

const debtToEquityTerminal = "High - Significant financial risk from high leverage"

var debtToAssetsBands = []band{
	{0.3, "Conservative - Low proportion of debt financing"},
	{0.5, "Moderate - Reasonable debt level"},
	{0.7, "Elevated - Higher proportion financed by debt"},
}

const debtToAssetsTerminal = "High - Majority of assets financed by debt"

var assetTurnoverBands = []band{
	{0.5, "Low - Assets are underutilized; consider optimization"},
	{1.0, "Moderate - Reasonable asset efficiency"},
	{2.0, "Good - Efficient use of assets to generate revenue"},
}

const assetTurnoverTerminal = "Excellent - Very efficient asset utilization"

var inventoryTurnoverBands = []band{
	{2, "Low - Slow inventory movement; consider clearance"},
	{5, "Moderate - Reasonable inventory turnover"},
	{10, "Good - Healthy inventory management"},
}

const inventoryTurnoverTerminal = "Excellent - Very efficient inventory turnover"
