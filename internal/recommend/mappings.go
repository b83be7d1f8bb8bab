package recommend

import "github.com/Arshavi-03/Finergize-recommend/internal/catalog"

// featureDetail is the static explanation/tip pair attached to a scored
// feature regardless of its score.
type featureDetail struct {
	Explanation string
	Tip         string
}

var featureDetails = map[string]featureDetail{
	"digital_banking": {
		Explanation: "Modern banking services for easy money management via mobile.",
		Tip:         "Start with basic UPI payments and bill payments to get comfortable.",
	},
	"mutual_funds": {
		Explanation: "Simple investment options to grow your wealth over time.",
		Tip:         "Begin with a SIP (Systematic Investment Plan) with as little as ₹500 per month.",
	},
	"community_savings": {
		Explanation: "Save together with family or community members for shared goals.",
		Tip:         "Create a savings group with 5-10 trusted people you know.",
	},
	"micro_loans": {
		Explanation: "Small loans for personal or business needs with simple application.",
		Tip:         "Start with a small loan amount to build your credit profile.",
	},
	"analytics_profile": {
		Explanation: "Track your spending and get personalized insights to manage money better.",
		Tip:         "Link your accounts to get a complete picture of your finances.",
	},
	"financial_education": {
		Explanation: "Learn essential financial skills through courses and articles.",
		Tip:         "Start with the basic modules on budgeting and saving.",
	},
}

// detailFor returns the static detail for a feature, falling back to the
// catalogue description for bundle-defined features without an entry.
func detailFor(id string, feature catalog.Feature) featureDetail {
	if detail, ok := featureDetails[id]; ok {
		return detail
	}
	return featureDetail{Explanation: feature.Description}
}

var incomeLevels = map[string]string{
	"income_low":         "Below ₹15,000",
	"income_medium_low":  "₹15,000 - ₹30,000",
	"income_medium":      "₹30,000 - ₹60,000",
	"income_medium_high": "₹60,000 - ₹1,20,000",
	"income_high":        "Above ₹1,20,000",
}

const defaultIncomeLevel = "₹30,000 - ₹60,000"

// mapIncomeLevel maps an income range tag to its display band. Unknown or
// missing tags map to the middle band.
func mapIncomeLevel(incomeRange string) string {
	if level, ok := incomeLevels[incomeRange]; ok {
		return level
	}
	return defaultIncomeLevel
}
