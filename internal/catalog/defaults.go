package catalog

// Default returns the built-in six-feature catalogue. It is used whenever no
// model bundle is configured or the configured bundle cannot be loaded.
func Default() *Catalog {
	return New([]Feature{
		{
			ID:          "digital_banking",
			Name:        "Digital Banking",
			Description: "Secure digital banking services with UPI payments, bill payments, and account management",
			IdealFor:    "Users looking for convenient, modern banking with minimal fees",
		},
		{
			ID:          "mutual_funds",
			Name:        "Mutual Funds",
			Description: "Simple investments in diversified mutual funds with low minimum entry",
			IdealFor:    "Users interested in growing their wealth through market-linked investments",
		},
		{
			ID:          "community_savings",
			Name:        "Community Savings",
			Description: "Group savings programs where community members save together and support each other",
			IdealFor:    "Users who want to save with friends, family or community members for shared goals",
		},
		{
			ID:          "micro_loans",
			Name:        "Micro Loans",
			Description: "Small, accessible loans with simple application process and fair interest rates",
			IdealFor:    "Users needing small amounts of credit for business or personal needs",
		},
		{
			ID:          "analytics_profile",
			Name:        "Analytics Profile",
			Description: "Personalized financial insights and spending analysis to improve financial management",
			IdealFor:    "Users who want to understand their spending patterns and improve budgeting",
		},
		{
			ID:          "financial_education",
			Name:        "Financial Education",
			Description: "Courses, articles and workshops on financial literacy and management",
			IdealFor:    "Users looking to improve their financial knowledge and decision-making",
		},
	})
}
