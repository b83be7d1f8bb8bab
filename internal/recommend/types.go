package recommend

// Responses is a decoded survey submission keyed by question ID. Values arrive
// as whatever shape the client sent; normalization coerces them.
type Responses map[string]any

// FeatureScore is one ranked recommendation.
type FeatureScore struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
	Tip         string `json:"tip"`
}

// UserProfile summarizes the respondent.
type UserProfile struct {
	KnowledgeLevel string `json:"knowledge_level"`
	IncomeLevel    string `json:"income_level"`
}

// Result is the full recommendation payload: features in descending score
// order plus the derived profile.
type Result struct {
	PrioritizedFeatures []FeatureScore `json:"prioritized_features"`
	UserProfile         UserProfile    `json:"user_profile"`
}
