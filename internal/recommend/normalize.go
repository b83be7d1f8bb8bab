package recommend

// signals are the normalized inputs the rule set runs on. Every field has a
// defined default so missing or malformed answers never fail a request.
type signals struct {
	Goals            []string
	BankingHabit     string
	SavingsMethods   []string
	LoanNeed         string
	DigitalComfort   string
	TrackingInterest float64
	KnowledgeLevel   string
	IncomeRange      string
}

func normalize(responses Responses) signals {
	return signals{
		Goals:            stringList(responses["financial_goals"]),
		BankingHabit:     stringOr(responses["banking_habits"], "traditional"),
		SavingsMethods:   stringList(responses["savings_method"]),
		LoanNeed:         stringOr(responses["loan_needs"], "no"),
		DigitalComfort:   stringOr(responses["digital_comfort"], "somewhat"),
		TrackingInterest: numberOr(responses["tracking_interest"], 3),
		KnowledgeLevel:   stringOr(responses["financial_knowledge"], "beginner"),
		IncomeRange:      stringOr(responses["income_range"], ""),
	}
}

// stringList accepts a single string or a list and always returns a list. Any
// other shape normalizes to empty.
func stringList(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// numberOr accepts any JSON numeric shape; non-numbers fall back to def.
func numberOr(v any, def float64) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	default:
		return def
	}
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

func oneOf(value string, candidates ...string) bool {
	return contains(candidates, value)
}
