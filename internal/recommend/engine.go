// Package recommend implements the deterministic rule-based scoring engine
// that ranks catalogue features against survey responses. It is a pure
// function of its inputs plus static tables and never fails on coercible
// input.
package recommend

import (
	"sort"

	"github.com/Arshavi-03/Finergize-recommend/internal/catalog"
)

const (
	baselineScore = 5
	minScore      = 1
	maxScore      = 10
)

// Engine scores features from a catalogue.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine builds an engine over the given catalogue.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Score ranks every catalogue feature against the responses. Features start at
// the baseline, rules add independently within each feature, totals are
// clamped to [1,10], and ties keep catalogue order.
func (e *Engine) Score(responses Responses) Result {
	sig := normalize(responses)

	scores := make(map[string]int, e.catalog.Len())
	for _, id := range e.catalog.Order() {
		scores[id] = baselineScore
	}

	// Digital Banking relevance.
	if oneOf(sig.DigitalComfort, "very", "somewhat") {
		adjust(scores, "digital_banking", 3)
	}
	if oneOf(sig.BankingHabit, "mobile", "upi", "net_banking") {
		adjust(scores, "digital_banking", 2)
	}
	if oneOf(sig.BankingHabit, "traditional", "atm", "limited") {
		adjust(scores, "digital_banking", 1)
	}

	// Mutual Funds relevance.
	if contains(sig.Goals, "invest") {
		adjust(scores, "mutual_funds", 3)
	}
	if contains(sig.SavingsMethods, "mutual_funds") {
		adjust(scores, "mutual_funds", 2)
	}
	if oneOf(sig.KnowledgeLevel, "intermediate", "advanced") {
		adjust(scores, "mutual_funds", 1)
	}

	// Community Savings relevance.
	if contains(sig.Goals, "community") {
		adjust(scores, "community_savings", 3)
	}
	if contains(sig.SavingsMethods, "chit") {
		adjust(scores, "community_savings", 3)
	}
	if contains(sig.Goals, "save") {
		adjust(scores, "community_savings", 1)
	}

	// Micro Loans relevance.
	if oneOf(sig.LoanNeed, "current", "future") {
		adjust(scores, "micro_loans", 4)
	}
	if contains(sig.Goals, "loan") {
		adjust(scores, "micro_loans", 3)
	}

	// Analytics Profile relevance. The interest tiers are mutually exclusive.
	if contains(sig.Goals, "track") {
		adjust(scores, "analytics_profile", 3)
	}
	if sig.TrackingInterest >= 4 {
		adjust(scores, "analytics_profile", 3)
	} else if sig.TrackingInterest >= 3 {
		adjust(scores, "analytics_profile", 1)
	}

	// Financial Education relevance.
	if contains(sig.Goals, "education") {
		adjust(scores, "financial_education", 4)
	}
	if oneOf(sig.KnowledgeLevel, "beginner", "basic") {
		adjust(scores, "financial_education", 2)
	}

	prioritized := make([]FeatureScore, 0, e.catalog.Len())
	for _, id := range e.catalog.Order() {
		feature, _ := e.catalog.Get(id)
		detail := detailFor(id, feature)
		prioritized = append(prioritized, FeatureScore{
			ID:          id,
			Name:        feature.Name,
			Score:       clamp(scores[id]),
			Explanation: detail.Explanation,
			Tip:         detail.Tip,
		})
	}

	// Stable sort keeps catalogue order for equal scores; callers observe the
	// tie-break.
	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].Score > prioritized[j].Score
	})

	return Result{
		PrioritizedFeatures: prioritized,
		UserProfile: UserProfile{
			KnowledgeLevel: sig.KnowledgeLevel,
			IncomeLevel:    mapIncomeLevel(sig.IncomeRange),
		},
	}
}

// SortFeatures orders feature scores descending, breaking ties by catalogue
// rank. It is shared with the remote-scorer path so delegated output obeys the
// same ordering contract.
func (e *Engine) SortFeatures(features []FeatureScore) {
	sort.SliceStable(features, func(i, j int) bool {
		if features[i].Score != features[j].Score {
			return features[i].Score > features[j].Score
		}
		return e.catalog.Rank(features[i].ID) < e.catalog.Rank(features[j].ID)
	})
}

// Clamp bounds a score to the engine's [1,10] contract.
func Clamp(score int) int {
	return clamp(score)
}

func adjust(scores map[string]int, id string, delta int) {
	if _, ok := scores[id]; ok {
		scores[id] += delta
	}
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
