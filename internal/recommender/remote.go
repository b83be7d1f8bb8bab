package recommender

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/Arshavi-03/Finergize-recommend/internal/recommend"
)

// remoteResult is the loosely-typed payload an LLM returns. Scores arrive as
// floats because models rarely respect integer contracts.
type remoteResult struct {
	PrioritizedFeatures []remoteFeature `json:"prioritized_features"`
	UserProfile         struct {
		KnowledgeLevel string `json:"knowledge_level"`
		IncomeLevel    string `json:"income_level"`
	} `json:"user_profile"`
}

type remoteFeature struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Score       *float64 `json:"score"`
	Explanation string   `json:"explanation"`
	Tip         string   `json:"tip"`
}

// parseRemoteResult validates a remote reply against the catalogue and
// normalizes it onto the local engine's contract: every catalogue feature
// present exactly once, scores clamped to [1,10], output re-sorted with the
// catalogue-order tie-break. The local result supplies the profile fallback.
func (s *Service) parseRemoteResult(raw json.RawMessage, local recommend.Result) (recommend.Result, error) {
	var parsed remoteResult
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return recommend.Result{}, fmt.Errorf("remote reply parse: %w", err)
	}
	if len(parsed.PrioritizedFeatures) == 0 {
		return recommend.Result{}, fmt.Errorf("remote reply has no prioritized_features")
	}

	localByID := make(map[string]recommend.FeatureScore, len(local.PrioritizedFeatures))
	for _, f := range local.PrioritizedFeatures {
		localByID[f.ID] = f
	}

	seen := make(map[string]bool, len(parsed.PrioritizedFeatures))
	features := make([]recommend.FeatureScore, 0, s.Catalog.Len())
	for _, rf := range parsed.PrioritizedFeatures {
		id := strings.TrimSpace(rf.ID)
		feature, known := s.Catalog.Get(id)
		if !known {
			return recommend.Result{}, fmt.Errorf("remote reply names unknown feature %q", id)
		}
		if seen[id] {
			return recommend.Result{}, fmt.Errorf("remote reply repeats feature %q", id)
		}
		seen[id] = true
		if rf.Score == nil {
			return recommend.Result{}, fmt.Errorf("remote reply missing score for %q", id)
		}

		fallback := localByID[id]
		out := recommend.FeatureScore{
			ID:          id,
			Name:        feature.Name,
			Score:       recommend.Clamp(int(math.Round(*rf.Score))),
			Explanation: strings.TrimSpace(rf.Explanation),
			Tip:         strings.TrimSpace(rf.Tip),
		}
		if out.Explanation == "" {
			out.Explanation = fallback.Explanation
		}
		if out.Tip == "" {
			out.Tip = fallback.Tip
		}
		features = append(features, out)
	}
	if len(features) != s.Catalog.Len() {
		return recommend.Result{}, fmt.Errorf("remote reply covers %d of %d features", len(features), s.Catalog.Len())
	}

	s.Engine.SortFeatures(features)

	profile := local.UserProfile
	if level := strings.TrimSpace(parsed.UserProfile.KnowledgeLevel); level != "" {
		profile.KnowledgeLevel = level
	}
	if level := strings.TrimSpace(parsed.UserProfile.IncomeLevel); level != "" {
		profile.IncomeLevel = level
	}

	return recommend.Result{
		PrioritizedFeatures: features,
		UserProfile:         profile,
	}, nil
}
