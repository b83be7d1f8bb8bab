// Package recommender wires the catalogue, survey generator, scoring engine
// and the optional remote scorer into the request-facing service.
package recommender

import (
	"context"
	"time"

	"github.com/Arshavi-03/Finergize-recommend/internal/catalog"
	"github.com/Arshavi-03/Finergize-recommend/internal/llm"
	"github.com/Arshavi-03/Finergize-recommend/internal/recommend"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/telemetry"
	"github.com/Arshavi-03/Finergize-recommend/internal/survey"
)

const defaultRemoteTimeout = 20 * time.Second

// Service handles the three recommender operations. It is built once at
// process start and shared across requests; all its state is read-only.
type Service struct {
	Catalog       *catalog.Catalog
	Survey        *survey.Generator
	Engine        *recommend.Engine
	Remote        llm.Client
	RemoteTimeout time.Duration
}

// NewService builds a service. Remote may be nil to disable delegation.
func NewService(cat *catalog.Catalog, gen *survey.Generator, remote llm.Client, remoteTimeout time.Duration) *Service {
	if remoteTimeout <= 0 {
		remoteTimeout = defaultRemoteTimeout
	}
	return &Service{
		Catalog:       cat,
		Survey:        gen,
		Engine:        recommend.NewEngine(cat),
		Remote:        remote,
		RemoteTimeout: remoteTimeout,
	}
}

// GenerateSurvey returns the ordered question list for the user context.
func (s *Service) GenerateSurvey(ctx survey.UserContext) []survey.Question {
	return s.Survey.Generate(ctx)
}

// Features returns the catalogue keyed by feature ID.
func (s *Service) Features() map[string]catalog.Feature {
	return s.Catalog.All()
}

// Recommend scores the responses, delegating to the remote scorer when one is
// configured. Remote failure of any kind degrades to the local engine within
// the same request; it is never surfaced to the caller.
func (s *Service) Recommend(ctx context.Context, requestID string, responses recommend.Responses) recommend.Result {
	local := s.Engine.Score(responses)
	if s.Remote == nil {
		return local
	}

	remoteCtx, cancel := context.WithTimeout(ctx, s.RemoteTimeout)
	defer cancel()

	client := newRetryingClient(s.Remote, requestID)
	raw, err := client.RecommendFeatures(remoteCtx, llm.RecommendInput{Responses: responses})
	if err != nil {
		telemetry.Warn("remote_scorer.fallback", map[string]any{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return local
	}

	result, err := s.parseRemoteResult(raw, local)
	if err != nil {
		telemetry.Warn("remote_scorer.fallback", map[string]any{
			"request_id": requestID,
			"error":      err.Error(),
		})
		return local
	}
	return result
}
