package recommender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/Arshavi-03/Finergize-recommend/internal/catalog"
	"github.com/Arshavi-03/Finergize-recommend/internal/llm"
	"github.com/Arshavi-03/Finergize-recommend/internal/survey"
)

// stubClient scripts remote scorer replies for tests.
type stubClient struct {
	replies []stubReply
	calls   int
}

type stubReply struct {
	raw json.RawMessage
	err error
}

func (s *stubClient) RecommendFeatures(ctx context.Context, input llm.RecommendInput) (json.RawMessage, error) {
	reply := s.replies[len(s.replies)-1]
	if s.calls < len(s.replies) {
		reply = s.replies[s.calls]
	}
	s.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reply.raw, reply.err
}

// slowClient blocks until the context expires.
type slowClient struct{}

func (slowClient) RecommendFeatures(ctx context.Context, input llm.RecommendInput) (json.RawMessage, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func newTestService(remote llm.Client) *Service {
	return NewService(catalog.Default(), survey.NewGenerator(survey.DefaultTemplates()), remote, time.Second)
}

func remoteReply(scores map[string]float64) json.RawMessage {
	features := make([]map[string]any, 0, len(scores))
	for _, id := range catalog.Default().Order() {
		score, ok := scores[id]
		if !ok {
			continue
		}
		features = append(features, map[string]any{
			"id":          id,
			"score":       score,
			"explanation": "remote explanation",
			"tip":         "remote tip",
		})
	}
	payload := map[string]any{
		"prioritized_features": features,
		"user_profile": map[string]any{
			"knowledge_level": "intermediate",
			"income_level":    "₹15,000 - ₹30,000",
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return raw
}

func allSixScores(base float64) map[string]float64 {
	scores := make(map[string]float64, 6)
	for _, id := range catalog.Default().Order() {
		scores[id] = base
	}
	return scores
}

func TestRecommendWithoutRemote(t *testing.T) {
	svc := newTestService(nil)
	result := svc.Recommend(context.Background(), "req-1", map[string]any{
		"financial_goals": []any{"invest"},
	})

	if len(result.PrioritizedFeatures) != 6 {
		t.Fatalf("expected 6 features, got %d", len(result.PrioritizedFeatures))
	}
	if result.PrioritizedFeatures[0].ID != "digital_banking" {
		t.Fatalf("expected digital_banking first, got %s", result.PrioritizedFeatures[0].ID)
	}
}

func TestRecommendRemoteSuccess(t *testing.T) {
	scores := allSixScores(4)
	scores["financial_education"] = 9.4
	remote := &stubClient{replies: []stubReply{{raw: remoteReply(scores)}}}
	svc := newTestService(remote)

	result := svc.Recommend(context.Background(), "req-1", map[string]any{})

	if result.PrioritizedFeatures[0].ID != "financial_education" {
		t.Fatalf("expected remote ranking to win, got %s first", result.PrioritizedFeatures[0].ID)
	}
	if result.PrioritizedFeatures[0].Score != 9 {
		t.Fatalf("expected rounded score 9, got %d", result.PrioritizedFeatures[0].Score)
	}
	if result.UserProfile.KnowledgeLevel != "intermediate" {
		t.Fatalf("expected remote profile, got %+v", result.UserProfile)
	}
	if remote.calls != 1 {
		t.Fatalf("expected a single remote call, got %d", remote.calls)
	}
}

func TestRecommendRemoteClampsAndResorts(t *testing.T) {
	scores := allSixScores(25) // out of bounds, all tied after clamping
	remote := &stubClient{replies: []stubReply{{raw: remoteReply(scores)}}}
	svc := newTestService(remote)

	result := svc.Recommend(context.Background(), "req-1", map[string]any{})

	wantOrder := catalog.Default().Order()
	for i, f := range result.PrioritizedFeatures {
		if f.Score != 10 {
			t.Fatalf("%s score %d, want clamp to 10", f.ID, f.Score)
		}
		if f.ID != wantOrder[i] {
			t.Fatalf("tied remote scores must keep catalogue order, got %s at %d", f.ID, i)
		}
	}
}

func TestRecommendRemoteFailureFallsBack(t *testing.T) {
	responses := map[string]any{
		"financial_goals":   []any{"track"},
		"tracking_interest": float64(5),
	}
	local := newTestService(nil).Recommend(context.Background(), "req-1", responses)

	failures := []stubReply{
		{err: errors.New("connection refused")},
		{raw: json.RawMessage(`not json`)},
		{raw: json.RawMessage(`{"prioritized_features": []}`)},
		{raw: remoteReply(map[string]float64{"digital_banking": 8})},                          // missing features
		{raw: remoteReply(func() map[string]float64 { s := allSixScores(8); s["bogus_feature"] = 7; return s }())}, // unknown id
	}

	for i, failure := range failures {
		remote := &stubClient{replies: []stubReply{failure, failure}}
		svc := newTestService(remote)
		got := svc.Recommend(context.Background(), "req-1", responses)
		if !reflect.DeepEqual(got, local) {
			t.Fatalf("case %d: fallback result differs from local engine", i)
		}
	}
}

func TestRecommendRemoteTimeoutFallsBack(t *testing.T) {
	responses := map[string]any{"financial_goals": "save"}
	local := newTestService(nil).Recommend(context.Background(), "req-1", responses)

	svc := NewService(catalog.Default(), survey.NewGenerator(survey.DefaultTemplates()), slowClient{}, 20*time.Millisecond)
	start := time.Now()
	got := svc.Recommend(context.Background(), "req-1", responses)
	elapsed := time.Since(start)

	if !reflect.DeepEqual(got, local) {
		t.Fatalf("timeout fallback result differs from local engine")
	}
	if elapsed > 2*time.Second {
		t.Fatalf("fallback took too long: %v", elapsed)
	}
}

func TestRecommendRetriesTransientErrorOnce(t *testing.T) {
	remote := &stubClient{replies: []stubReply{
		{err: fmt.Errorf("openai http status 502")},
		{raw: remoteReply(allSixScores(6))},
	}}
	svc := newTestService(remote)

	result := svc.Recommend(context.Background(), "req-1", map[string]any{})

	if remote.calls != 2 {
		t.Fatalf("expected retry after transient error, got %d calls", remote.calls)
	}
	if result.PrioritizedFeatures[0].Score != 6 {
		t.Fatalf("expected remote result after retry, got %+v", result.PrioritizedFeatures[0])
	}
}

func TestRecommendDoesNotRetryPermanentError(t *testing.T) {
	remote := &stubClient{replies: []stubReply{
		{err: errors.New("openai error: invalid api key (auth)")},
		{raw: remoteReply(allSixScores(6))},
	}}
	svc := newTestService(remote)

	_ = svc.Recommend(context.Background(), "req-1", map[string]any{})

	if remote.calls != 1 {
		t.Fatalf("expected no retry on permanent error, got %d calls", remote.calls)
	}
}

func TestShouldRetryRemote(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "5xx", err: errors.New("openai http status 503"), want: true},
		{name: "timeout text", err: errors.New("openai request timeout"), want: true},
		{name: "connection reset", err: errors.New("read: connection reset by peer"), want: true},
		{name: "auth", err: errors.New("invalid api key"), want: false},
		{name: "schema", err: errors.New("remote reply names unknown feature"), want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldRetryRemote(tt.err); got != tt.want {
				t.Fatalf("shouldRetryRemote(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestFeatures(t *testing.T) {
	svc := newTestService(nil)
	features := svc.Features()

	if len(features) != 6 {
		t.Fatalf("expected 6 features, got %d", len(features))
	}
	if features["micro_loans"].Name != "Micro Loans" {
		t.Fatalf("unexpected feature payload: %+v", features["micro_loans"])
	}
}
