package recommender

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/Arshavi-03/Finergize-recommend/internal/llm"
	"github.com/Arshavi-03/Finergize-recommend/internal/shared/telemetry"
)

const remoteRetryBaseDelay = 300 * time.Millisecond

// retryingClient retries the remote scorer once on transient failures.
type retryingClient struct {
	base      llm.Client
	requestID string
}

func newRetryingClient(base llm.Client, requestID string) llm.Client {
	if base == nil {
		return nil
	}
	return retryingClient{base: base, requestID: requestID}
}

func (r retryingClient) RecommendFeatures(ctx context.Context, input llm.RecommendInput) (json.RawMessage, error) {
	resp, err := r.base.RecommendFeatures(ctx, input)
	if err == nil || !shouldRetryRemote(err) {
		return resp, err
	}

	telemetry.Warn("remote_scorer.retry", map[string]any{
		"request_id": r.requestID,
		"error":      err.Error(),
	})
	select {
	case <-time.After(remoteRetryBaseDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return r.base.RecommendFeatures(ctx, input)
}

func shouldRetryRemote(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "timeout") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
