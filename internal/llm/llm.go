// Package llm abstracts the optional remote scorer. Providers return the raw
// JSON recommendation payload; validation and the fallback to the local rule
// engine live with the caller.
package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts LLM providers for feature recommendation.
type Client interface {
	RecommendFeatures(ctx context.Context, input RecommendInput) (json.RawMessage, error)
}

// RecommendInput captures the inputs for a remote scoring request.
type RecommendInput struct {
	Responses map[string]any
}

// ErrNotConfigured is returned when a provider is selected without credentials.
var ErrNotConfigured = errors.New("remote scorer not configured")
