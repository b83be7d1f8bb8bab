// Package gemini implements the remote scorer against the Gemini API via the
// Google GenAI SDK.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/Arshavi-03/Finergize-recommend/internal/llm"
)

const defaultModel = "gemini-2.0-flash"

// Client implements llm.Client using the Gemini API backend.
type Client struct {
	client    *genai.Client
	modelName string
}

// NewClient creates a Gemini-backed remote scorer.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required: %w", llm.ErrNotConfigured)
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	return &Client{client: client, modelName: model}, nil
}

// RecommendFeatures sends the survey responses to Gemini and returns the raw
// JSON recommendation payload.
func (c *Client) RecommendFeatures(ctx context.Context, input llm.RecommendInput) (json.RawMessage, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("gemini client is not initialized")
	}

	userPrompt, err := llm.BuildUserPrompt(input)
	if err != nil {
		return nil, err
	}
	prompt := llm.SystemPrompt + "\n\n" + userPrompt

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := StripCodeFences(builder.String())
	if output == "" {
		return nil, errors.New("gemini api returned empty response")
	}
	if !json.Valid([]byte(output)) {
		return nil, errors.New("invalid JSON from Gemini")
	}
	return json.RawMessage(output), nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}

// StripCodeFences removes a surrounding markdown code fence, which Gemini adds
// even when asked for bare JSON.
func StripCodeFences(raw string) string {
	out := strings.TrimSpace(raw)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	out = strings.TrimPrefix(out, "```json")
	out = strings.TrimPrefix(out, "```")
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}
