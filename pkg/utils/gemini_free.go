package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// NarrativeClientInterface sends one prompt to a hosted model and returns
// its text answer.
type NarrativeClientInterface interface {
	GenerateNarrative(ctx context.Context, prompt string) (string, error)
	Model() string
	Close() error
}

// GeminiNarrativeClient implements NarrativeClientInterface using Google's Gemini models
type GeminiNarrativeClient struct {
	client *genai.Client
	model  string
}

func NewGeminiNarrativeClient(ctx context.Context, apiKey, model string) (NarrativeClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiNarrativeClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiNarrativeClient) GenerateNarrative(ctx context.Context, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.8)
	m.SetTemperature(0.7)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

func (c *GeminiNarrativeClient) Model() string {
	return c.model
}

func (c *GeminiNarrativeClient) Close() error {
	return c.client.Close()
}

// NewNarrativeClient picks the provider named in configuration. An empty
// provider or key disables narrative generation and returns nil.
func NewNarrativeClient(ctx context.Context, provider, apiKey, model string) (NarrativeClientInterface, error) {
	if provider == "" || apiKey == "" {
		return nil, nil
	}
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAINarrativeClient(apiKey, model), nil
	case "gemini":
		return NewGeminiNarrativeClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
