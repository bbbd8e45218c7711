package assistant

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"folio/internal/resume"
)

// DefaultModel is used when the config does not name one.
const DefaultModel = "gemini-2.5-flash"

// Gemini is the online responder. Every call sends the full serialized
// dataset as grounding context; the dataset is small enough that this is
// far simpler than any retrieval scheme.
type Gemini struct {
	client *genai.Client
	model  string
	store  *resume.Store
}

// NewGemini creates the client once at startup. An empty key is a caller
// bug: mode selection happens before this is reached.
func NewGemini(ctx context.Context, apiKey, model string, store *resume.Store) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: creating client: %w", err)
	}
	return &Gemini{client: client, model: model, store: store}, nil
}

// Reply issues a single generation request. Any failure, including an
// empty candidate, comes back as an error for the pipeline to absorb.
func (g *Gemini) Reply(ctx context.Context, userText string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(BuildPrompt(g.store, userText)),
		&genai.GenerateContentConfig{
			MaxOutputTokens: 512,
			Temperature:     genai.Ptr[float32](0.6),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}
