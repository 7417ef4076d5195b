// Package gemini adapts Google's Gemini API to the suggest.Generator
// interface.
package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"lister-backend/internal/suggest"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Client generates text with the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini-backed generator. The API key comes from
// GOOGLE_API_KEY, the model from GEMINI_MODEL.
func NewClient(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: GOOGLE_API_KEY is not set")
	}

	// google.golang.org/genai: NewClient targets the Gemini API backend
	// with an API key (as opposed to Vertex credentials).
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		client: client,
		model:  getenv("GEMINI_MODEL", "gemini-2.0-flash"),
	}, nil
}

// Generate runs one generation call and returns the raw text of the single
// requested candidate.
func (c *Client) Generate(ctx context.Context, prompt string, opts suggest.GenerateOptions) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:    genai.Ptr(opts.Temperature),
		CandidateCount: 1,
	}
	if opts.StopAtNewline {
		config.StopSequences = []string{"\n"}
	}
	if opts.JSONResponse {
		config.ResponseMIMEType = "application/json"
	}

	// google.golang.org/genai: GenerateContent sends the prompt to the
	// configured model; genai.Text wraps it as a single user turn.
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	return resp.Text(), nil
}
