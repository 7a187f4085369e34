package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"audio-insights/internal/app/api"
)

// Generator implements api.Generator using the Google Gemini API.
// Selected with A2I_GENERATOR=gemini; requires GEMINI_API_KEY.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a Gemini-backed text generator.
func NewGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client init failed: %w", err)
	}
	return &Generator{client: client}, nil
}

func (g *Generator) Generate(ctx context.Context, request api.GenerationRequest) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(request.Temperature),
	}
	if request.MaxTokens > 0 {
		config.MaxOutputTokens = int32(request.MaxTokens)
	}
	if request.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(request.SystemPrompt, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, request.Model, genai.Text(request.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("generateContent failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("generateContent returned empty response")
	}
	return text, nil
}
