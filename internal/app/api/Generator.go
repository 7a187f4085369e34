package api

import "context"

// GenerationRequest carries a prompt plus the generation settings a
// provider needs for one text-generation call.
type GenerationRequest struct {
	SystemPrompt string
	Prompt       string
	Model        string
	Temperature  float32
	MaxTokens    int
}

// Generator defines a text-generation interface. Implementations return
// the raw generated text; callers are responsible for parsing any
// structured content out of it.
type Generator interface {
	Generate(ctx context.Context, request GenerationRequest) (string, error)
}
