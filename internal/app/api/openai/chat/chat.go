package chat

import (
	"context"
	"fmt"
	"math"

	"github.com/sashabaranov/go-openai"

	"audio-insights/internal/app/api"
)

// Generator implements api.Generator on top of the OpenAI chat
// completion endpoint.
type Generator struct {
	client *openai.Client
}

// NewGenerator creates a chat-backed text generator.
func NewGenerator(client *openai.Client) *Generator {
	return &Generator{client: client}
}

func (g *Generator) Generate(ctx context.Context, request api.GenerationRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if request.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: request.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: request.Prompt,
	})

	// go-openai omits a zero temperature from the request body, which
	// would leave the call at the API default instead of 0.0. The
	// smallest nonzero float32 keeps the field on the wire.
	temperature := request.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       request.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   request.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("createChatCompletion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
