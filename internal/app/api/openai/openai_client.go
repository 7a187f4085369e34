package openai

import (
	"os"
	"sync"

	"github.com/sashabaranov/go-openai"
)

var (
	once      sync.Once
	singleton *openai.Client
)

// GetClient returns the shared OpenAI client. The API key must already
// be present in the environment; config.InitializeConfig and the
// --api-key flag both write it there before any call happens.
func GetClient() *openai.Client {
	once.Do(func() {
		token, ok := os.LookupEnv("OPENAI_API_KEY")
		if !ok {
			panic("OPENAI_API_KEY environment variable not set")
		}
		singleton = openai.NewClient(token)
	})

	return singleton
}
