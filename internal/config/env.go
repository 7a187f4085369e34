package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// ConfigurationError reports a fatal configuration problem found before
// any processing begins, such as a missing API credential.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	OpenAI string
	Gemini string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; system-wide environment variables may
// already carry the keys.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
	}

	if apiKeys.OpenAI != "" {
		if !strings.HasPrefix(apiKeys.OpenAI, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKeys.OpenAI) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	if apiKeys.Gemini != "" {
		if !strings.HasPrefix(apiKeys.Gemini, "AIza") {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(apiKeys.Gemini) < 30 {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: too short")
		}
	}

	return apiKeys, nil
}

// RequireTranscriptionKey fails fast when no OpenAI credential is
// available. Transcription always goes through the Whisper API, so this
// is checked before any stage runs.
func RequireTranscriptionKey(apiKeys *APIKeys) error {
	if apiKeys.OpenAI == "" {
		return &ConfigurationError{
			Message: "OPENAI_API_KEY is not set - add it to your environment or .env file, or pass --api-key",
		}
	}
	return nil
}

// RequireGenerationKey validates the credential for the selected text
// generation provider.
func RequireGenerationKey(apiKeys *APIKeys, provider string) error {
	switch provider {
	case "gemini":
		if apiKeys.Gemini == "" {
			return &ConfigurationError{
				Message: "GEMINI_API_KEY is not set but A2I_GENERATOR=gemini was requested",
			}
		}
	default:
		if apiKeys.OpenAI == "" {
			return &ConfigurationError{
				Message: "OPENAI_API_KEY is not set - add it to your environment or .env file, or pass --api-key",
			}
		}
	}
	return nil
}

// GetProjectRoot finds the project root directory by looking for go.mod
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

// InitializeConfig loads the environment and returns the available API
// keys. Key presence is not enforced here; each command requires the
// keys it actually needs.
func InitializeConfig() (*APIKeys, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return apiKeys, nil
}
