package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	envconfig "audio-insights/internal/config"
)

// AppConfig holds tunable pipeline settings. Everything has a working
// default; an optional a2i.yaml next to the binary (or at A2I_CONFIG)
// overrides them.
type AppConfig struct {
	Generator      string  `yaml:"generator"`
	ChatModel      string  `yaml:"chat_model"`
	GeminiModel    string  `yaml:"gemini_model"`
	SummaryTemp    float32 `yaml:"summary_temperature"`
	TopicTemp      float32 `yaml:"topic_temperature"`
	CountTemp      float32 `yaml:"count_temperature"`
	SummaryTokens  int     `yaml:"summary_max_tokens"`
	TopicLimit     int     `yaml:"topic_limit"`
	OutputDir      string  `yaml:"output_dir"`
}

// DefaultAppConfig returns the built-in settings, matching the models
// and temperatures the pipeline was tuned with.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Generator:     "openai",
		ChatModel:     "gpt-4.1-mini",
		GeminiModel:   "gemini-2.0-flash",
		SummaryTemp:   0.2,
		TopicTemp:     0.1,
		CountTemp:     0.0,
		SummaryTokens: 600,
		TopicLimit:    5,
		OutputDir:     "outputs",
	}
}

// LoadAppConfig merges defaults, an optional YAML file and environment
// overrides, in that order.
func LoadAppConfig() (AppConfig, error) {
	cfg := DefaultAppConfig()

	path := os.Getenv("A2I_CONFIG")
	if path == "" {
		path = "a2i.yaml"
		// Not next to the working directory: fall back to a2i.yaml at
		// the project root, so the tool behaves the same from any
		// subdirectory of a checkout.
		if _, err := os.Stat(path); err != nil {
			if root, rootErr := envconfig.GetProjectRoot(); rootErr == nil {
				path = filepath.Join(root, "a2i.yaml")
			}
		}
	}
	if data, err := os.ReadFile(os.ExpandEnv(path)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if gen := os.Getenv("A2I_GENERATOR"); gen != "" {
		cfg.Generator = gen
	}
	if dir := os.Getenv("A2I_OUTPUT_DIR"); dir != "" {
		cfg.OutputDir = dir
	}

	if cfg.TopicLimit <= 0 {
		cfg.TopicLimit = 5
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "outputs"
	}
	return cfg, nil
}
