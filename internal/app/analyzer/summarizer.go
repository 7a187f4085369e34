package analyzer

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"audio-insights/internal/app/api"
	appconfig "audio-insights/internal/app/config"
	"audio-insights/internal/app/model"
)

// Summarizer turns a transcript into a short prose summary via the text
// generation service.
type Summarizer struct {
	generator api.Generator
	cfg       appconfig.AppConfig
	logger    *zap.Logger
}

func NewSummarizer(generator api.Generator, cfg appconfig.AppConfig, logger *zap.Logger) *Summarizer {
	return &Summarizer{generator: generator, cfg: cfg, logger: logger}
}

// targetSummaryLength scales the requested summary size with the input:
// 150-300 words, roughly a tenth of the transcript.
func targetSummaryLength(wordCount int) int {
	target := wordCount / 10
	if target < 150 {
		target = 150
	}
	if target > 300 {
		target = 300
	}
	return target
}

// Summarize requests a 150-300 word summary preserving key points, main
// topic and conclusions. An empty transcript never reaches the service.
func (s *Summarizer) Summarize(ctx context.Context, transcript model.Transcript) (model.Summary, error) {
	if strings.TrimSpace(transcript.Text) == "" {
		return model.Summary{}, &EmptyTranscriptError{}
	}

	target := targetSummaryLength(transcript.WordCount())
	s.logger.Info("generating summary",
		zap.Int("transcript_words", transcript.WordCount()),
		zap.Int("target_words", target))

	text, err := s.generator.Generate(ctx, api.GenerationRequest{
		SystemPrompt: summarySystemPrompt,
		Prompt:       summaryPrompt(transcript.Text, target),
		Model:        s.model(),
		Temperature:  s.cfg.SummaryTemp,
		MaxTokens:    s.cfg.SummaryTokens,
	})
	if err != nil {
		return model.Summary{}, &SummarizationError{Err: err}
	}

	summary := model.Summary{Text: strings.TrimSpace(text)}
	s.logger.Info("summary generated", zap.Int("summary_words", summary.WordCount()))
	return summary, nil
}

func (s *Summarizer) model() string {
	if s.cfg.Generator == "gemini" {
		return s.cfg.GeminiModel
	}
	return s.cfg.ChatModel
}
