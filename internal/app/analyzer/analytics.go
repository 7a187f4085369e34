package analyzer

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"audio-insights/internal/app/api"
	appconfig "audio-insights/internal/app/config"
	"audio-insights/internal/app/model"
)

// Extractor produces the structured analytics report. Word count and
// speaking speed are computed locally from the transcript so the numbers
// always agree with the text; only the topic list comes from the model.
type Extractor struct {
	generator api.Generator
	cfg       appconfig.AppConfig
	validate  *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

func NewExtractor(generator api.Generator, cfg appconfig.AppConfig, logger *zap.Logger) *Extractor {
	return &Extractor{
		generator: generator,
		cfg:       cfg,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

type topicCountResponse struct {
	Topics []model.TopicMention `json:"topics" validate:"required,min=1,dive"`
}

// Extract runs topic identification and mention counting against the
// generation service and combines them with the locally computed word
// count and speaking speed.
func (e *Extractor) Extract(ctx context.Context, transcript model.Transcript, durationMinutes *float64) (model.Analytics, error) {
	if strings.TrimSpace(transcript.Text) == "" {
		return model.Analytics{}, &EmptyTranscriptError{}
	}

	wordCount := transcript.WordCount()

	analytics := model.Analytics{
		WordCount: wordCount,
		Timestamp: e.now().Format(time.RFC3339),
	}
	if durationMinutes != nil && *durationMinutes > 0 {
		minutes := *durationMinutes
		wpm := int(math.Round(float64(wordCount) / minutes))
		analytics.SpeakingSpeedWPM = &wpm
		analytics.AudioDurationMinutes = &minutes
	}

	topics, err := e.extractTopics(ctx, transcript.Text)
	if err != nil {
		return model.Analytics{}, err
	}
	analytics.Topics = topics

	e.logger.Info("analytics extraction completed",
		zap.Int("word_count", wordCount),
		zap.Int("topics", len(topics)))
	return analytics, nil
}

func (e *Extractor) extractTopics(ctx context.Context, transcription string) ([]model.TopicMention, error) {
	identified, err := e.identifyTopics(ctx, transcription)
	if err != nil {
		return nil, err
	}

	counted, err := e.countMentions(ctx, transcription, identified)
	if err != nil {
		return nil, err
	}

	return e.rankTopics(counted), nil
}

// identifyTopics asks the model for the 3-5 most prominent topics.
func (e *Extractor) identifyTopics(ctx context.Context, transcription string) ([]string, error) {
	raw, err := e.generator.Generate(ctx, api.GenerationRequest{
		SystemPrompt: topicSystemPrompt,
		Prompt:       topicIdentificationPrompt(transcription, e.cfg.TopicLimit),
		Model:        e.model(),
		Temperature:  e.cfg.TopicTemp,
		MaxTokens:    200,
	})
	if err != nil {
		return nil, &AnalyticsExtractionError{Err: err}
	}

	body, ok := extractJSON(raw, "[", "]")
	if !ok {
		return nil, &SchemaValidationError{Detail: "topic identification did not return a JSON array"}
	}

	var topics []string
	if err := json.Unmarshal([]byte(body), &topics); err != nil {
		return nil, &SchemaValidationError{Detail: "topic identification returned invalid JSON: " + err.Error()}
	}

	topics = lo.Filter(topics, func(t string, _ int) bool {
		return strings.TrimSpace(t) != ""
	})
	if len(topics) == 0 {
		return nil, &SchemaValidationError{Detail: "topic identification returned no topics"}
	}
	return topics, nil
}

// countMentions asks the model for a mention count per identified topic
// and validates the structured result before trusting it.
func (e *Extractor) countMentions(ctx context.Context, transcription string, topics []string) ([]model.TopicMention, error) {
	raw, err := e.generator.Generate(ctx, api.GenerationRequest{
		SystemPrompt: countSystemPrompt,
		Prompt:       topicCountingPrompt(transcription, topics),
		Model:        e.model(),
		Temperature:  e.cfg.CountTemp,
		MaxTokens:    400,
	})
	if err != nil {
		return nil, &AnalyticsExtractionError{Err: err}
	}

	body, ok := extractJSON(raw, "{", "}")
	if !ok {
		return nil, &SchemaValidationError{Detail: "topic counting did not return a JSON object"}
	}

	var parsed topicCountResponse
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		return nil, &SchemaValidationError{Detail: "topic counting returned invalid JSON: " + err.Error()}
	}

	if err := e.validate.Struct(parsed); err != nil {
		return nil, &SchemaValidationError{Detail: "topic counting result failed schema validation: " + err.Error()}
	}

	return parsed.Topics, nil
}

// rankTopics drops empty labels and non-positive counts, keeps the first
// occurrence of duplicate labels, sorts descending by mentions with
// first-seen order as the tie-break, and truncates to the configured
// limit.
func (e *Extractor) rankTopics(topics []model.TopicMention) []model.TopicMention {
	valid := lo.Filter(topics, func(t model.TopicMention, _ int) bool {
		return strings.TrimSpace(t.Topic) != "" && t.Mentions > 0
	})
	unique := lo.UniqBy(valid, func(t model.TopicMention) string {
		return t.Topic
	})

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Mentions > unique[j].Mentions
	})

	if len(unique) > e.cfg.TopicLimit {
		unique = unique[:e.cfg.TopicLimit]
	}
	return unique
}

func (e *Extractor) model() string {
	if e.cfg.Generator == "gemini" {
		return e.cfg.GeminiModel
	}
	return e.cfg.ChatModel
}

// extractJSON pulls the first balanced-looking JSON payload out of a
// model response that may carry prose or code fences around it.
func extractJSON(raw, open, closing string) (string, bool) {
	start := strings.Index(raw, open)
	end := strings.LastIndex(raw, closing)
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
