package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appconfig "audio-insights/internal/app/config"
	"audio-insights/internal/app/model"
	"audio-insights/internal/app/testutil"
)

func newTestExtractor(gen *testutil.MockGenerator) *Extractor {
	return NewExtractor(gen, appconfig.DefaultAppConfig(), zap.NewNop())
}

func ptrFloat(v float64) *float64 { return &v }

func TestExtract_SpeakingSpeed(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		duration   *float64
		wantWords  int
		wantWPM    *int
	}{
		{
			name:       "seven_tokens_half_minute",
			transcript: "the quick brown fox the quick fox",
			duration:   ptrFloat(0.5),
			wantWords:  7,
			wantWPM:    intPtr(14),
		},
		{
			name:       "unknown_duration",
			transcript: "one two three four",
			duration:   nil,
			wantWords:  4,
			wantWPM:    nil,
		},
		{
			name:       "rounding_to_nearest",
			transcript: "a b c d e f g h i j",
			duration:   ptrFloat(3.0),
			wantWords:  10,
			wantWPM:    intPtr(3), // 10/3 = 3.33 rounds down
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := testutil.NewMockGenerator(
				`["Testing"]`,
				`{"topics": [{"topic": "Testing", "mentions": 2}]}`,
			)
			extractor := newTestExtractor(gen)

			analytics, err := extractor.Extract(context.Background(), model.Transcript{Text: tt.transcript}, tt.duration)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWords, analytics.WordCount)
			if tt.wantWPM == nil {
				assert.Nil(t, analytics.SpeakingSpeedWPM)
				assert.Nil(t, analytics.AudioDurationMinutes)
			} else {
				require.NotNil(t, analytics.SpeakingSpeedWPM)
				assert.Equal(t, *tt.wantWPM, *analytics.SpeakingSpeedWPM)
			}
			assert.NotEmpty(t, analytics.Timestamp)
		})
	}
}

func intPtr(v int) *int { return &v }

func TestExtract_TopicRanking(t *testing.T) {
	gen := testutil.NewMockGenerator(
		`["Pricing", "Support", "Roadmap"]`,
		`{"topics": [
			{"topic": "Support", "mentions": 2},
			{"topic": "Pricing", "mentions": 7},
			{"topic": "Roadmap", "mentions": 2},
			{"topic": "Pricing", "mentions": 3}
		]}`,
	)
	extractor := newTestExtractor(gen)

	analytics, err := extractor.Extract(context.Background(), model.Transcript{Text: "some transcript text"}, nil)
	require.NoError(t, err)

	// Descending by mentions; equal counts keep first-seen order;
	// duplicate labels keep the first occurrence.
	require.Len(t, analytics.Topics, 3)
	assert.Equal(t, model.TopicMention{Topic: "Pricing", Mentions: 7}, analytics.Topics[0])
	assert.Equal(t, model.TopicMention{Topic: "Support", Mentions: 2}, analytics.Topics[1])
	assert.Equal(t, model.TopicMention{Topic: "Roadmap", Mentions: 2}, analytics.Topics[2])
}

func TestExtract_TopicLimit(t *testing.T) {
	gen := testutil.NewMockGenerator(
		`["A", "B", "C", "D", "E", "F", "G"]`,
		`{"topics": [
			{"topic": "A", "mentions": 9},
			{"topic": "B", "mentions": 8},
			{"topic": "C", "mentions": 7},
			{"topic": "D", "mentions": 6},
			{"topic": "E", "mentions": 5},
			{"topic": "F", "mentions": 4},
			{"topic": "G", "mentions": 3}
		]}`,
	)
	extractor := newTestExtractor(gen)

	analytics, err := extractor.Extract(context.Background(), model.Transcript{Text: "text"}, nil)
	require.NoError(t, err)
	assert.Len(t, analytics.Topics, 5)
}

func TestExtract_SchemaValidation(t *testing.T) {
	tests := []struct {
		name      string
		responses []string
	}{
		{
			name: "mentions_wrong_type",
			responses: []string{
				`["Budget"]`,
				`{"topics": [{"topic": "Budget", "mentions": "three"}]}`,
			},
		},
		{
			name: "missing_topics_field",
			responses: []string{
				`["Budget"]`,
				`{"mentions": "three"}`,
			},
		},
		{
			name: "counting_not_json",
			responses: []string{
				`["Budget"]`,
				`no structured output today`,
			},
		},
		{
			name: "identification_not_json",
			responses: []string{
				`I could not find any topics`,
				`{"topics": []}`,
			},
		},
		{
			name: "identification_empty_array",
			responses: []string{
				`[]`,
				`{"topics": []}`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := testutil.NewMockGenerator(tt.responses...)
			extractor := newTestExtractor(gen)

			_, err := extractor.Extract(context.Background(), model.Transcript{Text: "words here"}, nil)

			var schemaErr *SchemaValidationError
			require.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestExtract_NegativeCountsRejected(t *testing.T) {
	gen := testutil.NewMockGenerator(
		`["Budget"]`,
		`{"topics": [{"topic": "Budget", "mentions": -2}]}`,
	)
	extractor := newTestExtractor(gen)

	_, err := extractor.Extract(context.Background(), model.Transcript{Text: "words"}, nil)

	var schemaErr *SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
}

func TestExtract_ServiceFailure(t *testing.T) {
	gen := testutil.NewMockGenerator()
	gen.Err = assert.AnError
	extractor := newTestExtractor(gen)

	_, err := extractor.Extract(context.Background(), model.Transcript{Text: "words"}, nil)

	var svcErr *AnalyticsExtractionError
	require.ErrorAs(t, err, &svcErr)
}

func TestExtract_EmptyTranscript(t *testing.T) {
	extractor := newTestExtractor(testutil.NewMockGenerator())

	_, err := extractor.Extract(context.Background(), model.Transcript{Text: "   \n"}, nil)

	var emptyErr *EmptyTranscriptError
	require.ErrorAs(t, err, &emptyErr)
}

func TestExtract_JSONWrappedInProse(t *testing.T) {
	gen := testutil.NewMockGenerator(
		"Here are the topics:\n```json\n[\"Budget\", \"Hiring\"]\n```",
		"Result:\n{\"topics\": [{\"topic\": \"Budget\", \"mentions\": 4}, {\"topic\": \"Hiring\", \"mentions\": 1}]}",
	)
	extractor := newTestExtractor(gen)

	analytics, err := extractor.Extract(context.Background(), model.Transcript{Text: "text"}, nil)
	require.NoError(t, err)
	require.Len(t, analytics.Topics, 2)
	assert.Equal(t, "Budget", analytics.Topics[0].Topic)
}
