package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appconfig "audio-insights/internal/app/config"
	"audio-insights/internal/app/testutil"
)

const testTranscript = "the team reviewed the budget and the budget review covered hiring plans for the budget year"

func writeAudioFixture(t *testing.T, name string, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(size))
	require.NoError(t, f.Close())
	return path
}

func newTestAnalyzer(t *testing.T, transcriber *testutil.MockTranscriber, generator *testutil.MockGenerator, history *testutil.MockRunDAO) *Analyzer {
	t.Helper()
	cfg := appconfig.DefaultAppConfig()
	cfg.OutputDir = t.TempDir()
	logger := zap.NewNop()
	return NewAnalyzer(
		transcriber,
		NewSummarizer(generator, cfg, logger),
		NewExtractor(generator, cfg, logger),
		NewReportWriter(cfg.OutputDir, logger),
		history,
		logger,
	)
}

func scriptedGenerator() *testutil.MockGenerator {
	return testutil.NewMockGenerator(
		"A concise summary of the recording.",
		`["Budget", "Hiring"]`,
		`{"topics": [{"topic": "Budget", "mentions": 3}, {"topic": "Hiring", "mentions": 1}]}`,
	)
}

func TestAnalyzerRun_Success(t *testing.T) {
	path := writeAudioFixture(t, "meeting.mp3", 2048)
	transcriber := testutil.NewMockTranscriber(testTranscript)
	generator := scriptedGenerator()
	history := testutil.NewMockRunDAO()

	a := newTestAnalyzer(t, transcriber, generator, history)
	a.WithDurationProber(func(string) (float64, error) { return 2.0, nil })

	result, err := a.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, transcriber.CallCount)
	assert.Equal(t, []string{path}, transcriber.Calls)
	assert.Equal(t, 3, generator.CallCount)

	assert.Equal(t, testTranscript, result.Transcript.Text)
	assert.Equal(t, "A concise summary of the recording.", result.Summary.Text)
	assert.Equal(t, 16, result.Analytics.WordCount)
	require.NotNil(t, result.Analytics.SpeakingSpeedWPM)
	assert.Equal(t, 8, *result.Analytics.SpeakingSpeedWPM)
	require.Len(t, result.Analytics.Topics, 2)
	assert.Equal(t, "Budget", result.Analytics.Topics[0].Topic)

	assert.FileExists(t, result.TranscriptFile)
	assert.FileExists(t, result.SummaryFile)
	assert.FileExists(t, result.AnalyticsFile)

	require.Len(t, history.Records, 1)
	record := history.Records[0]
	assert.Equal(t, "meeting.mp3", record.FileName)
	assert.Equal(t, 16, record.WordCount)
	assert.Equal(t, 8, record.SpeakingWPM)
	assert.Equal(t, 0, record.HasError)
	assert.NotEmpty(t, record.RunID)
}

func TestAnalyzerRun_OversizedFileSkipsServices(t *testing.T) {
	path := writeAudioFixture(t, "huge.mp3", MaxFileSize+1)
	transcriber := testutil.NewMockTranscriber(testTranscript)
	generator := scriptedGenerator()
	history := testutil.NewMockRunDAO()

	a := newTestAnalyzer(t, transcriber, generator, history)

	_, err := a.Run(context.Background(), path)
	var tooLarge *FileTooLargeError
	require.ErrorAs(t, err, &tooLarge)

	assert.Equal(t, 0, transcriber.CallCount, "rejected file must never reach the transcription service")
	assert.Equal(t, 0, generator.CallCount)

	require.Len(t, history.Records, 1)
	assert.Equal(t, 1, history.Records[0].HasError)
	assert.NotEmpty(t, history.Records[0].ErrorMessage)
}

func TestAnalyzerRun_UnsupportedFormatSkipsServices(t *testing.T) {
	path := writeAudioFixture(t, "capture.ogg", 2048)
	transcriber := testutil.NewMockTranscriber(testTranscript)
	generator := scriptedGenerator()

	a := newTestAnalyzer(t, transcriber, generator, testutil.NewMockRunDAO())

	_, err := a.Run(context.Background(), path)
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "ogg", unsupported.Format)
	assert.Equal(t, 0, transcriber.CallCount)
	assert.Equal(t, 0, generator.CallCount)
}

func TestAnalyzerRun_TranscriptionFailure(t *testing.T) {
	path := writeAudioFixture(t, "meeting.wav", 2048)
	transcriber := testutil.NewMockTranscriber("")
	transcriber.Err = assert.AnError
	generator := scriptedGenerator()

	a := newTestAnalyzer(t, transcriber, generator, testutil.NewMockRunDAO())
	a.WithDurationProber(func(string) (float64, error) { return 1.0, nil })

	_, err := a.Run(context.Background(), path)
	var trErr *TranscriptionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, 0, generator.CallCount)
}

func TestAnalyzerRun_SchemaFailureWritesNothing(t *testing.T) {
	path := writeAudioFixture(t, "meeting.m4a", 2048)
	transcriber := testutil.NewMockTranscriber(testTranscript)
	generator := testutil.NewMockGenerator(
		"A concise summary of the recording.",
		`["Budget"]`,
		`{"topics": "not an array"}`,
	)
	history := testutil.NewMockRunDAO()

	cfg := appconfig.DefaultAppConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "outputs")
	logger := zap.NewNop()
	a := NewAnalyzer(
		transcriber,
		NewSummarizer(generator, cfg, logger),
		NewExtractor(generator, cfg, logger),
		NewReportWriter(cfg.OutputDir, logger),
		history,
		logger,
	)
	a.WithDurationProber(func(string) (float64, error) { return 1.0, nil })

	_, err := a.Run(context.Background(), path)
	var schemaErr *SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)

	assert.NoDirExists(t, cfg.OutputDir, "no artifacts may exist after a schema failure")
	require.Len(t, history.Records, 1)
	assert.Equal(t, 1, history.Records[0].HasError)
}

func TestAnalyzerRun_ProbeFailureCompletes(t *testing.T) {
	path := writeAudioFixture(t, "meeting.webm", 2048)
	transcriber := testutil.NewMockTranscriber(testTranscript)
	generator := scriptedGenerator()
	history := testutil.NewMockRunDAO()

	a := newTestAnalyzer(t, transcriber, generator, history)
	a.WithDurationProber(func(string) (float64, error) { return 0, assert.AnError })

	result, err := a.Run(context.Background(), path)
	require.NoError(t, err)

	assert.Nil(t, result.Analytics.AudioDurationMinutes)
	assert.Nil(t, result.Analytics.SpeakingSpeedWPM)
	assert.Equal(t, 16, result.Analytics.WordCount)
	assert.FileExists(t, result.AnalyticsFile)
}

func TestAnalyzerRun_HistoryFailureDoesNotFailRun(t *testing.T) {
	path := writeAudioFixture(t, "meeting.mp3", 2048)
	history := testutil.NewMockRunDAO()
	history.Err = assert.AnError

	a := newTestAnalyzer(t, testutil.NewMockTranscriber(testTranscript), scriptedGenerator(), history)
	a.WithDurationProber(func(string) (float64, error) { return 2.0, nil })

	result, err := a.Run(context.Background(), path)
	require.NoError(t, err)
	assert.FileExists(t, result.TranscriptFile)
}
