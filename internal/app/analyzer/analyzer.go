package analyzer

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"audio-insights/internal/app/api"
	"audio-insights/internal/app/model"
	"audio-insights/internal/app/repository"
)

// stageCount is the number of pipeline stages shown by the progress bar:
// validate, transcribe, summarize, extract, write.
const stageCount = 5

// Analyzer runs the full pipeline for one audio file: validate,
// transcribe, summarize, extract analytics, write the report. Stages run
// strictly in order; the first failure aborts the run.
type Analyzer struct {
	transcriber api.Transcriber
	summarizer  *Summarizer
	extractor   *Extractor
	reporter    *ReportWriter
	history     repository.RunDAO
	probe       DurationProber
	logger      *zap.Logger
	progressCfg ProgressConfig
}

func NewAnalyzer(
	transcriber api.Transcriber,
	summarizer *Summarizer,
	extractor *Extractor,
	reporter *ReportWriter,
	history repository.RunDAO,
	logger *zap.Logger,
) *Analyzer {
	return &Analyzer{
		transcriber: transcriber,
		summarizer:  summarizer,
		extractor:   extractor,
		reporter:    reporter,
		history:     history,
		logger:      logger,
	}
}

// WithDurationProber overrides the ffprobe-based duration prober.
func (a *Analyzer) WithDurationProber(probe DurationProber) *Analyzer {
	a.probe = probe
	return a
}

// WithProgress enables the stage progress display.
func (a *Analyzer) WithProgress(cfg ProgressConfig) *Analyzer {
	a.progressCfg = cfg
	return a
}

func (a *Analyzer) Close() error {
	if a.history != nil {
		return a.history.Close()
	}
	return nil
}

// Run processes one audio file start to finish and returns the artifact
// bundle. Every run, failed or not, is recorded in the run history.
func (a *Analyzer) Run(ctx context.Context, filePath string) (*model.RunResult, error) {
	runID := uuid.New().String()
	log := a.logger.With(zap.String("run_id", runID), zap.String("file", filePath))
	log.Info("processing audio file")

	progress := NewStageProgress(a.progressCfg, stageCount)

	result, err := a.run(ctx, filePath, log, progress)
	if err != nil {
		progress.Abort()
		a.recordFailure(runID, filePath, result, err, log)
		return nil, err
	}
	progress.Wait()

	a.recordSuccess(runID, result, log)
	log.Info("processing completed",
		zap.String("transcript_file", result.TranscriptFile),
		zap.String("summary_file", result.SummaryFile),
		zap.String("analytics_file", result.AnalyticsFile))
	return result, nil
}

func (a *Analyzer) run(ctx context.Context, filePath string, log *zap.Logger, progress *StageProgress) (*model.RunResult, error) {
	input, err := ValidateAudioFile(filePath, a.probe, log)
	if err != nil {
		return nil, err
	}
	log.Info("file validated",
		zap.String("format", input.Format),
		zap.Int64("size_bytes", input.Size))
	progress.StageDone()

	log.Info("starting audio transcription")
	text, err := a.transcriber.Transcript(ctx, input.FilePath)
	if err != nil {
		return nil, &TranscriptionError{Err: err}
	}
	transcript := model.Transcript{Text: text}
	log.Info("transcription completed", zap.Int("chars", transcript.CharLength()))
	progress.StageDone()

	summary, err := a.summarizer.Summarize(ctx, transcript)
	if err != nil {
		return nil, err
	}
	progress.StageDone()

	analytics, err := a.extractor.Extract(ctx, transcript, input.DurationMinutes)
	if err != nil {
		return nil, err
	}
	progress.StageDone()

	result := &model.RunResult{
		Input:      input,
		Transcript: transcript,
		Summary:    summary,
		Analytics:  analytics,
	}
	if err := a.reporter.Write(result); err != nil {
		return result, err
	}
	progress.StageDone()

	return result, nil
}

// recordSuccess writes the run into the history store. History failures
// never fail a completed run.
func (a *Analyzer) recordSuccess(runID string, result *model.RunResult, log *zap.Logger) {
	if a.history == nil {
		return
	}
	record := model.RunRecord{
		RunID:          runID,
		FileName:       result.Input.FileName,
		WordCount:      result.Analytics.WordCount,
		SummaryWords:   result.Summary.WordCount(),
		TranscriptFile: result.TranscriptFile,
		SummaryFile:    result.SummaryFile,
		AnalyticsFile:  result.AnalyticsFile,
		FinishedAt:     time.Now(),
	}
	if result.Input.DurationMinutes != nil {
		record.DurationMinutes = *result.Input.DurationMinutes
	}
	if result.Analytics.SpeakingSpeedWPM != nil {
		record.SpeakingWPM = *result.Analytics.SpeakingSpeedWPM
	}
	if err := a.history.RecordRun(record); err != nil {
		log.Warn("failed to record run history", zap.Error(err))
	}
}

func (a *Analyzer) recordFailure(runID, filePath string, result *model.RunResult, runErr error, log *zap.Logger) {
	if a.history == nil {
		return
	}
	record := model.RunRecord{
		RunID:        runID,
		FileName:     filePath,
		FinishedAt:   time.Now(),
		HasError:     1,
		ErrorMessage: runErr.Error(),
	}
	if result != nil {
		record.FileName = result.Input.FileName
		record.WordCount = result.Analytics.WordCount
		if result.Input.DurationMinutes != nil {
			record.DurationMinutes = *result.Input.DurationMinutes
		}
	}
	if err := a.history.RecordRun(record); err != nil {
		log.Warn("failed to record run history", zap.Error(err))
	}
}
