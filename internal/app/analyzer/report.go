package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"audio-insights/internal/app/model"
	"audio-insights/internal/app/util/files"
)

// ReportWriter persists the three run artifacts. All files from one run
// share a single timestamp suffix so they correlate by filename.
type ReportWriter struct {
	outputDir string
	logger    *zap.Logger
	now       func() time.Time
}

func NewReportWriter(outputDir string, logger *zap.Logger) *ReportWriter {
	return &ReportWriter{outputDir: outputDir, logger: logger, now: time.Now}
}

// Write persists transcript, summary and analytics. A failed write is
// reported but does not remove files already written; the first failure
// is returned after all three writes were attempted.
func (w *ReportWriter) Write(result *model.RunResult) error {
	if err := files.EnsureDirectory(w.outputDir); err != nil {
		return &DirectoryCreationError{Dir: w.outputDir, Err: err}
	}

	now := w.now()
	ts := now.Format("20060102_150405")
	generated := now.Format("2006-01-02 15:04:05")

	var firstErr error
	record := func(path string, err error) {
		if err != nil {
			w.logger.Error("failed to write artifact", zap.String("file", path), zap.Error(err))
			if firstErr == nil {
				firstErr = &FileWriteError{Path: path, Err: err}
			}
		} else {
			w.logger.Info("artifact written", zap.String("file", path))
		}
	}

	transcriptFile := filepath.Join(w.outputDir, fmt.Sprintf("transcription_%s.md", ts))
	err := w.writeMarkdown(transcriptFile, "Audio Transcription", "Transcription", generated, result.Transcript.Text)
	record(transcriptFile, err)
	if err == nil {
		result.TranscriptFile = transcriptFile
	}

	summaryFile := filepath.Join(w.outputDir, fmt.Sprintf("summary_%s.md", ts))
	err = w.writeMarkdown(summaryFile, "Audio Summary", "Summary", generated, result.Summary.Text)
	record(summaryFile, err)
	if err == nil {
		result.SummaryFile = summaryFile
	}

	analyticsFile := filepath.Join(w.outputDir, fmt.Sprintf("analysis_%s.json", ts))
	err = w.writeAnalytics(analyticsFile, result.Analytics)
	record(analyticsFile, err)
	if err == nil {
		result.AnalyticsFile = analyticsFile
	}

	return firstErr
}

func (w *ReportWriter) writeMarkdown(path, title, section, generated, body string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "**Generated:** %s\n\n", generated)
	fmt.Fprintf(&b, "## %s\n\n%s\n", section, body)

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func (w *ReportWriter) writeAnalytics(path string, analytics model.Analytics) error {
	data, err := json.MarshalIndent(analytics, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
