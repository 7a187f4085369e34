package app

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"audio-insights/internal/app/analyzer"
	"audio-insights/internal/app/api"
	"audio-insights/internal/app/api/gemini"
	openaiclient "audio-insights/internal/app/api/openai"
	"audio-insights/internal/app/api/openai/chat"
	"audio-insights/internal/app/api/openai/whisper"
	appconfig "audio-insights/internal/app/config"
	"audio-insights/internal/app/logger"
	"audio-insights/internal/app/repository"
	"audio-insights/internal/app/repository/pg"
	"audio-insights/internal/app/repository/sqlite"
	"audio-insights/internal/app/util/files"
)

func provideAppConfig() (appconfig.AppConfig, error) {
	return appconfig.LoadAppConfig()
}

func provideLogger(verbose bool) *zap.Logger {
	return logger.MustNewLogger(verbose)
}

// provideTranscriber uses OpenAI's remote Whisper service; OPENAI_API_KEY
// must be set before the first call.
func provideTranscriber() api.Transcriber {
	return whisper.NewRemoteTranscriber(openaiclient.GetClient())
}

// provideGenerator selects the text-generation provider. Default is the
// OpenAI chat endpoint; A2I_GENERATOR=gemini switches to Gemini.
func provideGenerator(cfg appconfig.AppConfig) (api.Generator, error) {
	if cfg.Generator == "gemini" {
		return gemini.NewGenerator(context.Background(), os.Getenv("GEMINI_API_KEY"))
	}
	return chat.NewGenerator(openaiclient.GetClient()), nil
}

// provideRunDAO opens the run history store: SQLite under data/ by
// default, Postgres when A2I_DB=postgres.
func provideRunDAO() (repository.RunDAO, error) {
	if os.Getenv("A2I_DB") == "postgres" {
		return pg.NewPostgresDB(os.Getenv("A2I_POSTGRES_DSN"))
	}
	dbPath := filepath.Join(files.GetDataDir(), "insights.db")
	return sqlite.NewSQLiteDB(dbPath)
}

func provideSummarizer(generator api.Generator, cfg appconfig.AppConfig, log *zap.Logger) *analyzer.Summarizer {
	return analyzer.NewSummarizer(generator, cfg, log)
}

func provideExtractor(generator api.Generator, cfg appconfig.AppConfig, log *zap.Logger) *analyzer.Extractor {
	return analyzer.NewExtractor(generator, cfg, log)
}

func provideReportWriter(cfg appconfig.AppConfig, log *zap.Logger) *analyzer.ReportWriter {
	return analyzer.NewReportWriter(cfg.OutputDir, log)
}
