//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"audio-insights/internal/app/analyzer"
	"audio-insights/internal/app/repository"
)

// InitializeAnalyzer wires the full pipeline: transcriber, generator,
// the three downstream stages, run history store and logger.
func InitializeAnalyzer(verbose bool) (*analyzer.Analyzer, error) {
	wire.Build(
		provideAppConfig,
		provideLogger,
		provideTranscriber,
		provideGenerator,
		provideRunDAO,
		provideSummarizer,
		provideExtractor,
		provideReportWriter,
		analyzer.NewAnalyzer,
	)
	return nil, nil
}

// InitializeRunDAO exposes the history store on its own for the export
// command.
func InitializeRunDAO() (repository.RunDAO, error) {
	wire.Build(provideRunDAO)
	return nil, nil
}
