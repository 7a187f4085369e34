package repository

import "audio-insights/internal/app/model"

// RunDAO records completed and failed pipeline runs.
type RunDAO interface {
	Close() error

	RecordRun(record model.RunRecord) error

	GetAllRuns() ([]model.RunRecord, error)
}
