package model

import "time"

// RunRecord is one row of the run history store.
type RunRecord struct {
	ID              int
	RunID           string
	FileName        string
	DurationMinutes float64
	WordCount       int
	SpeakingWPM     int
	SummaryWords    int
	TranscriptFile  string
	SummaryFile     string
	AnalyticsFile   string
	FinishedAt      time.Time
	HasError        int
	ErrorMessage    string
}
