package pg

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio-insights/internal/app/model"
)

func newMockDB(t *testing.T) (*PostgresDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresDB{db: db}, mock
}

func TestPostgresDB_RecordRun(t *testing.T) {
	pdb, mock := newMockDB(t)

	finished := time.Date(2026, 8, 30, 10, 4, 5, 0, time.UTC)
	mock.ExpectExec("INSERT INTO runs").
		WithArgs("run-1", "meeting.mp3", 2.5, 300, 120, 180,
			"t.md", "s.md", "a.json", finished, 0, "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := pdb.RecordRun(model.RunRecord{
		RunID:           "run-1",
		FileName:        "meeting.mp3",
		DurationMinutes: 2.5,
		WordCount:       300,
		SpeakingWPM:     120,
		SummaryWords:    180,
		TranscriptFile:  "t.md",
		SummaryFile:     "s.md",
		AnalyticsFile:   "a.json",
		FinishedAt:      finished,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_RecordRunFailure(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO runs").WillReturnError(assert.AnError)

	err := pdb.RecordRun(model.RunRecord{RunID: "run-1", FileName: "meeting.mp3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert run record")
}

func TestPostgresDB_GetAllRuns(t *testing.T) {
	pdb, mock := newMockDB(t)

	columns := []string{"id", "run_id", "file_name", "duration_minutes", "word_count", "speaking_wpm",
		"summary_words", "transcript_file", "summary_file", "analytics_file", "finished_at",
		"has_error", "error_message"}
	finished := time.Date(2026, 8, 30, 10, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow(2, "run-2", "b.mp3", 1.0, 100, 100, 90, "t2.md", "s2.md", "a2.json", finished, 0, "").
		AddRow(1, "run-1", "a.mp3", 2.5, 300, 120, 180, "t1.md", "s1.md", "a1.json", finished.Add(-time.Hour), 1, "transcription failed")

	mock.ExpectQuery("SELECT (.+) FROM runs").WillReturnRows(rows)

	runs, err := pdb.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].RunID)
	assert.Equal(t, 100, runs[0].WordCount)
	assert.Equal(t, 1, runs[1].HasError)
	assert.Equal(t, "transcription failed", runs[1].ErrorMessage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDB_GetAllRunsQueryFailure(t *testing.T) {
	pdb, mock := newMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM runs").WillReturnError(assert.AnError)

	_, err := pdb.GetAllRuns()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query failed")
}
