package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"audio-insights/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	file_name TEXT NOT NULL,
	duration_minutes REAL NOT NULL,
	word_count INTEGER NOT NULL,
	speaking_wpm INTEGER NOT NULL,
	summary_words INTEGER NOT NULL,
	transcript_file TEXT NOT NULL,
	summary_file TEXT NOT NULL,
	analytics_file TEXT NOT NULL,
	finished_at TIMESTAMP NOT NULL,
	has_error INTEGER NOT NULL DEFAULT 0,
	error_message TEXT NOT NULL DEFAULT ''
);`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (and initializes when necessary) the run history
// database at dbFilePath.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) RecordRun(r model.RunRecord) error {
	insertSQL := `INSERT INTO runs (run_id, file_name, duration_minutes, word_count, speaking_wpm, summary_words,
		transcript_file, summary_file, analytics_file, finished_at, has_error, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, r.RunID, r.FileName, r.DurationMinutes, r.WordCount, r.SpeakingWPM,
		r.SummaryWords, r.TranscriptFile, r.SummaryFile, r.AnalyticsFile, r.FinishedAt, r.HasError, r.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetAllRuns() ([]model.RunRecord, error) {
	sqlStr := `
		SELECT id, run_id, file_name, duration_minutes, word_count, speaking_wpm, summary_words,
		       transcript_file, summary_file, analytics_file, finished_at, has_error, error_message
		FROM runs
		ORDER BY finished_at DESC;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	records := make([]model.RunRecord, 0)

	for rows.Next() {
		var r model.RunRecord
		err = rows.Scan(&r.ID, &r.RunID, &r.FileName, &r.DurationMinutes, &r.WordCount, &r.SpeakingWPM,
			&r.SummaryWords, &r.TranscriptFile, &r.SummaryFile, &r.AnalyticsFile, &r.FinishedAt,
			&r.HasError, &r.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}

		records = append(records, r)
	}
	return records, rows.Err()
}
