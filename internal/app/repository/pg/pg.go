package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"audio-insights/internal/app/model"
)

type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB connects with the given DSN, e.g.
// "user=postgres password=... dbname=insights sslmode=disable".
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return &PostgresDB{db: db}, nil
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

func (pdb *PostgresDB) RecordRun(r model.RunRecord) error {
	insertSQL := `INSERT INTO runs (run_id, file_name, duration_minutes, word_count, speaking_wpm, summary_words,
		transcript_file, summary_file, analytics_file, finished_at, has_error, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err := pdb.db.Exec(insertSQL, r.RunID, r.FileName, r.DurationMinutes, r.WordCount, r.SpeakingWPM,
		r.SummaryWords, r.TranscriptFile, r.SummaryFile, r.AnalyticsFile, r.FinishedAt, r.HasError, r.ErrorMessage)
	if err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) GetAllRuns() ([]model.RunRecord, error) {
	query := `
		SELECT id, run_id, file_name, duration_minutes, word_count, speaking_wpm, summary_words,
		       transcript_file, summary_file, analytics_file, finished_at, has_error, error_message
		FROM runs
		ORDER BY finished_at DESC;`
	rows, err := pdb.db.Query(query)
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
