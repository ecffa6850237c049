// Package history journals reset runs in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/furilabs/furios-reset/pkg/errors"
)

// Repository provides database operations for the run journal
type Repository struct {
	db *sql.DB
}

// NewRepository opens the journal database and ensures its schema
func NewRepository(dbPath string) (*Repository, error) {
	slog.Info("journal_init", "db_path", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		slog.Error("journal_open_failed", "db_path", dbPath, "error", err)
		return nil, errors.Wrap(err, "failed to open journal database")
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		slog.Error("journal_schema_failed", "db_path", dbPath, "error", err)
		return nil, errors.Wrap(err, "failed to create journal schema")
	}

	slog.Info("journal_ready", "db_path", dbPath)
	return &Repository{db: db}, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Create inserts a new run record
func (r *Repository) Create(run *Run) error {
	slog.Info("journal_record_run", "run_id", run.ID, "slot_suffix", run.SlotSuffix)

	query := `INSERT INTO runs (id, slot_suffix) VALUES (?, ?)`
	if _, err := r.db.Exec(query, run.ID, run.SlotSuffix); err != nil {
		slog.Error("journal_insert_failed", "run_id", run.ID, "error", err)
		return errors.Wrap(err, "failed to insert run")
	}
	return nil
}

// Finish records how a run ended
func (r *Repository) Finish(id, outcome, reason string, warnings []string) error {
	slog.Info("journal_finish_run", "run_id", id, "outcome", outcome, "reason", reason)

	query := `
		UPDATE runs
		SET outcome = ?, reason = ?, warnings = ?, finished_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	result, err := r.db.Exec(query, outcome, reason, strings.Join(warnings, "\n"), id)
	if err != nil {
		slog.Error("journal_finish_failed", "run_id", id, "error", err)
		return errors.Wrap(err, "failed to finish run")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		slog.Error("journal_rows_affected_failed", "run_id", id, "error", err)
		return errors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		slog.Error("journal_run_not_found_for_finish", "run_id", id)
		return fmt.Errorf("run not found: id=%s", id)
	}

	slog.Info("journal_run_finished", "run_id", id, "outcome", outcome)
	return nil
}

// Get retrieves a run by ID
func (r *Repository) Get(id string) (*Run, error) {
	query := `
		SELECT id, slot_suffix, outcome, reason, warnings, created_at, finished_at
		FROM runs WHERE id = ?
	`
	var run Run
	var finishedAt sql.NullString

	err := r.db.QueryRow(query, id).Scan(
		&run.ID, &run.SlotSuffix, &run.Outcome, &run.Reason,
		&run.Warnings, &run.CreatedAt, &finishedAt)

	if err == sql.ErrNoRows {
		slog.Info("journal_run_not_found", "run_id", id)
		return nil, nil // Not found
	}
	if err != nil {
		slog.Error("journal_query_failed", "run_id", id, "error", err)
		return nil, errors.Wrap(err, "failed to query run")
	}

	// Handle nullable fields
	run.FinishedAt = finishedAt.String

	return &run, nil
}

// List retrieves the most recent runs, newest first
func (r *Repository) List(limit int) ([]*Run, error) {
	slog.Info("journal_list_runs", "limit", limit)

	query := `
		SELECT id, slot_suffix, outcome, reason, warnings, created_at, finished_at
		FROM runs ORDER BY created_at DESC, id DESC LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		slog.Error("journal_list_query_failed", "error", err)
		return nil, errors.Wrap(err, "failed to list runs")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var finishedAt sql.NullString

		err := rows.Scan(
			&run.ID, &run.SlotSuffix, &run.Outcome, &run.Reason,
			&run.Warnings, &run.CreatedAt, &finishedAt)
		if err != nil {
			slog.Error("journal_scan_row_failed", "error", err)
			return nil, errors.Wrap(err, "failed to scan row")
		}

		run.FinishedAt = finishedAt.String
		runs = append(runs, &run)
	}

	if err := rows.Err(); err != nil {
		slog.Error("journal_rows_error", "error", err)
		return nil, errors.Wrap(err, "rows error")
	}

	slog.Info("journal_list_complete", "run_count", len(runs))
	return runs, nil
}
