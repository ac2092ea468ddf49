package store

import (
	"context"
	"fmt"
	"time"
)

type CallLog struct {
	ID        int64     `db:"id"`
	ToNumber  string    `db:"to_number"`
	Sid       string    `db:"sid"`
	Status    *string   `db:"status"`
	Error     *string   `db:"error"`
	LoggedAt  string    `db:"logged_at"`
	CreatedAt time.Time `db:"created_at"`
}

const sqlInsertCallLog = `
INSERT INTO call_logs (to_number, sid, status, error, logged_at)
VALUES (:to_number, :sid, :status, :error, :logged_at)
`

// InsertCallLogs appends all rows in a single transaction.
func (s *Store) InsertCallLogs(ctx context.Context, logs []CallLog) error {
	if len(logs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin call log transaction", err)
		return fmt.Errorf("failed to begin call log transaction: %w", err)
	}
	defer tx.Rollback()

	for _, log := range logs {
		if _, err := tx.NamedExecContext(ctx, sqlInsertCallLog, log); err != nil {
			s.logger.Error(ctx, "failed to insert call log", err)
			return fmt.Errorf("failed to insert call log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit call logs", err)
		return fmt.Errorf("failed to commit call logs: %w", err)
	}
	return nil
}

const sqlGetRecentCallLogs = `
SELECT id, to_number, sid, status, error, logged_at, created_at
FROM (
    SELECT id, to_number, sid, status, error, logged_at, created_at
    FROM call_logs
    ORDER BY id DESC
    LIMIT $1
) recent
ORDER BY id ASC
`

// GetRecentCallLogs returns the newest limit rows, oldest first.
func (s *Store) GetRecentCallLogs(ctx context.Context, limit int) ([]CallLog, error) {
	var logs []CallLog
	err := s.db.SelectContext(ctx, &logs, sqlGetRecentCallLogs, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get recent call logs", err)
		return nil, fmt.Errorf("failed to get recent call logs: %w", err)
	}
	return logs, nil
}

const sqlListCallLogs = `
SELECT id, to_number, sid, status, error, logged_at, created_at
FROM call_logs
ORDER BY id ASC
`

// ListCallLogs returns every row in insertion order.
func (s *Store) ListCallLogs(ctx context.Context) ([]CallLog, error) {
	var logs []CallLog
	err := s.db.SelectContext(ctx, &logs, sqlListCallLogs)
	if err != nil {
		s.logger.Error(ctx, "failed to list call logs", err)
		return nil, fmt.Errorf("failed to list call logs: %w", err)
	}
	return logs, nil
}
