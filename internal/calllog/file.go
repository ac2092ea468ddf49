package calllog

import (
	"autodialer/internal/observability"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// FileLog keeps the cumulative call log as a single CSV file. Every append
// reads the current file, concatenates the new rows and rewrites it.
type FileLog struct {
	path   string
	logger *observability.Logger

	// mu serialises read-modify-write cycles within this process. Writers in
	// other processes sharing the file are not coordinated.
	mu sync.Mutex
}

func NewFileLog(path string, logger *observability.Logger) *FileLog {
	return &FileLog{path: path, logger: logger}
}

// Location returns the path of the CSV file.
func (l *FileLog) Location() string {
	return l.path
}

// Append merges attempts into the log, all stamped with at. An existing file
// that cannot be parsed is replaced by the new rows.
func (l *FileLog) Append(ctx context.Context, attempts []CallAttempt, at time.Time) (AppendResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_log_path", Value: l.path},
		observability.Field{Key: "new_rows", Value: len(attempts)},
	)

	l.mu.Lock()
	defer l.mu.Unlock()

	merged := newTable(attempts, at)
	existing, err := readTable(l.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		l.logger.Info(ctx, "creating call log")
	case err != nil:
		l.logger.WarnWithError(ctx, "existing call log unreadable, previous rows discarded", err)
	default:
		merged = existing.concat(merged)
	}

	if err := writeTable(l.path, merged); err != nil {
		l.logger.Error(ctx, "failed to persist call log", err)
		return AppendResult{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "total_rows", Value: len(merged.records)})
	l.logger.Info(ctx, "call log updated")

	return AppendResult{Preview: merged.tail(PreviewSize), Location: l.path}, nil
}

// Export copies the persisted CSV to w.
func (l *FileLog) Export(ctx context.Context, w io.Writer) error {
	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		l.logger.Error(ctx, "failed to open call log", err)
		return fmt.Errorf("failed to open call log: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to export call log: %w", err)
	}
	return nil
}
