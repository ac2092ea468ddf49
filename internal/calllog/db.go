package calllog

//go:generate go run go.uber.org/mock/mockgen@latest -source=db.go -destination=mocks_test.go -package=calllog

import (
	"autodialer/internal/observability"
	"autodialer/internal/store"
	"context"
	"fmt"
	"io"
	"time"
)

// CallLogStore defines the database operations required by DBLog
type CallLogStore interface {
	InsertCallLogs(ctx context.Context, logs []store.CallLog) error
	GetRecentCallLogs(ctx context.Context, limit int) ([]store.CallLog, error)
	ListCallLogs(ctx context.Context) ([]store.CallLog, error)
}

const dbLocation = "postgres:call_logs"

var dbHeader = []string{ColumnTo, ColumnSid, ColumnStatus, ColumnError, ColumnTimestamp}

// DBLog persists call attempts as rows of the call_logs table. Appends are
// plain inserts, so concurrent requests never lose each other's rows.
type DBLog struct {
	store  CallLogStore
	logger *observability.Logger
}

func NewDBLog(store CallLogStore, logger *observability.Logger) *DBLog {
	return &DBLog{store: store, logger: logger}
}

func (l *DBLog) Location() string {
	return dbLocation
}

func (l *DBLog) Append(ctx context.Context, attempts []CallAttempt, at time.Time) (AppendResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "new_rows", Value: len(attempts)})

	ts := FormatTimestamp(at)
	logs := make([]store.CallLog, 0, len(attempts))
	for _, a := range attempts {
		log := store.CallLog{ToNumber: a.To, Sid: a.Sid, Status: a.Status, LoggedAt: ts}
		if a.Error != "" {
			errMsg := a.Error
			log.Error = &errMsg
		}
		logs = append(logs, log)
	}

	if err := l.store.InsertCallLogs(ctx, logs); err != nil {
		return AppendResult{}, fmt.Errorf("failed to append call logs: %w", err)
	}

	preview := []Row{}
	recent, err := l.store.GetRecentCallLogs(ctx, PreviewSize)
	if err != nil {
		l.logger.WarnWithError(ctx, "call log preview unavailable", err)
	} else {
		for _, log := range recent {
			preview = append(preview, rowFromStore(log))
		}
	}

	return AppendResult{Preview: preview, Location: dbLocation}, nil
}

// Export writes every row as CSV.
func (l *DBLog) Export(ctx context.Context, w io.Writer) error {
	logs, err := l.store.ListCallLogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to export call logs: %w", err)
	}
	if len(logs) == 0 {
		return ErrNotFound
	}

	t := table{header: dbHeader, records: make([][]string, 0, len(logs))}
	for _, log := range logs {
		row := rowFromStore(log)
		record := make([]string, len(dbHeader))
		for i, col := range dbHeader {
			record[i] = row[col]
		}
		t.records = append(t.records, record)
	}
	return encodeTable(w, t)
}

func rowFromStore(log store.CallLog) Row {
	row := Row{
		ColumnTo:        log.ToNumber,
		ColumnSid:       log.Sid,
		ColumnStatus:    "",
		ColumnError:     "",
		ColumnTimestamp: log.LoggedAt,
	}
	if log.Status != nil {
		row[ColumnStatus] = *log.Status
	}
	if log.Error != nil {
		row[ColumnError] = *log.Error
	}
	return row
}
