package calllog

import (
	"errors"
	"time"
)

// PreviewSize is the number of most recent rows returned after an append.
const PreviewSize = 20

// TimestampLayout is a zone-less ISO-8601 timestamp with microseconds.
const TimestampLayout = "2006-01-02T15:04:05.000000"

const (
	ColumnTo        = "to"
	ColumnSid       = "sid"
	ColumnStatus    = "status"
	ColumnError     = "error"
	ColumnTimestamp = "timestamp"
)

const StatusError = "error"

var ErrNotFound = errors.New("call log not found")

// CallAttempt is the outcome of one outbound call. Status is nil when the
// provider did not report one.
type CallAttempt struct {
	To     string  `json:"to"`
	Sid    string  `json:"sid"`
	Status *string `json:"status"`
	Error  string  `json:"error,omitempty"`
}

// FailedAttempt records a call that could not be placed.
func FailedAttempt(to string, err error) CallAttempt {
	status := StatusError
	return CallAttempt{To: to, Sid: "", Status: &status, Error: err.Error()}
}

func (a CallAttempt) statusValue() string {
	if a.Status == nil {
		return ""
	}
	return *a.Status
}

// Row is one persisted call log line keyed by column name.
type Row map[string]string

// AppendResult describes the log after an append.
type AppendResult struct {
	Preview  []Row
	Location string
}

// FormatTimestamp renders the batch timestamp shared by all rows of one request.
func FormatTimestamp(at time.Time) string {
	return at.Format(TimestampLayout)
}
