package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"autodialer/internal/calllog"
	"autodialer/internal/clients/twilio"
	"autodialer/internal/observability"
	"context"
	"io"
	"time"
)

// CompletionClient sends a single system + user exchange to a chat model
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// Caller places outbound phone calls
type Caller interface {
	PlaceCall(ctx context.Context, to string) (twilio.Call, error)
}

// CallLog persists call attempts and serves them back as CSV
type CallLog interface {
	Append(ctx context.Context, attempts []calllog.CallAttempt, at time.Time) (calllog.AppendResult, error)
	Export(ctx context.Context, w io.Writer) error
	Location() string
}

// DefaultPacing is the pause between two consecutive calls.
const DefaultPacing = 200 * time.Millisecond

type DialerProcessor struct {
	completion CompletionClient
	caller     Caller
	callLog    CallLog
	pacing     time.Duration
	logger     *observability.Logger

	now   func() time.Time
	sleep func(time.Duration)
}

func New(completion CompletionClient, caller Caller, callLog CallLog, pacing time.Duration, logger *observability.Logger) DialerProcessor {
	if pacing < 0 {
		pacing = 0
	}
	return DialerProcessor{
		completion: completion,
		caller:     caller,
		callLog:    callLog,
		pacing:     pacing,
		logger:     logger,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// ExportCallLog writes the persisted call log to w. It returns
// calllog.ErrNotFound when nothing has been logged yet.
func (p *DialerProcessor) ExportCallLog(ctx context.Context, w io.Writer) error {
	return p.callLog.Export(ctx, w)
}
