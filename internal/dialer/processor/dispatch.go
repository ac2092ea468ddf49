package processor

import (
	"autodialer/internal/calllog"
	"autodialer/internal/observability"
	"context"
)

// DispatchHooks are invoked around every call so progress can be reported
// before the next number is dialed. Nil hooks are skipped.
type DispatchHooks struct {
	OnCalling func(index, total int, to string)
	OnResult  func(index int, attempt calllog.CallAttempt)
}

// Dispatch places one call per number, in order. A failed call is recorded and
// the remaining numbers are still dialed. Indexes passed to hooks are 1-based.
func (p *DialerProcessor) Dispatch(ctx context.Context, numbers []string, hooks DispatchHooks) []calllog.CallAttempt {
	total := len(numbers)
	attempts := make([]calllog.CallAttempt, 0, total)

	for i, to := range numbers {
		index := i + 1
		if i > 0 && p.pacing > 0 {
			p.sleep(p.pacing)
		}

		if hooks.OnCalling != nil {
			hooks.OnCalling(index, total, to)
		}

		attempt := p.placeCall(ctx, to, index, total)
		attempts = append(attempts, attempt)

		if hooks.OnResult != nil {
			hooks.OnResult(index, attempt)
		}
	}

	return attempts
}

func (p *DialerProcessor) placeCall(ctx context.Context, to string, index, total int) calllog.CallAttempt {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "call_index", Value: index},
		observability.Field{Key: "call_total", Value: total},
	)

	call, err := p.caller.PlaceCall(ctx, to)
	if err != nil {
		p.logger.WarnWithError(ctx, "call failed, continuing with next number", err)
		return calllog.FailedAttempt(to, err)
	}
	return calllog.CallAttempt{To: to, Sid: call.Sid, Status: call.Status}
}
