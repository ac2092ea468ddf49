package processor

import (
	"autodialer/internal/calllog"
	"autodialer/internal/observability"
	"context"
)

// ProcessPrompt runs extraction, dialing and persistence for one prompt and
// reports progress on the returned channel. The channel is unbuffered and is
// closed after the terminal event.
//
// Once dialing has started, cancelling ctx only stops event delivery: the
// remaining numbers are still called and the batch is still logged.
func (p *DialerProcessor) ProcessPrompt(ctx context.Context, prompt string) <-chan Event {
	events := make(chan Event)
	ctx = observability.WithFields(ctx, observability.Field{Key: "prompt_length", Value: len(prompt)})

	go func() {
		defer close(events)

		emit := func(e Event) {
			select {
			case events <- e:
			case <-ctx.Done():
			}
		}

		emit(promptReceived(prompt))
		emit(status(MessageCallingPerplexity))

		numbers, err := p.ExtractNumbers(ctx, prompt)
		if err != nil {
			emit(failure(MessagePerplexityFailed, err))
			return
		}
		emit(numbersFound(numbers))

		if len(numbers) == 0 {
			p.logger.Info(ctx, "no phone numbers found in prompt")
			emit(done(MessageNoNumbers))
			return
		}

		workCtx := observability.WithFields(context.WithoutCancel(ctx),
			observability.Field{Key: "numbers_found", Value: len(numbers)},
		)
		p.logger.Info(workCtx, "dialing extracted numbers")

		results := p.Dispatch(workCtx, numbers, DispatchHooks{
			OnCalling: func(index, total int, to string) {
				emit(calling(to, index, total))
			},
			OnResult: func(_ int, attempt calllog.CallAttempt) {
				emit(result(attempt))
			},
		})

		appended, err := p.callLog.Append(workCtx, results, p.now())
		if err != nil {
			p.logger.Error(workCtx, "failed to persist call log", err)
			emit(failure(MessagePersistFailed, err))
			return
		}

		if ctx.Err() != nil {
			p.logger.Warn(workCtx, "client disconnected before dialing finished")
		}
		emit(finished(results, appended))
	}()

	return events
}
