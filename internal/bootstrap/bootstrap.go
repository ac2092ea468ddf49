package bootstrap

import (
	"autodialer/internal/calllog"
	"autodialer/internal/config"
	"autodialer/internal/observability"
	"autodialer/internal/store"
	"context"
	"fmt"

	blogHandler "autodialer/internal/blog/handler"
	blogProcessor "autodialer/internal/blog/processor"
	"autodialer/internal/clients/googleai"
	"autodialer/internal/clients/perplexity"
	"autodialer/internal/clients/twilio"
	dialerHandler "autodialer/internal/dialer/handler"
	dialerProcessor "autodialer/internal/dialer/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	DialerHandler dialerHandler.Handler
	BlogHandler   blogHandler.Handler
}

// completionClient is satisfied by every supported chat-completion provider
type completionClient interface {
	dialerProcessor.CompletionClient
	blogProcessor.CompletionClient
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize clients
	completion, err := newCompletionClient(cfg.Completion, logger)
	if err != nil {
		return nil, err
	}

	twilioClient, err := twilio.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.FromNumber,
		cfg.Dialer.Message,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create twilio client: %w", err)
	}

	// Initialize call log
	callLog, err := deps.newCallLog(cfg, logger)
	if err != nil {
		return nil, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "llm_provider", Value: cfg.Completion.Provider},
		observability.Field{Key: "call_log", Value: callLog.Location()},
	)
	logger.Info(ctx, "dependencies initialized")

	// Initialize dialer processor and handler
	dialerProc := dialerProcessor.New(completion, twilioClient, callLog, cfg.Dialer.Pacing, logger)
	deps.DialerHandler = dialerHandler.New(&dialerProc, logger)

	// Initialize blog processor and handler
	blogProc := blogProcessor.New(completion, logger)
	deps.BlogHandler = blogHandler.New(&blogProc, logger)

	return deps, nil
}

func newCompletionClient(cfg config.CompletionConfig, logger *observability.Logger) (completionClient, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := googleai.NewClient(cfg.GoogleAIAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return client, nil
	default:
		client, err := perplexity.NewClient(cfg.PerplexityAPIKey, cfg.PerplexityBaseURL, cfg.PerplexityModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create perplexity client: %w", err)
		}
		return client, nil
	}
}

func (d *Dependencies) newCallLog(cfg *config.Config, logger *observability.Logger) (dialerProcessor.CallLog, error) {
	if cfg.CallLog.Backend != config.CallLogBackendPostgres {
		return calllog.NewFileLog(cfg.CallLog.Path, logger), nil
	}

	s, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	d.Store = &s
	return calllog.NewDBLog(d.Store, logger), nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(context.Background(), "failed to close database", err)
		}
	}
}
