package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidConfig            = errors.New("invalid configuration")
)

const (
	ProviderPerplexity = "perplexity"
	ProviderGemini     = "gemini"

	CallLogBackendCSV      = "csv"
	CallLogBackendPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Completion CompletionConfig
	Twilio     TwilioConfig
	Dialer     DialerConfig
	CallLog    CallLogConfig
	Database   DatabaseConfig
	Server     ServerConfig
}

// CompletionConfig selects and configures the chat-completion provider
type CompletionConfig struct {
	Provider          string
	PerplexityAPIKey  string
	PerplexityBaseURL string
	PerplexityModel   string
	GoogleAIAPIKey    string
	GeminiModel       string
}

// TwilioConfig holds the credentials and caller ID used for outbound calls
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

// DialerConfig holds call placement settings
type DialerConfig struct {
	Message string
	Pacing  time.Duration
}

// CallLogConfig selects where call results are persisted
type CallLogConfig struct {
	Backend string
	Path    string
}

// DatabaseConfig holds database connection settings, only used by the postgres call log backend
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	AllowedOrigins []string
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}
	var err error

	// Completion provider
	cfg.Completion.Provider = strings.ToLower(getEnvWithDefault("LLM_PROVIDER", ProviderPerplexity))
	cfg.Completion.PerplexityBaseURL = getEnvWithDefault("PERPLEXITY_BASE_URL", "https://api.perplexity.ai/")
	cfg.Completion.PerplexityModel = getEnvWithDefault("PERPLEXITY_MODEL", "sonar")
	cfg.Completion.GeminiModel = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
	switch cfg.Completion.Provider {
	case ProviderPerplexity:
		if cfg.Completion.PerplexityAPIKey, err = requireEnv("PERPLEXITY_API_KEY"); err != nil {
			return nil, err
		}
	case ProviderGemini:
		if cfg.Completion.GoogleAIAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("LLM_PROVIDER %q is not supported: %w", cfg.Completion.Provider, ErrInvalidConfig)
	}

	// Twilio configuration
	if cfg.Twilio.AccountSID, err = requireEnv("TWILIO_ACCOUNT_SID"); err != nil {
		return nil, err
	}
	if cfg.Twilio.AuthToken, err = requireEnv("TWILIO_AUTH_TOKEN"); err != nil {
		return nil, err
	}
	if cfg.Twilio.FromNumber, err = requireEnv("TWILIO_FROM_NUMBER"); err != nil {
		return nil, err
	}

	// Dialer configuration
	cfg.Dialer.Message = getEnvWithDefault("CALL_MESSAGE", "This is a test")
	pacingMS, err := strconv.Atoi(getEnvWithDefault("CALL_PACING_MS", "200"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CALL_PACING_MS: %w", err)
	}
	if pacingMS < 0 {
		return nil, fmt.Errorf("CALL_PACING_MS must not be negative: %w", ErrInvalidConfig)
	}
	cfg.Dialer.Pacing = time.Duration(pacingMS) * time.Millisecond

	// Call log configuration
	cfg.CallLog.Backend = strings.ToLower(getEnvWithDefault("CALL_LOG_BACKEND", CallLogBackendCSV))
	cfg.CallLog.Path = getEnvWithDefault("CALL_LOG_PATH", "out/call_logs.csv")
	switch cfg.CallLog.Backend {
	case CallLogBackendCSV:
	case CallLogBackendPostgres:
		if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
			return nil, err
		}
		if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
			return nil, err
		}
		if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
			return nil, err
		}
		if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("CALL_LOG_BACKEND %q is not supported: %w", cfg.CallLog.Backend, ErrInvalidConfig)
	}

	// Server configuration
	cfg.Server.Port, err = strconv.Atoi(getEnvWithDefault("SERVER_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.Server.AllowedOrigins = append(cfg.Server.AllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
