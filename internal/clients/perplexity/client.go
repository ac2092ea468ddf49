package perplexity

import (
	"autodialer/internal/observability"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const DefaultBaseURL = "https://api.perplexity.ai/"

// requestTimeout bounds a single completion round trip.
const requestTimeout = 30 * time.Second

var ErrEmptyCompletion = errors.New("perplexity returned no choices")

// Client talks to the Perplexity chat completions API, which is wire-compatible with OpenAI's.
type Client struct {
	newCompletion completionFunc
	model         string
	logger        *observability.Logger
}

type completionFunc func(ctx context.Context, body openai.ChatCompletionNewParams,
	opts ...option.RequestOption) (*openai.ChatCompletion, error)

func NewClient(apiKey, baseURL, model string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("perplexity API key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		return nil, fmt.Errorf("perplexity model is required")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithRequestTimeout(requestTimeout),
		option.WithMaxRetries(0),
	)
	return &Client{newCompletion: client.Chat.Completions.New, model: model, logger: logger}, nil
}

// Complete sends a system instruction and a user message and returns the text of the first choice.
// maxTokens <= 0 leaves the cap to the provider.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "completion_provider", Value: "perplexity"},
		observability.Field{Key: "completion_model", Value: c.model},
	)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	}
	if maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(maxTokens))
	}

	completion, err := c.newCompletion(ctx, params)
	if err != nil {
		c.logger.Error(ctx, "perplexity completion request failed", err)
		return "", fmt.Errorf("perplexity completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		c.logger.Error(ctx, "perplexity completion returned no choices", ErrEmptyCompletion)
		return "", ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
}
