package googleai

import (
	"autodialer/internal/observability"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyCompletion = errors.New("gemini returned no text")

// Client is a completion provider backed by Gemini.
type Client struct {
	apiKey string
	model  string
	logger *observability.Logger
}

func NewClient(apiKey, model string, logger *observability.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google AI API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model is required")
	}
	return &Client{apiKey: apiKey, model: model, logger: logger}, nil
}

// Complete runs a single, non-streaming generation with the given system instruction.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "completion_provider", Value: "gemini"},
		observability.Field{Key: "completion_model", Value: c.model},
	)

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		c.logger.Error(ctx, "failed to create Gemini client", err)
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(c.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	if maxTokens > 0 {
		model.SetMaxOutputTokens(int32(maxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		c.logger.Error(ctx, "gemini generation failed", err)
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		c.logger.Error(ctx, "gemini response had no text", err)
		return "", err
	}
	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyCompletion
	}
	return sb.String(), nil
}
