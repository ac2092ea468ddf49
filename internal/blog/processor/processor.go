package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"autodialer/internal/observability"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CompletionClient sends a single system + user exchange to a chat model
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

var (
	ErrMissingPrompt    = errors.New("missing prompt")
	ErrGenerationFailed = errors.New("blog generation failed")
)

const blogSystemPrompt = `You are an AI assistant that generates amazing blog articles on any topic. Please follow these instructions:

Generate a good, detailed, and sizable article for each topic provided.

Return the output as a JSON list.

The JSON should have objects with the keys "title" (for the article title) and "content" (for the article body).

Make sure the output strictly follows this JSON format.

[
  {
    "title": "Your Article Title",
    "content": "The full content of the article..."
  },
  ...
]`

// Post is one generated article
type Post struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type BlogProcessor struct {
	completion CompletionClient
	validate   *validator.Validate
	logger     *observability.Logger
}

func New(completion CompletionClient, logger *observability.Logger) BlogProcessor {
	return BlogProcessor{
		completion: completion,
		validate:   validator.New(),
		logger:     logger,
	}
}

// GenerateBlogs writes one article per topic found in prompt.
func (p *BlogProcessor) GenerateBlogs(ctx context.Context, prompt string) ([]Post, error) {
	if prompt == "" {
		return nil, ErrMissingPrompt
	}

	reply, err := p.completion.Complete(ctx, blogSystemPrompt, prompt, 0)
	if err != nil {
		p.logger.Error(ctx, "blog completion request failed", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	posts, err := p.parsePosts(reply)
	if err != nil {
		p.logger.Error(ctx, "failed to parse blog completion", err)
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "blog_count", Value: len(posts)})
	p.logger.Info(ctx, "generated blogs")
	return posts, nil
}

func (p *BlogProcessor) parsePosts(reply string) ([]Post, error) {
	body := stripCodeFence(strings.TrimSpace(reply))
	if !strings.HasPrefix(body, "[") {
		return nil, fmt.Errorf("reply is not a JSON list")
	}

	var posts []Post
	if err := json.Unmarshal([]byte(body), &posts); err != nil {
		return nil, fmt.Errorf("malformed JSON list: %w", err)
	}

	for i := range posts {
		if err := p.validate.Struct(posts[i]); err != nil {
			return nil, fmt.Errorf("article %d: %w", i, err)
		}
	}

	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

// stripCodeFence removes a surrounding markdown code block such as ```json ... ```.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
