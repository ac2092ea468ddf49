package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrExtractionFailed = errors.New("phone number extraction failed")

const extractionMaxTokens = 500

const extractionSystemPrompt = `You are an AI assistant that extracts all phone numbers from any given text or query. ` +
	`Always return the phone numbers only as a JSON array of strings, e.g.: ["+18001234567", "9876543210"]. ` +
	`If there are no phone numbers in the text, return an empty array ([]). ` +
	`Do not include any explanation, text, or formatting other than the JSON array.`

// ExtractNumbers asks the completion model for every phone number mentioned in
// prompt. Numbers are returned verbatim and in model order.
func (p *DialerProcessor) ExtractNumbers(ctx context.Context, prompt string) ([]string, error) {
	reply, err := p.completion.Complete(ctx, extractionSystemPrompt, prompt, extractionMaxTokens)
	if err != nil {
		p.logger.Error(ctx, "completion request failed", err)
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	numbers, err := parseNumbers(reply)
	if err != nil {
		p.logger.Error(ctx, "failed to parse completion reply", err)
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return numbers, nil
}

// parseNumbers accepts only a JSON array whose elements are all strings.
func parseNumbers(reply string) ([]string, error) {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("reply is not a list: %q", truncate(trimmed, 80))
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("malformed list: %w", err)
	}

	numbers := make([]string, 0, len(raw))
	for i, item := range raw {
		var n string
		if len(item) == 0 || item[0] != '"' {
			return nil, fmt.Errorf("element %d is not a string", i)
		}
		if err := json.Unmarshal(item, &n); err != nil {
			return nil, fmt.Errorf("element %d is not a string", i)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
