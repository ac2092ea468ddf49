package apierrors

import (
	"errors"

	blogProcessor "autodialer/internal/blog/processor"
	"autodialer/internal/calllog"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Call log
	case errors.Is(err, calllog.ErrNotFound):
		return NotFound(CodeNotFound, "CSV not found")

	// Blog generator
	case errors.Is(err, blogProcessor.ErrMissingPrompt):
		return BadRequest(CodeMissingPrompt, "Missing prompt")

	case errors.Is(err, blogProcessor.ErrGenerationFailed):
		return UpstreamFailure(CodeBlogGenerationFailed, err)

	default:
		return InternalError(err)
	}
}
