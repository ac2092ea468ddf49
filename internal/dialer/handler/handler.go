package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"autodialer/internal/apierrors"
	"autodialer/internal/dialer/processor"
	"autodialer/internal/observability"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PromptProcessor runs the extract-and-dial pipeline and serves the call log
type PromptProcessor interface {
	ProcessPrompt(ctx context.Context, prompt string) <-chan processor.Event
	ExportCallLog(ctx context.Context, w io.Writer) error
}

type Handler struct {
	processor PromptProcessor
	logger    *observability.Logger
}

func New(processor PromptProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type ProcessPromptRequest struct {
	Prompt string `json:"prompt"`
}

const ndjsonContentType = "application/x-ndjson"

// HandleProcessPrompt streams pipeline progress as newline-delimited JSON,
// flushing after every event. A missing or malformed body is treated as an
// empty prompt.
func (h *Handler) HandleProcessPrompt(c *gin.Context) {
	ctx := c.Request.Context()

	var req ProcessPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WarnWithError(ctx, "unreadable process prompt body, using empty prompt", err)
		req = ProcessPromptRequest{}
	}

	w := c.Writer
	w.Header().Set("Content-Type", ndjsonContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	h.logger.Info(ctx, "event stream starting")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	writable := true
	for event := range h.processor.ProcessPrompt(ctx, req.Prompt) {
		if !writable {
			continue
		}
		if err := enc.Encode(event); err != nil {
			h.logger.WarnWithError(ctx, "failed to write event, client likely disconnected", err)
			writable = false
			continue
		}
		w.Flush()
	}

	h.logger.Info(ctx, "event stream closed")
}

// HandleDownloadCallLog sends the call log as a CSV attachment.
func (h *Handler) HandleDownloadCallLog(c *gin.Context) {
	ctx := c.Request.Context()

	var buf bytes.Buffer
	if err := h.processor.ExportCallLog(ctx, &buf); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="call_logs.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
