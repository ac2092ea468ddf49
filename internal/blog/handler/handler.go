package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"autodialer/internal/apierrors"
	"autodialer/internal/blog/processor"
	"autodialer/internal/observability"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BlogGenerator interface {
	GenerateBlogs(ctx context.Context, prompt string) ([]processor.Post, error)
}

type Handler struct {
	generator BlogGenerator
	logger    *observability.Logger
}

func New(generator BlogGenerator, logger *observability.Logger) Handler {
	return Handler{
		generator: generator,
		logger:    logger,
	}
}

type GenerateBlogsRequest struct {
	Prompt string `json:"prompt"`
}

type GenerateBlogsResponse struct {
	Blogs []processor.Post `json:"blogs"`
}

func (h *Handler) HandleGenerateBlogs(c *gin.Context) {
	ctx := c.Request.Context()

	var req GenerateBlogsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	posts, err := h.generator.GenerateBlogs(ctx, req.Prompt)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, GenerateBlogsResponse{Blogs: posts})
}
