package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dathagerty/feedback-app/internal/repository"
	"github.com/dathagerty/feedback-app/pkg/logger"
)

// Handler serves the public feedback submission pages.
type Handler struct {
	repo *repository.Repository
}

func NewHandler(repo *repository.Repository) *Handler {
	return &Handler{repo: repo}
}

// Form renders the submission form for a prompt. A missing prompt renders
// the not-found view with a 200 status.
func (h *Handler) Form(c *gin.Context) {
	id := c.Param("id")

	prompt, err := h.repo.GetPrompt(id)
	if err != nil {
		logger.Log.Error("loading prompt", zap.String("id", id), zap.Error(err))
	}
	if prompt == nil {
		c.HTML(http.StatusOK, "not_found.html", nil)
		return
	}

	c.HTML(http.StatusOK, "feedback_form.html", gin.H{
		"Prompt": prompt,
	})
}

// Submit stores a feedback response. The prompt must still exist at
// submission time; no row is created against a missing prompt. A storage
// failure on the write renders an inline failure view instead of an error
// status.
func (h *Handler) Submit(c *gin.Context) {
	id := c.Param("id")

	prompt, err := h.repo.GetPrompt(id)
	if err != nil {
		logger.Log.Error("loading prompt", zap.String("id", id), zap.Error(err))
	}
	if prompt == nil {
		c.HTML(http.StatusOK, "not_found.html", nil)
		return
	}

	var req SubmitFeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "feedback_error.html", nil)
		return
	}

	if _, err := h.repo.CreateFeedback(id, req.Content); err != nil {
		logger.Log.Error("creating feedback", zap.String("prompt_id", id), zap.Error(err))
		c.HTML(http.StatusOK, "feedback_error.html", nil)
		return
	}

	c.HTML(http.StatusOK, "feedback_success.html", nil)
}
