package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dathagerty/feedback-app/internal/repository"
	"github.com/dathagerty/feedback-app/pkg/logger"
)

// Handler serves the operator-facing admin pages.
type Handler struct {
	repo *repository.Repository
}

func NewHandler(repo *repository.Repository) *Handler {
	return &Handler{repo: repo}
}

// List renders the prompt listing. A storage failure degrades to an empty
// listing; the error is logged but never surfaced to the caller.
func (h *Handler) List(c *gin.Context) {
	prompts, err := h.repo.ListPrompts()
	if err != nil {
		logger.Log.Error("listing prompts", zap.Error(err))
		prompts = nil
	}

	c.HTML(http.StatusOK, "admin_list.html", gin.H{
		"Prompts": prompts,
	})
}

// NewForm renders the new-prompt form. No data access.
func (h *Handler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_new.html", nil)
}

// Create persists a new prompt and redirects to its detail page. Any
// failure redirects silently back to the listing.
func (h *Handler) Create(c *gin.Context) {
	var req CreatePromptRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	prompt, err := h.repo.CreatePrompt(req.Title, req.Description)
	if err != nil {
		logger.Log.Error("creating prompt", zap.Error(err))
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/prompt/"+prompt.ID)
}

// Detail renders one prompt with its feedback and the shareable feedback
// link. A missing prompt renders the not-found view with a 200 status so
// the body stays human-readable; a feedback read failure degrades to an
// empty list.
func (h *Handler) Detail(c *gin.Context) {
	id := c.Param("id")

	prompt, err := h.repo.GetPrompt(id)
	if err != nil {
		logger.Log.Error("loading prompt", zap.String("id", id), zap.Error(err))
	}
	if prompt == nil {
		c.HTML(http.StatusOK, "not_found.html", nil)
		return
	}

	feedback, err := h.repo.ListFeedback(id)
	if err != nil {
		logger.Log.Error("listing feedback", zap.String("id", id), zap.Error(err))
		feedback = nil
	}

	c.HTML(http.StatusOK, "admin_detail.html", gin.H{
		"Prompt":      prompt,
		"Feedback":    feedback,
		"FeedbackURL": FeedbackURL(c.Request.Host, prompt.ID),
	})
}
