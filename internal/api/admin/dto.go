package admin

// CreatePromptRequest carries the new-prompt form fields. Neither field is
// validated here; an empty title is accepted as submitted.
type CreatePromptRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}
