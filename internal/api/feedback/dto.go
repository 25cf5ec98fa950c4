package feedback

// SubmitFeedbackRequest carries the submission form field. Empty content is
// accepted.
type SubmitFeedbackRequest struct {
	Content string `form:"content"`
}
