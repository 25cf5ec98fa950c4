// Package repository owns all reads and writes against the feedback store:
// id generation, timestamping, newest-first ordering and the cascade-delete
// ordering for prompts.
package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dathagerty/feedback-app/internal/models"
)

// timestampLayout is RFC 3339 with a fixed nine-digit fractional second and
// numeric offset. The created_at column is a string and doubles as the sort
// key, so the fraction must not be trimmed: fixed width keeps lexicographic
// order equal to chronological order.
const timestampLayout = "2006-01-02T15:04:05.000000000-07:00"

// Repository wraps the shared database handle. All methods return storage
// failures to the caller; none are swallowed here.
type Repository struct {
	db *gorm.DB
}

// New returns a Repository over the given database handle.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func newTimestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}

// CreatePrompt persists a new prompt with a fresh id and timestamp and
// returns the fully populated entity.
func (r *Repository) CreatePrompt(title, description string) (*models.Prompt, error) {
	prompt := &models.Prompt{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		CreatedAt:   newTimestamp(),
	}

	if err := r.db.Create(prompt).Error; err != nil {
		return nil, err
	}

	return prompt, nil
}

// ListPrompts returns all prompts newest-first. An empty store yields an
// empty slice, not an error. Identical timestamps fall back to id order so
// the listing is deterministic.
func (r *Repository) ListPrompts() ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := r.db.Order("created_at desc, id desc").Find(&prompts).Error; err != nil {
		return nil, err
	}

	return prompts, nil
}

// GetPrompt returns the prompt with the given id, or nil if no such prompt
// exists. Absence is a normal outcome, distinct from a storage failure.
func (r *Repository) GetPrompt(id string) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := r.db.Where("id = ?", id).First(&prompt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &prompt, nil
}

// CreateFeedback persists a new feedback row against the given prompt. The
// caller is responsible for confirming the prompt exists first; no foreign
// key check happens here.
func (r *Repository) CreateFeedback(promptID, content string) (*models.Feedback, error) {
	feedback := &models.Feedback{
		ID:        uuid.New().String(),
		PromptID:  promptID,
		Content:   content,
		CreatedAt: newTimestamp(),
	}

	if err := r.db.Create(feedback).Error; err != nil {
		return nil, err
	}

	return feedback, nil
}

// ListFeedback returns all feedback for the given prompt, newest-first.
// Feedback for other prompts never appears.
func (r *Repository) ListFeedback(promptID string) ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := r.db.Where("prompt_id = ?", promptID).
		Order("created_at desc, id desc").
		Find(&feedback).Error; err != nil {
		return nil, err
	}

	return feedback, nil
}

// DeletePrompt removes a prompt and all of its feedback. Feedback rows go
// first so a failure between the two steps can never leave feedback behind
// pointing at a deleted prompt; the two deletes are sequential, not wrapped
// in a transaction.
func (r *Repository) DeletePrompt(id string) error {
	if err := r.db.Where("prompt_id = ?", id).Delete(&models.Feedback{}).Error; err != nil {
		return err
	}

	return r.db.Where("id = ?", id).Delete(&models.Prompt{}).Error
}
