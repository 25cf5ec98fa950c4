package repository_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/dathagerty/feedback-app/internal/models"
	"github.com/dathagerty/feedback-app/internal/repository"
)

func setupTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}

	err = db.AutoMigrate(&models.Prompt{}, &models.Feedback{})
	if err != nil {
		panic("failed to migrate database")
	}

	return repository.New(db)
}

func TestCreatePrompt(t *testing.T) {
	repo := setupTestRepo(t)

	prompt, err := repo.CreatePrompt("Test Title", "Test Description")

	assert.NoError(t, err)
	assert.Equal(t, "Test Title", prompt.Title)
	assert.Equal(t, "Test Description", prompt.Description)
	assert.NotEmpty(t, prompt.ID)
	assert.NotEmpty(t, prompt.CreatedAt)

	_, err = time.Parse(time.RFC3339Nano, prompt.CreatedAt)
	assert.NoError(t, err)
}

func TestCreatePromptUniqueIDs(t *testing.T) {
	repo := setupTestRepo(t)

	first, err := repo.CreatePrompt("One", "")
	assert.NoError(t, err)
	second, err := repo.CreatePrompt("Two", "")
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetPrompt(t *testing.T) {
	repo := setupTestRepo(t)

	created, err := repo.CreatePrompt("Test", "Description")
	assert.NoError(t, err)

	found, err := repo.GetPrompt(created.ID)

	assert.NoError(t, err)
	assert.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Test", found.Title)
	assert.Equal(t, "Description", found.Description)
	assert.Equal(t, created.CreatedAt, found.CreatedAt)
}

func TestGetPromptNotFound(t *testing.T) {
	repo := setupTestRepo(t)

	found, err := repo.GetPrompt("nonexistent")

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestListPromptsEmpty(t *testing.T) {
	repo := setupTestRepo(t)

	prompts, err := repo.ListPrompts()

	assert.NoError(t, err)
	assert.Empty(t, prompts)
}

func TestListPromptsNewestFirst(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.CreatePrompt("First", "First desc")
	assert.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = repo.CreatePrompt("Second", "Second desc")
	assert.NoError(t, err)

	prompts, err := repo.ListPrompts()

	assert.NoError(t, err)
	assert.Len(t, prompts, 2)
	assert.Equal(t, "Second", prompts[0].Title)
	assert.Equal(t, "First", prompts[1].Title)
}

func TestCreateFeedback(t *testing.T) {
	repo := setupTestRepo(t)

	prompt, err := repo.CreatePrompt("Test", "Description")
	assert.NoError(t, err)

	feedback, err := repo.CreateFeedback(prompt.ID, "Great idea")

	assert.NoError(t, err)
	assert.NotEmpty(t, feedback.ID)
	assert.NotEmpty(t, feedback.CreatedAt)
	assert.Equal(t, prompt.ID, feedback.PromptID)
	assert.Equal(t, "Great idea", feedback.Content)
}

func TestListFeedbackNewestFirst(t *testing.T) {
	repo := setupTestRepo(t)

	prompt, err := repo.CreatePrompt("Test", "Description")
	assert.NoError(t, err)

	_, err = repo.CreateFeedback(prompt.ID, "First")
	assert.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = repo.CreateFeedback(prompt.ID, "Second")
	assert.NoError(t, err)

	feedback, err := repo.ListFeedback(prompt.ID)

	assert.NoError(t, err)
	assert.Len(t, feedback, 2)
	assert.Equal(t, "Second", feedback[0].Content)
	assert.Equal(t, "First", feedback[1].Content)
}

func TestListFeedbackIsolation(t *testing.T) {
	repo := setupTestRepo(t)

	promptA, err := repo.CreatePrompt("A", "")
	assert.NoError(t, err)
	promptB, err := repo.CreatePrompt("B", "")
	assert.NoError(t, err)

	_, err = repo.CreateFeedback(promptA.ID, "for A only")
	assert.NoError(t, err)

	feedbackB, err := repo.ListFeedback(promptB.ID)

	assert.NoError(t, err)
	assert.Empty(t, feedbackB)
}

func TestDeletePromptCascades(t *testing.T) {
	repo := setupTestRepo(t)

	prompt, err := repo.CreatePrompt("Doomed", "Description")
	assert.NoError(t, err)
	_, err = repo.CreateFeedback(prompt.ID, "Some feedback")
	assert.NoError(t, err)

	err = repo.DeletePrompt(prompt.ID)
	assert.NoError(t, err)

	found, err := repo.GetPrompt(prompt.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)

	feedback, err := repo.ListFeedback(prompt.ID)
	assert.NoError(t, err)
	assert.Empty(t, feedback)
}

func TestDeletePromptLeavesOthersAlone(t *testing.T) {
	repo := setupTestRepo(t)

	doomed, err := repo.CreatePrompt("Doomed", "")
	assert.NoError(t, err)
	survivor, err := repo.CreatePrompt("Survivor", "")
	assert.NoError(t, err)
	_, err = repo.CreateFeedback(survivor.ID, "keep me")
	assert.NoError(t, err)

	err = repo.DeletePrompt(doomed.ID)
	assert.NoError(t, err)

	found, err := repo.GetPrompt(survivor.ID)
	assert.NoError(t, err)
	assert.NotNil(t, found)

	feedback, err := repo.ListFeedback(survivor.ID)
	assert.NoError(t, err)
	assert.Len(t, feedback, 1)
	assert.Equal(t, "keep me", feedback[0].Content)
}
