package models

// Feedback is a free-text response submitted against exactly one Prompt.
// PromptID must reference a Prompt that existed when the row was created;
// it is not revalidated afterwards.
type Feedback struct {
	ID        string `gorm:"primaryKey" json:"id"`
	PromptID  string `gorm:"index;not null" json:"prompt_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	CreatedAt string `gorm:"not null" json:"created_at"`
}

// TableName pins the singular table name from the schema.
func (Feedback) TableName() string {
	return "feedback"
}
