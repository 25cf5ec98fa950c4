package models

// Prompt is a named feedback request created by an operator.
//
// IDs are server-generated UUIDs and CreatedAt is stored as an
// ISO-8601-with-offset string; the string form is the sort key, so it is
// written with a fixed-width fractional second to keep lexicographic and
// chronological order identical.
type Prompt struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	CreatedAt   string `gorm:"not null" json:"created_at"`
}
