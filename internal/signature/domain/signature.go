package domain

import (
	"time"

	"gorm.io/gorm"
)

// Signature is a reusable sign-off block owned by one user. Among a user's
// non-deleted signatures exactly one is flagged default, unless the user has
// none at all.
type Signature struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"user_id" gorm:"index;not null"`
	Title     string         `json:"title" gorm:"not null"`
	Body      string         `json:"body" gorm:"type:text;not null"`
	IsDefault bool           `json:"is_default" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Option is a flat list item for signature selection
type Option struct {
	ID           string `json:"id"`
	DisplayTitle string `json:"display_title"`
}

// DisplayTitle returns the title, marking the default signature
func (s *Signature) DisplayTitle() string {
	if s.IsDefault {
		return s.Title + " (default)"
	}
	return s.Title
}

// AppendToMessageBody returns the message body with this signature appended
// after two line breaks. Stored records are not mutated.
func (s *Signature) AppendToMessageBody(messageBody string) string {
	return messageBody + "<br><br>" + s.Body
}
