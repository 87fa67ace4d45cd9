package domain

import "time"

// Message types a compose session may produce
const (
	MessageTypeMessage = "message"
	MessageTypeEmail   = "email"

	// MessageTypesAll lets the sender pick the type per message
	MessageTypesAll = "all"
)

// CourseSettings stores per-course overrides of the block-level messaging
// defaults. Nil fields fall through to the defaults.
type CourseSettings struct {
	ID                        string    `json:"id" gorm:"primaryKey"`
	CourseID                  string    `json:"course_id" gorm:"uniqueIndex;not null"`
	DefaultMessageType        *string   `json:"default_message_type,omitempty"`
	MessageTypesAvailable     *string   `json:"message_types_available,omitempty"`
	AllowAdditionalEmailInput *bool     `json:"allow_additional_email_input,omitempty"`
	AllowMentorCopy           *bool     `json:"allow_mentor_copy,omitempty"`
	DefaultReceiptPreference  *bool     `json:"default_receipt_preference,omitempty"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// MessagingConfig is the fully-resolved messaging configuration for a course
type MessagingConfig struct {
	DefaultMessageType        string `json:"default_message_type"`
	MessageTypesAvailable     string `json:"message_types_available"`
	AllowAdditionalEmailInput bool   `json:"allow_additional_email_input"`
	AllowMentorCopy           bool   `json:"allow_mentor_copy"`
	DefaultReceiptPreference  bool   `json:"default_receipt_preference"`
}
