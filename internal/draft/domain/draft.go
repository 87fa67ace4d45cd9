package domain

import (
	"time"
)

// DraftStatus represents where a draft is in its lifecycle
type DraftStatus string

const (
	// DraftStatusDraft is a saved, editable draft
	DraftStatusDraft DraftStatus = "draft"
	// DraftStatusQueued is a submitted message waiting for dispatch
	DraftStatusQueued DraftStatus = "queued"
	// DraftStatusDispatched has been handed to the dispatcher
	DraftStatusDispatched DraftStatus = "dispatched"
)

// MessageDraft is a saved, not-yet-sent message. Its stored field values
// seed a resumed compose session.
type MessageDraft struct {
	ID                    string      `json:"id" gorm:"primaryKey"`
	CourseID              string      `json:"course_id" gorm:"index;not null"`
	UserID                string      `json:"user_id" gorm:"index;not null"`
	AlternateEmailID      string      `json:"alternate_email_id" gorm:"default:'0'"`
	Subject               string      `json:"subject"`
	Body                  string      `json:"body" gorm:"type:text"`
	AdditionalEmails      StringArray `json:"additional_emails" gorm:"type:text"`
	SignatureID           string      `json:"signature_id" gorm:"default:'0'"`
	MessageType           string      `json:"message_type"`
	ScheduledSendAt       *time.Time  `json:"scheduled_send_at,omitempty"`
	SendReceipt           bool        `json:"send_receipt" gorm:"default:false"`
	SendToMentors         bool        `json:"send_to_mentors" gorm:"default:false"`
	IncludedRecipientKeys StringArray `json:"included_recipient_keys" gorm:"type:text"`
	ExcludedRecipientKeys StringArray `json:"excluded_recipient_keys" gorm:"type:text"`
	Status                DraftStatus `json:"status" gorm:"default:draft;index"`
	QueuedAt              *time.Time  `json:"queued_at,omitempty"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// ToSendInFuture reports whether the draft carries a scheduled send time
// strictly after now
func (d *MessageDraft) ToSendInFuture(now time.Time) bool {
	return d.ScheduledSendAt != nil && d.ScheduledSendAt.After(now)
}
