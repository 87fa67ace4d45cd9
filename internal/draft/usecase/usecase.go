package usecase

import (
	"time"

	draftdomain "coursemail-backend/internal/draft/domain"
)

// DraftUsecase defines the interface for message draft business logic
type DraftUsecase interface {
	// SaveDraft creates a draft, or updates it when req.DraftID names an
	// existing draft owned by the user
	SaveDraft(userID, courseID string, req DraftSaveRequest) (*draftdomain.MessageDraft, error)

	// GetUserDraft returns the draft if it exists, belongs to the user, and
	// is still editable, or (nil, nil) otherwise
	GetUserDraft(userID, draftID string) (*draftdomain.MessageDraft, error)

	// GetCourseDrafts returns the user's editable drafts for a course
	GetCourseDrafts(userID, courseID string) ([]*draftdomain.MessageDraft, error)

	// DeleteDraft removes an owned draft
	DeleteDraft(userID, draftID string) error

	// QueueDraft finalizes a draft's body and queues it for dispatch
	QueueDraft(userID, draftID, finalBody string) (*draftdomain.MessageDraft, error)
}

// DraftSaveRequest carries the compose-form values to persist
type DraftSaveRequest struct {
	DraftID               string     `json:"draft_id"`
	AlternateEmailID      string     `json:"alternate_email_id"`
	Subject               string     `json:"subject"`
	Body                  string     `json:"body"`
	AdditionalEmails      []string   `json:"additional_emails"`
	SignatureID           string     `json:"signature_id"`
	MessageType           string     `json:"message_type"`
	ScheduledSendAt       *time.Time `json:"scheduled_send_at"`
	SendReceipt           bool       `json:"send_receipt"`
	SendToMentors         bool       `json:"send_to_mentors"`
	IncludedRecipientKeys []string   `json:"included_recipient_keys"`
	ExcludedRecipientKeys []string   `json:"excluded_recipient_keys"`
}
