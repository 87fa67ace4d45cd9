package usecase

import (
	"time"

	composedomain "coursemail-backend/internal/compose/domain"
	coursedomain "coursemail-backend/internal/course/domain"
	draftdomain "coursemail-backend/internal/draft/domain"
	sigdomain "coursemail-backend/internal/signature/domain"
	"coursemail-backend/pkg/config"
)

// ComposeUsecase defines the interface for compose session business logic
type ComposeUsecase interface {
	// BuildComposeSession assembles the compose form description for a user
	// in a course, optionally resuming one of their drafts
	BuildComposeSession(userID, courseID, draftID string) (*composedomain.ComposeSessionView, error)

	// SubmitComposeSession validates and persists a submission. On
	// user-correctable failures it returns a field -> message-ID map and no
	// error; the submission is not persisted.
	SubmitComposeSession(userID, courseID string, req SubmitRequest) (*draftdomain.MessageDraft, map[string]string, error)

	// SearchRecipients returns the course's recipient options matching a
	// fuzzy query, best matches first
	SearchRecipients(userID, courseID, query string) ([]composedomain.SelectOption, error)
}

// SubmitRequest carries one compose form submission. AdditionalEmails is the
// raw comma-separated input; it is tokenized during validation.
type SubmitRequest struct {
	DraftID               string     `json:"draft_id"`
	SaveOnly              bool       `json:"save_only"`
	AlternateEmailID      string     `json:"alternate_email_id"`
	Subject               string     `json:"subject"`
	Body                  string     `json:"body"`
	AdditionalEmails      string     `json:"additional_emails"`
	SignatureID           string     `json:"signature_id"`
	MessageType           string     `json:"message_type"`
	ScheduledSendAt       *time.Time `json:"scheduled_send_at"`
	SendReceipt           bool       `json:"send_receipt"`
	SendToMentors         bool       `json:"send_to_mentors"`
	IncludedRecipientKeys []string   `json:"included_recipient_keys"`
	ExcludedRecipientKeys []string   `json:"excluded_recipient_keys"`
}

// BuildInput bundles everything the session builder needs. The builder
// itself performs no I/O.
type BuildInput struct {
	CourseID string
	Now      time.Time

	// Actor authorization and sender identity
	CanSelectAlternate  bool
	CanSendUnrestricted bool
	AlternateEmails     []*coursedomain.AlternateEmail
	NoReplyAddress      string

	// Course directory and configuration
	Directory *coursedomain.CourseUserData
	Config    *coursedomain.MessagingConfig

	// Actor's signatures
	SignatureOptions   []sigdomain.Option
	DefaultSignatureID string
	CreateSignatureURL string

	// Pass-through editor and attachment constraints
	Editor      config.EditorOptions
	Attachments config.AttachmentOptions

	// Draft being resumed, or nil for a fresh session
	Draft *draftdomain.MessageDraft
}
