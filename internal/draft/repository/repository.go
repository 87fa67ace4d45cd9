package repository

import (
	"time"

	draftdomain "coursemail-backend/internal/draft/domain"
)

// DraftRepository defines the interface for message draft data access
type DraftRepository interface {
	// Create creates a new draft
	Create(draft *draftdomain.MessageDraft) error

	// Update updates an existing draft
	Update(draft *draftdomain.MessageDraft) error

	// FindByID finds a draft by its ID
	FindByID(id string) (*draftdomain.MessageDraft, error)

	// FindByUser finds a user's drafts, optionally scoped to one course
	// (pass "" for all courses)
	FindByUser(userID, courseID string) ([]*draftdomain.MessageDraft, error)

	// Delete removes a draft
	Delete(id string) error

	// FindDueQueued finds queued drafts whose scheduled send time has
	// passed (or that have no schedule at all)
	FindDueQueued(now time.Time) ([]*draftdomain.MessageDraft, error)

	// MarkDispatched marks a queued draft as handed to the dispatcher
	MarkDispatched(id string) error
}
