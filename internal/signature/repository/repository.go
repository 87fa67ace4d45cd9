package repository

import sigdomain "coursemail-backend/internal/signature/domain"

// SignatureRepository defines the interface for signature data access.
// Create, Update and SoftDelete run the default-flag reconciliation inside
// the same transaction as the triggering write, so the single-default
// invariant holds after every call.
type SignatureRepository interface {
	// Create inserts a new signature and reconciles the owner's default flag
	Create(sig *sigdomain.Signature) error

	// Update saves a signature and reconciles the owner's default flag
	Update(sig *sigdomain.Signature) error

	// SoftDelete marks a signature deleted and promotes a replacement
	// default if the deleted record held the flag
	SoftDelete(sig *sigdomain.Signature) error

	// FindByID finds a non-deleted signature by ID
	FindByID(id string) (*sigdomain.Signature, error)

	// FindByUserID returns a user's non-deleted signatures in creation order
	FindByUserID(userID string) ([]*sigdomain.Signature, error)

	// CountActiveByTitle counts a user's non-deleted signatures with the
	// given title, excluding one record (pass "" to exclude none)
	CountActiveByTitle(userID, title, excludeID string) (int64, error)
}
