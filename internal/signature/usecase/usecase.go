package usecase

import (
	"errors"

	sigdomain "coursemail-backend/internal/signature/domain"
)

// User-correctable validation failures. Handlers map these to per-field
// messages for redisplay.
var (
	ErrEmptyTitle     = errors.New("signature title is required")
	ErrEmptyBody      = errors.New("signature body is required")
	ErrDuplicateTitle = errors.New("signature title must be unique")
	ErrNotFound       = errors.New("signature not found")
)

// SignatureUsecase defines the interface for signature business logic
type SignatureUsecase interface {
	// CreateSignature creates a signature for the user. The user's first
	// signature always becomes the default regardless of the requested flag.
	CreateSignature(userID, title, body string, isDefault bool) (*sigdomain.Signature, error)

	// UpdateSignature updates an owned signature and keeps the owner's
	// default flag consistent
	UpdateSignature(userID, signatureID string, updates SignatureUpdateRequest) (*sigdomain.Signature, error)

	// DeleteSignature soft-deletes an owned signature, promoting a
	// replacement default when needed
	DeleteSignature(userID, signatureID string) error

	// GetUserSignature returns the signature if it exists and belongs to the
	// user, or (nil, nil) otherwise
	GetUserSignature(userID, signatureID string) (*sigdomain.Signature, error)

	// ListForUser returns the user's signatures as flat selection options
	ListForUser(userID string) ([]sigdomain.Option, error)

	// GetDefaultForUser returns the user's default signature, or nil
	GetDefaultForUser(userID string) (*sigdomain.Signature, error)
}

// SignatureUpdateRequest represents the fields that can be updated
type SignatureUpdateRequest struct {
	Title     *string `json:"title,omitempty"`
	Body      *string `json:"body,omitempty"`
	IsDefault *bool   `json:"is_default,omitempty"`
}
