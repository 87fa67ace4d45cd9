package usecase

import (
	coursedomain "coursemail-backend/internal/course/domain"
)

// CourseUsecase defines the interface for course directory, configuration,
// and authorization logic
type CourseUsecase interface {
	// GetCourse retrieves a course by ID
	GetCourse(courseID string) (*coursedomain.Course, error)

	// GetCourseUserData returns the role/group/user directory data for a course
	GetCourseUserData(courseID string) (*coursedomain.CourseUserData, error)

	// GetAlternateEmails returns a course user's approved alternate sender addresses
	GetAlternateEmails(courseID, userID string) ([]*coursedomain.AlternateEmail, error)

	// AddAlternateEmail stores a new alternate sender address for a course user
	AddAlternateEmail(courseID, userID, email, label string) (*coursedomain.AlternateEmail, error)

	// ResolveMessagingConfig merges a course's settings over the block-level defaults
	ResolveMessagingConfig(courseID string) (*coursedomain.MessagingConfig, error)

	// UpdateSettings applies per-course overrides of the messaging defaults
	UpdateSettings(courseID string, updates SettingsUpdateRequest) (*coursedomain.MessagingConfig, error)

	// HasCapability reports whether the user's role in the course carries a capability
	HasCapability(userID, courseID, capability string) (bool, error)

	// CanSendUnrestricted reports whether the user may send without the
	// restricted student limitations
	CanSendUnrestricted(userID, courseID string) (bool, error)
}

// SettingsUpdateRequest represents the overridable settings fields
type SettingsUpdateRequest struct {
	DefaultMessageType        *string `json:"default_message_type,omitempty"`
	MessageTypesAvailable     *string `json:"message_types_available,omitempty"`
	AllowAdditionalEmailInput *bool   `json:"allow_additional_email_input,omitempty"`
	AllowMentorCopy           *bool   `json:"allow_mentor_copy,omitempty"`
	DefaultReceiptPreference  *bool   `json:"default_receipt_preference,omitempty"`
}
