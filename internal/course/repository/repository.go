package repository

import coursedomain "coursemail-backend/internal/course/domain"

// CourseRepository defines the interface for course directory data access
type CourseRepository interface {
	// FindByID finds a course by its ID
	FindByID(id string) (*coursedomain.Course, error)

	// FindRolesForCourse returns the distinct roles present among a course's enrollments
	FindRolesForCourse(courseID string) ([]coursedomain.Entity, error)

	// FindGroupsForCourse returns a course's groups
	FindGroupsForCourse(courseID string) ([]coursedomain.Entity, error)

	// FindUsersForCourse returns the enrolled users with their display names
	FindUsersForCourse(courseID string) ([]coursedomain.Entity, error)

	// FindEnrollmentRole returns the role name of a user's enrollment, or "" if not enrolled
	FindEnrollmentRole(courseID, userID string) (string, error)

	// FindAlternateEmails returns a course user's approved alternate sender addresses
	FindAlternateEmails(courseID, userID string) ([]*coursedomain.AlternateEmail, error)

	// CreateAlternateEmail stores a new alternate sender address
	CreateAlternateEmail(email *coursedomain.AlternateEmail) error

	// FindSettings returns a course's settings row, or nil if none exists
	FindSettings(courseID string) (*coursedomain.CourseSettings, error)

	// SaveSettings creates or updates a course's settings row
	SaveSettings(settings *coursedomain.CourseSettings) error
}
