package usecase

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	coursedomain "coursemail-backend/internal/course/domain"
	"coursemail-backend/internal/course/repository"
	"coursemail-backend/pkg/config"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrInvalidEmail   = errors.New("invalid email address")
)

var validate = validator.New()

// courseUsecase implements CourseUsecase interface
type courseUsecase struct {
	courseRepo repository.CourseRepository
	config     *config.Config
}

// NewCourseUsecase creates a new instance of courseUsecase
func NewCourseUsecase(courseRepo repository.CourseRepository, cfg *config.Config) CourseUsecase {
	return &courseUsecase{
		courseRepo: courseRepo,
		config:     cfg,
	}
}

func (u *courseUsecase) GetCourse(courseID string) (*coursedomain.Course, error) {
	course, err := u.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

func (u *courseUsecase) GetCourseUserData(courseID string) (*coursedomain.CourseUserData, error) {
	roles, err := u.courseRepo.FindRolesForCourse(courseID)
	if err != nil {
		return nil, err
	}
	groups, err := u.courseRepo.FindGroupsForCourse(courseID)
	if err != nil {
		return nil, err
	}
	users, err := u.courseRepo.FindUsersForCourse(courseID)
	if err != nil {
		return nil, err
	}

	return &coursedomain.CourseUserData{
		Roles:  roles,
		Groups: groups,
		Users:  users,
	}, nil
}

func (u *courseUsecase) GetAlternateEmails(courseID, userID string) ([]*coursedomain.AlternateEmail, error) {
	return u.courseRepo.FindAlternateEmails(courseID, userID)
}

func (u *courseUsecase) AddAlternateEmail(courseID, userID, email, label string) (*coursedomain.AlternateEmail, error) {
	email = strings.TrimSpace(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}

	alt := &coursedomain.AlternateEmail{
		CourseID: courseID,
		UserID:   userID,
		Email:    email,
		Label:    strings.TrimSpace(label),
	}
	if err := u.courseRepo.CreateAlternateEmail(alt); err != nil {
		return nil, err
	}
	return alt, nil
}

// ResolveMessagingConfig starts from the block-level defaults and applies any
// per-course overrides field by field
func (u *courseUsecase) ResolveMessagingConfig(courseID string) (*coursedomain.MessagingConfig, error) {
	defaults := u.config.Messaging
	resolved := &coursedomain.MessagingConfig{
		DefaultMessageType:        defaults.DefaultMessageType,
		MessageTypesAvailable:     defaults.MessageTypesAvailable,
		AllowAdditionalEmailInput: defaults.AllowAdditionalEmailInput,
		AllowMentorCopy:           defaults.AllowMentorCopy,
		DefaultReceiptPreference:  defaults.DefaultReceiptPreference,
	}

	settings, err := u.courseRepo.FindSettings(courseID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return resolved, nil
	}

	if settings.DefaultMessageType != nil {
		resolved.DefaultMessageType = *settings.DefaultMessageType
	}
	if settings.MessageTypesAvailable != nil {
		resolved.MessageTypesAvailable = *settings.MessageTypesAvailable
	}
	if settings.AllowAdditionalEmailInput != nil {
		resolved.AllowAdditionalEmailInput = *settings.AllowAdditionalEmailInput
	}
	if settings.AllowMentorCopy != nil {
		resolved.AllowMentorCopy = *settings.AllowMentorCopy
	}
	if settings.DefaultReceiptPreference != nil {
		resolved.DefaultReceiptPreference = *settings.DefaultReceiptPreference
	}

	return resolved, nil
}

func (u *courseUsecase) UpdateSettings(courseID string, updates SettingsUpdateRequest) (*coursedomain.MessagingConfig, error) {
	course, err := u.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	settings, err := u.courseRepo.FindSettings(courseID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &coursedomain.CourseSettings{CourseID: courseID}
	}

	if updates.DefaultMessageType != nil {
		if *updates.DefaultMessageType != coursedomain.MessageTypeMessage && *updates.DefaultMessageType != coursedomain.MessageTypeEmail {
			return nil, errors.New("invalid message type")
		}
		settings.DefaultMessageType = updates.DefaultMessageType
	}
	if updates.MessageTypesAvailable != nil {
		switch *updates.MessageTypesAvailable {
		case coursedomain.MessageTypesAll, coursedomain.MessageTypeMessage, coursedomain.MessageTypeEmail:
		default:
			return nil, errors.New("invalid message type availability")
		}
		settings.MessageTypesAvailable = updates.MessageTypesAvailable
	}
	if updates.AllowAdditionalEmailInput != nil {
		settings.AllowAdditionalEmailInput = updates.AllowAdditionalEmailInput
	}
	if updates.AllowMentorCopy != nil {
		settings.AllowMentorCopy = updates.AllowMentorCopy
	}
	if updates.DefaultReceiptPreference != nil {
		settings.DefaultReceiptPreference = updates.DefaultReceiptPreference
	}

	if err := u.courseRepo.SaveSettings(settings); err != nil {
		return nil, err
	}

	return u.ResolveMessagingConfig(courseID)
}

func (u *courseUsecase) HasCapability(userID, courseID, capability string) (bool, error) {
	roleName, err := u.courseRepo.FindEnrollmentRole(courseID, userID)
	if err != nil {
		return false, err
	}
	if roleName == "" {
		return false, nil
	}
	return coursedomain.RoleHasCapability(roleName, capability), nil
}

func (u *courseUsecase) CanSendUnrestricted(userID, courseID string) (bool, error) {
	roleName, err := u.courseRepo.FindEnrollmentRole(courseID, userID)
	if err != nil {
		return false, err
	}
	if roleName == "" {
		return false, nil
	}
	return !coursedomain.IsRestrictedRole(roleName), nil
}
