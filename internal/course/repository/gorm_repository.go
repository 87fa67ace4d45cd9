package repository

import (
	"errors"
	"time"

	coursedomain "coursemail-backend/internal/course/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCourseRepository implements CourseRepository using GORM
type gormCourseRepository struct {
	db *gorm.DB
}

// NewGormCourseRepository creates a new GORM-based CourseRepository
func NewGormCourseRepository(db *gorm.DB) CourseRepository {
	return &gormCourseRepository{db: db}
}

func (r *gormCourseRepository) FindByID(id string) (*coursedomain.Course, error) {
	var course coursedomain.Course
	err := r.db.Where("id = ?", id).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *gormCourseRepository) FindRolesForCourse(courseID string) ([]coursedomain.Entity, error) {
	var roles []coursedomain.Entity
	err := r.db.Table("enrollments").
		Select("DISTINCT roles.id AS id, roles.name AS name").
		Joins("JOIN roles ON roles.id = enrollments.role_id").
		Where("enrollments.course_id = ?", courseID).
		Order("name ASC").
		Scan(&roles).Error
	return roles, err
}

func (r *gormCourseRepository) FindGroupsForCourse(courseID string) ([]coursedomain.Entity, error) {
	var groups []coursedomain.Entity
	err := r.db.Model(&coursedomain.Group{}).
		Select("id, name").
		Where("course_id = ?", courseID).
		Order("name ASC").
		Scan(&groups).Error
	return groups, err
}

func (r *gormCourseRepository) FindUsersForCourse(courseID string) ([]coursedomain.Entity, error) {
	var users []coursedomain.Entity
	err := r.db.Table("enrollments").
		Select("users.id AS id, users.name AS name").
		Joins("JOIN users ON users.id = enrollments.user_id").
		Where("enrollments.course_id = ?", courseID).
		Order("users.name ASC").
		Scan(&users).Error
	return users, err
}

func (r *gormCourseRepository) FindEnrollmentRole(courseID, userID string) (string, error) {
	var result struct {
		Name string
	}
	err := r.db.Table("enrollments").
		Select("roles.name AS name").
		Joins("JOIN roles ON roles.id = enrollments.role_id").
		Where("enrollments.course_id = ? AND enrollments.user_id = ?", courseID, userID).
		Limit(1).
		Scan(&result).Error
	if err != nil {
		return "", err
	}
	return result.Name, nil
}

func (r *gormCourseRepository) FindAlternateEmails(courseID, userID string) ([]*coursedomain.AlternateEmail, error) {
	var emails []*coursedomain.AlternateEmail
	err := r.db.Where("course_id = ? AND user_id = ?", courseID, userID).
		Order("created_at ASC").
		Find(&emails).Error
	return emails, err
}

func (r *gormCourseRepository) CreateAlternateEmail(email *coursedomain.AlternateEmail) error {
	if email.ID == "" {
		email.ID = uuid.New().String()
	}
	email.CreatedAt = time.Now()
	return r.db.Create(email).Error
}

func (r *gormCourseRepository) FindSettings(courseID string) (*coursedomain.CourseSettings, error) {
	var settings coursedomain.CourseSettings
	err := r.db.Where("course_id = ?", courseID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *gormCourseRepository) SaveSettings(settings *coursedomain.CourseSettings) error {
	if settings.ID == "" {
		settings.ID = uuid.New().String()
		settings.CreatedAt = time.Now()
	}
	settings.UpdatedAt = time.Now()
	return r.db.Save(settings).Error
}
