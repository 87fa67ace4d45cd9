package domain

import "time"

type Course struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	ShortName string    `json:"short_name" gorm:"not null"`
	FullName  string    `json:"full_name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Role is a course-level role such as Teacher or Student
type Role struct {
	ID   string `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// Group is a named subset of a course's users
type Group struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CourseID  string    `json:"course_id" gorm:"index;not null"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Enrollment ties a user to a course under a role
type Enrollment struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CourseID  string    `json:"course_id" gorm:"index:idx_course_user;not null"`
	UserID    string    `json:"user_id" gorm:"index:idx_course_user;not null"`
	RoleID    string    `json:"role_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupMembership ties a user to a group
type GroupMembership struct {
	ID      string `json:"id" gorm:"primaryKey"`
	GroupID string `json:"group_id" gorm:"index;not null"`
	UserID  string `json:"user_id" gorm:"index;not null"`
}

// AlternateEmail is an approved alternate sender address for a course user
type AlternateEmail struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CourseID  string    `json:"course_id" gorm:"index;not null"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Email     string    `json:"email" gorm:"not null"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayAddress returns the address the compose form shows for this entry
func (a *AlternateEmail) DisplayAddress() string {
	if a.Label != "" {
		return a.Label + " <" + a.Email + ">"
	}
	return a.Email
}

// Entity is a directory item (role, group, or user) with a display name
type Entity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CourseUserData bundles the directory data the compose form draws
// recipient options from
type CourseUserData struct {
	Roles  []Entity `json:"roles"`
	Groups []Entity `json:"groups"`
	Users  []Entity `json:"users"`
}
