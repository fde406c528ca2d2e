// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the authenticatable identity of the system: every record in the
// school registry is ultimately owned by a User. Email and phone number are
// optional login identifiers; at least one must be present for self-service
// registration, and each is unique among the users that carry it.
type User struct {
	ID          uuid.UUID  `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name,omitempty"`
	OtherNames  string     `json:"other_names,omitempty"`
	Username    string     `json:"username"`
	Email       *string    `json:"email,omitempty"`        // nil when the user registered by phone only
	PhoneNumber *string    `json:"phone_number,omitempty"` // nil when the user registered by email only
	Gender      Gender     `json:"gender,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`

	// PasswordHash is the bcrypt hash of the user's password. It never
	// leaves the backend.
	PasswordHash string `json:"-"`

	IsStaff     bool `json:"is_staff"`
	IsSuperuser bool `json:"is_superuser"`
	IsActive    bool `json:"is_active"`
	IsDeleted   bool `json:"is_deleted"`

	DateJoined time.Time  `json:"date_joined"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// FullName joins the user's name parts, skipping the optional ones.
func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{u.FirstName, u.LastName, u.OtherNames} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " ")
}

// EmailValue returns the email or "" when absent.
func (u *User) EmailValue() string {
	if u.Email == nil {
		return ""
	}

	return *u.Email
}

// PhoneNumberValue returns the phone number or "" when absent.
func (u *User) PhoneNumberValue() string {
	if u.PhoneNumber == nil {
		return ""
	}

	return *u.PhoneNumber
}
