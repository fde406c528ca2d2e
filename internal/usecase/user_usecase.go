// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"classteacher/internal/domain/entity"

	"github.com/google/uuid"
)

// ListScope selects which soft-deletion slice of a listing to return.
type ListScope string

const (
	// ScopeActive lists records that have not been soft deleted. The default.
	ScopeActive ListScope = "active"
	// ScopeAll lists every record including soft-deleted ones.
	ScopeAll ListScope = "all"
	// ScopeDeleted lists only soft-deleted records.
	ScopeDeleted ListScope = "deleted"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user. Email and
// PhoneNumber are optional but at least one must be present; empty strings
// are treated as absent.
type RegisterInput struct {
	FirstName       string
	LastName        string
	OtherNames      string
	Username        string
	Email           string
	PhoneNumber     string
	Gender          string
	DateOfBirth     *time.Time
	Password        string
	ConfirmPassword string
}

// LoginInput defines the data required for a user to log in. Identifier
// fields are pointers so that a field sent blank can be told apart from a
// field not sent at all: blank is a validation error, absent is fine.
type LoginInput struct {
	PhoneNumber *string
	Email       *string
	Username    *string
	Password    string
}

// CreateStaffInput defines the data for the administrative staff and
// superuser creation paths. The contact-field requirement of self-service
// registration does not apply here.
type CreateStaffInput struct {
	FirstName   string
	LastName    string
	Username    string
	Email       string
	PhoneNumber string
	Password    string
}

// UpdateMeInput defines a partial update of the current user's own record.
// Nil fields are left untouched.
type UpdateMeInput struct {
	FirstName   *string
	LastName    *string
	OtherNames  *string
	Email       *string
	PhoneNumber *string
	Gender      *string
	DateOfBirth *time.Time
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a self-service user account. All field violations are
	// aggregated into a single ValidationError.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login authenticates by phone number, email or username and returns a
	// bearer token. Failures never reveal whether the identifier exists.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// CurrentUser returns the authenticated user's own record.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateMe applies a partial update to the authenticated user's record.
	UpdateMe(ctx context.Context, userID uuid.UUID, input UpdateMeInput) (*entity.User, error)

	// CreateStaff creates a staff account.
	CreateStaff(ctx context.Context, input CreateStaffInput) (*RegisterOutput, error)

	// CreateSuperuser creates a superuser account. Superusers are staff.
	CreateSuperuser(ctx context.Context, input CreateStaffInput) (*RegisterOutput, error)

	// ListUsers lists users in the given soft-deletion scope.
	ListUsers(ctx context.Context, scope ListScope) ([]*entity.User, error)

	// GetUser returns a single user in the active scope.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// DeleteUser soft deletes a user.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// PurgeUser physically removes a user. Fails while the user still owns
	// records.
	PurgeUser(ctx context.Context, id uuid.UUID) error
}
