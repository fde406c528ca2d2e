// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"classteacher/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user lookup matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserOwnsRecords is returned when hard deleting a user that still
	// owns records protected by the ownership constraint.
	ErrUserOwnsRecords = errors.New("user still owns records")
)

// UserRepository defines the standard operations for user persistence.
// Lookups run in the active scope: soft-deleted users never match. FindAll
// is the only path that surfaces soft-deleted rows.
type UserRepository interface {
	// Create persists a new user. Username, email and phone number
	// uniqueness is ultimately enforced by the storage layer; a violation
	// surfaces as a field-level validation error.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhoneNumber retrieves a single user by phone number.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)

	// FindByUsername retrieves a single user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindActive lists users that have not been soft deleted.
	FindActive(ctx context.Context) ([]*entity.User, error)

	// FindAll lists every user including soft-deleted ones.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindDeleted lists only soft-deleted users.
	FindDeleted(ctx context.Context) ([]*entity.User, error)

	// Update persists modifications to an existing user.
	Update(ctx context.Context, user *entity.User) error

	// SoftDelete marks the user deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// HardDelete physically removes the user. Fails with ErrUserOwnsRecords
	// while any owned record still references the user.
	HardDelete(ctx context.Context, id uuid.UUID) error
}
