// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"classteacher/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for class persistence.
var (
	// ErrClassNotFound is returned when a class lookup matches nothing.
	ErrClassNotFound = errors.New("class not found")
	// ErrClassHasStudents is returned when hard deleting a class that still
	// has students enrolled.
	ErrClassHasStudents = errors.New("class still has students")
)

// ClassRepository defines the standard operations for class persistence.
type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	FindByName(ctx context.Context, name string) (*entity.Class, error)

	// FindActive lists classes that have not been soft deleted.
	FindActive(ctx context.Context) ([]*entity.Class, error)

	// FindAll lists every class including soft-deleted ones.
	FindAll(ctx context.Context) ([]*entity.Class, error)

	// FindDeleted lists only soft-deleted classes.
	FindDeleted(ctx context.Context) ([]*entity.Class, error)

	Update(ctx context.Context, class *entity.Class) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}
