// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"classteacher/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubjectNotFound is returned when a subject lookup matches nothing.
var ErrSubjectNotFound = errors.New("subject not found")

// SubjectRepository defines the standard operations for subject persistence.
type SubjectRepository interface {
	Create(ctx context.Context, subject *entity.Subject) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subject, error)

	// FindActive lists subjects that have not been soft deleted.
	FindActive(ctx context.Context) ([]*entity.Subject, error)

	// FindAll lists every subject including soft-deleted ones.
	FindAll(ctx context.Context) ([]*entity.Subject, error)

	// FindDeleted lists only soft-deleted subjects.
	FindDeleted(ctx context.Context) ([]*entity.Subject, error)

	Update(ctx context.Context, subject *entity.Subject) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}
