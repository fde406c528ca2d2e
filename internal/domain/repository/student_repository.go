// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"classteacher/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStudentNotFound is returned when a student lookup matches nothing.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository defines the standard operations for student persistence.
type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)

	// FindActive lists students that have not been soft deleted.
	FindActive(ctx context.Context) ([]*entity.Student, error)

	// FindAll lists every student including soft-deleted ones.
	FindAll(ctx context.Context) ([]*entity.Student, error)

	// FindDeleted lists only soft-deleted students.
	FindDeleted(ctx context.Context) ([]*entity.Student, error)

	// FindByClass lists active students enrolled in a class.
	FindByClass(ctx context.Context, classID uuid.UUID) ([]*entity.Student, error)

	Update(ctx context.Context, student *entity.Student) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}
