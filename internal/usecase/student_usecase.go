package usecase

import (
	"context"
	"time"

	"classteacher/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStudentInput defines the data required to enroll a student.
type CreateStudentInput struct {
	FirstName       string
	LastName        string
	DateOfBirth     time.Time
	AdmissionNumber string
	Gender          string
	ClassID         uuid.UUID
}

// UpdateStudentInput defines a partial update of a student. Nil fields are
// left untouched.
type UpdateStudentInput struct {
	FirstName       *string
	LastName        *string
	DateOfBirth     *time.Time
	AdmissionNumber *string
	Gender          *string
	ClassID         *uuid.UUID
}

// StudentUsecase defines the interface for student-related business operations.
type StudentUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateStudentInput) (*entity.Student, error)
	List(ctx context.Context, scope ListScope) ([]*entity.Student, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateStudentInput) (*entity.Student, error)

	// Delete soft deletes the student.
	Delete(ctx context.Context, id uuid.UUID) error

	// Purge physically removes the student.
	Purge(ctx context.Context, id uuid.UUID) error
}
