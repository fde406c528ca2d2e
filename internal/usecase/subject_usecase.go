package usecase

import (
	"context"

	"classteacher/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSubjectInput defines the data required to create a subject.
type CreateSubjectInput struct {
	Name string
	Code string
}

// UpdateSubjectInput defines a partial update of a subject. Nil fields are
// left untouched.
type UpdateSubjectInput struct {
	Name *string
	Code *string
}

// SubjectUsecase defines the interface for subject-related business operations.
type SubjectUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateSubjectInput) (*entity.Subject, error)
	List(ctx context.Context, scope ListScope) ([]*entity.Subject, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Subject, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSubjectInput) (*entity.Subject, error)

	// Delete soft deletes the subject.
	Delete(ctx context.Context, id uuid.UUID) error

	// Purge physically removes the subject.
	Purge(ctx context.Context, id uuid.UUID) error
}
