package usecase

import (
	"context"

	"classteacher/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateClassInput defines the data required to create a class.
type CreateClassInput struct {
	Name           string
	Description    string
	ClassTeacherID *uuid.UUID
}

// UpdateClassInput defines a partial update of a class. Nil fields are left
// untouched; ClearClassTeacher removes the class teacher reference.
type UpdateClassInput struct {
	Name              *string
	Description       *string
	ClassTeacherID    *uuid.UUID
	ClearClassTeacher bool
}

// ClassUsecase defines the interface for class-related business operations.
// Create attributes ownership to the acting user.
type ClassUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateClassInput) (*entity.Class, error)
	List(ctx context.Context, scope ListScope) ([]*entity.Class, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateClassInput) (*entity.Class, error)

	// Students lists the active students enrolled in the class.
	Students(ctx context.Context, id uuid.UUID) ([]*entity.Student, error)

	// Delete soft deletes the class.
	Delete(ctx context.Context, id uuid.UUID) error

	// Purge physically removes the class. Fails while students reference it.
	Purge(ctx context.Context, id uuid.UUID) error
}
