package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "classteacher/internal/delivery/context"
	"classteacher/internal/domain/entity"
	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/domain/repository"
	"classteacher/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const classNameMaxLength = 25

// classService implements the ClassUsecase interface.
type classService struct {
	classRepo   repository.ClassRepository
	studentRepo repository.StudentRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ClassServiceParams holds dependencies for classService, injected by Fx.
type ClassServiceParams struct {
	fx.In

	ClassRepo   repository.ClassRepository
	StudentRepo repository.StudentRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewClassService is the constructor for classService.
func NewClassService(params ClassServiceParams) usecase.ClassUsecase {
	return &classService{
		classRepo:   params.ClassRepo,
		studentRepo: params.StudentRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *classService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create creates a class owned by the acting user.
func (srv *classService) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateClassInput) (*entity.Class, error) {
	ve := domainerrors.NewValidationError()

	name := strings.TrimSpace(input.Name)
	switch {
	case name == "":
		ve.Add("name", msgFieldRequired)
	case len(name) > classNameMaxLength:
		ve.Add("name", "Class name must be at most 25 characters")
	default:
		if _, err := srv.classRepo.FindByName(ctx, name); err == nil {
			ve.Add("name", "A class with this name already exists")
		}
	}

	if input.ClassTeacherID != nil {
		if err := srv.checkClassTeacher(ctx, *input.ClassTeacherID, ve); err != nil {
			return nil, err
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	class := &entity.Class{
		Audit: entity.Audit{
			CreatedByID: actorID,
			IsActive:    true,
		},
		Name:           name,
		Description:    strings.TrimSpace(input.Description),
		ClassTeacherID: input.ClassTeacherID,
	}

	if err := srv.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Class created", slog.Any("classID", class.ID), slog.String("name", class.Name))

	return class, nil
}

// checkClassTeacher verifies the referenced class teacher exists in the
// active scope.
func (srv *classService) checkClassTeacher(ctx context.Context, teacherID uuid.UUID, ve *domainerrors.ValidationError) error {
	if _, err := srv.userRepo.FindByID(ctx, teacherID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ve.Add("class_teacher", "The referenced class teacher does not exist")

			return nil
		}

		return errors.Wrap(err, "failed to check class teacher")
	}

	return nil
}

// List lists classes in the given soft-deletion scope.
func (srv *classService) List(ctx context.Context, scope usecase.ListScope) ([]*entity.Class, error) {
	switch scope {
	case usecase.ScopeAll:
		return srv.classRepo.FindAll(ctx)
	case usecase.ScopeDeleted:
		return srv.classRepo.FindDeleted(ctx)
	default:
		return srv.classRepo.FindActive(ctx)
	}
}

// Get returns a single class in the active scope.
func (srv *classService) Get(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	class, err := srv.classRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find class")
	}

	return class, nil
}

// Update applies a partial update to a class.
func (srv *classService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateClassInput) (*entity.Class, error) {
	class, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := domainerrors.NewValidationError()

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		switch {
		case name == "":
			ve.Add("name", msgFieldRequired)
		case len(name) > classNameMaxLength:
			ve.Add("name", "Class name must be at most 25 characters")
		default:
			if existing, err := srv.classRepo.FindByName(ctx, name); err == nil && existing.ID != class.ID {
				ve.Add("name", "A class with this name already exists")
			}
			class.Name = name
		}
	}
	if input.Description != nil {
		class.Description = strings.TrimSpace(*input.Description)
	}
	switch {
	case input.ClearClassTeacher:
		class.ClassTeacherID = nil
		class.ClassTeacher = nil
	case input.ClassTeacherID != nil:
		if err := srv.checkClassTeacher(ctx, *input.ClassTeacherID, ve); err != nil {
			return nil, err
		}
		class.ClassTeacherID = input.ClassTeacherID
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := srv.classRepo.Update(ctx, class); err != nil {
		return nil, err
	}

	return class, nil
}

// Students lists the active students enrolled in the class.
func (srv *classService) Students(ctx context.Context, id uuid.UUID) ([]*entity.Student, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	return srv.studentRepo.FindByClass(ctx, id)
}

// Delete soft deletes the class.
func (srv *classService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.classRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return domainerrors.ErrRecordNotFound
		}

		return err
	}

	srv.log(ctx).Info("Class soft deleted", slog.Any("classID", id))

	return nil
}

// Purge physically removes the class. Enrollment protection maps to a
// conflict the caller can act on.
func (srv *classService) Purge(ctx context.Context, id uuid.UUID) error {
	if err := srv.classRepo.HardDelete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrClassNotFound):
			return domainerrors.ErrRecordNotFound
		case errors.Is(err, repository.ErrClassHasStudents):
			return domainerrors.ErrRecordProtected
		}

		return err
	}

	srv.log(ctx).Info("Class purged", slog.Any("classID", id))

	return nil
}
