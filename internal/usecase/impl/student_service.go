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

// studentService implements the StudentUsecase interface.
type studentService struct {
	studentRepo repository.StudentRepository
	classRepo   repository.ClassRepository
	logger      *slog.Logger
}

// StudentServiceParams holds dependencies for studentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	StudentRepo repository.StudentRepository
	ClassRepo   repository.ClassRepository
	Logger      *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		studentRepo: params.StudentRepo,
		classRepo:   params.ClassRepo,
		logger:      params.Logger,
	}
}

func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create enrolls a student owned by the acting user. The target class must
// exist in the active scope.
func (srv *studentService) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateStudentInput) (*entity.Student, error) {
	ve := domainerrors.NewValidationError()

	if strings.TrimSpace(input.FirstName) == "" {
		ve.Add("first_name", msgFieldRequired)
	}
	if strings.TrimSpace(input.LastName) == "" {
		ve.Add("last_name", msgFieldRequired)
	}
	if input.DateOfBirth.IsZero() {
		ve.Add("date_of_birth", msgFieldRequired)
	}
	if input.Gender != "" && !entity.Gender(input.Gender).IsValid() {
		ve.Add("gender", msgInvalidGender)
	}

	if input.ClassID == uuid.Nil {
		ve.Add("student_class", msgFieldRequired)
	} else if err := srv.checkClass(ctx, input.ClassID, ve); err != nil {
		return nil, err
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	student := &entity.Student{
		Audit: entity.Audit{
			CreatedByID: actorID,
			IsActive:    true,
		},
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		DateOfBirth:     input.DateOfBirth,
		AdmissionNumber: strings.TrimSpace(input.AdmissionNumber),
		Gender:          entity.Gender(input.Gender),
		ClassID:         input.ClassID,
	}

	if err := srv.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Student enrolled", slog.Any("studentID", student.ID), slog.Any("classID", student.ClassID))

	return student, nil
}

func (srv *studentService) checkClass(ctx context.Context, classID uuid.UUID, ve *domainerrors.ValidationError) error {
	if _, err := srv.classRepo.FindByID(ctx, classID); err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			ve.Add("student_class", "The referenced class does not exist")

			return nil
		}

		return errors.Wrap(err, "failed to check class")
	}

	return nil
}

// List lists students in the given soft-deletion scope.
func (srv *studentService) List(ctx context.Context, scope usecase.ListScope) ([]*entity.Student, error) {
	switch scope {
	case usecase.ScopeAll:
		return srv.studentRepo.FindAll(ctx)
	case usecase.ScopeDeleted:
		return srv.studentRepo.FindDeleted(ctx)
	default:
		return srv.studentRepo.FindActive(ctx)
	}
}

// Get returns a single student in the active scope.
func (srv *studentService) Get(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	student, err := srv.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find student")
	}

	return student, nil
}

// Update applies a partial update to a student.
func (srv *studentService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateStudentInput) (*entity.Student, error) {
	student, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := domainerrors.NewValidationError()

	if input.FirstName != nil {
		if strings.TrimSpace(*input.FirstName) == "" {
			ve.Add("first_name", msgFieldRequired)
		} else {
			student.FirstName = strings.TrimSpace(*input.FirstName)
		}
	}
	if input.LastName != nil {
		if strings.TrimSpace(*input.LastName) == "" {
			ve.Add("last_name", msgFieldRequired)
		} else {
			student.LastName = strings.TrimSpace(*input.LastName)
		}
	}
	if input.DateOfBirth != nil {
		student.DateOfBirth = *input.DateOfBirth
	}
	if input.AdmissionNumber != nil {
		student.AdmissionNumber = strings.TrimSpace(*input.AdmissionNumber)
	}
	if input.Gender != nil {
		gender := entity.Gender(*input.Gender)
		if *input.Gender != "" && !gender.IsValid() {
			ve.Add("gender", msgInvalidGender)
		} else {
			student.Gender = gender
		}
	}
	if input.ClassID != nil {
		if err := srv.checkClass(ctx, *input.ClassID, ve); err != nil {
			return nil, err
		}
		student.ClassID = *input.ClassID
		student.Class = nil
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := srv.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Delete soft deletes the student.
func (srv *studentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.studentRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domainerrors.ErrRecordNotFound
		}

		return err
	}

	srv.log(ctx).Info("Student soft deleted", slog.Any("studentID", id))

	return nil
}

// Purge physically removes the student.
func (srv *studentService) Purge(ctx context.Context, id uuid.UUID) error {
	if err := srv.studentRepo.HardDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return domainerrors.ErrRecordNotFound
		}

		return err
	}

	srv.log(ctx).Info("Student purged", slog.Any("studentID", id))

	return nil
}
