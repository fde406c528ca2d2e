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

const subjectCodeMaxLength = 10

// subjectService implements the SubjectUsecase interface.
type subjectService struct {
	subjectRepo repository.SubjectRepository
	logger      *slog.Logger
}

// SubjectServiceParams holds dependencies for subjectService, injected by Fx.
type SubjectServiceParams struct {
	fx.In

	SubjectRepo repository.SubjectRepository
	Logger      *slog.Logger
}

// NewSubjectService is the constructor for subjectService.
func NewSubjectService(params SubjectServiceParams) usecase.SubjectUsecase {
	return &subjectService{
		subjectRepo: params.SubjectRepo,
		logger:      params.Logger,
	}
}

func (srv *subjectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create creates a subject owned by the acting user.
func (srv *subjectService) Create(ctx context.Context, actorID uuid.UUID, input usecase.CreateSubjectInput) (*entity.Subject, error) {
	ve := domainerrors.NewValidationError()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		ve.Add("name", msgFieldRequired)
	}
	code := strings.TrimSpace(input.Code)
	if len(code) > subjectCodeMaxLength {
		ve.Add("code", "Subject code must be at most 10 characters")
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	subject := &entity.Subject{
		Audit: entity.Audit{
			CreatedByID: actorID,
			IsActive:    true,
		},
		Name: name,
		Code: code,
	}

	if err := srv.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Subject created", slog.Any("subjectID", subject.ID), slog.String("name", subject.Name))

	return subject, nil
}

// List lists subjects in the given soft-deletion scope.
func (srv *subjectService) List(ctx context.Context, scope usecase.ListScope) ([]*entity.Subject, error) {
	switch scope {
	case usecase.ScopeAll:
		return srv.subjectRepo.FindAll(ctx)
	case usecase.ScopeDeleted:
		return srv.subjectRepo.FindDeleted(ctx)
	default:
		return srv.subjectRepo.FindActive(ctx)
	}
}

// Get returns a single subject in the active scope.
func (srv *subjectService) Get(ctx context.Context, id uuid.UUID) (*entity.Subject, error) {
	subject, err := srv.subjectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return nil, domainerrors.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find subject")
	}

	return subject, nil
}

// Update applies a partial update to a subject.
func (srv *subjectService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateSubjectInput) (*entity.Subject, error) {
	subject, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ve := domainerrors.NewValidationError()

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			ve.Add("name", msgFieldRequired)
		} else {
			subject.Name = strings.TrimSpace(*input.Name)
		}
	}
	if input.Code != nil {
		code := strings.TrimSpace(*input.Code)
		if len(code) > subjectCodeMaxLength {
			ve.Add("code", "Subject code must be at most 10 characters")
		} else {
			subject.Code = code
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := srv.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}

	return subject, nil
}

// Delete soft deletes the subject.
func (srv *subjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.subjectRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return domainerrors.ErrRecordNotFound
		}

		return err
	}

	srv.log(ctx).Info("Subject soft deleted", slog.Any("subjectID", id))

	return nil
}

// Purge physically removes the subject.
func (srv *subjectService) Purge(ctx context.Context, id uuid.UUID) error {
	if err := srv.subjectRepo.HardDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSubjectNotFound) {
			return domainerrors.ErrRecordNotFound
		}

		return err
	}

	srv.log(ctx).Info("Subject purged", slog.Any("subjectID", id))

	return nil
}
