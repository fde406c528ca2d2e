package postgres

import (
	"context"
	"time"

	"classteacher/internal/domain/entity"
	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/domain/repository"
	"classteacher/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subjectRepository implements the repository.SubjectRepository interface.
type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository is the constructor for subjectRepository.
func NewSubjectRepository(db *gorm.DB) repository.SubjectRepository {
	return &subjectRepository{
		db: db,
	}
}

// Create persists a new subject.
func (repo *subjectRepository) Create(ctx context.Context, subject *entity.Subject) error {
	subjectM := fromSubjectDomain(subject)

	if err := repo.db.WithContext(ctx).Create(subjectM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidationError().
				Add("name", "This field is required")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subject")
	}

	subject.ID = subjectM.ID
	subject.CreatedAt = subjectM.CreatedAt
	subject.UpdatedAt = subjectM.UpdatedAt

	return nil
}

// FindByID retrieves a subject by its unique ID, excluding soft-deleted rows.
func (repo *subjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subject, error) {
	var subjectM model.SubjectModel

	if err := repo.db.WithContext(ctx).
		Scopes(Alive).
		Where("id = ?", id).
		First(&subjectM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find subject")
	}

	return toSubjectDomain(&subjectM), nil
}

// FindActive lists subjects that have not been soft deleted.
func (repo *subjectRepository) FindActive(ctx context.Context) ([]*entity.Subject, error) {
	return repo.findMany(ctx, Alive)
}

// FindAll lists every subject including soft-deleted ones.
func (repo *subjectRepository) FindAll(ctx context.Context) ([]*entity.Subject, error) {
	return repo.findMany(ctx, nil)
}

// FindDeleted lists only soft-deleted subjects.
func (repo *subjectRepository) FindDeleted(ctx context.Context) ([]*entity.Subject, error) {
	return repo.findMany(ctx, Dead)
}

func (repo *subjectRepository) findMany(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*entity.Subject, error) {
	var subjectModels []*model.SubjectModel

	query := repo.db.WithContext(ctx)
	if scope != nil {
		query = query.Scopes(scope)
	}

	if err := query.Order("name ASC").Find(&subjectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subjects")
	}

	subjects := make([]*entity.Subject, 0, len(subjectModels))
	for _, subjectM := range subjectModels {
		subjects = append(subjects, toSubjectDomain(subjectM))
	}

	return subjects, nil
}

// Update persists modifications to an existing subject.
func (repo *subjectRepository) Update(ctx context.Context, subject *entity.Subject) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubjectModel{}).
		Scopes(Alive).
		Where("id = ?", subject.ID).
		Updates(map[string]any{
			"name":      subject.Name,
			"code":      subject.Code,
			"is_active": subject.IsActive,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subject")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubjectNotFound
	}

	return nil
}

// SoftDelete marks the subject deleted without removing the row.
func (repo *subjectRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubjectModel{}).
		Scopes(Alive).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted_at": time.Now(),
			"is_deleted": true,
			"is_active":  false,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete subject")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubjectNotFound
	}

	return nil
}

// HardDelete physically removes the subject.
func (repo *subjectRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubjectModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to hard delete subject")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubjectNotFound
	}

	return nil
}

// fromSubjectDomain converts a domain entity to a persistence model.
func fromSubjectDomain(subject *entity.Subject) *model.SubjectModel {
	return &model.SubjectModel{
		OwnedModel: model.OwnedModel{
			ID:          subject.ID,
			CreatedAt:   subject.CreatedAt,
			UpdatedAt:   subject.UpdatedAt,
			CreatedByID: subject.CreatedByID,
			DeletedAt:   subject.DeletedAt,
			IsDeleted:   subject.IsDeleted,
			IsActive:    subject.IsActive,
		},
		Name: subject.Name,
		Code: subject.Code,
	}
}

// toSubjectDomain converts a persistence model to a domain entity.
func toSubjectDomain(subjectM *model.SubjectModel) *entity.Subject {
	return &entity.Subject{
		Audit: entity.Audit{
			ID:          subjectM.ID,
			CreatedAt:   subjectM.CreatedAt,
			UpdatedAt:   subjectM.UpdatedAt,
			CreatedByID: subjectM.CreatedByID,
			DeletedAt:   subjectM.DeletedAt,
			IsDeleted:   subjectM.IsDeleted,
			IsActive:    subjectM.IsActive,
		},
		Name: subjectM.Name,
		Code: subjectM.Code,
	}
}
