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

// classRepository implements the repository.ClassRepository interface.
type classRepository struct {
	db *gorm.DB
}

// NewClassRepository is the constructor for classRepository.
func NewClassRepository(db *gorm.DB) repository.ClassRepository {
	return &classRepository{
		db: db,
	}
}

// Create persists a new class.
func (repo *classRepository) Create(ctx context.Context, class *entity.Class) error {
	classM := fromClassDomain(class)

	if err := repo.db.WithContext(ctx).Create(classM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewValidationError().
				Add("name", "A class with this name already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewValidationError().
				Add("class_teacher", "The referenced class teacher does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create class")
	}

	class.ID = classM.ID
	class.CreatedAt = classM.CreatedAt
	class.UpdatedAt = classM.UpdatedAt

	return nil
}

// FindByID retrieves a class by its unique ID, excluding soft-deleted rows.
func (repo *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	return repo.findOne(ctx, "classes.id = ?", id)
}

// FindByName retrieves a class by its unique name, excluding soft-deleted rows.
func (repo *classRepository) FindByName(ctx context.Context, name string) (*entity.Class, error) {
	return repo.findOne(ctx, "classes.name = ?", name)
}

func (repo *classRepository) findOne(ctx context.Context, query string, arg any) (*entity.Class, error) {
	var classM model.ClassModel

	if err := repo.db.WithContext(ctx).
		Scopes(Alive).
		Preload("ClassTeacher").
		Where(query, arg).
		First(&classM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to find class")
	}

	return toClassDomain(&classM), nil
}

// FindActive lists classes that have not been soft deleted.
func (repo *classRepository) FindActive(ctx context.Context) ([]*entity.Class, error) {
	return repo.findMany(ctx, Alive)
}

// FindAll lists every class including soft-deleted ones.
func (repo *classRepository) FindAll(ctx context.Context) ([]*entity.Class, error) {
	return repo.findMany(ctx, nil)
}

// FindDeleted lists only soft-deleted classes.
func (repo *classRepository) FindDeleted(ctx context.Context) ([]*entity.Class, error) {
	return repo.findMany(ctx, Dead)
}

func (repo *classRepository) findMany(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*entity.Class, error) {
	var classModels []*model.ClassModel

	query := repo.db.WithContext(ctx).Preload("ClassTeacher")
	if scope != nil {
		query = query.Scopes(scope)
	}

	if err := query.Order("name ASC").Find(&classModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list classes")
	}

	classes := make([]*entity.Class, 0, len(classModels))
	for _, classM := range classModels {
		classes = append(classes, toClassDomain(classM))
	}

	return classes, nil
}

// Update persists modifications to an existing class.
func (repo *classRepository) Update(ctx context.Context, class *entity.Class) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClassModel{}).
		Scopes(Alive).
		Where("id = ?", class.ID).
		Select("name", "description", "class_teacher_id", "is_active").
		Updates(map[string]any{
			"name":             class.Name,
			"description":      class.Description,
			"class_teacher_id": class.ClassTeacherID,
			"is_active":        class.IsActive,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.NewValidationError().
				Add("name", "A class with this name already exists")
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewValidationError().
				Add("class_teacher", "The referenced class teacher does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update class")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClassNotFound
	}

	return nil
}

// SoftDelete marks the class deleted without removing the row.
func (repo *classRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClassModel{}).
		Scopes(Alive).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted_at": time.Now(),
			"is_deleted": true,
			"is_active":  false,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete class")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClassNotFound
	}

	return nil
}

// HardDelete physically removes the class. The RESTRICT constraint from
// students surfaces here as ErrClassHasStudents.
func (repo *classRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ClassModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrClassHasStudents
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to hard delete class")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClassNotFound
	}

	return nil
}

// fromClassDomain converts a domain entity to a persistence model.
func fromClassDomain(class *entity.Class) *model.ClassModel {
	return &model.ClassModel{
		OwnedModel: model.OwnedModel{
			ID:          class.ID,
			CreatedAt:   class.CreatedAt,
			UpdatedAt:   class.UpdatedAt,
			CreatedByID: class.CreatedByID,
			DeletedAt:   class.DeletedAt,
			IsDeleted:   class.IsDeleted,
			IsActive:    class.IsActive,
		},
		Name:           class.Name,
		Description:    class.Description,
		ClassTeacherID: class.ClassTeacherID,
	}
}

// toClassDomain converts a persistence model to a domain entity.
func toClassDomain(classM *model.ClassModel) *entity.Class {
	class := &entity.Class{
		Audit: entity.Audit{
			ID:          classM.ID,
			CreatedAt:   classM.CreatedAt,
			UpdatedAt:   classM.UpdatedAt,
			CreatedByID: classM.CreatedByID,
			DeletedAt:   classM.DeletedAt,
			IsDeleted:   classM.IsDeleted,
			IsActive:    classM.IsActive,
		},
		Name:           classM.Name,
		Description:    classM.Description,
		ClassTeacherID: classM.ClassTeacherID,
	}
	if classM.ClassTeacher != nil {
		class.ClassTeacher = toUserDomain(classM.ClassTeacher)
	}

	return class
}
