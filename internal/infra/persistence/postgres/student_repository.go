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

// studentRepository implements the repository.StudentRepository interface.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{
		db: db,
	}
}

// Create persists a new student.
func (repo *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewValidationError().
				Add("student_class", "The referenced class does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidationError().
				AddNonField("Missing required student information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
	}

	student.ID = studentM.ID
	student.CreatedAt = studentM.CreatedAt
	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

// FindByID retrieves a student by their unique ID, excluding soft-deleted rows.
func (repo *studentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel

	if err := repo.db.WithContext(ctx).
		Scopes(Alive).
		Preload("Class").
		Where("students.id = ?", id).
		First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student")
	}

	return toStudentDomain(&studentM), nil
}

// FindActive lists students that have not been soft deleted.
func (repo *studentRepository) FindActive(ctx context.Context) ([]*entity.Student, error) {
	return repo.findMany(ctx, Alive)
}

// FindAll lists every student including soft-deleted ones.
func (repo *studentRepository) FindAll(ctx context.Context) ([]*entity.Student, error) {
	return repo.findMany(ctx, nil)
}

// FindDeleted lists only soft-deleted students.
func (repo *studentRepository) FindDeleted(ctx context.Context) ([]*entity.Student, error) {
	return repo.findMany(ctx, Dead)
}

// FindByClass lists active students enrolled in a class.
func (repo *studentRepository) FindByClass(ctx context.Context, classID uuid.UUID) ([]*entity.Student, error) {
	var studentModels []*model.StudentModel

	if err := repo.db.WithContext(ctx).
		Scopes(Alive).
		Where("class_id = ?", classID).
		Order("last_name ASC, first_name ASC").
		Find(&studentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find students by class")
	}

	students := make([]*entity.Student, 0, len(studentModels))
	for _, studentM := range studentModels {
		students = append(students, toStudentDomain(studentM))
	}

	return students, nil
}

func (repo *studentRepository) findMany(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*entity.Student, error) {
	var studentModels []*model.StudentModel

	query := repo.db.WithContext(ctx).Preload("Class")
	if scope != nil {
		query = query.Scopes(scope)
	}

	if err := query.Order("last_name ASC, first_name ASC").Find(&studentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	students := make([]*entity.Student, 0, len(studentModels))
	for _, studentM := range studentModels {
		students = append(students, toStudentDomain(studentM))
	}

	return students, nil
}

// Update persists modifications to an existing student.
func (repo *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Scopes(Alive).
		Where("id = ?", student.ID).
		Updates(map[string]any{
			"first_name":       student.FirstName,
			"last_name":        student.LastName,
			"date_of_birth":    student.DateOfBirth,
			"admission_number": student.AdmissionNumber,
			"gender":           student.Gender.String(),
			"class_id":         student.ClassID,
			"is_active":        student.IsActive,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewValidationError().
				Add("student_class", "The referenced class does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update student")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// SoftDelete marks the student deleted without removing the row.
func (repo *studentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Scopes(Alive).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted_at": time.Now(),
			"is_deleted": true,
			"is_active":  false,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete student")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// HardDelete physically removes the student.
func (repo *studentRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StudentModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to hard delete student")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// fromStudentDomain converts a domain entity to a persistence model.
func fromStudentDomain(student *entity.Student) *model.StudentModel {
	return &model.StudentModel{
		OwnedModel: model.OwnedModel{
			ID:          student.ID,
			CreatedAt:   student.CreatedAt,
			UpdatedAt:   student.UpdatedAt,
			CreatedByID: student.CreatedByID,
			DeletedAt:   student.DeletedAt,
			IsDeleted:   student.IsDeleted,
			IsActive:    student.IsActive,
		},
		FirstName:       student.FirstName,
		LastName:        student.LastName,
		DateOfBirth:     student.DateOfBirth,
		AdmissionNumber: student.AdmissionNumber,
		Gender:          student.Gender.String(),
		ClassID:         student.ClassID,
	}
}

// toStudentDomain converts a persistence model to a domain entity.
func toStudentDomain(studentM *model.StudentModel) *entity.Student {
	student := &entity.Student{
		Audit: entity.Audit{
			ID:          studentM.ID,
			CreatedAt:   studentM.CreatedAt,
			UpdatedAt:   studentM.UpdatedAt,
			CreatedByID: studentM.CreatedByID,
			DeletedAt:   studentM.DeletedAt,
			IsDeleted:   studentM.IsDeleted,
			IsActive:    studentM.IsActive,
		},
		FirstName:       studentM.FirstName,
		LastName:        studentM.LastName,
		DateOfBirth:     studentM.DateOfBirth,
		AdmissionNumber: studentM.AdmissionNumber,
		Gender:          entity.Gender(studentM.Gender),
		ClassID:         studentM.ClassID,
	}
	if studentM.Class != nil {
		student.Class = toClassDomain(studentM.Class)
	}

	return student
}
