package impl

import (
	"context"
	"testing"

	"classteacher/internal/domain/entity"
	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/domain/repository"
	"classteacher/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type classServiceFixtures struct {
	service     usecase.ClassUsecase
	classRepo   *fakeClassRepo
	studentRepo *fakeStudentRepo
	userRepo    *fakeUserRepo
}

func createTestClassService() classServiceFixtures {
	classRepo := &fakeClassRepo{}
	studentRepo := &fakeStudentRepo{}
	userRepo := &fakeUserRepo{}

	service := NewClassService(ClassServiceParams{
		ClassRepo:   classRepo,
		StudentRepo: studentRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})

	return classServiceFixtures{
		service:     service,
		classRepo:   classRepo,
		studentRepo: studentRepo,
		userRepo:    userRepo,
	}
}

func TestClassService_Create_AttributesOwner(t *testing.T) {
	fixtures := createTestClassService()
	actorID := uuid.New()

	class, err := fixtures.service.Create(context.Background(), actorID, usecase.CreateClassInput{
		Name:        "Form 1A",
		Description: "First form, stream A",
	})

	require.NoError(t, err)
	assert.Equal(t, actorID, class.CreatedByID)
	assert.True(t, class.IsActive)
	assert.False(t, class.IsDeleted)
	assert.Nil(t, class.DeletedAt)
}

func TestClassService_Create_RequiresName(t *testing.T) {
	fixtures := createTestClassService()

	_, err := fixtures.service.Create(context.Background(), uuid.New(), usecase.CreateClassInput{})

	requireValidationPointers(t, err, "name")
	assert.Empty(t, fixtures.classRepo.created)
}

func TestClassService_Create_DuplicateName(t *testing.T) {
	fixtures := createTestClassService()
	fixtures.classRepo.FindByNameFn = func(ctx context.Context, name string) (*entity.Class, error) {
		return &entity.Class{Name: name}, nil
	}

	_, err := fixtures.service.Create(context.Background(), uuid.New(), usecase.CreateClassInput{
		Name: "Form 1A",
	})

	requireValidationPointers(t, err, "name")
}

func TestClassService_Create_UnknownClassTeacher(t *testing.T) {
	fixtures := createTestClassService()
	teacherID := uuid.New()

	_, err := fixtures.service.Create(context.Background(), uuid.New(), usecase.CreateClassInput{
		Name:           "Form 1A",
		ClassTeacherID: &teacherID,
	})

	requireValidationPointers(t, err, "class_teacher")
}

func TestClassService_Update_ClearsClassTeacher(t *testing.T) {
	fixtures := createTestClassService()
	teacherID := uuid.New()
	classID := uuid.New()
	fixtures.classRepo.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
		return &entity.Class{
			Audit:          entity.Audit{ID: classID, IsActive: true},
			Name:           "Form 1A",
			ClassTeacherID: &teacherID,
		}, nil
	}

	class, err := fixtures.service.Update(context.Background(), classID, usecase.UpdateClassInput{
		ClearClassTeacher: true,
	})

	require.NoError(t, err)
	assert.Nil(t, class.ClassTeacherID)
}

func TestClassService_Delete_NotFound(t *testing.T) {
	fixtures := createTestClassService()
	fixtures.classRepo.SoftDeleteFn = func(ctx context.Context, id uuid.UUID) error {
		return repository.ErrClassNotFound
	}

	err := fixtures.service.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}

func TestClassService_Purge_ProtectedByEnrollment(t *testing.T) {
	fixtures := createTestClassService()
	fixtures.classRepo.HardDeleteFn = func(ctx context.Context, id uuid.UUID) error {
		return repository.ErrClassHasStudents
	}

	err := fixtures.service.Purge(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrRecordProtected)
}

func TestClassService_List_ScopeDispatch(t *testing.T) {
	fixtures := createTestClassService()
	var called string
	fixtures.classRepo.FindActiveFn = func(ctx context.Context) ([]*entity.Class, error) {
		called = "active"

		return nil, nil
	}
	fixtures.classRepo.FindDeletedFn = func(ctx context.Context) ([]*entity.Class, error) {
		called = "deleted"

		return nil, nil
	}

	_, err := fixtures.service.List(context.Background(), usecase.ScopeActive)
	require.NoError(t, err)
	assert.Equal(t, "active", called)

	_, err = fixtures.service.List(context.Background(), usecase.ScopeDeleted)
	require.NoError(t, err)
	assert.Equal(t, "deleted", called)
}

func TestClassService_Students_RequiresExistingClass(t *testing.T) {
	fixtures := createTestClassService()

	_, err := fixtures.service.Students(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}
