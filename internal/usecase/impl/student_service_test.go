package impl

import (
	"context"
	"testing"
	"time"

	"classteacher/internal/domain/entity"
	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type studentServiceFixtures struct {
	service     usecase.StudentUsecase
	studentRepo *fakeStudentRepo
	classRepo   *fakeClassRepo
}

func createTestStudentService() studentServiceFixtures {
	studentRepo := &fakeStudentRepo{}
	classRepo := &fakeClassRepo{}

	service := NewStudentService(StudentServiceParams{
		StudentRepo: studentRepo,
		ClassRepo:   classRepo,
		Logger:      newDiscardLogger(),
	})

	return studentServiceFixtures{
		service:     service,
		studentRepo: studentRepo,
		classRepo:   classRepo,
	}
}

func existingClass(classID uuid.UUID) func(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	return func(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
		return &entity.Class{Audit: entity.Audit{ID: classID, IsActive: true}, Name: "Form 1A"}, nil
	}
}

func TestStudentService_Create_AttributesOwner(t *testing.T) {
	fixtures := createTestStudentService()
	actorID := uuid.New()
	classID := uuid.New()
	fixtures.classRepo.FindByIDFn = existingClass(classID)

	student, err := fixtures.service.Create(context.Background(), actorID, usecase.CreateStudentInput{
		FirstName:   "John",
		LastName:    "Kamau",
		DateOfBirth: time.Date(2012, 5, 4, 0, 0, 0, 0, time.UTC),
		Gender:      "M",
		ClassID:     classID,
	})

	require.NoError(t, err)
	assert.Equal(t, actorID, student.CreatedByID)
	assert.Equal(t, classID, student.ClassID)
	assert.True(t, student.IsActive)
	assert.Nil(t, student.DeletedAt)
}

func TestStudentService_Create_AggregatesViolations(t *testing.T) {
	fixtures := createTestStudentService()

	_, err := fixtures.service.Create(context.Background(), uuid.New(), usecase.CreateStudentInput{
		Gender: "X",
	})

	requireValidationPointers(t, err,
		"first_name",
		"last_name",
		"date_of_birth",
		"gender",
		"student_class",
	)
}

func TestStudentService_Create_UnknownClass(t *testing.T) {
	fixtures := createTestStudentService()

	_, err := fixtures.service.Create(context.Background(), uuid.New(), usecase.CreateStudentInput{
		FirstName:   "John",
		LastName:    "Kamau",
		DateOfBirth: time.Date(2012, 5, 4, 0, 0, 0, 0, time.UTC),
		ClassID:     uuid.New(),
	})

	requireValidationPointers(t, err, "student_class")
}

func TestStudentService_Update_MovesClass(t *testing.T) {
	fixtures := createTestStudentService()
	studentID := uuid.New()
	newClassID := uuid.New()
	fixtures.studentRepo.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
		return &entity.Student{
			Audit:     entity.Audit{ID: studentID, IsActive: true},
			FirstName: "John",
			LastName:  "Kamau",
			ClassID:   uuid.New(),
		}, nil
	}
	fixtures.classRepo.FindByIDFn = existingClass(newClassID)

	student, err := fixtures.service.Update(context.Background(), studentID, usecase.UpdateStudentInput{
		ClassID: &newClassID,
	})

	require.NoError(t, err)
	assert.Equal(t, newClassID, student.ClassID)
}

func TestStudentService_Get_NotFound(t *testing.T) {
	fixtures := createTestStudentService()

	_, err := fixtures.service.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrRecordNotFound)
}
