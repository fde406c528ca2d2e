package impl

import (
	"context"
	"testing"

	"classteacher/internal/domain/entity"
	"classteacher/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSubjectService() (usecase.SubjectUsecase, *fakeSubjectRepo) {
	subjectRepo := &fakeSubjectRepo{}

	service := NewSubjectService(SubjectServiceParams{
		SubjectRepo: subjectRepo,
		Logger:      newDiscardLogger(),
	})

	return service, subjectRepo
}

func TestSubjectService_Create_AttributesOwner(t *testing.T) {
	service, _ := createTestSubjectService()
	actorID := uuid.New()

	subject, err := service.Create(context.Background(), actorID, usecase.CreateSubjectInput{
		Name: "Mathematics",
		Code: "121",
	})

	require.NoError(t, err)
	assert.Equal(t, actorID, subject.CreatedByID)
	assert.Equal(t, "Mathematics", subject.Name)
	assert.Equal(t, "121", subject.Code)
	assert.True(t, subject.IsActive)
}

func TestSubjectService_Create_Violations(t *testing.T) {
	service, subjectRepo := createTestSubjectService()

	_, err := service.Create(context.Background(), uuid.New(), usecase.CreateSubjectInput{
		Code: "a-much-too-long-code",
	})

	requireValidationPointers(t, err, "name", "code")
	assert.Empty(t, subjectRepo.created)
}

func TestSubjectService_List_ScopeDispatch(t *testing.T) {
	service, subjectRepo := createTestSubjectService()
	var called string
	subjectRepo.FindAllFn = func(ctx context.Context) ([]*entity.Subject, error) {
		called = "all"

		return nil, nil
	}
	subjectRepo.FindActiveFn = func(ctx context.Context) ([]*entity.Subject, error) {
		called = "active"

		return nil, nil
	}

	_, err := service.List(context.Background(), usecase.ScopeAll)
	require.NoError(t, err)
	assert.Equal(t, "all", called)

	_, err = service.List(context.Background(), usecase.ScopeActive)
	require.NoError(t, err)
	assert.Equal(t, "active", called)
}
