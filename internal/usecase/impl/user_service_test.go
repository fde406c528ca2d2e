package impl

import (
	"context"
	"testing"

	"classteacher/internal/domain/entity"
	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/domain/repository"
	"classteacher/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *fakeUserRepo
	hasher       *fakeHasher
	tokenService *fakeTokenService
}

func createTestUserService() userServiceFixtures {
	userRepo := &fakeUserRepo{}
	hasher := &fakeHasher{}
	tokenService := &fakeTokenService{}

	service := NewUserService(UserServiceParams{
		TxManager:    &fakeTxManager{factory: &fakeFactory{userRepo: userRepo}},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func strPtr(s string) *string {
	return &s
}

// requireValidationPointers asserts err is a validation failure naming
// exactly the given pointers (order-insensitive, duplicates allowed once).
func requireValidationPointers(t *testing.T, err error, pointers ...string) {
	t.Helper()

	var ve *domainerrors.ValidationError
	require.ErrorAs(t, err, &ve)

	got := make([]string, 0, len(ve.Fields()))
	for _, field := range ve.Fields() {
		got = append(got, field.Pointer)
	}
	assert.ElementsMatch(t, pointers, got)
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService()

	output, err := fixtures.service.Register(context.Background(), usecase.RegisterInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		Username:        "jane",
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	user := output.User
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "jane", user.Username)
	require.NotNil(t, user.Email)
	assert.Equal(t, "jane@example.com", *user.Email)
	assert.Nil(t, user.PhoneNumber)
	assert.Equal(t, "hashed:secret1", user.PasswordHash)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)
}

func TestUserService_Register_PhoneOnly(t *testing.T) {
	fixtures := createTestUserService()

	output, err := fixtures.service.Register(context.Background(), usecase.RegisterInput{
		FirstName:       "Jane",
		Username:        "jane",
		PhoneNumber:     "+254700000001",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	require.NoError(t, err)
	assert.Nil(t, output.User.Email)
	require.NotNil(t, output.User.PhoneNumber)
	assert.Equal(t, "+254700000001", *output.User.PhoneNumber)
}

func TestUserService_Register_AggregatesAllViolations(t *testing.T) {
	fixtures := createTestUserService()

	_, err := fixtures.service.Register(context.Background(), usecase.RegisterInput{})

	requireValidationPointers(t, err,
		"first_name",
		"username",
		"password",
		"confirm_password",
		domainerrors.NonFieldPointer,
	)
	assert.Empty(t, fixtures.userRepo.created)
}

func TestUserService_Register_PasswordRules(t *testing.T) {
	fixtures := createTestUserService()

	_, err := fixtures.service.Register(context.Background(), usecase.RegisterInput{
		FirstName:       "Jane",
		Username:        "jane",
		Email:           "jane@example.com",
		Password:        "short",
		ConfirmPassword: "different",
	})

	requireValidationPointers(t, err, "password", "confirm_password")

	var ve *domainerrors.ValidationError
	require.ErrorAs(t, err, &ve)
	messages := map[string]string{}
	for _, field := range ve.Fields() {
		messages[field.Pointer] = field.Message
	}
	assert.Equal(t, "Password must be between 6 and 255 characters", messages["password"])
	assert.Equal(t, "Passwords do not match", messages["confirm_password"])
}

func TestUserService_Register_InvalidContactFormats(t *testing.T) {
	fixtures := createTestUserService()

	_, err := fixtures.service.Register(context.Background(), usecase.RegisterInput{
		FirstName:       "Jane",
		Username:        "jane",
		Email:           "not-an-email",
		PhoneNumber:     "0700123456",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	requireValidationPointers(t, err, "email", "phone_number")
}

func TestUserService_Register_UsernameTooLong(t *testing.T) {
	fixtures := createTestUserService()

	_, err := fixtures.service.Register(context.Background(), usecase.RegisterInput{
		FirstName:       "Jane",
		Username:        "janedoejane",
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	requireValidationPointers(t, err, "username")
}

func TestUserService_Register_DuplicateIdentifiers(t *testing.T) {
	fixtures := createTestUserService()
	existing := &entity.User{ID: uuid.New()}
	fixtures.userRepo.FindByUsernameFn = func(ctx context.Context, username string) (*entity.User, error) {
		return existing, nil
	}
	fixtures.userRepo.FindByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
		return existing, nil
	}

	_, err := fixtures.service.Register(context.Background(), usecase.RegisterInput{
		FirstName:       "Jane",
		Username:        "jane",
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})

	requireValidationPointers(t, err, "username", "email")
	assert.Empty(t, fixtures.userRepo.created)
}

func TestUserService_Login_UnknownIdentifierRunsDummyCheck(t *testing.T) {
	fixtures := createTestUserService()

	_, err := fixtures.service.Login(context.Background(), usecase.LoginInput{
		PhoneNumber: strPtr("+254700000001"),
		Password:    "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIncorrectCredentials)
	assert.Equal(t, 1, fixtures.hasher.dummyCheckCalls)
}

func TestUserService_Login_WrongPasswordSameError(t *testing.T) {
	fixtures := createTestUserService()
	fixtures.userRepo.FindByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
		return &entity.User{ID: uuid.New(), PasswordHash: "hashed:right", IsActive: true}, nil
	}

	_, err := fixtures.service.Login(context.Background(), usecase.LoginInput{
		Email:    strPtr("jane@example.com"),
		Password: "wrong",
	})

	// Wrong password and unknown identifier must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectCredentials)
	assert.Zero(t, fixtures.hasher.dummyCheckCalls)
}

func TestUserService_Login_StorageErrorFailsClosed(t *testing.T) {
	fixtures := createTestUserService()
	fixtures.userRepo.FindByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
		return nil, errors.New("connection reset")
	}

	_, err := fixtures.service.Login(context.Background(), usecase.LoginInput{
		Email:    strPtr("jane@example.com"),
		Password: "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrIncorrectCredentials)
}

func TestUserService_Login_DeactivatedUser(t *testing.T) {
	fixtures := createTestUserService()
	fixtures.userRepo.FindByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
		return &entity.User{ID: uuid.New(), PasswordHash: "hashed:secret1", IsActive: false}, nil
	}

	_, err := fixtures.service.Login(context.Background(), usecase.LoginInput{
		Email:    strPtr("jane@example.com"),
		Password: "secret1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserDeactivated)
}

func TestUserService_Login_Success(t *testing.T) {
	fixtures := createTestUserService()
	userID := uuid.New()
	fixtures.userRepo.FindByPhoneNumberFn = func(ctx context.Context, phoneNumber string) (*entity.User, error) {
		return &entity.User{ID: userID, PasswordHash: "hashed:secret1", IsActive: true}, nil
	}

	output, err := fixtures.service.Login(context.Background(), usecase.LoginInput{
		PhoneNumber: strPtr("+254700000001"),
		Password:    "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-for-"+userID.String(), output.Token)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_BlankIdentifierField(t *testing.T) {
	fixtures := createTestUserService()

	// Blank means the field was sent empty; it is a violation, not absence.
	_, err := fixtures.service.Login(context.Background(), usecase.LoginInput{
		Email:    strPtr(""),
		Password: "secret1",
	})

	requireValidationPointers(t, err, "email")
}

func TestUserService_Login_NoIdentifier(t *testing.T) {
	fixtures := createTestUserService()

	_, err := fixtures.service.Login(context.Background(), usecase.LoginInput{
		Password: "secret1",
	})

	requireValidationPointers(t, err, domainerrors.NonFieldPointer)
}

func TestUserService_UpdateMe_CannotStripLastContact(t *testing.T) {
	fixtures := createTestUserService()
	userID := uuid.New()
	email := "jane@example.com"
	fixtures.userRepo.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return &entity.User{ID: userID, FirstName: "Jane", Email: &email, IsActive: true}, nil
	}

	_, err := fixtures.service.UpdateMe(context.Background(), userID, usecase.UpdateMeInput{
		Email: strPtr(""),
	})

	requireValidationPointers(t, err, domainerrors.NonFieldPointer)
}

func TestUserService_UpdateMe_SwapsContact(t *testing.T) {
	fixtures := createTestUserService()
	userID := uuid.New()
	email := "jane@example.com"
	fixtures.userRepo.FindByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
		return &entity.User{ID: userID, FirstName: "Jane", Email: &email, IsActive: true}, nil
	}
	var updated *entity.User
	fixtures.userRepo.UpdateFn = func(ctx context.Context, user *entity.User) error {
		updated = user

		return nil
	}

	result, err := fixtures.service.UpdateMe(context.Background(), userID, usecase.UpdateMeInput{
		Email:       strPtr(""),
		PhoneNumber: strPtr("+254700000001"),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, result.Email)
	require.NotNil(t, result.PhoneNumber)
	assert.Equal(t, "+254700000001", *result.PhoneNumber)
}

func TestUserService_CreateStaff_SetsFlags(t *testing.T) {
	fixtures := createTestUserService()

	output, err := fixtures.service.CreateStaff(context.Background(), usecase.CreateStaffInput{
		FirstName: "Admin",
		Username:  "admin",
		Password:  "secret1",
	})

	require.NoError(t, err)
	assert.True(t, output.User.IsStaff)
	assert.False(t, output.User.IsSuperuser)
	// No contact field required on the administrative path.
	assert.Nil(t, output.User.Email)
	assert.Nil(t, output.User.PhoneNumber)
}

func TestUserService_CreateSuperuser_SetsFlags(t *testing.T) {
	fixtures := createTestUserService()

	output, err := fixtures.service.CreateSuperuser(context.Background(), usecase.CreateStaffInput{
		FirstName: "Root",
		Username:  "root",
		Password:  "secret1",
	})

	require.NoError(t, err)
	assert.True(t, output.User.IsStaff)
	assert.True(t, output.User.IsSuperuser)
}

func TestUserService_PurgeUser_OwnerProtected(t *testing.T) {
	fixtures := createTestUserService()
	fixtures.userRepo.HardDeleteFn = func(ctx context.Context, id uuid.UUID) error {
		return repository.ErrUserOwnsRecords
	}

	err := fixtures.service.PurgeUser(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrOwnerProtected)
}

func TestUserService_ListUsers_ScopeDispatch(t *testing.T) {
	fixtures := createTestUserService()
	var called string
	fixtures.userRepo.FindActiveFn = func(ctx context.Context) ([]*entity.User, error) {
		called = "active"

		return nil, nil
	}
	fixtures.userRepo.FindAllFn = func(ctx context.Context) ([]*entity.User, error) {
		called = "all"

		return nil, nil
	}
	fixtures.userRepo.FindDeletedFn = func(ctx context.Context) ([]*entity.User, error) {
		called = "deleted"

		return nil, nil
	}

	_, err := fixtures.service.ListUsers(context.Background(), usecase.ScopeActive)
	require.NoError(t, err)
	assert.Equal(t, "active", called)

	_, err = fixtures.service.ListUsers(context.Background(), usecase.ScopeAll)
	require.NoError(t, err)
	assert.Equal(t, "all", called)

	_, err = fixtures.service.ListUsers(context.Background(), usecase.ScopeDeleted)
	require.NoError(t, err)
	assert.Equal(t, "deleted", called)
}
