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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return uniqueUserViolation(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.DateJoined = userM.DateJoined
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a user by their unique ID, excluding soft-deleted rows.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a user by email, excluding soft-deleted rows.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByPhoneNumber retrieves a user by phone number, excluding soft-deleted rows.
func (repo *userRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	return repo.findOne(ctx, "phone_number = ?", phoneNumber)
}

// FindByUsername retrieves a user by username, excluding soft-deleted rows.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Scopes(Alive).
		Where(query, arg).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// FindActive lists users that have not been soft deleted.
func (repo *userRepository) FindActive(ctx context.Context) ([]*entity.User, error) {
	return repo.findMany(ctx, Alive)
}

// FindAll lists every user including soft-deleted ones.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return repo.findMany(ctx, nil)
}

// FindDeleted lists only soft-deleted users.
func (repo *userRepository) FindDeleted(ctx context.Context) ([]*entity.User, error) {
	return repo.findMany(ctx, Dead)
}

func (repo *userRepository) findMany(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx)
	if scope != nil {
		query = query.Scopes(scope)
	}

	if err := query.Order("date_joined DESC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Update persists modifications to an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Scopes(Alive).
		Where("id = ?", user.ID).
		Select("first_name", "last_name", "other_names", "username", "email",
			"phone_number", "gender", "date_of_birth", "password_hash",
			"is_staff", "is_superuser", "is_active").
		Updates(userM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return uniqueUserViolation(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SoftDelete marks the user deleted without removing the row. The deletion
// timestamp, is_deleted and is_active move together in one UPDATE.
func (repo *userRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Scopes(Alive).
		Where("id = ?", id).
		Updates(map[string]any{
			"deleted_at": time.Now(),
			"is_deleted": true,
			"is_active":  false,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to soft delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// HardDelete physically removes the user. The RESTRICT constraints on owned
// records surface here as ErrUserOwnsRecords.
func (repo *userRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrUserOwnsRecords
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to hard delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// uniqueUserViolation maps a unique constraint failure to the field the
// caller can correct.
func uniqueUserViolation(err error) error {
	switch violatedColumn(err, "username", "email", "phone_number") {
	case "username":
		return domainerrors.NewValidationError().
			Add("username", "A user with this username already exists")
	case "email":
		return domainerrors.NewValidationError().
			Add("email", "A user with this email already exists")
	case "phone_number":
		return domainerrors.NewValidationError().
			Add("phone_number", "A user with this phone number already exists")
	default:
		return domainerrors.NewValidationError().
			AddNonField("A user with these details already exists")
	}
}

// fromUserDomain converts a domain entity to a persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		OtherNames:   user.OtherNames,
		Username:     user.Username,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		Gender:       user.Gender.String(),
		DateOfBirth:  user.DateOfBirth,
		PasswordHash: user.PasswordHash,
		IsStaff:      user.IsStaff,
		IsSuperuser:  user.IsSuperuser,
		IsActive:     user.IsActive,
		IsDeleted:    user.IsDeleted,
		DateJoined:   user.DateJoined,
		UpdatedAt:    user.UpdatedAt,
		DeletedAt:    user.DeletedAt,
	}
}

// toUserDomain converts a persistence model to a domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID,
		FirstName:    userM.FirstName,
		LastName:     userM.LastName,
		OtherNames:   userM.OtherNames,
		Username:     userM.Username,
		Email:        userM.Email,
		PhoneNumber:  userM.PhoneNumber,
		Gender:       entity.Gender(userM.Gender),
		DateOfBirth:  userM.DateOfBirth,
		PasswordHash: userM.PasswordHash,
		IsStaff:      userM.IsStaff,
		IsSuperuser:  userM.IsSuperuser,
		IsActive:     userM.IsActive,
		IsDeleted:    userM.IsDeleted,
		DateJoined:   userM.DateJoined,
		UpdatedAt:    userM.UpdatedAt,
		DeletedAt:    userM.DeletedAt,
	}
}
