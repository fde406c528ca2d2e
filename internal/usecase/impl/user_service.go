// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "classteacher/internal/delivery/context"
	"classteacher/internal/domain/entity"
	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/domain/repository"
	"classteacher/internal/domain/service"
	"classteacher/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// User-facing validation messages. The wording is part of the API contract.
const (
	msgFieldRequired      = "This field is required"
	msgPasswordLength     = "Password must be between 6 and 255 characters"
	msgPasswordsMismatch  = "Passwords do not match"
	msgUsernameTooLong    = "Username must be at most 10 characters"
	msgContactRequired    = "A phone number or email is required to register"
	msgIdentifierRequired = "A phone number, email or username is required to log in"
	msgInvalidEmail       = "Enter a valid email address"
	msgInvalidPhone       = "Enter a valid phone number"
	msgInvalidGender      = "Invalid gender"
)

const (
	passwordMinLength = 6
	passwordMaxLength = 255
	usernameMaxLength = 10
)

// fieldValidate backs the single-value format checks (email, E.164 phone).
var fieldValidate = validator.New()

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a self-service user account. Every field violation found
// in the input is reported at once, not just the first.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeContact(input.Email)
	phone := normalizeContact(input.PhoneNumber)

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		ve := srv.validateRegistration(ctx, userRepo, &input, email, phone)
		if ve.HasErrors() {
			return ve
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed
		}

		newUser := &entity.User{
			FirstName:    strings.TrimSpace(input.FirstName),
			LastName:     strings.TrimSpace(input.LastName),
			OtherNames:   strings.TrimSpace(input.OtherNames),
			Username:     strings.TrimSpace(input.Username),
			Email:        email,
			PhoneNumber:  phone,
			Gender:       entity.Gender(input.Gender),
			DateOfBirth:  input.DateOfBirth,
			PasswordHash: hashedPassword,
			IsActive:     true,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", registeredUser.ID), slog.String("username", registeredUser.Username))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// validateRegistration aggregates every violation in the registration input,
// including uniqueness pre-checks among non-deleted users. The storage
// layer's unique constraints remain authoritative for races.
func (srv *userService) validateRegistration(
	ctx context.Context,
	userRepo repository.UserRepository,
	input *usecase.RegisterInput,
	email, phone *string,
) *domainerrors.ValidationError {
	ve := domainerrors.NewValidationError()

	if strings.TrimSpace(input.FirstName) == "" {
		ve.Add("first_name", msgFieldRequired)
	}

	username := strings.TrimSpace(input.Username)
	switch {
	case username == "":
		ve.Add("username", msgFieldRequired)
	case len(username) > usernameMaxLength:
		ve.Add("username", msgUsernameTooLong)
	}

	switch {
	case input.Password == "":
		ve.Add("password", msgFieldRequired)
	case len(input.Password) < passwordMinLength || len(input.Password) > passwordMaxLength:
		ve.Add("password", msgPasswordLength)
	}

	switch {
	case input.ConfirmPassword == "":
		ve.Add("confirm_password", msgFieldRequired)
	case input.Password != "" && input.ConfirmPassword != input.Password:
		ve.Add("confirm_password", msgPasswordsMismatch)
	}

	if email == nil && phone == nil {
		ve.AddNonField(msgContactRequired)
	}
	if email != nil && fieldValidate.Var(*email, "email") != nil {
		ve.Add("email", msgInvalidEmail)
	}
	if phone != nil && fieldValidate.Var(*phone, "e164") != nil {
		ve.Add("phone_number", msgInvalidPhone)
	}

	if input.Gender != "" && !entity.Gender(input.Gender).IsValid() {
		ve.Add("gender", msgInvalidGender)
	}

	srv.checkIdentifierUniqueness(ctx, userRepo, ve, username, email, phone)

	return ve
}

// checkIdentifierUniqueness adds a violation for every login identifier that
// already belongs to a non-deleted user.
func (srv *userService) checkIdentifierUniqueness(
	ctx context.Context,
	userRepo repository.UserRepository,
	ve *domainerrors.ValidationError,
	username string,
	email, phone *string,
) {
	if username != "" {
		if _, err := userRepo.FindByUsername(ctx, username); err == nil {
			ve.Add("username", "A user with this username already exists")
		}
	}
	if email != nil {
		if _, err := userRepo.FindByEmail(ctx, *email); err == nil {
			ve.Add("email", "A user with this email already exists")
		}
	}
	if phone != nil {
		if _, err := userRepo.FindByPhoneNumber(ctx, *phone); err == nil {
			ve.Add("phone_number", "A user with this phone number already exists")
		}
	}
}

// Login authenticates a credential submission. Lookup failures, unexpected
// storage errors and password mismatches all collapse into the same
// "Incorrect credentials" answer, and the unknown-identifier path burns a
// dummy hash comparison so the two rejections take comparable time.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	identifier, err := resolveLoginIdentifier(&input)
	if err != nil {
		return nil, err
	}

	user, err := srv.findByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.hasher.DummyCheck(input.Password)

			return nil, domainerrors.ErrIncorrectCredentials
		}

		// Fail closed: an unreachable store must not read as "bad password
		// vs unknown user" to the caller.
		srv.log(ctx).Error("User lookup failed during login", slog.String("identifierKind", string(identifier.Kind)), slog.Any("error", err))

		return nil, domainerrors.ErrIncorrectCredentials
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrIncorrectCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserDeactivated
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// resolveLoginIdentifier picks the submitted identifier and validates the
// submission shape. A field sent blank is a violation; a field not sent at
// all is simply not the chosen identifier.
func resolveLoginIdentifier(input *usecase.LoginInput) (entity.Identifier, error) {
	ve := domainerrors.NewValidationError()

	var identifier entity.Identifier
	for _, candidate := range []struct {
		pointer string
		value   *string
		build   func(string) entity.Identifier
	}{
		{"phone_number", input.PhoneNumber, entity.PhoneNumber},
		{"email", input.Email, entity.Email},
		{"username", input.Username, entity.Username},
	} {
		if candidate.value == nil {
			continue
		}
		trimmed := strings.TrimSpace(*candidate.value)
		if trimmed == "" {
			ve.Add(candidate.pointer, msgFieldRequired)

			continue
		}
		if identifier.IsZero() {
			identifier = candidate.build(trimmed)
		}
	}

	if input.Password == "" {
		ve.Add("password", msgFieldRequired)
	}
	if identifier.IsZero() && !ve.HasErrors() {
		ve.AddNonField(msgIdentifierRequired)
	}

	if ve.HasErrors() {
		return entity.Identifier{}, ve
	}

	return identifier, nil
}

func (srv *userService) findByIdentifier(ctx context.Context, identifier entity.Identifier) (*entity.User, error) {
	switch identifier.Kind {
	case entity.IdentifierPhoneNumber:
		return srv.userRepo.FindByPhoneNumber(ctx, identifier.Value)
	case entity.IdentifierEmail:
		return srv.userRepo.FindByEmail(ctx, identifier.Value)
	case entity.IdentifierUsername:
		return srv.userRepo.FindByUsername(ctx, identifier.Value)
	default:
		return nil, repository.ErrUserNotFound
	}
}

// CurrentUser returns the authenticated user's own record.
func (srv *userService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

// UpdateMe applies a partial update to the authenticated user's record. The
// contact-field invariant is re-checked against the resulting state: the
// update cannot strip the last remaining login contact.
func (srv *userService) UpdateMe(ctx context.Context, userID uuid.UUID, input usecase.UpdateMeInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	ve := domainerrors.NewValidationError()

	if input.FirstName != nil {
		if strings.TrimSpace(*input.FirstName) == "" {
			ve.Add("first_name", msgFieldRequired)
		} else {
			user.FirstName = strings.TrimSpace(*input.FirstName)
		}
	}
	if input.LastName != nil {
		user.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.OtherNames != nil {
		user.OtherNames = strings.TrimSpace(*input.OtherNames)
	}
	if input.Email != nil {
		user.Email = normalizeContact(*input.Email)
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = normalizeContact(*input.PhoneNumber)
	}
	if input.Gender != nil {
		gender := entity.Gender(*input.Gender)
		if *input.Gender != "" && !gender.IsValid() {
			ve.Add("gender", msgInvalidGender)
		} else {
			user.Gender = gender
		}
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}

	if user.Email == nil && user.PhoneNumber == nil {
		ve.AddNonField(msgContactRequired)
	}
	if user.Email != nil && fieldValidate.Var(*user.Email, "email") != nil {
		ve.Add("email", msgInvalidEmail)
	}
	if user.PhoneNumber != nil && fieldValidate.Var(*user.PhoneNumber, "e164") != nil {
		ve.Add("phone_number", msgInvalidPhone)
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// CreateStaff creates a staff account through the administrative path.
func (srv *userService) CreateStaff(ctx context.Context, input usecase.CreateStaffInput) (*usecase.RegisterOutput, error) {
	return srv.createPrivileged(ctx, input, false)
}

// CreateSuperuser creates a superuser account. Superusers are always staff.
func (srv *userService) CreateSuperuser(ctx context.Context, input usecase.CreateStaffInput) (*usecase.RegisterOutput, error) {
	return srv.createPrivileged(ctx, input, true)
}

// createPrivileged shares the staff and superuser creation flow. Unlike
// self-service registration a contact field is optional here, but the
// password stays mandatory.
func (srv *userService) createPrivileged(ctx context.Context, input usecase.CreateStaffInput, superuser bool) (*usecase.RegisterOutput, error) {
	email := normalizeContact(input.Email)
	phone := normalizeContact(input.PhoneNumber)

	var createdUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		ve := domainerrors.NewValidationError()

		if strings.TrimSpace(input.FirstName) == "" {
			ve.Add("first_name", msgFieldRequired)
		}

		username := strings.TrimSpace(input.Username)
		switch {
		case username == "":
			ve.Add("username", msgFieldRequired)
		case len(username) > usernameMaxLength:
			ve.Add("username", msgUsernameTooLong)
		}

		switch {
		case input.Password == "":
			ve.Add("password", msgFieldRequired)
		case len(input.Password) < passwordMinLength || len(input.Password) > passwordMaxLength:
			ve.Add("password", msgPasswordLength)
		}

		if email != nil && fieldValidate.Var(*email, "email") != nil {
			ve.Add("email", msgInvalidEmail)
		}
		if phone != nil && fieldValidate.Var(*phone, "e164") != nil {
			ve.Add("phone_number", msgInvalidPhone)
		}

		srv.checkIdentifierUniqueness(ctx, userRepo, ve, username, email, phone)

		if ve.HasErrors() {
			return ve
		}

		hashedPassword, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during staff creation", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed
		}

		newUser := &entity.User{
			FirstName:    strings.TrimSpace(input.FirstName),
			LastName:     strings.TrimSpace(input.LastName),
			Username:     username,
			Email:        email,
			PhoneNumber:  phone,
			PasswordHash: hashedPassword,
			IsStaff:      true,
			IsSuperuser:  superuser,
			IsActive:     true,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create privileged user")
		}

		createdUser = newUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Privileged user created", slog.Any("userID", createdUser.ID), slog.Bool("superuser", superuser))

	return &usecase.RegisterOutput{User: createdUser}, nil
}

// ListUsers lists users in the given soft-deletion scope.
func (srv *userService) ListUsers(ctx context.Context, scope usecase.ListScope) ([]*entity.User, error) {
	switch scope {
	case usecase.ScopeAll:
		return srv.userRepo.FindAll(ctx)
	case usecase.ScopeDeleted:
		return srv.userRepo.FindDeleted(ctx)
	default:
		return srv.userRepo.FindActive(ctx)
	}
}

// GetUser returns a single user in the active scope.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// DeleteUser soft deletes a user.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return err
	}

	srv.log(ctx).Info("User soft deleted", slog.Any("userID", id))

	return nil
}

// PurgeUser physically removes a user. Ownership protection maps to a
// conflict the caller can act on.
func (srv *userService) PurgeUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.HardDelete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrUserOwnsRecords):
			return domainerrors.ErrOwnerProtected
		}

		return err
	}

	srv.log(ctx).Info("User purged", slog.Any("userID", id))

	return nil
}

// normalizeContact trims an optional contact field and maps the empty result
// to nil so that absence is stored as NULL, never as "".
func normalizeContact(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
