package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "classteacher/internal/delivery/context"
	"classteacher/internal/delivery/http/response"
	"classteacher/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	OtherNames      string `json:"other_names"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"date_of_birth"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Register handles the self-service registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	dateOfBirth, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		OtherNames:      req.OtherNames,
		Username:        req.Username,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Gender:          req.Gender,
		DateOfBirth:     dateOfBirth,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

type loginRequest struct {
	PhoneNumber *string `json:"phone_number"`
	Email       *string `json:"email"`
	Username    *string `json:"username"`
	Password    string  `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Details any    `json:"details"`
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Username:    req.Username,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		Token:   output.Token,
		Details: output.User,
	}, "Login successful")
}

// Me returns the authenticated user's own record.
func (h *UserHandler) Me(c echo.Context) error {
	user := deliverycontext.GetUser(c)

	current, err := h.uc.CurrentUser(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, current, "")
}

type updateMeRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	OtherNames  *string `json:"other_names"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
}

// UpdateMe applies a partial update to the authenticated user's own record.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req updateMeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	input := usecase.UpdateMeInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		OtherNames:  req.OtherNames,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
	}
	if req.DateOfBirth != nil {
		dateOfBirth, err := parseDate("date_of_birth", *req.DateOfBirth)
		if err != nil {
			return err
		}
		input.DateOfBirth = dateOfBirth
	}

	user := deliverycontext.GetUser(c)
	updated, err := h.uc.UpdateMe(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "User updated successfully")
}

type createStaffRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// CreateStaff handles the administrative staff creation request.
func (h *UserHandler) CreateStaff(c echo.Context) error {
	return h.createPrivileged(c, false)
}

// CreateSuperuser handles the administrative superuser creation request.
func (h *UserHandler) CreateSuperuser(c echo.Context) error {
	return h.createPrivileged(c, true)
}

func (h *UserHandler) createPrivileged(c echo.Context, superuser bool) error {
	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	input := usecase.CreateStaffInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	}

	var (
		output *usecase.RegisterOutput
		err    error
	)
	if superuser {
		output, err = h.uc.CreateSuperuser(c.Request().Context(), input)
	} else {
		output, err = h.uc.CreateStaff(c.Request().Context(), input)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User created successfully")
}

// List lists users; ?deleted=only|all widens the scope.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context(), listScope(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// Get returns a single user.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// Delete soft deletes a user.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// Purge physically removes a user.
func (h *UserHandler) Purge(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.PurgeUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User purged successfully")
}
