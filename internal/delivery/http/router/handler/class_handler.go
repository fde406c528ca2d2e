package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "classteacher/internal/delivery/context"
	"classteacher/internal/delivery/http/response"
	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClassHandler holds dependencies for class-related handlers.
type ClassHandler struct {
	uc     usecase.ClassUsecase
	logger *slog.Logger
}

// NewClassHandler is the constructor for ClassHandler, injected by Fx.
func NewClassHandler(uc usecase.ClassUsecase, logger *slog.Logger) *ClassHandler {
	return &ClassHandler{
		uc:     uc,
		logger: logger,
	}
}

type createClassRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ClassTeacher *string `json:"class_teacher"`
}

// Create creates a class owned by the authenticated user.
func (h *ClassHandler) Create(c echo.Context) error {
	var req createClassRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid class input")
	}

	teacherID, err := parseOptionalUUID("class_teacher", req.ClassTeacher)
	if err != nil {
		return err
	}

	actor := deliverycontext.GetUser(c)
	class, err := h.uc.Create(c.Request().Context(), actor.ID, usecase.CreateClassInput{
		Name:           req.Name,
		Description:    req.Description,
		ClassTeacherID: teacherID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, class, "Class created successfully")
}

type updateClassRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	ClassTeacher *string `json:"class_teacher"`
}

// Update applies a partial update to a class. Sending class_teacher as an
// empty string clears the reference.
func (h *ClassHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateClassRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid class input")
	}

	input := usecase.UpdateClassInput{
		Name:        req.Name,
		Description: req.Description,
	}
	if req.ClassTeacher != nil {
		if *req.ClassTeacher == "" {
			input.ClearClassTeacher = true
		} else {
			teacherID, err := parseOptionalUUID("class_teacher", req.ClassTeacher)
			if err != nil {
				return err
			}
			input.ClassTeacherID = teacherID
		}
	}

	class, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, class, "Class updated successfully")
}

// List lists classes; ?deleted=only|all widens the scope.
func (h *ClassHandler) List(c echo.Context) error {
	classes, err := h.uc.List(c.Request().Context(), listScope(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, classes, "")
}

// Get returns a single class.
func (h *ClassHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	class, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, class, "")
}

// Students lists the active students enrolled in a class.
func (h *ClassHandler) Students(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	students, err := h.uc.Students(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, students, "")
}

// Delete soft deletes a class.
func (h *ClassHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Class deleted successfully")
}

// Purge physically removes a class.
func (h *ClassHandler) Purge(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Purge(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Class purged successfully")
}

// parseOptionalUUID parses an optional UUID-carrying field.
func parseOptionalUUID(pointer string, value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := uuid.Parse(*value)
	if err != nil {
		return nil, domainerrors.NewValidationError().Add(pointer, "Enter a valid UUID")
	}

	return &parsed, nil
}
