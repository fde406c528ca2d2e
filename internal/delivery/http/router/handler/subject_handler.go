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

// SubjectHandler holds dependencies for subject-related handlers.
type SubjectHandler struct {
	uc     usecase.SubjectUsecase
	logger *slog.Logger
}

// NewSubjectHandler is the constructor for SubjectHandler, injected by Fx.
func NewSubjectHandler(uc usecase.SubjectUsecase, logger *slog.Logger) *SubjectHandler {
	return &SubjectHandler{
		uc:     uc,
		logger: logger,
	}
}

type createSubjectRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Create creates a subject owned by the authenticated user.
func (h *SubjectHandler) Create(c echo.Context) error {
	var req createSubjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subject input")
	}

	actor := deliverycontext.GetUser(c)
	subject, err := h.uc.Create(c.Request().Context(), actor.ID, usecase.CreateSubjectInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subject, "Subject created successfully")
}

type updateSubjectRequest struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// Update applies a partial update to a subject.
func (h *SubjectHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateSubjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subject input")
	}

	subject, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateSubjectInput{
		Name: req.Name,
		Code: req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subject, "Subject updated successfully")
}

// List lists subjects; ?deleted=only|all widens the scope.
func (h *SubjectHandler) List(c echo.Context) error {
	subjects, err := h.uc.List(c.Request().Context(), listScope(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subjects, "")
}

// Get returns a single subject.
func (h *SubjectHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	subject, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subject, "")
}

// Delete soft deletes a subject.
func (h *SubjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subject deleted successfully")
}

// Purge physically removes a subject.
func (h *SubjectHandler) Purge(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Purge(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subject purged successfully")
}
