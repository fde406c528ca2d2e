package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "classteacher/internal/delivery/context"
	"classteacher/internal/delivery/http/response"
	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudentHandler holds dependencies for student-related handlers.
type StudentHandler struct {
	uc     usecase.StudentUsecase
	logger *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(uc usecase.StudentUsecase, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		uc:     uc,
		logger: logger,
	}
}

type createStudentRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	DateOfBirth     string `json:"date_of_birth"`
	AdmissionNumber string `json:"admission_number"`
	Gender          string `json:"gender"`
	StudentClass    string `json:"student_class"`
}

// Create enrolls a student owned by the authenticated user.
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}

	dateOfBirth, err := parseDate("date_of_birth", req.DateOfBirth)
	if err != nil {
		return err
	}

	classID := uuid.Nil
	if req.StudentClass != "" {
		parsed, err := uuid.Parse(req.StudentClass)
		if err != nil {
			return domainerrors.NewValidationError().Add("student_class", "Enter a valid UUID")
		}
		classID = parsed
	}

	input := usecase.CreateStudentInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		AdmissionNumber: req.AdmissionNumber,
		Gender:          req.Gender,
		ClassID:         classID,
	}
	if dateOfBirth != nil {
		input.DateOfBirth = *dateOfBirth
	}

	actor := deliverycontext.GetUser(c)
	student, err := h.uc.Create(c.Request().Context(), actor.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, student, "Student enrolled successfully")
}

type updateStudentRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	DateOfBirth     *string `json:"date_of_birth"`
	AdmissionNumber *string `json:"admission_number"`
	Gender          *string `json:"gender"`
	StudentClass    *string `json:"student_class"`
}

// Update applies a partial update to a student.
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}

	input := usecase.UpdateStudentInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		AdmissionNumber: req.AdmissionNumber,
		Gender:          req.Gender,
	}
	if req.DateOfBirth != nil {
		var parsed *time.Time
		parsed, err = parseDate("date_of_birth", *req.DateOfBirth)
		if err != nil {
			return err
		}
		input.DateOfBirth = parsed
	}
	if req.StudentClass != nil {
		classID, err := parseOptionalUUID("student_class", req.StudentClass)
		if err != nil {
			return err
		}
		input.ClassID = classID
	}

	student, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, student, "Student updated successfully")
}

// List lists students; ?deleted=only|all widens the scope.
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.uc.List(c.Request().Context(), listScope(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, students, "")
}

// Get returns a single student.
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	student, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, student, "")
}

// Delete soft deletes a student.
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Student deleted successfully")
}

// Purge physically removes a student.
func (h *StudentHandler) Purge(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Purge(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Student purged successfully")
}
