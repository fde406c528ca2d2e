// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	domainerrors "classteacher/internal/domain/errors"
	"classteacher/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// listScope maps the ?deleted query parameter onto a soft-deletion scope.
// The default is the active slice; "only" and "all" surface deleted rows.
func listScope(c echo.Context) usecase.ListScope {
	switch c.QueryParam("deleted") {
	case "only":
		return usecase.ScopeDeleted
	case "all":
		return usecase.ScopeAll
	default:
		return usecase.ScopeActive
	}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError().Add("id", "Enter a valid UUID")
	}

	return id, nil
}

// parseDate parses an optional date-only field.
func parseDate(pointer, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, domainerrors.NewValidationError().Add(pointer, "Enter a valid date in YYYY-MM-DD format")
	}

	return &parsed, nil
}
