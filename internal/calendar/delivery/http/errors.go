package http

import (
	"errors"
	"fmt"
	"net/http"

	"ai-planning-studio/internal/calendar"
	pkgErrors "ai-planning-studio/pkg/errors"
)

const msgNotConfigured = "Google Calendar export is not configured"

var msgTooManyTasks = fmt.Sprintf("At most %d tasks can be exported at once", calendar.MaxTasks)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrNoTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "No tasks to export")
	case errors.Is(err, calendar.ErrTooManyTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgTooManyTasks)
	case errors.Is(err, calendar.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, msgNotConfigured)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
