package http

import (
	"errors"
	"net/http"

	"ai-planning-studio/internal/document"
	pkgErrors "ai-planning-studio/pkg/errors"
)

// mapError translates document errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, document.ErrMissingFile):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "file and fileName are required")
	case errors.Is(err, document.ErrInvalidEncoding):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "file must be base64 encoded")
	case errors.Is(err, document.ErrFileTooLarge):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "file too large")
	case errors.Is(err, document.ErrUnsupportedFormat):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "file format not supported for extraction")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
