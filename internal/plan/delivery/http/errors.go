package http

import (
	"errors"
	"net/http"

	"ai-planning-studio/internal/plan"
	pkgErrors "ai-planning-studio/pkg/errors"
)

// User-facing messages for the generate-plan endpoint.
const (
	msgSubjectRequired = "Subject is required"
	msgTooLarge        = "File content too large"
	msgBinaryContent   = "The file looks like a PDF or binary data. Please use text files (.txt, .md, .csv) or paste the content into the prompt field."
	msgRateLimited     = "Request limit reached. Please try again in a few seconds."
	msgQuotaExceeded   = "Insufficient credits. Please add more credits to your account."
	msgUnavailable     = "Error connecting to the AI service"
	msgInvalidResponse = "Failed to process the AI response"
	msgNotConfigured   = "AI service is not configured"
)

// mapError translates plan errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, plan.ErrSubjectRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgSubjectRequired)
	case errors.Is(err, plan.ErrContentTooLarge):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgTooLarge)
	case errors.Is(err, plan.ErrBinaryContent):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgBinaryContent)
	case errors.Is(err, plan.ErrRateLimited):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, msgRateLimited)
	case errors.Is(err, plan.ErrQuotaExceeded):
		return pkgErrors.NewHTTPError(http.StatusPaymentRequired, msgQuotaExceeded)
	case errors.Is(err, plan.ErrUpstreamUnavailable):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, msgUnavailable)
	case errors.Is(err, plan.ErrInvalidAIResponse):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, msgInvalidResponse)
	case errors.Is(err, plan.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, msgNotConfigured)
	default:
		return pkgErrors.ErrInternalServerError
	}
}
