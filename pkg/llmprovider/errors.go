package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates the provider answered 429
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrProviderQuotaExceeded indicates the provider answered 402
	ErrProviderQuotaExceeded = errors.New("provider quota exceeded")

	// ErrProviderUnavailable covers transport failures and 5xx answers
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrProviderRejected covers any other non-2xx answer (bad key, bad model, ...)
	ErrProviderRejected = errors.New("provider rejected request")
)

// ProviderError wraps provider-specific errors. Kind is one of the
// ErrProvider* sentinels; errors.Is matches both Kind and Err.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

type statusCoder interface {
	HTTPStatus() int
}

// Classify wraps a client error into a *ProviderError with its kind.
func Classify(provider string, err error) error {
	if err == nil {
		return nil
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return err
	}
	return &ProviderError{Provider: provider, Kind: kindOf(err), Err: err}
}

func kindOf(err error) error {
	var sc statusCoder
	if errors.As(err, &sc) {
		switch code := sc.HTTPStatus(); {
		case code == http.StatusTooManyRequests:
			return ErrProviderRateLimited
		case code == http.StatusPaymentRequired:
			return ErrProviderQuotaExceeded
		case code == http.StatusRequestTimeout || code >= 500:
			return ErrProviderUnavailable
		default:
			return ErrProviderRejected
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrProviderTimeout
	}
	if errors.Is(err, context.Canceled) {
		return context.Canceled
	}
	return ErrProviderUnavailable
}

// Retryable reports whether another attempt on the same provider may succeed.
func Retryable(err error) bool {
	return errors.Is(err, ErrProviderUnavailable) || errors.Is(err, ErrProviderTimeout)
}

// canFallback reports whether the next provider should be tried. Rate limit
// and quota answers are surfaced to the caller as they are.
func canFallback(err error) bool {
	return !errors.Is(err, ErrProviderRateLimited) &&
		!errors.Is(err, ErrProviderQuotaExceeded) &&
		!errors.Is(err, context.Canceled)
}

// Outcome returns a short label for err, used in logs and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrProviderRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrProviderQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, ErrProviderTimeout):
		return "timeout"
	case errors.Is(err, ErrProviderRejected):
		return "rejected"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "unavailable"
	}
}
