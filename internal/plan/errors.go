package plan

import "errors"

var (
	ErrSubjectRequired     = errors.New("subject is required")
	ErrBinaryContent       = errors.New("file content looks like binary data")
	ErrContentTooLarge     = errors.New("request body too large")
	ErrRateLimited         = errors.New("AI service rate limited")
	ErrQuotaExceeded       = errors.New("AI service credits exhausted")
	ErrUpstreamUnavailable = errors.New("could not reach the AI service")
	ErrInvalidAIResponse   = errors.New("failed to process AI response")
	ErrNotConfigured       = errors.New("AI service is not configured")
)
