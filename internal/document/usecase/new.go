package usecase

import (
	"ai-planning-studio/pkg/log"
)

// Observer receives one notification per extraction.
type Observer interface {
	ObserveExtraction(format, outcome string, chars int)
}

// implUseCase is the private implementation of document.UseCase.
type implUseCase struct {
	l            log.Logger
	maxChars     int
	maxFileBytes int64
	observer     Observer
}

// New creates a document UseCase. maxChars bounds the extracted text and
// maxFileBytes the decoded upload; zero disables the respective limit.
func New(l log.Logger, maxChars int, maxFileBytes int64) *implUseCase {
	return &implUseCase{
		l:            l,
		maxChars:     maxChars,
		maxFileBytes: maxFileBytes,
	}
}

// SetObserver attaches an extraction observer (metrics).
func (uc *implUseCase) SetObserver(o Observer) {
	uc.observer = o
}
