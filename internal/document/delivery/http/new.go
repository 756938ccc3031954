package http

import (
	"ai-planning-studio/internal/document"
	"ai-planning-studio/pkg/log"
)

type handler struct {
	l  log.Logger
	uc document.UseCase
}

// New creates a new HTTP handler for the document domain.
func New(l log.Logger, uc document.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
