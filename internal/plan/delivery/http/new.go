package http

import (
	"ai-planning-studio/internal/plan"
	"ai-planning-studio/pkg/log"
)

type handler struct {
	l  log.Logger
	uc plan.UseCase
}

// New creates a new HTTP handler for the plan domain.
func New(l log.Logger, uc plan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
