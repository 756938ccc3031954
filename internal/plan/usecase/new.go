package usecase

import (
	"context"
	"time"

	"ai-planning-studio/config"
	"ai-planning-studio/pkg/datemath"
	"ai-planning-studio/pkg/llmprovider"
	"ai-planning-studio/pkg/log"
)

// Generator is the LLM invocation the use case depends on; *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Observer receives one notification per plan generation.
type Observer interface {
	ObservePlan(outcome string, tasks int)
}

// implUseCase is the private implementation of plan.UseCase.
type implUseCase struct {
	l        log.Logger
	llm      Generator
	calendar *datemath.Calendar
	cfg      config.PlanConfig
	now      func() time.Time
	observer Observer
}

// New creates a plan UseCase. llm may be nil, in which case Generate fails
// with plan.ErrNotConfigured.
func New(l log.Logger, llm Generator, calendar *datemath.Calendar, cfg config.PlanConfig) *implUseCase {
	return &implUseCase{
		l:        l,
		llm:      llm,
		calendar: calendar,
		cfg:      cfg,
		now:      time.Now,
	}
}

// SetObserver attaches a plan observer (metrics).
func (uc *implUseCase) SetObserver(o Observer) {
	uc.observer = o
}

func (uc *implUseCase) observe(outcome string, tasks int) {
	if uc.observer != nil {
		uc.observer.ObservePlan(outcome, tasks)
	}
}
