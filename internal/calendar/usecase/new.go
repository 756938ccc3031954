package usecase

import (
	"ai-planning-studio/pkg/gcalendar"
	"ai-planning-studio/pkg/log"
)

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l          log.Logger
	client     gcalendar.ICalendar
	calendarID string
}

// New creates a calendar export UseCase. client may be nil when Google
// Calendar is not configured.
func New(l log.Logger, client gcalendar.ICalendar, calendarID string) *implUseCase {
	return &implUseCase{
		l:          l,
		client:     client,
		calendarID: calendarID,
	}
}
