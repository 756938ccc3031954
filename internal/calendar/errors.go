package calendar

import "errors"

var (
	ErrNoTasks       = errors.New("no tasks to export")
	ErrTooManyTasks  = errors.New("too many tasks to export")
	ErrNotConfigured = errors.New("google calendar is not configured")
)
