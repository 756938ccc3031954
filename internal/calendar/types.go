package calendar

import "ai-planning-studio/internal/model"

// MaxTasks bounds one export request.
const MaxTasks = 60

// --- UseCase Inputs ---

type ExportInput struct {
	CalendarID string // empty means the configured default
	Tasks      []model.GeneratedTask
}

// --- UseCase Outputs ---

// ExportResult reports what happened to one task.
type ExportResult struct {
	Index   int
	Text    string
	Date    string
	EventID string
	Link    string
	Error   string // empty on success
}

type ExportOutput struct {
	Created int
	Failed  int
	Results []ExportResult
}
