package model

// Priority of a generated study task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the accepted priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// GeneratedTask is one day of a generated study plan.
type GeneratedTask struct {
	Text        string   `json:"text"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Category    string   `json:"category"`
	Subject     string   `json:"subject,omitempty"`
}

// PlanAnalysis is the model's own estimate of the study effort.
type PlanAnalysis struct {
	EstimatedDifficulty int      `json:"estimatedDifficulty"` // 1..5
	TotalHours          float64  `json:"totalHours"`
	RecommendedDays     int      `json:"recommendedDays"`
	Modules             []string `json:"modules"`
}
