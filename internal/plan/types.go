package plan

import "ai-planning-studio/internal/model"

// --- UseCase Inputs ---

// GenerateInput is a PlanRequest: what the user wants to study.
type GenerateInput struct {
	Subject     string // required
	Topic       string
	Prompt      string // free-form context typed by the user
	FileContent string // text of an attached document, already extracted
}

// --- UseCase Outputs ---

type GenerateOutput struct {
	Tasks    []model.GeneratedTask
	Analysis *model.PlanAnalysis // nil when the model gave no usable analysis
	Today    string              // YYYY-MM-DD the schedule starts from
	Provider string
	Model    string
}
