package http

import (
	"strings"

	"ai-planning-studio/internal/model"
	"ai-planning-studio/internal/plan"
)

// --- Request DTOs ---

type generateReq struct {
	Subject     string `json:"subject"`
	Topic       string `json:"topic"`
	Prompt      string `json:"prompt"`
	FileContent string `json:"fileContent"`
}

func (r generateReq) validate() error {
	if strings.TrimSpace(r.Subject) == "" {
		return plan.ErrSubjectRequired
	}
	return nil
}

func (r generateReq) toInput() plan.GenerateInput {
	return plan.GenerateInput{
		Subject:     r.Subject,
		Topic:       r.Topic,
		Prompt:      r.Prompt,
		FileContent: r.FileContent,
	}
}

// --- Response DTOs ---

type generateResp struct {
	Tasks    []model.GeneratedTask `json:"tasks"`
	Analysis *model.PlanAnalysis   `json:"analysis,omitempty"`
}

func (h *handler) newGenerateResp(out plan.GenerateOutput) generateResp {
	return generateResp{
		Tasks:    out.Tasks,
		Analysis: out.Analysis,
	}
}
