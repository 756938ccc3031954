package http

import (
	"ai-planning-studio/internal/calendar"
	"ai-planning-studio/internal/model"
)

// --- Request DTOs ---

type exportReq struct {
	CalendarID string                `json:"calendarId"`
	Tasks      []model.GeneratedTask `json:"tasks"`
}

func (r exportReq) validate() error {
	if len(r.Tasks) == 0 {
		return calendar.ErrNoTasks
	}
	return nil
}

func (r exportReq) toInput() calendar.ExportInput {
	return calendar.ExportInput{
		CalendarID: r.CalendarID,
		Tasks:      r.Tasks,
	}
}

// --- Response DTOs ---

type exportResultResp struct {
	Index   int    `json:"index"`
	Text    string `json:"text"`
	Date    string `json:"date"`
	EventID string `json:"eventId,omitempty"`
	Link    string `json:"link,omitempty"`
	Error   string `json:"error,omitempty"`
}

type exportResp struct {
	Created int                `json:"created"`
	Failed  int                `json:"failed"`
	Results []exportResultResp `json:"results"`
}

func (h *handler) newExportResp(out calendar.ExportOutput) exportResp {
	results := make([]exportResultResp, 0, len(out.Results))
	for _, r := range out.Results {
		results = append(results, exportResultResp{
			Index:   r.Index,
			Text:    r.Text,
			Date:    r.Date,
			EventID: r.EventID,
			Link:    r.Link,
			Error:   r.Error,
		})
	}
	return exportResp{
		Created: out.Created,
		Failed:  out.Failed,
		Results: results,
	}
}
