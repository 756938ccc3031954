package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-planning-studio/internal/calendar"
	"ai-planning-studio/internal/model"
	"ai-planning-studio/pkg/datemath"
	"ai-planning-studio/pkg/gcalendar"
)

// Google Calendar color ids per task priority.
var priorityColors = map[model.Priority]string{
	model.PriorityHigh:   "11", // red
	model.PriorityMedium: "5",  // yellow
	model.PriorityLow:    "2",  // green
}

// Export creates the events sequentially, in task order.
func (uc *implUseCase) Export(ctx context.Context, input calendar.ExportInput) (calendar.ExportOutput, error) {
	if uc.client == nil {
		return calendar.ExportOutput{}, calendar.ErrNotConfigured
	}
	if len(input.Tasks) == 0 {
		return calendar.ExportOutput{}, calendar.ErrNoTasks
	}
	if len(input.Tasks) > calendar.MaxTasks {
		return calendar.ExportOutput{}, calendar.ErrTooManyTasks
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.calendarID
	}

	out := calendar.ExportOutput{Results: make([]calendar.ExportResult, 0, len(input.Tasks))}
	for i, task := range input.Tasks {
		res := calendar.ExportResult{Index: i, Text: task.Text, Date: task.Date}

		if !datemath.IsISODate(task.Date) {
			res.Error = fmt.Sprintf("invalid date %q", task.Date)
		} else if ctx.Err() != nil {
			res.Error = ctx.Err().Error()
		} else {
			event, err := uc.client.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{
				CalendarID:  calendarID,
				Summary:     task.Text,
				Description: eventDescription(task),
				Date:        task.Date,
				ColorID:     priorityColors[task.Priority],
			})
			if err != nil {
				res.Error = err.Error()
			} else {
				res.EventID = event.ID
				res.Link = event.HtmlLink
			}
		}

		if res.Error != "" {
			out.Failed++
			uc.l.Warnf(ctx, "calendar.usecase.Export: task %d (%s): %s", i, task.Date, res.Error)
		} else {
			out.Created++
		}
		out.Results = append(out.Results, res)
	}

	uc.l.Infof(ctx, "calendar.usecase.Export: %d created, %d failed on %s", out.Created, out.Failed, calendarID)
	return out, nil
}

func eventDescription(task model.GeneratedTask) string {
	var sb strings.Builder
	if task.Description != "" {
		sb.WriteString(task.Description)
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(&sb, "Category: %s\n", task.Category)
	if task.Subject != "" {
		fmt.Fprintf(&sb, "Subject: %s\n", task.Subject)
	}
	fmt.Fprintf(&sb, "Priority: %s", task.Priority)
	return sb.String()
}
