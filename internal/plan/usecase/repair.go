package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"ai-planning-studio/config"
	"ai-planning-studio/internal/model"
	"ai-planning-studio/internal/plan"
	"ai-planning-studio/pkg/datemath"
)

// repairTasks normalizes every task. It never fails: missing or invalid
// fields are replaced by defaults.
func (uc *implUseCase) repairTasks(raw []map[string]any, in plan.GenerateInput, today time.Time) []model.GeneratedTask {
	tasks := make([]model.GeneratedTask, len(raw))
	for i, t := range raw {
		text := stringField(t, "text", "title", "task")
		if text == "" {
			text = fmt.Sprintf("%s %s: day %d", taskEmojis[0], in.Subject, i+1)
		}

		category := stringField(t, "category")
		if category == "" {
			category = in.Subject
		}

		subject := stringField(t, "subject")
		if subject == "" {
			subject = taskSubjectFor(in.Topic)
		}

		tasks[i] = model.GeneratedTask{
			Text:        text,
			Description: stringField(t, "description", "details"),
			Priority:    normalizePriority(stringField(t, "priority")),
			Date:        uc.repairDate(stringField(t, "date"), i, today),
			Category:    category,
			Subject:     subject,
		}
	}
	return tasks
}

// repairDate applies the configured date policy to the date proposed for task i.
//
//	consecutive: always today+i
//	spaced:      keep a valid YYYY-MM-DD date, otherwise today+2i
func (uc *implUseCase) repairDate(proposed string, i int, today time.Time) string {
	if uc.cfg.DatePolicy == config.DatePolicySpaced {
		if datemath.IsISODate(proposed) {
			return proposed
		}
		return uc.calendar.DayString(today, i*2)
	}
	return uc.calendar.DayString(today, i)
}

func normalizePriority(p string) model.Priority {
	if pr := model.Priority(strings.ToLower(p)); pr.Valid() {
		return pr
	}
	switch strings.ToLower(p) {
	case "alta":
		return model.PriorityHigh
	case "baixa":
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}

// parseAnalysis reads the effort estimate. It returns nil unless a numeric
// difficulty is present; the difficulty is clamped to 1..5.
func parseAnalysis(m map[string]any) *model.PlanAnalysis {
	if m == nil {
		return nil
	}
	difficulty, ok := numberField(m, "estimated_difficulty", "estimatedDifficulty", "difficulty", "dificuldade_estimada")
	if !ok {
		return nil
	}

	a := &model.PlanAnalysis{
		EstimatedDifficulty: min(max(int(math.Round(difficulty)), 1), 5),
		Modules:             []string{},
	}
	if h, ok := numberField(m, "total_hours", "totalHours", "horas_totais"); ok && h > 0 {
		a.TotalHours = h
	}
	if d, ok := numberField(m, "recommended_days", "recommendedDays", "dias_recomendados"); ok && d > 0 {
		a.RecommendedDays = int(math.Round(d))
	}
	for _, key := range []string{"modules", "modulos"} {
		items, ok := m[key].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				a.Modules = append(a.Modules, strings.TrimSpace(s))
			}
		}
		break
	}
	return a
}
