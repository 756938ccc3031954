package usecase

import (
	"context"
	"errors"
	"strings"

	"ai-planning-studio/internal/plan"
	"ai-planning-studio/pkg/datemath"
)

// Generate runs one plan request: guard, prompt, model call, parse and repair.
// "today" is computed once and shared by the prompt and the date repair.
func (uc *implUseCase) Generate(ctx context.Context, input plan.GenerateInput) (plan.GenerateOutput, error) {
	input.Subject = strings.TrimSpace(input.Subject)
	input.Topic = strings.TrimSpace(input.Topic)
	input.Prompt = strings.TrimSpace(input.Prompt)

	if input.Subject == "" {
		uc.observe(outcomeInvalidRequest, 0)
		return plan.GenerateOutput{}, plan.ErrSubjectRequired
	}

	fileContent, err := uc.prepareFileContent(ctx, input.FileContent)
	if err != nil {
		uc.l.Warnf(ctx, "plan.usecase.Generate: rejected fileContent for %q: %v", input.Subject, err)
		uc.observe(outcomeInvalidRequest, 0)
		return plan.GenerateOutput{}, err
	}

	today := uc.calendar.Today(uc.now())
	todayStr := today.Format(datemath.DateFormat)

	systemPrompt := buildSystemPrompt(promptInput{
		Subject:      input.Subject,
		Topic:        input.Topic,
		Prompt:       input.Prompt,
		FileContent:  fileContent,
		Today:        todayStr,
		ExampleDates: uc.calendar.Sequence(today, uc.cfg.ExampleDays),
	})

	resp, err := uc.invoke(ctx, input, systemPrompt)
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Generate: invoke: %v", err)
		uc.observe(outcomeOf(err), 0)
		return plan.GenerateOutput{}, err
	}
	uc.l.Infof(ctx, "plan.usecase.Generate: AI response from %s/%s: %s", resp.ProviderName, resp.ModelName, excerpt(resp.Text, replyLogChars))

	raw, err := decodeReply(resp.Text)
	if err != nil {
		uc.l.Errorf(ctx, "plan.usecase.Generate: %v; reply: %s", err, excerpt(resp.Text, replyLogChars))
		uc.observe(outcomeInvalidResponse, 0)
		return plan.GenerateOutput{}, err
	}

	tasks := uc.repairTasks(raw.tasks, input, today)
	analysis := parseAnalysis(raw.analysis)
	if analysis != nil {
		uc.l.Infof(ctx, "plan.usecase.Generate: difficulty=%d hours=%v days=%d modules=%d tasks=%d",
			analysis.EstimatedDifficulty, analysis.TotalHours, analysis.RecommendedDays, len(analysis.Modules), len(tasks))
	}

	uc.observe(outcomeSuccess, len(tasks))
	return plan.GenerateOutput{
		Tasks:    tasks,
		Analysis: analysis,
		Today:    todayStr,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, plan.ErrRateLimited):
		return outcomeRateLimited
	case errors.Is(err, plan.ErrQuotaExceeded):
		return outcomeQuotaExceeded
	default:
		return outcomeUnavailable
	}
}
