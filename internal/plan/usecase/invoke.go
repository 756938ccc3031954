package usecase

import (
	"context"
	"errors"
	"fmt"

	"ai-planning-studio/internal/plan"
	"ai-planning-studio/pkg/llmprovider"
)

// invoke sends the system prompt and the user turn to the model.
func (uc *implUseCase) invoke(ctx context.Context, in plan.GenerateInput, systemPrompt string) (*llmprovider.Response, error) {
	if uc.llm == nil {
		return nil, plan.ErrNotConfigured
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemPrompt,
		Messages: []llmprovider.Message{
			{Role: "user", Text: buildUserMessage(in)},
		},
		Temperature: uc.cfg.Temperature,
	})
	if err != nil {
		return nil, mapLLMError(err)
	}
	return resp, nil
}

// mapLLMError folds provider errors into the plan error taxonomy, keeping the
// original error in the chain for logging.
func mapLLMError(err error) error {
	switch {
	case errors.Is(err, llmprovider.ErrProviderRateLimited):
		return fmt.Errorf("%w: %w", plan.ErrRateLimited, err)
	case errors.Is(err, llmprovider.ErrProviderQuotaExceeded):
		return fmt.Errorf("%w: %w", plan.ErrQuotaExceeded, err)
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return fmt.Errorf("%w: %w", plan.ErrNotConfigured, err)
	default:
		return fmt.Errorf("%w: %w", plan.ErrUpstreamUnavailable, err)
	}
}
