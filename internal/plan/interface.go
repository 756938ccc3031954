package plan

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate builds the prompt, calls the model once and returns the repaired schedule.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
}
