package calendar

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Export creates one all-day event per task. Per-task failures are
	// reported in the output and never abort the batch.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
