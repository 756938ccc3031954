package document

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse decodes a base64 upload and extracts its text.
	Parse(ctx context.Context, input ParseInput) (ExtractedText, error)
	// Extract runs format detection, extraction and truncation over raw bytes.
	Extract(ctx context.Context, doc UploadedDocument) (ExtractedText, error)
}
