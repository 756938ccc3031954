package document

import "ai-planning-studio/pkg/extract"

// --- Domain Models ---

// UploadedDocument is a decoded upload. It is never persisted.
type UploadedDocument struct {
	Bytes            []byte
	DeclaredMimeType string
	FileName         string
}

// ExtractedText is the text recovered from a document.
// When nothing usable was found Warning is set and Content holds the same message.
type ExtractedText struct {
	Content   string
	Truncated bool
	Warning   string
	Format    extract.Format
}

// --- UseCase Inputs ---

// ParseInput is an upload as it arrives over HTTP: base64 data plus metadata.
type ParseInput struct {
	File     string
	FileName string
	FileType string
}
