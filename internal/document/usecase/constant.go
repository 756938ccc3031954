package usecase

// TruncationMarker is appended to documents cut at the character ceiling.
const TruncationMarker = "\n\n[... content truncated ...]"

// Extraction outcomes reported to the observer.
const (
	outcomeText      = "text"
	outcomeWarning   = "warning"
	outcomeTruncated = "truncated"
)
