package usecase

import (
	"context"
	"regexp"
	"strings"

	"ai-planning-studio/internal/plan"
	"ai-planning-studio/pkg/extract"
)

// binaryPattern matches control characters that do not occur in real text
// (tab, newlines and form feed are allowed).
var binaryPattern = regexp.MustCompile(`[\x00-\x08\x0E-\x1F\x7F-\x9F]`)

// prepareFileContent applies the inline ceiling, then rejects content that
// looks like raw binary pasted as text.
func (uc *implUseCase) prepareFileContent(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", nil
	}

	content, truncated := extract.Truncate(content, uc.cfg.MaxFileChars, InlineTruncationMarker)
	if truncated {
		uc.l.Infof(ctx, "plan.usecase: fileContent truncated to %d chars", uc.cfg.MaxFileChars)
	}

	if looksBinary(content) {
		return "", plan.ErrBinaryContent
	}
	return content, nil
}

// looksBinary inspects the first binaryProbeChars characters of s.
func looksBinary(s string) bool {
	n := 0
	for i := range s {
		if n == binaryProbeChars {
			s = s[:i]
			break
		}
		n++
	}
	return binaryPattern.MatchString(s)
}
