package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"ai-planning-studio/internal/document"
	"ai-planning-studio/pkg/extract"
)

// Parse decodes the base64 payload and hands it to Extract.
func (uc *implUseCase) Parse(ctx context.Context, input document.ParseInput) (document.ExtractedText, error) {
	if strings.TrimSpace(input.File) == "" || strings.TrimSpace(input.FileName) == "" {
		return document.ExtractedText{}, document.ErrMissingFile
	}

	payload := stripDataURL(input.File)
	if uc.maxFileBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(payload))) > uc.maxFileBytes+2 {
		return document.ExtractedText{}, document.ErrFileTooLarge
	}

	data, err := decodeBase64(payload)
	if err != nil {
		uc.l.Warnf(ctx, "document.usecase.Parse: decode %s: %v", input.FileName, err)
		return document.ExtractedText{}, document.ErrInvalidEncoding
	}

	return uc.Extract(ctx, document.UploadedDocument{
		Bytes:            data,
		DeclaredMimeType: input.FileType,
		FileName:         input.FileName,
	})
}

// Extract picks the extractor, runs it and applies the character ceiling.
func (uc *implUseCase) Extract(ctx context.Context, doc document.UploadedDocument) (document.ExtractedText, error) {
	if uc.maxFileBytes > 0 && int64(len(doc.Bytes)) > uc.maxFileBytes {
		return document.ExtractedText{}, document.ErrFileTooLarge
	}

	format, ok := extract.Detect(doc.DeclaredMimeType, doc.FileName)
	if !ok {
		return document.ExtractedText{}, fmt.Errorf("%w: %s (%s)", document.ErrUnsupportedFormat, doc.FileName, doc.DeclaredMimeType)
	}

	text := extract.Extract(format, doc.Bytes)
	out := document.ExtractedText{Content: text, Format: format}

	outcome := outcomeText
	if extract.IsWarning(text) {
		out.Warning = text
		outcome = outcomeWarning
		uc.l.Infof(ctx, "document.usecase.Extract: no usable text in %s (%s, %d bytes)", doc.FileName, format, len(doc.Bytes))
	} else {
		out.Content, out.Truncated = extract.Truncate(text, uc.maxChars, TruncationMarker)
		if out.Truncated {
			outcome = outcomeTruncated
			uc.l.Infof(ctx, "document.usecase.Extract: %s truncated to %d chars", doc.FileName, uc.maxChars)
		}
	}

	if uc.observer != nil {
		uc.observer.ObserveExtraction(string(format), outcome, len([]rune(out.Content)))
	}
	return out, nil
}

// stripDataURL removes a "data:<mime>;base64," prefix and any whitespace.
func stripDataURL(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r', '\t':
			return -1
		}
		return r
	}, s)
}

func decodeBase64(s string) ([]byte, error) {
	if data, err := base64.StdEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	if data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); err == nil {
		return data, nil
	}
	return base64.URLEncoding.DecodeString(s)
}
