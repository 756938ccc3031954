package http

import (
	"strings"

	"ai-planning-studio/internal/document"
)

// --- Request DTOs ---

type parseReq struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.File) == "" || strings.TrimSpace(r.FileName) == "" {
		return document.ErrMissingFile
	}
	return nil
}

func (r parseReq) toInput() document.ParseInput {
	return document.ParseInput{
		File:     r.File,
		FileName: r.FileName,
		FileType: r.FileType,
	}
}

// --- Response DTOs ---

type parseResp struct {
	Content   string `json:"content"`
	Truncated bool   `json:"truncated"`
	Warning   string `json:"warning,omitempty"`
	Format    string `json:"format"`
}

func (h *handler) newParseResp(out document.ExtractedText) parseResp {
	return parseResp{
		Content:   out.Content,
		Truncated: out.Truncated,
		Warning:   out.Warning,
		Format:    string(out.Format),
	}
}
