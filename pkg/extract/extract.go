// Package extract turns uploaded document bytes into best-effort plain text.
//
// Every extractor is a pure function of its input and never fails: when no
// usable text can be recovered it returns a human-readable message starting
// with WarningMarker, which callers forward like any other text.
//
// Supported formats:
//   - PDF   content-stream text operators (Tj, TJ, ', ") inside BT/ET blocks,
//     Flate-compressed streams are inflated first; printable-run fallback
//   - DOCX  archive/zip -> word/document.xml, <w:p>/<w:t>; raw-byte scan fallback
//   - PPTX  archive/zip -> ppt/slides/slideN.xml, <a:p>/<a:t>; raw-byte scan fallback
//   - DOC   printable-run heuristic over 8-bit and UTF-16LE decodings
//   - TXT   UTF-8 / UTF-16 / Windows-1252 passthrough (also md, csv, json, xml)
//   - HTML  readability article text
package extract

import (
	"mime"
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatPPTX Format = "pptx"
	FormatText Format = "text"
	FormatHTML Format = "html"
)

var mimeFormats = map[string]Format{
	"application/pdf":    FormatPDF,
	"application/msword": FormatDOC,

	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   FormatDOCX,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": FormatPPTX,

	"text/html":             FormatHTML,
	"application/xhtml+xml": FormatHTML,
	"application/json":      FormatText,
	"application/xml":       FormatText,
	"text/csv":              FormatText,
	"text/markdown":         FormatText,
	"text/plain":            FormatText,
	"text/xml":              FormatText,
}

var extFormats = map[string]Format{
	".pdf":      FormatPDF,
	".docx":     FormatDOCX,
	".doc":      FormatDOC,
	".pptx":     FormatPPTX,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatText,
	".markdown": FormatText,
	".csv":      FormatText,
	".json":     FormatText,
	".xml":      FormatText,
}

// Detect picks a format from the declared MIME type first and the file
// extension second (case-insensitive). ok is false for unsupported input.
func Detect(mimeType, fileName string) (Format, bool) {
	if mt := normalizeMIME(mimeType); mt != "" {
		if f, ok := mimeFormats[mt]; ok {
			return f, true
		}
		if strings.HasPrefix(mt, "text/") {
			if f, ok := extFormats[strings.ToLower(filepath.Ext(fileName))]; ok {
				return f, true
			}
			return FormatText, true
		}
	}

	f, ok := extFormats[strings.ToLower(filepath.Ext(fileName))]
	return f, ok
}

// Extract runs the extractor for format over data.
func Extract(format Format, data []byte) string {
	switch format {
	case FormatPDF:
		return PDF(data)
	case FormatDOCX:
		return DOCX(data)
	case FormatDOC:
		return DOC(data)
	case FormatPPTX:
		return PPTX(data)
	case FormatHTML:
		return HTML(data)
	case FormatText:
		return Text(data)
	default:
		return MsgUnsupported
	}
}

// SupportedFormats returns all formats Extract understands.
func SupportedFormats() []Format {
	return []Format{FormatPDF, FormatDOCX, FormatDOC, FormatPPTX, FormatText, FormatHTML}
}

// IsWarning reports whether text is an in-band extraction warning.
func IsWarning(text string) bool {
	return strings.HasPrefix(text, WarningMarker)
}

func normalizeMIME(mimeType string) string {
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return strings.ToLower(mimeType)
	}
	return mt
}
