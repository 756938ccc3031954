package extract

import (
	"bytes"
	"compress/zlib"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	pdfStreamKeyword = regexp.MustCompile(`stream\r?\n`)
	pdfFilter        = regexp.MustCompile(`/Filter\s*(?:\[([^\]]*)\]|(/\w+))`)
	pdfSkipDict      = regexp.MustCompile(`/Subtype\s*/Image|/Length1|/Type\s*/XRef|/Type\s*/Metadata`)
	pdfReadableRun   = regexp.MustCompile(`[A-Za-zÀ-ÿ0-9\s.,;:!?()-]{20,}`)
)

// PDF extracts the text drawn by content-stream text operators inside BT/ET
// blocks. When none are found it falls back to long printable runs, and when
// that yields fewer than 50 characters it returns MsgPDFUnreadable.
func PDF(data []byte) string {
	var lines []string
	for _, content := range pdfContentStreams(data) {
		lines = append(lines, scanTextObjects(content)...)
	}

	if len(lines) == 0 {
		lines = readableRuns(tolerantUTF8(data), pdfReadableRun, pdfRunMin)
	}

	result := strings.TrimSpace(strings.Join(lines, "\n"))
	if utf8.RuneCountInString(result) < pdfMinChars {
		return MsgPDFUnreadable
	}
	return result
}

// pdfContentStreams returns the decoded body of every stream that may carry
// page content. Input without any stream keyword is returned whole so that
// bare content fragments are still scanned.
func pdfContentStreams(data []byte) [][]byte {
	var (
		streams [][]byte
		found   bool
		offset  int
	)

	for offset < len(data) {
		loc := pdfStreamKeyword.FindIndex(data[offset:])
		if loc == nil {
			break
		}
		kwStart, bodyStart := offset+loc[0], offset+loc[1]
		offset = bodyStart
		if kwStart >= 3 && string(data[kwStart-3:kwStart]) == "end" {
			continue
		}
		found = true

		end := bytes.Index(data[bodyStart:], []byte("endstream"))
		if end < 0 {
			end = len(data) - bodyStart
		}
		body := data[bodyStart : bodyStart+end]
		offset = bodyStart + end

		if decoded, ok := decodeStream(streamDict(data[:kwStart]), body); ok {
			streams = append(streams, decoded)
		}
	}

	if !found {
		return [][]byte{data}
	}
	return streams
}

// streamDict returns the object header preceding a stream keyword.
func streamDict(prefix []byte) []byte {
	if i := bytes.LastIndex(prefix, []byte("obj")); i >= 0 {
		return prefix[i:]
	}
	if len(prefix) > 1024 {
		return prefix[len(prefix)-1024:]
	}
	return prefix
}

func decodeStream(dict, body []byte) ([]byte, bool) {
	if pdfSkipDict.Match(dict) {
		return nil, false
	}

	m := pdfFilter.FindSubmatch(dict)
	if m == nil {
		return bytes.TrimRight(body, "\r\n"), true
	}
	names := string(m[2])
	if len(m[1]) > 0 {
		names = string(m[1])
	}
	filters := strings.Fields(strings.ReplaceAll(names, "/", " /"))
	if len(filters) != 1 || (filters[0] != "/FlateDecode" && filters[0] != "/Fl") {
		return nil, false
	}
	return inflate(body)
}

// inflate keeps whatever was decompressed before a corrupt tail.
func inflate(body []byte) ([]byte, bool) {
	zr, err := zlib.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, false
	}
	defer zr.Close()

	out, _ := io.ReadAll(io.LimitReader(zr, maxInflatedBytes))
	return out, len(out) > 0
}

// scanTextObjects walks a content stream and returns one entry per visual line
// of text shown inside BT/ET blocks.
func scanTextObjects(content []byte) []string {
	var (
		lx       = pdfLexer{data: content}
		lines    []string
		line     strings.Builder
		operands []pdfToken
		array    []pdfToken
		inArray  bool
		inText   bool
		lastTmY  float64
	)

	flush := func() {
		if s := strings.TrimSpace(line.String()); s != "" {
			lines = append(lines, s)
		}
		line.Reset()
	}
	space := func() {
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
	}

	for {
		tok := lx.next()
		switch tok.kind {
		case tokEOF:
			flush()
			return lines

		case tokArrayStart:
			inArray = true
			array = nil

		case tokArrayEnd:
			if inArray {
				inArray = false
				operands = append(operands, pdfToken{kind: tokArray, items: array})
			}

		case tokString, tokNumber:
			if inArray {
				array = append(array, tok)
			} else {
				operands = append(operands, tok)
			}

		case tokOperator:
			if inArray {
				continue
			}
			switch string(tok.text) {
			case "BT":
				inText = true
			case "ET":
				flush()
				inText = false
			case "Tj":
				if inText {
					line.WriteString(lastString(operands))
				}
			case "'", `"`:
				if inText {
					flush()
					line.WriteString(lastString(operands))
				}
			case "TJ":
				if inText {
					line.WriteString(arrayText(operands))
				}
			case "Td", "TD":
				if inText {
					if ty, ok := numberAt(operands, 1); ok && ty != 0 {
						flush()
					} else {
						space()
					}
				}
			case "Tm":
				if inText {
					if y, ok := numberAt(operands, 5); ok && y != lastTmY {
						flush()
						lastTmY = y
					} else {
						space()
					}
				}
			case "T*":
				if inText {
					flush()
				}
			}
			operands = operands[:0]

		default:
			if !inArray {
				operands = append(operands, tok)
			}
		}
	}
}

func lastString(operands []pdfToken) string {
	for i := len(operands) - 1; i >= 0; i-- {
		if operands[i].kind == tokString {
			return decodePDFString(operands[i].text)
		}
	}
	return ""
}

// arrayText concatenates the strings of the last TJ array. Large negative
// adjustments are rendered as word gaps.
func arrayText(operands []pdfToken) string {
	for i := len(operands) - 1; i >= 0; i-- {
		if operands[i].kind != tokArray {
			continue
		}
		var sb strings.Builder
		for _, item := range operands[i].items {
			switch item.kind {
			case tokString:
				sb.WriteString(decodePDFString(item.text))
			case tokNumber:
				if item.num < -180 && sb.Len() > 0 {
					sb.WriteByte(' ')
				}
			}
		}
		return sb.String()
	}
	return ""
}

func numberAt(operands []pdfToken, idx int) (float64, bool) {
	if idx >= len(operands) || operands[idx].kind != tokNumber {
		return 0, false
	}
	return operands[idx].num, true
}

func readableRuns(text string, re *regexp.Regexp, minRunes int) []string {
	var runs []string
	for _, m := range re.FindAllString(text, -1) {
		if utf8.RuneCountInString(strings.TrimSpace(m)) > minRunes {
			runs = append(runs, m)
		}
	}
	return runs
}
