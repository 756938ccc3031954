package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"html"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	docxParagraph = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	docxRun       = regexp.MustCompile(`<w:t(?:\s[^>]*)?>([^<]*)</w:t>`)
)

// DOCX extracts paragraph text from word/document.xml. Paragraphs are
// separated by a blank line. Input that is not a readable zip archive is
// scanned for <w:t> runs directly.
func DOCX(data []byte) string {
	var paragraphs []string
	if doc, ok := readZipEntry(data, "word/document.xml"); ok {
		paragraphs = wordParagraphs(doc, "p", "t")
	} else {
		paragraphs = docxRegexParagraphs(tolerantUTF8(data))
	}

	result := strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
	if utf8.RuneCountInString(result) < officeMinChars {
		return MsgDOCXUnreadable
	}
	return result
}

func docxRegexParagraphs(doc string) []string {
	var paragraphs []string
	for _, p := range docxParagraph.FindAllString(doc, -1) {
		var sb strings.Builder
		for _, m := range docxRun.FindAllStringSubmatch(p, -1) {
			sb.WriteString(html.UnescapeString(m[1]))
		}
		if s := strings.TrimSpace(sb.String()); s != "" {
			paragraphs = append(paragraphs, s)
		}
	}
	if len(paragraphs) > 0 {
		return paragraphs
	}

	var runs []string
	for _, m := range docxRun.FindAllStringSubmatch(doc, -1) {
		if s := strings.TrimSpace(html.UnescapeString(m[1])); s != "" {
			runs = append(runs, s)
		}
	}
	if len(runs) == 0 {
		return nil
	}
	return []string{strings.Join(runs, " ")}
}

// wordParagraphs walks an Office XML part and returns the text of every
// paragraph element. paraTag and textTag are local names, so the same walker
// serves WordprocessingML (p/t) and DrawingML (p/t under the a: prefix).
func wordParagraphs(doc []byte, paraTag, textTag string) []string {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	dec.Strict = false

	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case textTag:
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br", "cr":
				current.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case textTag:
				inText = false
			case paraTag:
				if s := strings.TrimSpace(current.String()); s != "" {
					paragraphs = append(paragraphs, s)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		paragraphs = append(paragraphs, s)
	}
	return paragraphs
}

func openZip(data []byte) (*zip.Reader, bool) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, false
	}
	return zr, true
}

func readZipEntry(data []byte, name string) ([]byte, bool) {
	zr, ok := openZip(data)
	if !ok {
		return nil, false
	}
	for _, f := range zr.File {
		if f.Name == name {
			return readZipFile(f)
		}
	}
	return nil, false
}

func readZipFile(f *zip.File) ([]byte, bool) {
	rc, err := f.Open()
	if err != nil {
		return nil, false
	}
	defer rc.Close()

	out, err := io.ReadAll(io.LimitReader(rc, maxInflatedBytes))
	if err != nil && len(out) == 0 {
		return nil, false
	}
	return out, true
}
