package extract

import (
	"html"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	pptxSlideName = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)
	pptxRun       = regexp.MustCompile(`<a:t>([^<]*)</a:t>`)
)

// PPTX extracts slide text in slide order, one line per paragraph and a blank
// line between slides.
func PPTX(data []byte) string {
	var slides []string
	if zr, ok := openZip(data); ok {
		type slide struct {
			num  int
			text string
		}
		var found []slide
		for _, f := range zr.File {
			m := pptxSlideName.FindStringSubmatch(f.Name)
			if m == nil {
				continue
			}
			body, ok := readZipFile(f)
			if !ok {
				continue
			}
			num, _ := strconv.Atoi(m[1])
			if paras := wordParagraphs(body, "p", "t"); len(paras) > 0 {
				found = append(found, slide{num: num, text: strings.Join(paras, "\n")})
			}
		}
		sort.Slice(found, func(i, j int) bool { return found[i].num < found[j].num })
		for _, s := range found {
			slides = append(slides, s.text)
		}
	} else {
		var runs []string
		for _, m := range pptxRun.FindAllStringSubmatch(tolerantUTF8(data), -1) {
			if s := strings.TrimSpace(html.UnescapeString(m[1])); s != "" {
				runs = append(runs, s)
			}
		}
		if len(runs) > 0 {
			slides = []string{strings.Join(runs, "\n")}
		}
	}

	result := strings.TrimSpace(strings.Join(slides, "\n\n"))
	if utf8.RuneCountInString(result) < officeMinChars {
		return MsgPPTXUnreadable
	}
	return result
}
