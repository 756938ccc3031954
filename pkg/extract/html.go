package extract

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

var (
	htmlScriptStyle = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	htmlTag         = regexp.MustCompile(`(?s)<[^>]+>`)
	blankLines      = regexp.MustCompile(`\n\s*\n+`)
)

var readabilityBase = &url.URL{Scheme: "http", Host: "localhost", Path: "/"}

// HTML returns the main article text of a page. When readability finds no
// article the markup is stripped instead.
func HTML(data []byte) string {
	doc := decodeText(data)

	if article, err := readability.FromReader(strings.NewReader(doc), readabilityBase); err == nil {
		if text := strings.TrimSpace(article.TextContent); text != "" {
			return text
		}
	}

	text := htmlScriptStyle.ReplaceAllString(doc, "")
	text = html.UnescapeString(htmlTag.ReplaceAllString(text, "\n"))
	text = strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n"))
	if text == "" {
		return MsgHTMLUnreadable
	}
	return text
}
