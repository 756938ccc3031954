package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
)

var docReadableRun = regexp.MustCompile(`[A-Za-zÀ-ÿ0-9\s.,;:!?()\-]{15,}`)

// DOC recovers readable runs from a legacy binary Word file. Word 97+ stores
// text either as 8-bit Windows-1252 or as UTF-16LE, so both decodings are
// scanned and the one yielding more text wins.
func DOC(data []byte) string {
	best := ""
	for _, decoded := range []string{
		decodeWith(charmap.Windows1252, data),
		decodeWith(xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM), data),
	} {
		text := strings.TrimSpace(strings.Join(readableRuns(decoded, docReadableRun, docRunMin), "\n"))
		if utf8.RuneCountInString(text) > utf8.RuneCountInString(best) {
			best = text
		}
	}

	if best == "" {
		return MsgDOCLegacy
	}
	return best
}
