package extract

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// Text decodes a plain-text upload. UTF-16 is recognised by its byte order
// mark and invalid UTF-8 is read as Windows-1252.
func Text(data []byte) string {
	text := strings.TrimSpace(strings.ReplaceAll(decodeText(data), "\r\n", "\n"))
	if text == "" {
		return MsgTextEmpty
	}
	return text
}

func decodeText(data []byte) string {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return tolerantUTF8(data[len(utf8BOM):])
	case bytes.HasPrefix(data, utf16LEBOM):
		return decodeWith(xunicode.UTF16(xunicode.LittleEndian, xunicode.ExpectBOM), data)
	case bytes.HasPrefix(data, utf16BEBOM):
		return decodeWith(xunicode.UTF16(xunicode.BigEndian, xunicode.ExpectBOM), data)
	case utf8.Valid(data):
		return string(data)
	default:
		return decodeWith(charmap.Windows1252, data)
	}
}

func decodeWith(enc encoding.Encoding, data []byte) string {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return tolerantUTF8(data)
	}
	return string(out)
}

// tolerantUTF8 replaces invalid byte sequences with U+FFFD.
func tolerantUTF8(data []byte) string {
	return strings.ToValidUTF8(string(data), "\uFFFD")
}

// decodePDFString turns the raw bytes of a PDF string into text: UTF-16BE when
// it carries a byte order mark, UTF-8 when valid and Latin-1 otherwise.
// Control characters other than line breaks and tabs are dropped.
func decodePDFString(raw []byte) string {
	var s string
	switch {
	case bytes.HasPrefix(raw, utf16BEBOM):
		s = decodeWith(xunicode.UTF16(xunicode.BigEndian, xunicode.ExpectBOM), raw)
	case utf8.Valid(raw):
		s = string(raw)
	default:
		s = decodeWith(charmap.ISO8859_1, raw)
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return r
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsPrint(r):
			return r
		}
		return -1
	}, s)
}
