package extract

import "strconv"

type pdfTokenKind int

const (
	tokEOF pdfTokenKind = iota
	tokString
	tokNumber
	tokArrayStart
	tokArrayEnd
	tokArray
	tokOperator
	tokOther
)

type pdfToken struct {
	kind  pdfTokenKind
	text  []byte // raw string bytes or operator name
	num   float64
	items []pdfToken
}

// pdfLexer splits a PDF content stream into operands and operators.
type pdfLexer struct {
	data []byte
	pos  int
}

func (lx *pdfLexer) next() pdfToken {
	lx.skipSpaceAndComments()
	if lx.pos >= len(lx.data) {
		return pdfToken{kind: tokEOF}
	}

	c := lx.data[lx.pos]
	switch {
	case c == '(':
		return pdfToken{kind: tokString, text: lx.literalString()}
	case c == '<':
		if lx.peek(1) == '<' {
			lx.pos += 2
			return pdfToken{kind: tokOther}
		}
		return pdfToken{kind: tokString, text: lx.hexString()}
	case c == '>':
		lx.pos++
		if lx.peek(0) == '>' {
			lx.pos++
		}
		return pdfToken{kind: tokOther}
	case c == '[':
		lx.pos++
		return pdfToken{kind: tokArrayStart}
	case c == ']':
		lx.pos++
		return pdfToken{kind: tokArrayEnd}
	case c == '/':
		lx.pos++
		lx.regularRun()
		return pdfToken{kind: tokOther}
	case c == '{' || c == '}' || c == ')':
		lx.pos++
		return pdfToken{kind: tokOther}
	}

	word := lx.regularRun()
	if len(word) == 0 {
		lx.pos++
		return pdfToken{kind: tokOther}
	}
	if isNumberStart(word[0]) {
		if n, err := strconv.ParseFloat(string(word), 64); err == nil {
			return pdfToken{kind: tokNumber, num: n}
		}
	}
	return pdfToken{kind: tokOperator, text: word}
}

func (lx *pdfLexer) peek(offset int) byte {
	if lx.pos+offset >= len(lx.data) {
		return 0
	}
	return lx.data[lx.pos+offset]
}

func (lx *pdfLexer) skipSpaceAndComments() {
	for lx.pos < len(lx.data) {
		c := lx.data[lx.pos]
		switch {
		case isPDFSpace(c):
			lx.pos++
		case c == '%':
			for lx.pos < len(lx.data) && lx.data[lx.pos] != '\n' && lx.data[lx.pos] != '\r' {
				lx.pos++
			}
		default:
			return
		}
	}
}

func (lx *pdfLexer) regularRun() []byte {
	start := lx.pos
	for lx.pos < len(lx.data) {
		c := lx.data[lx.pos]
		if isPDFSpace(c) || isPDFDelimiter(c) {
			break
		}
		lx.pos++
	}
	return lx.data[start:lx.pos]
}

// literalString reads a balanced (...) string, resolving escapes:
// \n \r \t \b \f \( \) \\, octal \ddd and backslash-newline continuations.
func (lx *pdfLexer) literalString() []byte {
	lx.pos++ // (
	var out []byte
	depth := 1

	for lx.pos < len(lx.data) {
		c := lx.data[lx.pos]
		lx.pos++

		switch c {
		case '\\':
			if lx.pos >= len(lx.data) {
				return out
			}
			e := lx.data[lx.pos]
			lx.pos++
			switch e {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case '\r':
				if lx.peek(0) == '\n' {
					lx.pos++
				}
			case '\n':
			default:
				if e >= '0' && e <= '7' {
					v := int(e - '0')
					for i := 0; i < 2 && lx.pos < len(lx.data); i++ {
						d := lx.data[lx.pos]
						if d < '0' || d > '7' {
							break
						}
						v = v*8 + int(d-'0')
						lx.pos++
					}
					out = append(out, byte(v))
				} else {
					out = append(out, e)
				}
			}
		case '(':
			depth++
			out = append(out, c)
		case ')':
			depth--
			if depth == 0 {
				return out
			}
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}
	return out
}

func (lx *pdfLexer) hexString() []byte {
	lx.pos++ // <
	var (
		out  []byte
		cur  byte
		half bool
	)
	for lx.pos < len(lx.data) {
		c := lx.data[lx.pos]
		lx.pos++
		if c == '>' {
			break
		}
		v, ok := hexValue(c)
		if !ok {
			continue
		}
		if half {
			out = append(out, cur<<4|v)
			half = false
		} else {
			cur = v
			half = true
		}
	}
	if half {
		out = append(out, cur<<4)
	}
	return out
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isPDFSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f' || c == 0
}

func isPDFDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isNumberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}
