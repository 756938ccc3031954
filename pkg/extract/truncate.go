package extract

import "unicode/utf8"

// Truncate cuts text to at most max runes and appends marker when it had to
// cut. The result is exactly max runes plus the marker in that case.
func Truncate(text string, max int, marker string) (string, bool) {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text, false
	}
	n := 0
	for i := range text {
		if n == max {
			return text[:i] + marker, true
		}
		n++
	}
	return text, false
}
