package matchers

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchesWholeWord returns true if the keyword appears as a complete word in the text.
// Word boundaries are non-word runes or the start/end of the text.
func MatchesWholeWord(text, keyword string) bool {
	if keyword == "" {
		return false
	}

	idx := 0
	for idx <= len(text)-len(keyword) {
		pos := strings.Index(text[idx:], keyword)
		if pos == -1 {
			return false
		}
		pos += idx
		end := pos + len(keyword)

		before, _ := utf8.DecodeLastRuneInString(text[:pos])
		after, _ := utf8.DecodeRuneInString(text[end:])
		leftOk := pos == 0 || !isWordRune(before)
		rightOk := end == len(text) || !isWordRune(after)
		if leftOk && rightOk {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[pos:])
		idx = pos + size
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func MatchesPartially(text, keyword string) bool {
	return strings.Contains(text, keyword)
}
