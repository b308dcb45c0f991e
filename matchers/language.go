package matchers

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LanguageDetector guesses the language of submission and comment text.
// Build one and share it; the underlying models load lazily on first use.
type LanguageDetector struct {
	detector lingua.LanguageDetector
}

func NewLanguageDetector() *LanguageDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		WithLowAccuracyMode().
		Build()

	return &LanguageDetector{detector: detector}
}

// Detect returns the lowercase ISO 639-1 code of the text's language.
func (d *LanguageDetector) Detect(text string) (string, bool) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// MatchesLanguage reports whether text is written in one of the allowed
// languages. An empty allow list accepts everything; text whose language
// cannot be determined is rejected otherwise.
func (d *LanguageDetector) MatchesLanguage(allowed []string, text string) bool {
	if len(allowed) == 0 {
		return true
	}

	code, ok := d.Detect(text)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if strings.EqualFold(a, code) {
			return true
		}
	}
	return false
}
