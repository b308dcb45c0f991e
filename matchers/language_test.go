package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageDetector(t *testing.T) {
	if testing.Short() {
		t.Skip("loads language models")
	}
	d := NewLanguageDetector()

	english := "The quick brown fox jumps over the lazy dog while everyone watches from the window."
	german := "Heute ist das Wetter in Berlin wirklich schön und wir gehen zusammen in den Park."

	code, ok := d.Detect(english)
	assert.True(t, ok)
	assert.Equal(t, "en", code)

	assert.True(t, d.MatchesLanguage(nil, german))
	assert.True(t, d.MatchesLanguage([]string{"DE"}, german))
	assert.False(t, d.MatchesLanguage([]string{"de"}, english))
}
