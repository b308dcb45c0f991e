package matchers

import (
	"errors"
	"strings"

	"github.com/kova98/redditthings/data"
	"github.com/kova98/redditthings/enums"
)

// Subscription is an active keyword prepared for matching.
type Subscription struct {
	ID        int
	Keyword   string
	MatchMode enums.MatchMode
	Filters   data.RedditFilters
}

// NewSubscription normalizes k. It returns false for blank keywords.
func NewSubscription(k data.Keyword) (Subscription, bool) {
	kw := strings.TrimSpace(strings.ToLower(k.Keyword))
	if kw == "" {
		return Subscription{}, false
	}
	return Subscription{ID: k.ID, Keyword: kw, MatchMode: k.MatchMode, Filters: k.Filters}, true
}

func (s Subscription) Matches(item Item, languages *LanguageDetector) (bool, error) {
	textLower := strings.ToLower(item.Text)

	switch s.MatchMode {
	case enums.MatchModeExact:
		if !MatchesWholeWord(textLower, s.Keyword) {
			return false, nil
		}
	case enums.MatchModeBroad:
		if !MatchesPartially(textLower, s.Keyword) {
			return false, nil
		}
	default:
		return false, errors.New("invalid match mode: " + string(s.MatchMode))
	}

	return MatchesFilters(s.Filters, item, languages), nil
}
