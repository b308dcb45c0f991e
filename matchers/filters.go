package matchers

import (
	"strings"

	"github.com/kova98/redditthings/data"
	"github.com/kova98/redditthings/models"
)

// Item is the part of a decoded submission or comment that keywords and
// filters look at.
type Item struct {
	Text      string
	Subreddit string
	Over18    bool
}

func SubmissionItem(s models.Submission) Item {
	return Item{Text: s.Text(), Subreddit: s.Subreddit, Over18: s.Over18}
}

func CommentItem(c models.Comment) Item {
	return Item{Text: c.Body, Subreddit: c.Subreddit}
}

func MatchesSubreddit(f data.RedditFilters, subreddit string) bool {
	// Check exclude list first
	for _, excluded := range f.ExcludeSubreddits {
		if strings.EqualFold(excluded, subreddit) {
			return false
		}
	}

	// If include list is empty, allow all (that weren't excluded)
	if len(f.Subreddits) == 0 {
		return true
	}

	for _, included := range f.Subreddits {
		if strings.EqualFold(included, subreddit) {
			return true
		}
	}

	return false
}

// MatchesFilters applies every filter in f to item. The language filter is
// skipped when no detector is given.
func MatchesFilters(f data.RedditFilters, item Item, languages *LanguageDetector) bool {
	if f.ExcludeNSFW && item.Over18 {
		return false
	}
	if !MatchesSubreddit(f, item.Subreddit) {
		return false
	}
	if languages != nil && !languages.MatchesLanguage(f.Languages, item.Text) {
		return false
	}
	return true
}
