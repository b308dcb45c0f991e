package models

import "github.com/kova98/redditthings/things"

// Submission is a link or self post. Score, Ups and Downs may be fuzzed by
// Reddit and are not expected to add up.
//
// Pointer fields are absent unless Reddit sent them. The moderation fields
// (BannedBy, ApprovedBy, RemovalReason, NumReports) are only sent to
// moderators of the subreddit, so nil means "not visible to you", not "none".
type Submission struct {
	// ID is the base-36 id without the t3_ prefix.
	ID string `json:"id"`
	// Name is the fullname, e.g. t3_abc123.
	Name        string `json:"name"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Domain      string `json:"domain"`
	Subreddit   string `json:"subreddit"`
	SubredditID string `json:"subreddit_id"`
	Permalink   string `json:"permalink"`
	Thumbnail   string `json:"thumbnail"`
	// Selftext is empty for link posts.
	Selftext     string  `json:"selftext"`
	SelftextHTML *string `json:"selftext_html"`
	URL          *string `json:"url"`

	Score       int64  `json:"score"`
	Ups         int64  `json:"ups"`
	Downs       int64  `json:"downs"`
	NumComments uint64 `json:"num_comments"`
	Gilded      uint64 `json:"gilded"`

	// Created is in the server's local time, CreatedUTC in UTC. Both are kept.
	Created    things.Timestamp `json:"created"`
	CreatedUTC things.Timestamp `json:"created_utc"`
	Edited     things.Edited    `json:"edited"`

	IsSelf     bool `json:"is_self"`
	Over18     bool `json:"over_18"`
	Archived   bool `json:"archived"`
	Locked     bool `json:"locked"`
	Stickied   bool `json:"stickied"`
	Quarantine bool `json:"quarantine"`
	HideScore  bool `json:"hide_score"`
	Hidden     bool `json:"hidden"`
	Saved      bool `json:"saved"`
	Clicked    bool `json:"clicked"`
	Visited    bool `json:"visited"`

	// Likes is true for an upvote, false for a downvote and nil for no vote.
	Likes               *bool   `json:"likes"`
	SuggestedSort       *string `json:"suggested_sort"`
	LinkFlairText       *string `json:"link_flair_text"`
	LinkFlairCSSClass   *string `json:"link_flair_css_class"`
	AuthorFlairText     *string `json:"author_flair_text"`
	AuthorFlairCSSClass *string `json:"author_flair_css_class"`
	Distinguished       *string `json:"distinguished"`

	BannedBy      *string `json:"banned_by"`
	ApprovedBy    *string `json:"approved_by"`
	RemovalReason *string `json:"removal_reason"`
	NumReports    *uint64 `json:"num_reports"`
}

func (s *Submission) UnmarshalJSON(b []byte) error {
	return things.DecodeRecord(b, s)
}

// Text returns the title and body joined for keyword matching.
func (s Submission) Text() string {
	if s.Selftext == "" {
		return s.Title
	}
	return s.Title + " " + s.Selftext
}
