package models

import "github.com/kova98/redditthings/things"

// SubredditAbout is the public metadata returned by /r/{subreddit}/about.
// CSS and styling fields are not decoded.
type SubredditAbout struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DisplayName   string `json:"display_name"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	SubredditType string `json:"subreddit_type"`
	// SubmissionType is one of any, link or self.
	SubmissionType string `json:"submission_type"`
	Lang           string `json:"lang"`

	Subscribers           uint64 `json:"subscribers"`
	AccountsActive        uint64 `json:"accounts_active"`
	CommentScoreHideMins  uint64 `json:"comment_score_hide_mins"`
	Description           string `json:"description"`
	DescriptionHTML       string `json:"description_html"`
	PublicDescription     string `json:"public_description"`
	PublicDescriptionHTML string `json:"public_description_html"`
	SubmitText            string `json:"submit_text"`

	// SubmitTextHTML is null when SubmitText is empty.
	SubmitTextHTML  *string `json:"submit_text_html"`
	SubmitTextLabel *string `json:"submit_text_label"`
	SubmitLinkLabel *string `json:"submit_link_label"`

	Created    things.Timestamp `json:"created"`
	CreatedUTC things.Timestamp `json:"created_utc"`

	WikiEnabled   bool `json:"wiki_enabled"`
	Over18        bool `json:"over18"`
	PublicTraffic bool `json:"public_traffic"`
	Quarantine    bool `json:"quarantine"`
}

func (s *SubredditAbout) UnmarshalJSON(b []byte) error {
	return things.DecodeRecord(b, s)
}
