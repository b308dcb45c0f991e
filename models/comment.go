package models

import "github.com/kova98/redditthings/things"

type Comment struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Author      string  `json:"author"`
	Body        string  `json:"body"`
	BodyHTML    *string `json:"body_html"`
	Subreddit   string  `json:"subreddit"`
	SubredditID string  `json:"subreddit_id"`
	// LinkID is the fullname of the submission the comment belongs to.
	LinkID string `json:"link_id"`
	// ParentID is the fullname of the parent comment, or LinkID for top-level comments.
	ParentID  string  `json:"parent_id"`
	Permalink *string `json:"permalink"`
	LinkTitle *string `json:"link_title"`

	Score  int64  `json:"score"`
	Ups    int64  `json:"ups"`
	Downs  int64  `json:"downs"`
	Gilded uint64 `json:"gilded"`
	Depth  *int   `json:"depth"`

	Created    things.Timestamp `json:"created"`
	CreatedUTC things.Timestamp `json:"created_utc"`
	Edited     things.Edited    `json:"edited"`

	ScoreHidden bool `json:"score_hidden"`
	Archived    bool `json:"archived"`
	Stickied    bool `json:"stickied"`
	Saved       bool `json:"saved"`

	Likes               *bool   `json:"likes"`
	Distinguished       *string `json:"distinguished"`
	AuthorFlairText     *string `json:"author_flair_text"`
	AuthorFlairCSSClass *string `json:"author_flair_css_class"`

	BannedBy      *string `json:"banned_by"`
	ApprovedBy    *string `json:"approved_by"`
	RemovalReason *string `json:"removal_reason"`
	NumReports    *uint64 `json:"num_reports"`

	// Replies is "" on the wire when the comment has no loaded replies.
	// Flat listings such as /r/{sub}/comments omit it, hence the pointer.
	Replies *things.EmptyOr[things.Thing[things.Listing[Comment]]] `json:"replies"`
}

func (c *Comment) UnmarshalJSON(b []byte) error {
	return things.DecodeRecord(b, c)
}

// ReplyList returns the directly nested replies in server order.
func (c Comment) ReplyList() []Comment {
	if c.Replies == nil {
		return nil
	}
	listing, ok := c.Replies.Get()
	if !ok {
		return nil
	}
	return listing.Data.Items()
}

// Walk calls fn for c and every loaded reply beneath it, depth first, in
// server order.
func (c Comment) Walk(fn func(Comment)) {
	fn(c)
	for _, reply := range c.ReplyList() {
		reply.Walk(fn)
	}
}
