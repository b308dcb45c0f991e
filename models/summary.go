package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/kova98/redditthings/things"
)

// Schema names accepted by Summarize.
const (
	SchemaSubmissions = "submissions"
	SchemaComments    = "comments"
	SchemaThread      = "thread"
	SchemaAbout       = "about"
)

var Schemas = []string{SchemaSubmissions, SchemaComments, SchemaThread, SchemaAbout}

var ErrUnknownSchema = errors.New("unknown schema")

// ItemSummary is the compact view of a submission or comment.
type ItemSummary struct {
	Fullname  string     `json:"fullname"`
	Author    string     `json:"author"`
	Subreddit string     `json:"subreddit"`
	Title     string     `json:"title,omitempty"`
	Score     int64      `json:"score"`
	Depth     int        `json:"depth,omitempty"`
	Created   time.Time  `json:"created"`
	Edited    bool       `json:"edited"`
	EditedAt  *time.Time `json:"editedAt,omitempty"`
}

type ListingSummary struct {
	Kind   string        `json:"kind"`
	Count  int           `json:"count"`
	After  *string       `json:"after"`
	Before *string       `json:"before"`
	Items  []ItemSummary `json:"items"`
}

type ThreadSummary struct {
	Post     ItemSummary   `json:"post"`
	Comments []ItemSummary `json:"comments"`
}

type SubredditSummary struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Subscribers uint64    `json:"subscribers"`
	Over18      bool      `json:"over18"`
	Created     time.Time `json:"created"`
}

// DecodeErrorResponse describes why a body failed to decode.
type DecodeErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
	Type  string `json:"type,omitempty"`
	// Path lists the child indexes leading to the failure, outermost first.
	Path []int `json:"path,omitempty"`
}

func NewDecodeErrorResponse(err error) DecodeErrorResponse {
	res := DecodeErrorResponse{Error: err.Error()}

	var de *things.DecodeError
	for errors.As(err, &de) {
		res.Kind = string(de.Kind)
		res.Field = de.Field
		res.Type = de.Type
		if de.Kind != things.ChildDecodeFailure {
			break
		}
		res.Path = append(res.Path, de.Index)
		err = de.Err
	}
	return res
}

// Summarize decodes b as schema and returns its summary.
func Summarize(schema string, b []byte) (any, error) {
	switch schema {
	case SchemaSubmissions:
		listing, err := DecodeSubmissions(b)
		if err != nil {
			return nil, err
		}
		return summarizeListing(listing, SummarizeSubmission), nil
	case SchemaComments:
		listing, err := DecodeComments(b)
		if err != nil {
			return nil, err
		}
		return summarizeListing(listing, SummarizeComment), nil
	case SchemaThread:
		thread, err := DecodeCommentResponse(b)
		if err != nil {
			return nil, err
		}
		return SummarizeThread(thread), nil
	case SchemaAbout:
		about, err := DecodeSubredditAbout(b)
		if err != nil {
			return nil, err
		}
		return SummarizeSubreddit(about.Data), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, schema)
	}
}

func summarizeListing[T any](listing things.Thing[things.Listing[T]], summarize func(T) ItemSummary) ListingSummary {
	items := listing.Data.Items()
	res := ListingSummary{
		Kind:   string(listing.Kind),
		Count:  len(items),
		After:  listing.Data.After,
		Before: listing.Data.Before,
		Items:  make([]ItemSummary, 0, len(items)),
	}
	for _, item := range items {
		res.Items = append(res.Items, summarize(item))
	}
	return res
}

func SummarizeSubmission(s Submission) ItemSummary {
	return ItemSummary{
		Fullname:  s.Name,
		Author:    s.Author,
		Subreddit: s.Subreddit,
		Title:     s.Title,
		Score:     s.Score,
		Created:   s.CreatedUTC.Time(),
		Edited:    s.Edited.IsEdited(),
		EditedAt:  editedAt(s.Edited),
	}
}

func SummarizeComment(c Comment) ItemSummary {
	summary := ItemSummary{
		Fullname:  c.Name,
		Author:    c.Author,
		Subreddit: c.Subreddit,
		Score:     c.Score,
		Created:   c.CreatedUTC.Time(),
		Edited:    c.Edited.IsEdited(),
		EditedAt:  editedAt(c.Edited),
	}
	if c.Depth != nil {
		summary.Depth = *c.Depth
	}
	return summary
}

// SummarizeThread flattens the comment tree depth first.
func SummarizeThread(r CommentResponse) ThreadSummary {
	res := ThreadSummary{Post: SummarizeSubmission(r.Submission())}
	for _, top := range r.TopLevel() {
		top.Walk(func(c Comment) {
			res.Comments = append(res.Comments, SummarizeComment(c))
		})
	}
	return res
}

func SummarizeSubreddit(s SubredditAbout) SubredditSummary {
	return SubredditSummary{
		Name:        s.DisplayName,
		Title:       s.Title,
		Subscribers: s.Subscribers,
		Over18:      s.Over18,
		Created:     s.CreatedUTC.Time(),
	}
}

func editedAt(e things.Edited) *time.Time {
	t, ok := e.Time()
	if !ok {
		return nil
	}
	return &t
}
