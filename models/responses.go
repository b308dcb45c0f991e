package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kova98/redditthings/things"
)

type (
	// SubmissionListing is a page of posts, e.g. /r/{subreddit}/new.json.
	SubmissionListing = things.Thing[things.Listing[Submission]]
	// CommentListing is a page of comments, e.g. /r/{subreddit}/comments.json.
	CommentListing = things.Thing[things.Listing[Comment]]
	// SubredditAboutThing is the response of /r/{subreddit}/about.json.
	SubredditAboutThing = things.Thing[SubredditAbout]
)

// CommentResponse is the response of /comments/{id}.json: a listing holding
// exactly the post, followed by a listing of its top-level comments.
type CommentResponse struct {
	Post     SubmissionListing
	Comments CommentListing
}

func (r *CommentResponse) UnmarshalJSON(b []byte) error {
	const typ = "CommentResponse"

	var parts []json.RawMessage
	if err := json.Unmarshal(b, &parts); err != nil {
		return &things.DecodeError{Kind: things.TypeMismatch, Type: typ, Raw: b, Err: err}
	}
	if len(parts) != 2 {
		return &things.DecodeError{Kind: things.TypeMismatch, Type: typ, Err: errors.New("expected a pair of listings")}
	}

	var out CommentResponse
	if err := json.Unmarshal(parts[0], &out.Post); err != nil {
		return things.ChildError(0, err)
	}
	if n := out.Post.Data.Len(); n != 1 {
		return &things.DecodeError{Kind: things.UnexpectedFieldShape, Field: "children", Type: typ, Err: fmt.Errorf("expected exactly one post, got %d", n)}
	}
	if err := json.Unmarshal(parts[1], &out.Comments); err != nil {
		return things.ChildError(1, err)
	}

	*r = out
	return nil
}

// Submission returns the post the comments belong to.
func (r CommentResponse) Submission() Submission {
	return r.Post.Data.Children[0].Data
}

// TopLevel returns the top-level comments in display order.
func (r CommentResponse) TopLevel() []Comment {
	return r.Comments.Data.Items()
}

func DecodeSubmissions(b []byte) (SubmissionListing, error) {
	return things.DecodeListing[Submission](b)
}

func DecodeComments(b []byte) (CommentListing, error) {
	return things.DecodeListing[Comment](b)
}

func DecodeSubredditAbout(b []byte) (SubredditAboutThing, error) {
	return things.Decode[SubredditAbout](b)
}

// DecodeCommentResponse decodes a post together with its comment tree. Both
// halves must decode; there is no partial result.
func DecodeCommentResponse(b []byte) (CommentResponse, error) {
	var r CommentResponse
	if err := things.Unmarshal(b, &r); err != nil {
		return CommentResponse{}, err
	}
	return r, nil
}
