package models

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	ID        uuid.UUID `json:"id"`
	Keyword   string    `json:"keyword"`
	Kind      string    `json:"kind"`
	Fullname  string    `json:"fullname"`
	Subreddit string    `json:"subreddit"`
	Author    string    `json:"author"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body"`
	Permalink string    `json:"permalink"`
	Edited    bool      `json:"edited"`
	PostedAt  time.Time `json:"postedAt"`
	CreatedAt time.Time `json:"createdAt"`
}

type GetMatchesResponse struct {
	Matches []Match `json:"matches"`
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	PerPage int     `json:"perPage"`
}
