package models

import "github.com/kova98/redditthings/data"

type Filters struct {
	Subreddits        []string `json:"subreddits"`
	ExcludeSubreddits []string `json:"excludeSubreddits"`
	Languages         []string `json:"languages"`
	ExcludeNSFW       bool     `json:"excludeNsfw"`
}

type CreateKeywordRequest struct {
	Keyword   string   `json:"keyword"`
	MatchMode string   `json:"matchMode"`
	Filters   *Filters `json:"filters"`
}

type Keyword struct {
	ID        int     `json:"id"`
	Keyword   string  `json:"keyword"`
	MatchMode string  `json:"matchMode"`
	Active    bool    `json:"active"`
	Filters   Filters `json:"filters"`
}

type GetKeywordsResponse struct {
	Keywords []Keyword `json:"keywords"`
}

func ToDataFilters(f Filters) data.RedditFilters {
	return data.RedditFilters{
		Subreddits:        f.Subreddits,
		ExcludeSubreddits: f.ExcludeSubreddits,
		Languages:         f.Languages,
		ExcludeNSFW:       f.ExcludeNSFW,
	}
}

func FromDataFilters(f data.RedditFilters) Filters {
	return Filters{
		Subreddits:        f.Subreddits,
		ExcludeSubreddits: f.ExcludeSubreddits,
		Languages:         f.Languages,
		ExcludeNSFW:       f.ExcludeNSFW,
	}
}
