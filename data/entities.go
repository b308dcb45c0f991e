package data

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/kova98/redditthings/enums"
)

type Keyword struct {
	ID        int             `db:"id"`
	Keyword   string          `db:"keyword"`
	MatchMode enums.MatchMode `db:"match_mode"`
	Filters   RedditFilters   `db:"filters"`
	Active    bool            `db:"active"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// RedditFilters narrows a keyword to some subreddits or languages. It is
// stored as jsonb.
type RedditFilters struct {
	Subreddits        []string `json:"subreddits,omitempty"`
	ExcludeSubreddits []string `json:"excludeSubreddits,omitempty"`
	// Languages holds ISO 639-1 codes. Empty means any language.
	Languages   []string `json:"languages,omitempty"`
	ExcludeNSFW bool     `json:"excludeNsfw,omitempty"`
}

func (f RedditFilters) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *RedditFilters) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = RedditFilters{}
		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return errors.New("reddit filters: unsupported column type")
	}
}

// Match is a decoded submission or comment that contained a keyword.
type Match struct {
	ID        uuid.UUID      `db:"id"`
	KeywordID int            `db:"keyword_id"`
	Keyword   string         `db:"keyword"`
	ItemKind  enums.ItemKind `db:"item_kind"`
	Fullname  string         `db:"fullname"`
	Subreddit string         `db:"subreddit"`
	Author    string         `db:"author"`
	Title     string         `db:"title"`
	Body      string         `db:"body"`
	Permalink string         `db:"permalink"`
	Edited    bool           `db:"edited"`
	Hash      string         `db:"hash"`
	PostedAt  time.Time      `db:"posted_at"`
	CreatedAt time.Time      `db:"created_at"`
}
