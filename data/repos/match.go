package repos

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kova98/redditthings/data"
)

type MatchRepo struct {
	db *sqlx.DB
}

func NewMatchRepo(db *sqlx.DB) *MatchRepo {
	return &MatchRepo{db}
}

func (r *MatchRepo) CreateMatches(matches []data.Match) error {
	if len(matches) == 0 {
		return nil
	}

	query := `
		INSERT INTO matches (id, keyword_id, item_kind, fullname, subreddit, author, title, body, permalink, edited, hash, posted_at, created_at)
		VALUES (:id, :keyword_id, :item_kind, :fullname, :subreddit, :author, :title, :body, :permalink, :edited, :hash, :posted_at, now())
		ON CONFLICT (hash) DO NOTHING`

	if _, err := r.db.NamedExec(query, matches); err != nil {
		return fmt.Errorf("create matches: %w", err)
	}

	return nil
}

func (r *MatchRepo) GetMatches(limit, offset int) ([]data.Match, int, error) {
	var total int
	if err := r.db.Get(&total, "SELECT COUNT(*) FROM matches"); err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}

	var matches []data.Match
	query := `
		SELECT m.id, m.keyword_id, k.keyword, m.item_kind, m.fullname, m.subreddit, m.author,
		       m.title, m.body, m.permalink, m.edited, m.hash, m.posted_at, m.created_at
		FROM matches m
		JOIN keywords k ON k.id = m.keyword_id
		ORDER BY m.created_at DESC
		LIMIT $1 OFFSET $2`

	if err := r.db.Select(&matches, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("get matches: %w", err)
	}

	return matches, total, nil
}
