package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/kova98/redditthings/data"
)

type KeywordRepo struct {
	db *sqlx.DB
}

func NewKeywordRepo(db *sqlx.DB) *KeywordRepo {
	return &KeywordRepo{db}
}

func (r *KeywordRepo) CreateKeyword(keyword data.Keyword) (int, error) {
	query := `
		INSERT INTO keywords (keyword, match_mode, filters)
		VALUES (:keyword, :match_mode, :filters)
		ON CONFLICT (LOWER(keyword)) DO NOTHING
		RETURNING id`

	rows, err := r.db.NamedQuery(query, keyword)
	if err != nil {
		return 0, fmt.Errorf("create keyword: %w", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		if err = rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scan returned id: %w", err)
		}
		return id, nil
	}

	query = "SELECT id FROM keywords WHERE LOWER(keyword) = LOWER($1)"
	if err = r.db.Get(&id, query, keyword.Keyword); err != nil {
		return 0, fmt.Errorf("get existing keyword id: %w", err)
	}

	return id, nil
}

func (r *KeywordRepo) GetKeywordByID(id int) (*data.Keyword, error) {
	var keyword data.Keyword
	query := `
		SELECT id, keyword, match_mode, filters, active, created_at, updated_at
		FROM keywords
		WHERE id = $1`

	err := r.db.Get(&keyword, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get keyword by id: %w", err)
	}

	return &keyword, nil
}

func (r *KeywordRepo) GetKeywords() ([]data.Keyword, error) {
	var keywords []data.Keyword
	query := `
		SELECT id, keyword, match_mode, filters, active, created_at, updated_at
		FROM keywords
		ORDER BY created_at DESC`

	if err := r.db.Select(&keywords, query); err != nil {
		return nil, fmt.Errorf("get keywords: %w", err)
	}

	return keywords, nil
}

func (r *KeywordRepo) GetActiveKeywords() ([]data.Keyword, error) {
	var keywords []data.Keyword
	query := `
		SELECT id, keyword, match_mode, filters, active, created_at, updated_at
		FROM keywords
		WHERE active = true
		ORDER BY created_at DESC`

	if err := r.db.Select(&keywords, query); err != nil {
		return nil, fmt.Errorf("get active keywords: %w", err)
	}

	return keywords, nil
}

func (r *KeywordRepo) DeleteKeyword(id int) error {
	if _, err := r.db.Exec("DELETE FROM keywords WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete keyword: %w", err)
	}

	return nil
}
