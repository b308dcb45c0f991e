package handlers

import (
	"net/http"
	"strconv"

	"github.com/kova98/redditthings/data"
	"github.com/kova98/redditthings/models"
)

type MatchLister interface {
	GetMatches(limit, offset int) ([]data.Match, int, error)
}

type MatchHandler struct {
	repo MatchLister
}

func NewMatchHandler(repo MatchLister) *MatchHandler {
	return &MatchHandler{repo}
}

func (h *MatchHandler) GetMatches(w http.ResponseWriter, r *http.Request) Result {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage := 20
	offset := (page - 1) * perPage

	matches, total, err := h.repo.GetMatches(perPage, offset)
	if err != nil {
		return InternalError(err, "get matches")
	}

	res := models.GetMatchesResponse{
		Matches: make([]models.Match, 0, len(matches)),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}

	for _, m := range matches {
		res.Matches = append(res.Matches, models.Match{
			ID:        m.ID,
			Keyword:   m.Keyword,
			Kind:      string(m.ItemKind),
			Fullname:  m.Fullname,
			Subreddit: m.Subreddit,
			Author:    m.Author,
			Title:     m.Title,
			Body:      m.Body,
			Permalink: m.Permalink,
			Edited:    m.Edited,
			PostedAt:  m.PostedAt,
			CreatedAt: m.CreatedAt,
		})
	}

	return Ok(res)
}
