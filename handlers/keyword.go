package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/kova98/redditthings/data"
	"github.com/kova98/redditthings/enums"
	"github.com/kova98/redditthings/models"
)

type KeywordStore interface {
	CreateKeyword(keyword data.Keyword) (int, error)
	GetKeywords() ([]data.Keyword, error)
	GetKeywordByID(id int) (*data.Keyword, error)
	DeleteKeyword(id int) error
}

type KeywordHandler struct {
	repo KeywordStore
}

func NewKeywordHandler(repo KeywordStore) *KeywordHandler {
	return &KeywordHandler{repo}
}

func (h *KeywordHandler) CreateKeyword(w http.ResponseWriter, r *http.Request) Result {
	var req models.CreateKeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	normalized := strings.ToLower(strings.TrimSpace(req.Keyword))
	if normalized == "" {
		return BadRequest("Keyword is required.")
	}

	if len(normalized) < 3 || len(normalized) > 50 {
		return BadRequest("Keyword must be between 3 and 50 characters.")
	}

	mode := enums.MatchMode(req.MatchMode)
	if mode == enums.MatchModeInvalid {
		mode = enums.MatchModeExact
	}
	if !mode.Valid() {
		return BadRequest("Match mode must be exact or broad.")
	}

	keyword := data.Keyword{
		Keyword:   normalized,
		MatchMode: mode,
		Active:    true,
	}
	if req.Filters != nil {
		keyword.Filters = models.ToDataFilters(*req.Filters)
	}

	id, err := h.repo.CreateKeyword(keyword)
	if err != nil {
		return InternalError(err, "create keyword: ")
	}

	return Created(id)
}

func (h *KeywordHandler) GetKeywords(w http.ResponseWriter, r *http.Request) Result {
	keywords, err := h.repo.GetKeywords()
	if err != nil {
		return InternalError(err, "get keywords: ")
	}

	res := &models.GetKeywordsResponse{Keywords: make([]models.Keyword, 0, len(keywords))}
	for _, k := range keywords {
		res.Keywords = append(res.Keywords, toKeywordResponse(k))
	}

	return Ok(res)
}

func (h *KeywordHandler) GetKeyword(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid keyword ID.")
	}

	keyword, err := h.repo.GetKeywordByID(id)
	if err != nil {
		return InternalError(err, "get keyword: ")
	}
	if keyword == nil {
		return NotFound("Keyword not found.")
	}

	return Ok(toKeywordResponse(*keyword))
}

func (h *KeywordHandler) DeleteKeyword(w http.ResponseWriter, r *http.Request) Result {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid keyword ID.")
	}

	if err := h.repo.DeleteKeyword(id); err != nil {
		return InternalError(err, "delete keyword: ")
	}

	return Ok(nil)
}

func toKeywordResponse(k data.Keyword) models.Keyword {
	return models.Keyword{
		ID:        k.ID,
		Keyword:   k.Keyword,
		MatchMode: string(k.MatchMode),
		Active:    k.Active,
		Filters:   models.FromDataFilters(k.Filters),
	}
}
