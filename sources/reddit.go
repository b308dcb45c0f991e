package sources

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kova98/redditthings/data"
	"github.com/kova98/redditthings/enums"
	"github.com/kova98/redditthings/matchers"
	"github.com/kova98/redditthings/models"
	"github.com/pkg/errors"
)

const maxSeen = 50_000

type KeywordSource interface {
	GetActiveKeywords() ([]data.Keyword, error)
}

type MatchStore interface {
	CreateMatches(matches []data.Match) error
}

type PollerConfig struct {
	Subreddits   []string
	PageLimit    int
	MaxPages     int
	PollInterval time.Duration
}

type RedditPoller struct {
	logger          *slog.Logger
	client          *Client
	keywordRepo     KeywordSource
	matchRepo       MatchStore
	languages       *matchers.LanguageDetector
	seenPosts       map[string]bool
	seenComments    map[string]bool
	subscriptions   []matchers.Subscription
	cfg             PollerConfig
	requestDelay    time.Duration
	keywordInterval time.Duration
}

func NewRedditPoller(logger *slog.Logger, client *Client, keywordRepo KeywordSource, matchRepo MatchStore, languages *matchers.LanguageDetector, cfg PollerConfig) *RedditPoller {
	return &RedditPoller{
		logger:          logger,
		client:          client,
		keywordRepo:     keywordRepo,
		matchRepo:       matchRepo,
		languages:       languages,
		seenPosts:       make(map[string]bool),
		seenComments:    make(map[string]bool),
		cfg:             cfg,
		requestDelay:    2 * time.Second,
		keywordInterval: time.Minute,
	}
}

func (h *RedditPoller) StartPolling(ctx context.Context) {
	h.loadKeywords()
	h.logger.Info("starting reddit polling", "subscriptions", len(h.subscriptions), "interval", h.cfg.PollInterval.Seconds(), "subreddits", h.cfg.Subreddits)

	pollTicker := time.NewTicker(h.cfg.PollInterval)
	keywordTicker := time.NewTicker(h.keywordInterval)
	defer pollTicker.Stop()
	defer keywordTicker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("stopping reddit polling")
			return
		case <-pollTicker.C:
			h.pollOnce(ctx)
		case <-keywordTicker.C:
			h.loadKeywords()
		}
	}
}

func (h *RedditPoller) pollOnce(ctx context.Context) {
	if err := h.pollPosts(ctx); err != nil {
		h.logger.Error("poll posts", "error", err)
	}

	select {
	case <-ctx.Done():
		return
	case <-time.After(h.requestDelay): // rate limiting
	}

	if err := h.pollComments(ctx); err != nil {
		h.logger.Error("poll comments", "error", err)
	}
}

func (h *RedditPoller) firstPage(feed string) PageRequest {
	return PageRequest{Subreddits: h.cfg.Subreddits, Feed: feed, Limit: h.cfg.PageLimit}
}

// pollPosts walks the new feed page by page, storing each page's matches
// before fetching the next. Paging stops at the first page that holds
// nothing unseen, since everything older was handled last time.
func (h *RedditPoller) pollPosts(ctx context.Context) error {
	pager := NewPager(h.firstPage("new"), h.cfg.MaxPages)
	stored := 0

	for page := 0; ; page++ {
		req, ok := pager.Request()
		if !ok {
			break
		}

		listing, err := h.client.Submissions(ctx, req)
		if err != nil {
			return errors.Wrapf(err, "fetch submissions page %d (after=%q)", page, req.After)
		}

		var fresh []string
		matches := make([]data.Match, 0, 32)
		for _, post := range listing.Data.Items() {
			if h.seenPosts[post.Name] {
				continue
			}
			fresh = append(fresh, post.Name)

			matches = append(matches, h.matchItem(matchers.SubmissionItem(post), func(sub matchers.Subscription) data.Match {
				return submissionMatch(post, sub)
			})...)
		}

		if err := h.store(matches); err != nil {
			return err
		}
		stored += len(matches)
		for _, name := range fresh {
			h.seenPosts[name] = true
		}

		pager.Advance(listing.Data.After)
		if len(fresh) == 0 {
			pager.Stop()
		}
	}

	h.seenPosts = trimSeen(h.seenPosts)
	h.logger.Debug("processed posts", "new_matches", stored, "total_seen", len(h.seenPosts))
	return nil
}

func (h *RedditPoller) pollComments(ctx context.Context) error {
	pager := NewPager(h.firstPage("comments"), h.cfg.MaxPages)
	stored := 0

	for page := 0; ; page++ {
		req, ok := pager.Request()
		if !ok {
			break
		}

		listing, err := h.client.Comments(ctx, req)
		if err != nil {
			return errors.Wrapf(err, "fetch comments page %d (after=%q)", page, req.After)
		}

		var fresh []string
		matches := make([]data.Match, 0, 32)
		for _, comment := range listing.Data.Items() {
			if h.seenComments[comment.Name] {
				continue
			}
			fresh = append(fresh, comment.Name)

			matches = append(matches, h.matchItem(matchers.CommentItem(comment), func(sub matchers.Subscription) data.Match {
				return commentMatch(comment, sub)
			})...)
		}

		if err := h.store(matches); err != nil {
			return err
		}
		stored += len(matches)
		for _, name := range fresh {
			h.seenComments[name] = true
		}

		pager.Advance(listing.Data.After)
		if len(fresh) == 0 {
			pager.Stop()
		}
	}

	h.seenComments = trimSeen(h.seenComments)
	h.logger.Debug("processed comments", "new_matches", stored, "total_seen", len(h.seenComments))
	return nil
}

func (h *RedditPoller) matchItem(item matchers.Item, build func(matchers.Subscription) data.Match) []data.Match {
	var out []data.Match
	for _, sub := range h.subscriptions {
		ok, err := sub.Matches(item, h.languages)
		if err != nil {
			h.logger.Error("failed to check match", "error", err, "keyword_id", sub.ID)
			continue
		}
		if ok {
			out = append(out, build(sub))
		}
	}
	return out
}

func (h *RedditPoller) store(matches []data.Match) error {
	if len(matches) == 0 {
		return nil
	}
	return errors.Wrap(h.matchRepo.CreateMatches(matches), "store matches")
}

func (h *RedditPoller) loadKeywords() {
	keywords, err := h.keywordRepo.GetActiveKeywords()
	if err != nil {
		h.logger.Error("failed to refresh subscriptions", "error", err)
		return
	}

	active := make([]matchers.Subscription, 0, len(keywords))
	for _, keyword := range keywords {
		if sub, ok := matchers.NewSubscription(keyword); ok {
			active = append(active, sub)
		}
	}

	h.subscriptions = active
	h.logger.Info("refreshed subscriptions", "count", len(h.subscriptions))
}

func submissionMatch(post models.Submission, sub matchers.Subscription) data.Match {
	return data.Match{
		ID:        uuid.New(),
		KeywordID: sub.ID,
		Keyword:   sub.Keyword,
		ItemKind:  enums.ItemKindSubmission,
		Fullname:  post.Name,
		Subreddit: post.Subreddit,
		Author:    post.Author,
		Title:     post.Title,
		Body:      post.Selftext,
		Permalink: post.Permalink,
		Edited:    post.Edited.IsEdited(),
		Hash:      buildMatchHash(sub.ID, post.Name),
		PostedAt:  post.CreatedUTC.Time(),
	}
}

func commentMatch(comment models.Comment, sub matchers.Subscription) data.Match {
	m := data.Match{
		ID:        uuid.New(),
		KeywordID: sub.ID,
		Keyword:   sub.Keyword,
		ItemKind:  enums.ItemKindComment,
		Fullname:  comment.Name,
		Subreddit: comment.Subreddit,
		Author:    comment.Author,
		Body:      comment.Body,
		Edited:    comment.Edited.IsEdited(),
		Hash:      buildMatchHash(sub.ID, comment.Name),
		PostedAt:  comment.CreatedUTC.Time(),
	}
	if comment.LinkTitle != nil {
		m.Title = *comment.LinkTitle
	}
	if comment.Permalink != nil {
		m.Permalink = *comment.Permalink
	}
	return m
}

func buildMatchHash(keywordID int, fullname string) string {
	input := fmt.Sprintf("%d:%s", keywordID, fullname)
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

func trimSeen(seen map[string]bool) map[string]bool {
	if len(seen) <= maxSeen {
		return seen
	}
	return make(map[string]bool)
}
