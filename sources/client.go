package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kova98/redditthings/metrics"
	"github.com/kova98/redditthings/models"
)

// Client fetches Reddit JSON endpoints and hands the bodies to the decoders.
type Client struct {
	httpClient *http.Client
	metrics    *metrics.Metrics
	baseURL    string
	userAgent  string
}

func NewClient(httpClient *http.Client, m *metrics.Metrics, baseURL, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		metrics:    m,
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
	}
}

// Submissions fetches one page of /r/{subreddits}/new.
func (c *Client) Submissions(ctx context.Context, page PageRequest) (models.SubmissionListing, error) {
	body, err := c.fetch(ctx, models.SchemaSubmissions, page.URL(c.baseURL))
	if err != nil {
		return models.SubmissionListing{}, err
	}

	listing, err := models.DecodeSubmissions(body)
	c.metrics.ObserveDecode(models.SchemaSubmissions, err)
	if err != nil {
		return models.SubmissionListing{}, err
	}
	c.metrics.ObservePage(models.SchemaSubmissions, listing.Data.Len())
	return listing, nil
}

// Comments fetches one page of /r/{subreddits}/comments.
func (c *Client) Comments(ctx context.Context, page PageRequest) (models.CommentListing, error) {
	body, err := c.fetch(ctx, models.SchemaComments, page.URL(c.baseURL))
	if err != nil {
		return models.CommentListing{}, err
	}

	listing, err := models.DecodeComments(body)
	c.metrics.ObserveDecode(models.SchemaComments, err)
	if err != nil {
		return models.CommentListing{}, err
	}
	c.metrics.ObservePage(models.SchemaComments, listing.Data.Len())
	return listing, nil
}

// Thread fetches a post and its comment tree by base-36 id.
func (c *Client) Thread(ctx context.Context, id string) (models.CommentResponse, error) {
	u := fmt.Sprintf("%s/comments/%s.json?raw_json=1", c.baseURL, url.PathEscape(id))
	body, err := c.fetch(ctx, models.SchemaThread, u)
	if err != nil {
		return models.CommentResponse{}, err
	}

	resp, err := models.DecodeCommentResponse(body)
	c.metrics.ObserveDecode(models.SchemaThread, err)
	return resp, err
}

// About fetches the public metadata of a subreddit.
func (c *Client) About(ctx context.Context, subreddit string) (models.SubredditAboutThing, error) {
	u := fmt.Sprintf("%s/r/%s/about.json?raw_json=1", c.baseURL, url.PathEscape(subreddit))
	body, err := c.fetch(ctx, models.SchemaAbout, u)
	if err != nil {
		return models.SubredditAboutThing{}, err
	}

	about, err := models.DecodeSubredditAbout(body)
	c.metrics.ObserveDecode(models.SchemaAbout, err)
	return about, err
}

func (c *Client) fetch(ctx context.Context, schema, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveFetch(schema, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return nil, fmt.Errorf("reddit returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
