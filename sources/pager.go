package sources

import (
	"net/url"
	"strconv"
	"strings"
)

// PageRequest describes one listing request. After and Before are cursors
// taken verbatim from a previous page.
type PageRequest struct {
	Subreddits []string
	Feed       string // "new" or "comments"
	Limit      int
	After      string
	Before     string
}

func (p PageRequest) URL(baseURL string) string {
	subs := strings.Join(p.Subreddits, "+")
	if subs == "" {
		subs = "all"
	}

	q := url.Values{}
	q.Set("raw_json", "1")
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.After != "" {
		q.Set("after", p.After)
	}
	if p.Before != "" {
		q.Set("before", p.Before)
	}

	return baseURL + "/r/" + subs + "/" + p.Feed + ".json?" + q.Encode()
}

// Next returns the request for the page after one whose listing handed out
// cursor. The cursor is copied as is.
func (p PageRequest) Next(cursor string) PageRequest {
	next := p
	next.After = cursor
	next.Before = ""
	return next
}

// Pager walks forward through a feed until the server stops handing out
// cursors or the page budget is spent.
type Pager struct {
	next     PageRequest
	maxPages int
	pages    int
	done     bool
}

func NewPager(first PageRequest, maxPages int) *Pager {
	if maxPages < 1 {
		maxPages = 1
	}
	return &Pager{next: first, maxPages: maxPages}
}

// Request returns the next page to fetch, or false when paging is over.
func (p *Pager) Request() (PageRequest, bool) {
	if p.done || p.pages >= p.maxPages {
		return PageRequest{}, false
	}
	return p.next, true
}

// Advance records the after cursor of the page just fetched. A nil or empty
// cursor ends paging, even if the page was full.
func (p *Pager) Advance(after *string) {
	p.pages++
	if after == nil || *after == "" {
		p.done = true
		return
	}
	p.next = p.next.Next(*after)
}

// Stop ends paging early.
func (p *Pager) Stop() {
	p.done = true
}
