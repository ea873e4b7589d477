// Package news fetches trending technology stories from the upstream
// story-ranking service (Hacker News) and reshapes them for clients.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/pathway/internal/domain/types"
	"github.com/okian/pathway/pkg/logger"
	"github.com/okian/pathway/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL    = "https://hacker-news.firebaseio.com/v0"
	defaultTimeout    = 5 * time.Second
	defaultFetchCount = 10
	defaultStoryLimit = 5

	storyType = "story"
)

// Story mirrors the shape returned to API clients.
type Story = types.Story

// item is the upstream item document. Time is epoch seconds.
type item struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Score int    `json:"score"`
	Time  int64  `json:"time"`
	Type  string `json:"type"`
	By    string `json:"by"`
}

// Client fetches ranked stories. Safe for concurrent use; no caching or
// de-duplication across calls, every call re-fetches from upstream.
type Client struct {
	baseURL    string
	httpClient *http.Client
	fetchCount int
	storyLimit int
	logger     logger.Logger
}

// NewClient creates a news client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		fetchCount: defaultFetchCount,
		storyLimit: defaultStoryLimit,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Get().Named("news")
	}
	return c
}

// TopStories fetches the ranked id list, over-fetches item details
// concurrently, and returns up to the configured number of stories in
// original rank order. Non-story items (jobs, polls, comments), null items
// and failed item fetches are dropped; only the top-level list request can
// fail the whole call.
func (c *Client) TopStories(ctx context.Context) ([]Story, error) {
	start := time.Now()

	ids, err := c.topIDs(ctx)
	if err != nil {
		metrics.RecordNewsFetchError()
		return nil, err
	}
	if len(ids) > c.fetchCount {
		ids = ids[:c.fetchCount]
	}

	// One fetch per id; results keep their rank slot so order survives the
	// concurrent fan-out.
	items := make([]*item, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			it, err := c.fetchItem(gctx, id)
			if err != nil {
				// A single failed item is dropped like a non-story item.
				c.logger.Warn(gctx, "dropping story item",
					logger.Any("id", id),
					logger.Error(err),
				)
				metrics.RecordNewsItemDropped()
				return nil
			}
			items[i] = it
			return nil
		})
	}
	_ = g.Wait() // item goroutines never return errors

	stories := make([]Story, 0, c.storyLimit)
	for _, it := range items {
		if it == nil {
			continue // failed or null item, already counted
		}
		if it.Type != storyType {
			metrics.RecordNewsItemDropped()
			continue
		}
		if len(stories) == c.storyLimit {
			break
		}
		stories = append(stories, projectStory(it))
	}

	metrics.RecordNewsFetch()
	metrics.RecordNewsFetchLatency(float64(time.Since(start).Milliseconds()))
	return stories, nil
}

// topIDs fetches the ranked story id list from upstream.
func (c *Client) topIDs(ctx context.Context) ([]int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/topstories.json", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: topstories returned %s", ErrUpstream, resp.Status)
	}
	var ids []int64
	if err := json.NewDecoder(resp.Body).Decode(&ids); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return ids, nil
}

// fetchItem fetches one item document. A JSON null body (unknown id) yields
// a nil item and no error.
func (c *Client) fetchItem(ctx context.Context, id int64) (*item, error) {
	url := fmt.Sprintf("%s/item/%d.json", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: item %d returned %s", ErrUpstream, id, resp.Status)
	}
	var it *item
	if err := json.NewDecoder(resp.Body).Decode(&it); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return it, nil
}

// projectStory reshapes an upstream item, substituting defaults for absent
// fields and converting epoch seconds to RFC3339.
func projectStory(it *item) Story {
	s := Story{
		ID:    it.ID,
		Title: it.Title,
		URL:   it.URL,
		Score: it.Score,
		Type:  it.Type,
		By:    it.By,
	}
	if s.Title == "" {
		s.Title = "No title"
	}
	if s.URL == "" {
		s.URL = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", it.ID)
	}
	if s.By == "" {
		s.By = "Unknown"
	}
	if it.Time > 0 {
		s.Time = time.Unix(it.Time, 0).UTC().Format(time.RFC3339)
	}
	return s
}
