// Package news fetches trending technology stories from the upstream
// story-ranking service.
package news

import (
	"net/http"
	"strings"
	"time"

	"github.com/okian/pathway/pkg/logger"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL sets the upstream base URL. A trailing slash is trimmed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout bounds every outbound upstream call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithFetchCount sets how many ranked ids to over-fetch per call.
func WithFetchCount(count int) Option {
	return func(c *Client) {
		if count > 0 {
			c.fetchCount = count
		}
	}
}

// WithStoryLimit caps the number of stories returned.
func WithStoryLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.storyLimit = limit
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
