// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env vars on top.
// - External errors must be wrapped via this package's error helpers.
package config

import "time"

// Default news gateway tuning constants.
const (
	defaultNewsFetchCount = 10
	defaultNewsStoryLimit = 5
	defaultNewsTimeoutMS  = 5000
	defaultJournalBuffer  = 64
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":5000".
	Addr string `koanf:"addr"`

	// NewsBaseURL points at the upstream story-ranking service.
	NewsBaseURL string `koanf:"news_base_url"`

	// NewsFetchCount is how many ranked story ids to over-fetch per call.
	NewsFetchCount int `koanf:"news_fetch_count"`

	// NewsStoryLimit caps the number of stories returned to clients.
	NewsStoryLimit int `koanf:"news_story_limit"`

	// NewsTimeoutMS bounds every outbound call to the upstream service.
	NewsTimeoutMS int `koanf:"news_timeout_ms"`

	// JournalPath locates the best-effort skill-gap input journal file.
	JournalPath string `koanf:"journal_path"`

	// JournalBuffer bounds the journal write queue.
	JournalBuffer int `koanf:"journal_buffer"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":5000",
		NewsBaseURL:    "https://hacker-news.firebaseio.com/v0",
		NewsFetchCount: defaultNewsFetchCount,
		NewsStoryLimit: defaultNewsStoryLimit,
		NewsTimeoutMS:  defaultNewsTimeoutMS,
		JournalPath:    "user-inputs.json",
		JournalBuffer:  defaultJournalBuffer,
	}
}

// NewsTimeout returns the upstream call timeout as a duration.
func (c *Config) NewsTimeout() time.Duration {
	return time.Duration(c.NewsTimeoutMS) * time.Millisecond
}
