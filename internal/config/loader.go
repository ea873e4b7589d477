package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PATHWAY_CONFIG is set
//  3. env (prefix PATHWAY_)
//
// A .env file in the working directory is folded into the environment first,
// so local development does not need exported variables.
func Load(_ context.Context) (*Config, error) {
	// Best-effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PATHWAY_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PATHWAY_ADDR, PATHWAY_NEWS_BASE_URL, ...
	// Map env keys like PATHWAY_NEWS_BASE_URL -> news_base_url (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PATHWAY_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "pathway_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.NewsBaseURL == "":
		return fmt.Errorf("%w: news_base_url must not be empty", ErrInvalidConfig)
	case cfg.NewsFetchCount < 1:
		return fmt.Errorf("%w: news_fetch_count must be positive", ErrInvalidConfig)
	case cfg.NewsStoryLimit < 1:
		return fmt.Errorf("%w: news_story_limit must be positive", ErrInvalidConfig)
	case cfg.NewsStoryLimit > cfg.NewsFetchCount:
		return fmt.Errorf("%w: news_story_limit must not exceed news_fetch_count", ErrInvalidConfig)
	case cfg.NewsTimeoutMS < 1:
		return fmt.Errorf("%w: news_timeout_ms must be positive", ErrInvalidConfig)
	case cfg.JournalBuffer < 1:
		return fmt.Errorf("%w: journal_buffer must be positive", ErrInvalidConfig)
	}
	return nil
}
