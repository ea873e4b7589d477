// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/pathway/internal/adapters/journal"
	"github.com/okian/pathway/internal/adapters/news"
	"github.com/okian/pathway/internal/domain/catalog"
	"github.com/okian/pathway/internal/domain/roadmap"
	"github.com/okian/pathway/internal/domain/skillgap"
	"github.com/okian/pathway/internal/domain/types"
	"github.com/okian/pathway/pkg/logger"
	"github.com/okian/pathway/pkg/metrics"
)

// StoryProvider abstracts the news gateway so tests can stub it.
type StoryProvider interface {
	TopStories(ctx context.Context) ([]types.Story, error)
}

// Journal is the lifecycle-aware recorder used by the service.
type Journal interface {
	journal.Recorder
	Start(ctx context.Context)
	Close() error
}

// Service implements the API dependencies for the career pathway system.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog  *catalog.Catalog
	analyzer *skillgap.Analyzer
	stories  StoryProvider
	journal  Journal

	// State
	started bool

	// Request counters for GET /stats
	analyses       atomic.Int64
	roadmapLookups atomic.Int64
	newsFetches    atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog replaces the default role catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithAnalyzer replaces the default skill-gap analyzer.
func WithAnalyzer(a *skillgap.Analyzer) Option {
	return func(s *Service) {
		if a != nil {
			s.analyzer = a
		}
	}
}

// WithStoryProvider sets the news gateway implementation.
func WithStoryProvider(p StoryProvider) Option {
	return func(s *Service) {
		if p != nil {
			s.stories = p
		}
	}
}

// WithJournal sets the input journal implementation.
func WithJournal(j Journal) Option {
	return func(s *Service) {
		if j != nil {
			s.journal = j
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes missing components and launches the journal writer.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.catalog == nil {
		s.catalog = catalog.New()
	}
	if s.analyzer == nil {
		s.analyzer = skillgap.New()
	}
	if s.stories == nil {
		s.stories = news.NewClient()
	}
	if s.journal == nil {
		s.journal = journal.NewFileJournal()
	}

	s.journal.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "career pathway service started",
		logger.Int("roles", s.catalog.Len()),
	)
	return nil
}

// Stop gracefully shuts down the service, flushing the journal queue.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if err := s.journal.Close(); err != nil {
		s.logger.Error(context.Background(), "journal close failed", logger.Error(err))
	}

	s.started = false
	s.logger.Info(context.Background(), "career pathway service stopped")
}

// AnalyzeSkillGap computes the skill gap for a role and journals the request.
// Journal failures never affect the returned result.
func (s *Service) AnalyzeSkillGap(ctx context.Context, roleName string, skills []string) (skillgap.Result, error) {
	role, err := s.catalog.Lookup(roleName)
	if err != nil {
		metrics.RecordUnknownRole()
		return skillgap.Result{}, err
	}

	normalized := skillgap.Normalize(skills)
	res := s.analyzer.Analyze(role, normalized)

	s.analyses.Add(1)
	metrics.RecordAnalysis(len(res.Missing))

	// Best-effort journal record; drops are counted inside Record.
	recorded := s.journal.Record(ctx, journal.Entry{
		ID:            uuid.NewString(),
		TargetRole:    roleName,
		CurrentSkills: normalized,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
	if !recorded {
		s.logger.Debug(ctx, "journal entry dropped",
			logger.String("targetRole", roleName),
		)
	}

	return res, nil
}

// Roadmap returns the canonical role name and its phased roadmap.
func (s *Service) Roadmap(_ context.Context, roleName string) (string, []types.Phase, error) {
	role, err := s.catalog.Lookup(roleName)
	if err != nil {
		metrics.RecordUnknownRole()
		return "", nil, err
	}

	s.roadmapLookups.Add(1)
	metrics.RecordRoadmapLookup()
	return role.Name, roadmap.ForRole(role), nil
}

// TopStories returns the current trending stories from the news gateway.
func (s *Service) TopStories(ctx context.Context) ([]types.Story, error) {
	stories, err := s.stories.TopStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("top stories: %w", err)
	}
	s.newsFetches.Add(1)
	return stories, nil
}

// RoleNames lists the catalog's canonical role names.
func (s *Service) RoleNames() []string {
	if s.catalog == nil {
		return nil
	}
	return s.catalog.Names()
}

// GetStats returns service counters for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	s.mu.RUnlock()

	roles := 0
	if s.catalog != nil {
		roles = s.catalog.Len()
	}

	return map[string]interface{}{
		"started":        started,
		"roles":          roles,
		"analyses":       int(s.analyses.Load()),
		"roadmapLookups": int(s.roadmapLookups.Load()),
		"newsFetches":    int(s.newsFetches.Load()),
	}
}
