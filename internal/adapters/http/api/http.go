// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/pathway/internal/domain/skillgap"
	"github.com/okian/pathway/internal/domain/types"
	"github.com/okian/pathway/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// AnalyzeSkillGap computes matched/missing skills and recommendations.
	AnalyzeSkillGap(ctx context.Context, roleName string, skills []string) (skillgap.Result, error)

	// Roadmap returns the canonical role name and its phased roadmap.
	Roadmap(ctx context.Context, roleName string) (string, []types.Phase, error)

	// TopStories returns current trending stories.
	TopStories(ctx context.Context) ([]types.Story, error)

	// RoleNames lists valid role names for validation messages.
	RoleNames() []string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	skillGapHandler *SkillGapHandler
	roadmapHandler  *RoadmapHandler
	newsHandler     *NewsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		skillGapHandler: NewSkillGapHandler(deps),
		roadmapHandler:  NewRoadmapHandler(deps),
		newsHandler:     NewNewsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/health", Chain(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/stats", Chain(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/skill-gap", Chain(s.skillGapHandler.HandlePostSkillGap, "skill_gap"))
	mux.HandleFunc("/api/roadmap", Chain(s.roadmapHandler.HandlePostRoadmap, "roadmap"))
	mux.HandleFunc("/api/news", Chain(s.newsHandler.HandleGetNews, "news"))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
}

// skillGapRequest mirrors the wire schema for POST /api/skill-gap.
// CurrentSkills accepts either a comma-separated string or an array.
type skillGapRequest struct {
	TargetRole    string          `json:"targetRole"`
	CurrentSkills json.RawMessage `json:"currentSkills"`
}

// skills normalizes the polymorphic currentSkills field.
func (r skillGapRequest) skills() ([]string, error) {
	raw := strings.TrimSpace(string(r.CurrentSkills))
	if raw == "" || raw == "null" {
		return nil, nil
	}
	var single string
	if err := json.Unmarshal(r.CurrentSkills, &single); err == nil {
		return skillgap.SplitSkills(single), nil
	}
	var many []string
	if err := json.Unmarshal(r.CurrentSkills, &many); err == nil {
		return skillgap.Normalize(many), nil
	}
	return nil, ErrBadRequest
}

// roadmapRequest mirrors the wire schema for POST /api/roadmap.
type roadmapRequest struct {
	TargetRole string `json:"targetRole"`
}

// roadmapResponse is the wire shape for POST /api/roadmap.
type roadmapResponse struct {
	TargetRole string        `json:"targetRole"`
	Roadmap    []types.Phase `json:"roadmap"`
}

// newsResponse is the wire shape for GET /api/news.
type newsResponse struct {
	Stories []types.Story `json:"stories"`
}

// errorResponse is the wire shape for every error body.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// invalidRoleMessage lists the valid roles so callers can self-correct.
func invalidRoleMessage(names []string) string {
	return "Invalid target role. Available roles: " + strings.Join(names, ", ")
}
