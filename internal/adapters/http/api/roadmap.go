// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/pathway/internal/domain/catalog"
	"github.com/okian/pathway/pkg/logger"
)

// RoadmapHandler handles roadmap lookup requests.
type RoadmapHandler struct {
	deps Dependencies
}

// NewRoadmapHandler creates a new roadmap handler.
func NewRoadmapHandler(deps Dependencies) *RoadmapHandler {
	return &RoadmapHandler{deps: deps}
}

// HandlePostRoadmap handles POST /api/roadmap requests.
func (h *RoadmapHandler) HandlePostRoadmap(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_roadmap"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req roadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingRole)
		return
	}
	if strings.TrimSpace(req.TargetRole) == "" {
		writeError(w, http.StatusBadRequest, msgMissingRole)
		return
	}

	name, phases, err := h.deps.Roadmap(r.Context(), req.TargetRole)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownRole) {
			writeError(w, http.StatusBadRequest, invalidRoleMessage(h.deps.RoleNames()))
			return
		}
		logger.Get().Error(r.Context(), "roadmap lookup failed",
			logger.Error(Wrap(op, err)),
		)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, roadmapResponse{TargetRole: name, Roadmap: phases})
}
