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

// SkillGapHandler handles skill-gap analysis requests.
type SkillGapHandler struct {
	deps Dependencies
}

// NewSkillGapHandler creates a new skill-gap handler.
func NewSkillGapHandler(deps Dependencies) *SkillGapHandler {
	return &SkillGapHandler{deps: deps}
}

// HandlePostSkillGap handles POST /api/skill-gap requests.
func (h *SkillGapHandler) HandlePostSkillGap(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_skill_gap"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req skillGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgMissingInput)
		return
	}
	skills, err := req.skills()
	if err != nil {
		writeError(w, http.StatusBadRequest, msgMissingInput)
		return
	}
	// Validation happens eagerly, before any side effect.
	if strings.TrimSpace(req.TargetRole) == "" || len(skills) == 0 {
		writeError(w, http.StatusBadRequest, msgMissingInput)
		return
	}

	res, err := h.deps.AnalyzeSkillGap(r.Context(), req.TargetRole, skills)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownRole) {
			writeError(w, http.StatusBadRequest, invalidRoleMessage(h.deps.RoleNames()))
			return
		}
		logger.Get().Error(r.Context(), "skill-gap analysis failed",
			logger.Error(Wrap(op, err)),
		)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
