// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/pathway/internal/domain/types"
	"github.com/okian/pathway/pkg/logger"
)

// NewsHandler handles trending story requests.
type NewsHandler struct {
	deps Dependencies
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(deps Dependencies) *NewsHandler {
	return &NewsHandler{deps: deps}
}

// HandleGetNews handles GET /api/news requests. Upstream failures surface as
// a single terminal 500; no partial results are returned.
func (h *NewsHandler) HandleGetNews(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_news"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	stories, err := h.deps.TopStories(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "news fetch failed",
			logger.Error(Wrap(op, err)),
		)
		writeError(w, http.StatusInternalServerError, msgNewsUnavailable)
		return
	}
	if stories == nil {
		stories = []types.Story{}
	}
	writeJSON(w, http.StatusOK, newsResponse{Stories: stories})
}
