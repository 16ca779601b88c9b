package api

import (
	"context"
	"net/http"

	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/timeline"
)

// TimelineDependencies derives a single timeline.
type TimelineDependencies interface {
	Timeline(ctx context.Context, start, end string, supplied *timeline.Timeline) timeline.Timeline
}

// TimelineHandler handles timeline requests.
type TimelineHandler struct {
	base
	deps TimelineDependencies
}

// timelineRequest mirrors the OpenAPI schema for POST /v1/timeline.
type timelineRequest struct {
	StartDate model.Instant      `json:"startDate"`
	EndDate   model.Instant      `json:"endDate"`
	Timeline  *timeline.Timeline `json:"timeline"`
}

// HandleTimeline handles POST /v1/timeline requests.
func (h *TimelineHandler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	const op = "api.derive_timeline"
	var req timelineRequest
	if err := h.decode(w, r, op, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Timeline(r.Context(), string(req.StartDate), string(req.EndDate), req.Timeline))
}
