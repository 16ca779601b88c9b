package api

import (
	"context"
	"net/http"

	"github.com/okian/scorecard/internal/domain/model"
)

// CompetitionDependencies orders competitions.
type CompetitionDependencies interface {
	Competitions(ctx context.Context, in []model.Competition) ([]model.CompetitionView, error)
}

// CompetitionsHandler handles competition ordering requests.
type CompetitionsHandler struct {
	base
	deps CompetitionDependencies
}

// HandleOrder handles POST /v1/competitions/order requests.
func (h *CompetitionsHandler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	const op = "api.order_competitions"
	var in []model.Competition
	if err := h.decode(w, r, op, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.deps.Competitions(r.Context(), in)
	if err != nil {
		h.fail(w, r, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}
