package api

import (
	"context"
	"net/http"

	"github.com/okian/scorecard/internal/domain/model"
)

// ClubDependencies orders clubs.
type ClubDependencies interface {
	Clubs(ctx context.Context, in []model.Club) ([]model.Club, error)
}

// ClubsHandler handles club ordering requests.
type ClubsHandler struct {
	base
	deps ClubDependencies
}

// HandleOrder handles POST /v1/clubs/order requests.
func (h *ClubsHandler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	const op = "api.order_clubs"
	var in []model.Club
	if err := h.decode(w, r, op, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.deps.Clubs(r.Context(), in)
	if err != nil {
		h.fail(w, r, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}
