package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/scorecard/internal/domain/model"
)

// AssociationDependencies orders and weights associations.
type AssociationDependencies interface {
	Associations(ctx context.Context, in []model.Association, dims []string) ([]model.AssociationView, error)
}

// AssociationsHandler handles association ranking requests.
type AssociationsHandler struct {
	base
	deps AssociationDependencies
}

// HandleRanking handles POST /v1/associations/ranking?dims=a,b requests.
// Without dims the service's default dimensions apply.
func (h *AssociationsHandler) HandleRanking(w http.ResponseWriter, r *http.Request) {
	const op = "api.rank_associations"
	var in []model.Association
	if err := h.decode(w, r, op, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.deps.Associations(r.Context(), in, parseDims(r.URL.Query()["dims"]))
	if err != nil {
		h.fail(w, r, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// parseDims accepts both ?dims=a,b and ?dims=a&dims=b.
func parseDims(values []string) []string {
	var dims []string
	for _, v := range values {
		for _, d := range strings.Split(v, ",") {
			if d = strings.TrimSpace(d); d != "" {
				dims = append(dims, d)
			}
		}
	}
	return dims
}
