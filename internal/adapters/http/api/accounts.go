package api

import (
	"context"
	"net/http"

	"github.com/okian/scorecard/internal/domain/model"
)

// AccountDependencies orders accounts.
type AccountDependencies interface {
	Accounts(ctx context.Context, in []model.Account) ([]model.Account, error)
}

// AccountsHandler handles account ordering requests.
type AccountsHandler struct {
	base
	deps AccountDependencies
}

// HandleOrder handles POST /v1/accounts/order requests.
func (h *AccountsHandler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	const op = "api.order_accounts"
	var in []model.Account
	if err := h.decode(w, r, op, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	out, err := h.deps.Accounts(r.Context(), in)
	if err != nil {
		h.fail(w, r, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}
