package handlers

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/snake-arena/internal/middlewares"
)

// Logouter ends sessions.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// NewLogoutHandler returns an HTTP handler that ends the caller's session.
// The token stops working immediately.
// @Summary Log out
// @Tags auth
// @Security BearerAuth
// @Success 204 "Session ended"
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /auth/logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context(), middlewares.TokenFromContext(r.Context())); err != nil {
			writeInternalError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
