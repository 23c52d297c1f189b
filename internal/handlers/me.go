package handlers

import (
	"net/http"

	"github.com/sbilibin2017/snake-arena/internal/middlewares"
	"github.com/sbilibin2017/snake-arena/internal/models"
)

// NewMeHandler returns the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /auth/me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		writeJSON(w, http.StatusOK, models.NewUser(user))
	}
}
