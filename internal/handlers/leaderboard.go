package handlers

//go:generate mockgen -source=leaderboard.go -destination=leaderboard_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/snake-arena/internal/models"
)

// LeaderboardLister lists leaderboard entries.
type LeaderboardLister interface {
	List(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error)
}

// NewLeaderboardHandler returns an HTTP handler listing entries best first.
// @Summary Leaderboard
// @Description Lists entries sorted by score descending, optionally filtered by mode.
// @Tags leaderboard
// @Produce json
// @Param mode query string false "Game mode" Enums(walls, pass-through)
// @Success 200 {array} models.LeaderboardEntry
// @Failure 422 {object} handlers.ErrorResponse "Unknown mode"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc LeaderboardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var mode *models.GameMode
		if raw := r.URL.Query().Get("mode"); raw != "" {
			m := models.GameMode(raw)
			if !m.Valid() {
				writeError(w, http.StatusUnprocessableEntity, "mode must be one of: walls, pass-through")
				return
			}
			mode = &m
		}

		entries, err := svc.List(r.Context(), mode)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
