package handlers

//go:generate mockgen -source=players.go -destination=players_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/snake-arena/internal/models"
)

// ActivePlayersLister lists games in progress.
type ActivePlayersLister interface {
	ListActive(ctx context.Context) ([]models.ActivePlayer, error)
}

// GameStateGetter returns a player's last snapshot.
type GameStateGetter interface {
	GetGameState(ctx context.Context, playerID string) (*models.GameState, error)
}

// NewActivePlayersHandler returns an HTTP handler listing active players.
// @Summary Active players
// @Tags players
// @Produce json
// @Success 200 {array} models.ActivePlayer
// @Router /players/active [get]
func NewActivePlayersHandler(svc ActivePlayersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := svc.ListActive(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, players)
	}
}

// NewGameStateHandler returns an HTTP handler with a player's game snapshot.
// Unknown players yield null with 200.
// @Summary Player game state
// @Tags players
// @Produce json
// @Param playerId path string true "Active player id"
// @Success 200 {object} models.GameState "Snapshot, or null for an unknown player"
// @Router /players/{playerId}/game-state [get]
func NewGameStateHandler(svc GameStateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.GetGameState(r.Context(), chi.URLParam(r, "playerId"))
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}
