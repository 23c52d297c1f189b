package services

import (
	"context"

	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/models"
)

//go:generate mockgen -source=players.go -destination=players_mock.go -package=services

// ActivePlayerStore reads and removes active players.
type ActivePlayerStore interface {
	ListActivePlayers(ctx context.Context) ([]models.ActivePlayer, error)
	GetActivePlayer(ctx context.Context, playerID string) (*models.ActivePlayer, error)
	DeleteActivePlayer(ctx context.Context, playerID string) error
}

// PlayersService exposes games in progress to spectators.
type PlayersService struct {
	store ActivePlayerStore
}

// NewPlayersService creates a new PlayersService instance.
func NewPlayersService(store ActivePlayerStore) *PlayersService {
	return &PlayersService{store: store}
}

// ListActive returns games in progress in the order they started.
func (svc *PlayersService) ListActive(ctx context.Context) ([]models.ActivePlayer, error) {
	players, err := svc.store.ListActivePlayers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list active players", "err", err)
		return nil, err
	}
	return players, nil
}

// GetGameState returns the last snapshot for the player, or nil if the player is unknown.
func (svc *PlayersService) GetGameState(ctx context.Context, playerID string) (*models.GameState, error) {
	player, err := svc.store.GetActivePlayer(ctx, playerID)
	if err != nil {
		logger.Log.Errorw("failed to get active player", "player_id", playerID, "err", err)
		return nil, err
	}
	if player == nil {
		return nil, nil
	}
	return player.GameState, nil
}

// Remove drops a finished game from the active list.
func (svc *PlayersService) Remove(ctx context.Context, playerID string) error {
	if err := svc.store.DeleteActivePlayer(ctx, playerID); err != nil {
		logger.Log.Errorw("failed to remove active player", "player_id", playerID, "err", err)
		return err
	}
	return nil
}
