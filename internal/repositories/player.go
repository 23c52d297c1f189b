package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/snake-arena/internal/models"
)

// ActivePlayerReadRepository handles active player read operations
type ActivePlayerReadRepository struct {
	db *sqlx.DB
}

func NewActivePlayerReadRepository(db *sqlx.DB) *ActivePlayerReadRepository {
	return &ActivePlayerReadRepository{db: db}
}

// List returns active players in the order they were added.
func (r *ActivePlayerReadRepository) List(ctx context.Context) ([]models.ActivePlayer, error) {
	const query = `
		SELECT player_id, username, score, mode, started_at, game_state
		FROM active_players
		ORDER BY seq ASC
	`

	players := []models.ActivePlayer{}
	err := r.db.SelectContext(ctx, &players, query)
	logQuery(query, nil, len(players), err)

	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetByID returns the active player, or nil if there is none.
func (r *ActivePlayerReadRepository) GetByID(ctx context.Context, playerID string) (*models.ActivePlayer, error) {
	const query = `
		SELECT player_id, username, score, mode, started_at, game_state
		FROM active_players
		WHERE player_id = $1
	`

	var player models.ActivePlayer
	err := r.db.GetContext(ctx, &player, query, playerID)
	logQuery(query, []any{playerID}, player.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// ActivePlayerWriteRepository handles active player write operations
type ActivePlayerWriteRepository struct {
	db *sqlx.DB
}

func NewActivePlayerWriteRepository(db *sqlx.DB) *ActivePlayerWriteRepository {
	return &ActivePlayerWriteRepository{db: db}
}

// Save inserts the player or replaces its score and snapshot.
func (r *ActivePlayerWriteRepository) Save(ctx context.Context, player *models.ActivePlayer) error {
	const query = `
		INSERT INTO active_players (player_id, username, score, mode, started_at, game_state)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (player_id) DO UPDATE
		SET score = EXCLUDED.score,
		    game_state = EXCLUDED.game_state
	`
	args := []any{player.ID, player.Username, player.Score, string(player.Mode), player.StartedAt, player.GameState}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args[:4], rowsAffected, err)

	return err
}

// Delete removes the active player. Removing an unknown player is not an error.
func (r *ActivePlayerWriteRepository) Delete(ctx context.Context, playerID string) error {
	const query = `
		DELETE FROM active_players
		WHERE player_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, playerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{playerID}, rowsAffected, err)

	return err
}
