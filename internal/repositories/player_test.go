package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/snake-arena/internal/models"
)

var playerRowColumns = []string{"player_id", "username", "score", "mode", "started_at", "game_state"}

func TestActivePlayerReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivePlayerReadRepository(db)
	startedAt := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM active_players ORDER BY seq ASC")).
		WillReturnRows(sqlmock.NewRows(playerRowColumns).
			AddRow("ap1", "LivePlayer1", 340, "walls", startedAt, []byte(`{"snake":[{"x":5,"y":5}],"food":{"x":1,"y":1},"direction":"RIGHT","score":340}`)).
			AddRow("ap2", "LivePlayer2", 520, "pass-through", startedAt, nil))

	players, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)

	assert.Equal(t, "ap1", players[0].ID)
	assert.Equal(t, models.ModeWalls, players[0].Mode)
	require.NotNil(t, players[0].GameState)
	assert.Equal(t, models.DirectionRight, players[0].GameState.Direction)
	assert.Equal(t, []models.Position{{X: 5, Y: 5}}, players[0].GameState.Snake)
	assert.Nil(t, players[1].GameState)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivePlayerReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivePlayerReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE player_id = $1")).
		WithArgs("ap3").
		WillReturnRows(sqlmock.NewRows(playerRowColumns).
			AddRow("ap3", "LivePlayer3", 180, "walls", time.Now(), `{"snake":[],"food":{"x":2,"y":3},"direction":"UP","score":180}`))

	player, err := repo.GetByID(context.Background(), "ap3")
	require.NoError(t, err)
	require.NotNil(t, player)
	require.NotNil(t, player.GameState)
	assert.Equal(t, models.Position{X: 2, Y: 3}, player.GameState.Food)
	assert.Equal(t, 180, player.GameState.Score)
}

func TestActivePlayerReadRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivePlayerReadRepository(db)

	mock.ExpectQuery("FROM active_players").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(playerRowColumns))

	player, err := repo.GetByID(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, player)
}

func TestActivePlayerWriteRepository_SaveAndDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewActivePlayerWriteRepository(db)

	player := &models.ActivePlayer{
		ID:        "ap1",
		Username:  "LivePlayer1",
		Score:     340,
		Mode:      models.ModeWalls,
		StartedAt: time.Now().UTC(),
		GameState: &models.GameState{Direction: models.DirectionUp, Score: 340},
	}

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (player_id) DO UPDATE")).
		WithArgs("ap1", "LivePlayer1", 340, "walls", player.StartedAt, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM active_players")).
		WithArgs("ap1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), player))
	require.NoError(t, repo.Delete(context.Background(), "ap1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
