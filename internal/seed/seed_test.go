package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/storage/memory"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	now := time.Date(2024, 11, 28, 12, 0, 0, 0, time.UTC)

	require.NoError(t, Load(ctx, store, now))

	user, err := store.GetUserByUsername(ctx, "SnakeMaster")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", user.UserID.String())
	assert.Equal(t, 2450, user.HighScore)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(Password)))

	walls := models.ModeWalls
	entries, err := store.ListEntries(ctx, &walls)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "ProGamer", entries[0].Username)
	assert.Equal(t, 3200, entries[0].Score)
	assert.Equal(t, "SpeedySnake", entries[2].Username)

	all, err := store.ListEntries(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	players, err := store.ListActivePlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, []string{"ap1", "ap2", "ap3"}, []string{players[0].ID, players[1].ID, players[2].ID})
}

func TestLoad_SnapshotsStayOnGrid(t *testing.T) {
	for _, p := range samplePlayers(time.Now()) {
		require.NotNil(t, p.GameState, p.ID)
		assert.Equal(t, p.Score, p.GameState.Score, p.ID)

		cells := append([]models.Position{p.GameState.Food}, p.GameState.Snake...)
		for _, c := range cells {
			assert.True(t, c.X >= 0 && c.X < 20 && c.Y >= 0 && c.Y < 20, "%s: %v off grid", p.ID, c)
		}
	}
}

func TestLoad_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, Load(ctx, store, time.Now()))
	require.NoError(t, Load(ctx, store, time.Now()))

	all, err := store.ListEntries(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	players, err := store.ListActivePlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 3)
}

type failingStore struct {
	*memory.Storage
	err error
}

func (f failingStore) AppendEntry(ctx context.Context, entry *models.LeaderboardEntry) (int, error) {
	return 0, f.err
}

func TestLoad_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := Load(context.Background(), failingStore{Storage: memory.New(), err: boom}, time.Now())
	assert.ErrorIs(t, err, boom)
}
