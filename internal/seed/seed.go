// Package seed loads the sample users, leaderboard entries and active players
// the service starts with.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/models"
)

// Password is shared by every sample user.
const Password = "password123"

// Store is the subset of storage the loader writes to.
type Store interface {
	GetUserByEmail(ctx context.Context, email string) (*models.UserDB, error)
	SaveUser(ctx context.Context, user *models.UserDB) error
	AppendEntry(ctx context.Context, entry *models.LeaderboardEntry) (int, error)
	SaveActivePlayer(ctx context.Context, player *models.ActivePlayer) error
}

type sampleUser struct {
	id        string
	username  string
	email     string
	highScore int
}

var sampleUsers = []sampleUser{
	{id: "550e8400-e29b-41d4-a716-446655440000", username: "SnakeMaster", email: "player1@test.com", highScore: 2450},
	{id: "550e8400-e29b-41d4-a716-446655440001", username: "SpeedySnake", email: "player2@test.com", highScore: 1800},
	{id: "550e8400-e29b-41d4-a716-446655440002", username: "ProGamer", email: "player3@test.com", highScore: 3200},
}

type sampleEntry struct {
	username string
	score    int
	mode     models.GameMode
	date     string
}

// Listed best first within each mode so submission order matches rank order.
var sampleEntries = []sampleEntry{
	{username: "ProGamer", score: 3200, mode: models.ModeWalls, date: "2024-11-28"},
	{username: "SnakeMaster", score: 2450, mode: models.ModeWalls, date: "2024-11-27"},
	{username: "SpeedySnake", score: 1800, mode: models.ModeWalls, date: "2024-11-26"},
	{username: "ProGamer", score: 2800, mode: models.ModePassThrough, date: "2024-11-28"},
	{username: "SnakeMaster", score: 2100, mode: models.ModePassThrough, date: "2024-11-27"},
}

func samplePlayers(now time.Time) []models.ActivePlayer {
	return []models.ActivePlayer{
		{
			ID:        "ap1",
			Username:  "LivePlayer1",
			Score:     340,
			Mode:      models.ModeWalls,
			StartedAt: now.Add(-5 * time.Minute),
			GameState: &models.GameState{
				Snake:     []models.Position{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}, {X: 7, Y: 10}},
				Food:      models.Position{X: 15, Y: 12},
				Direction: models.DirectionRight,
				Score:     340,
			},
		},
		{
			ID:        "ap2",
			Username:  "LivePlayer2",
			Score:     520,
			Mode:      models.ModePassThrough,
			StartedAt: now.Add(-8 * time.Minute),
			GameState: &models.GameState{
				Snake:     []models.Position{{X: 0, Y: 4}, {X: 19, Y: 4}, {X: 18, Y: 4}, {X: 17, Y: 4}, {X: 16, Y: 4}},
				Food:      models.Position{X: 3, Y: 4},
				Direction: models.DirectionRight,
				Score:     520,
			},
		},
		{
			ID:        "ap3",
			Username:  "LivePlayer3",
			Score:     180,
			Mode:      models.ModeWalls,
			StartedAt: now.Add(-2 * time.Minute),
			GameState: &models.GameState{
				Snake:     []models.Position{{X: 5, Y: 3}, {X: 5, Y: 4}, {X: 5, Y: 5}},
				Food:      models.Position{X: 5, Y: 0},
				Direction: models.DirectionUp,
				Score:     180,
			},
		},
	}
}

// Load writes the sample data. It does nothing when the first sample user
// already exists, so it is safe to call on every start.
func Load(ctx context.Context, store Store, now time.Time) error {
	existing, err := store.GetUserByEmail(ctx, sampleUsers[0].email)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.Log.Infow("sample data already present, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	ids := make(map[string]uuid.UUID, len(sampleUsers))
	for _, u := range sampleUsers {
		id := uuid.MustParse(u.id)
		ids[u.username] = id

		err := store.SaveUser(ctx, &models.UserDB{
			UserID:       id,
			Username:     u.username,
			Email:        u.email,
			PasswordHash: string(hash),
			HighScore:    u.highScore,
			CreatedAt:    now,
		})
		if err != nil {
			return err
		}
	}

	for _, e := range sampleEntries {
		_, err := store.AppendEntry(ctx, &models.LeaderboardEntry{
			ID:       uuid.New(),
			UserID:   ids[e.username],
			Username: e.username,
			Score:    e.score,
			Mode:     e.mode,
			Date:     e.date,
		})
		if err != nil {
			return err
		}
	}

	players := samplePlayers(now)
	for _, p := range players {
		if err := store.SaveActivePlayer(ctx, &p); err != nil {
			return err
		}
	}

	logger.Log.Infow("sample data loaded",
		"users", len(sampleUsers),
		"entries", len(sampleEntries),
		"players", len(players),
	)

	return nil
}
