package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/snake-arena/internal/models"
)

// ErrAlreadyExists is returned by SaveUser when the email or username is taken.
var ErrAlreadyExists = errors.New("record already exists")

// Storage is the full set of persistence capabilities the services rely on.
// Lookups that find nothing return a nil record and a nil error.
type Storage interface {
	// User operations. Email and username lookups ignore case.
	SaveUser(ctx context.Context, user *models.UserDB) error
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetUserByUsername(ctx context.Context, username string) (*models.UserDB, error)
	UpdateHighScore(ctx context.Context, userID uuid.UUID, score int) error

	// Leaderboard operations. AppendEntry stores the entry and returns its
	// 1-based rank within the entry's mode as a single atomic step.
	AppendEntry(ctx context.Context, entry *models.LeaderboardEntry) (int, error)
	ListEntries(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error)

	// Active player operations
	SaveActivePlayer(ctx context.Context, player *models.ActivePlayer) error
	ListActivePlayers(ctx context.Context) ([]models.ActivePlayer, error)
	GetActivePlayer(ctx context.Context, playerID string) (*models.ActivePlayer, error)
	DeleteActivePlayer(ctx context.Context, playerID string) error

	// Session operations
	SaveSession(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (*uuid.UUID, error)
	DeleteSession(ctx context.Context, token string) error
}
