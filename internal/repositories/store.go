package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/storage"
)

// Store combines the Postgres repositories and the Redis session repository
// into a single storage backend.
type Store struct {
	userReader   *UserReadRepository
	userWriter   *UserWriteRepository
	entryReader  *LeaderboardReadRepository
	entryWriter  *LeaderboardWriteRepository
	playerReader *ActivePlayerReadRepository
	playerWriter *ActivePlayerWriteRepository
	sessions     *SessionRepository
}

var _ storage.Storage = (*Store)(nil)

// NewStore wires the repositories. txGetter may be nil.
func NewStore(db *sqlx.DB, rdb *redis.Client, txGetter func(ctx context.Context) *sqlx.Tx) *Store {
	return &Store{
		userReader:   NewUserReadRepository(db),
		userWriter:   NewUserWriteRepository(db, txGetter),
		entryReader:  NewLeaderboardReadRepository(db),
		entryWriter:  NewLeaderboardWriteRepository(db, txGetter),
		playerReader: NewActivePlayerReadRepository(db),
		playerWriter: NewActivePlayerWriteRepository(db),
		sessions:     NewSessionRepository(rdb),
	}
}

func (s *Store) SaveUser(ctx context.Context, user *models.UserDB) error {
	return s.userWriter.Save(ctx, user)
}

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	return s.userReader.GetByID(ctx, userID)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	return s.userReader.GetByEmail(ctx, email)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	return s.userReader.GetByUsername(ctx, username)
}

func (s *Store) UpdateHighScore(ctx context.Context, userID uuid.UUID, score int) error {
	return s.userWriter.UpdateHighScore(ctx, userID, score)
}

func (s *Store) AppendEntry(ctx context.Context, entry *models.LeaderboardEntry) (int, error) {
	return s.entryWriter.Append(ctx, entry)
}

func (s *Store) ListEntries(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	return s.entryReader.List(ctx, mode)
}

func (s *Store) SaveActivePlayer(ctx context.Context, player *models.ActivePlayer) error {
	return s.playerWriter.Save(ctx, player)
}

func (s *Store) ListActivePlayers(ctx context.Context) ([]models.ActivePlayer, error) {
	return s.playerReader.List(ctx)
}

func (s *Store) GetActivePlayer(ctx context.Context, playerID string) (*models.ActivePlayer, error) {
	return s.playerReader.GetByID(ctx, playerID)
}

func (s *Store) DeleteActivePlayer(ctx context.Context, playerID string) error {
	return s.playerWriter.Delete(ctx, playerID)
}

func (s *Store) SaveSession(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return s.sessions.Save(ctx, token, userID, ttl)
}

func (s *Store) GetSession(ctx context.Context, token string) (*uuid.UUID, error) {
	return s.sessions.Get(ctx, token)
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
