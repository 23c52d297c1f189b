package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// All state sits behind one mutex, so every write is a single mutation point.
type Storage struct {
	mu sync.RWMutex

	users         map[uuid.UUID]*models.UserDB
	emailIndex    map[string]uuid.UUID
	usernameIndex map[string]uuid.UUID

	entries []models.LeaderboardEntry // submission order
	nextSeq int64

	players     map[string]*models.ActivePlayer
	playerOrder []string

	sessions map[string]session
}

type session struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[uuid.UUID]*models.UserDB),
		emailIndex:    make(map[string]uuid.UUID),
		usernameIndex: make(map[string]uuid.UUID),
		players:       make(map[string]*models.ActivePlayer),
		sessions:      make(map[string]session),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// normalize matches the LOWER() indexes of the table store.
func normalize(s string) string {
	return strings.ToLower(s)
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *models.UserDB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	if id, ok := s.emailIndex[normalize(u.Email)]; ok && id != u.UserID {
		return storage.ErrAlreadyExists
	}
	if id, ok := s.usernameIndex[normalize(u.Username)]; ok && id != u.UserID {
		return storage.ErrAlreadyExists
	}
	s.users[u.UserID] = &u
	s.emailIndex[normalize(u.Email)] = u.UserID
	s.usernameIndex[normalize(u.Username)] = u.UserID
	return nil
}

func (s *Storage) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyUser(userID), nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.emailIndex[normalize(email)]
	if !ok {
		return nil, nil
	}
	return s.copyUser(userID), nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.usernameIndex[normalize(username)]
	if !ok {
		return nil, nil
	}
	return s.copyUser(userID), nil
}

func (s *Storage) UpdateHighScore(ctx context.Context, userID uuid.UUID, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[userID]; ok && score > u.HighScore {
		u.HighScore = score
	}
	return nil
}

// copyUser must be called with the lock held.
func (s *Storage) copyUser(userID uuid.UUID) *models.UserDB {
	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	cp := *u
	return &cp
}

// Leaderboard operations

func (s *Storage) AppendEntry(ctx context.Context, entry *models.LeaderboardEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	entry.Seq = s.nextSeq
	s.entries = append(s.entries, *entry)

	// Entries ahead of the new one: higher scores, or equal scores submitted earlier.
	// Every existing entry was submitted earlier, so ties all rank ahead.
	rank := 1
	for _, e := range s.entries[:len(s.entries)-1] {
		if e.Mode == entry.Mode && e.Score >= entry.Score {
			rank++
		}
	}
	return rank, nil
}

func (s *Storage) ListEntries(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.LeaderboardEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if mode == nil || e.Mode == *mode {
			result = append(result, e)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	return result, nil
}

// Active player operations

func (s *Storage) SaveActivePlayer(ctx context.Context, player *models.ActivePlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.ID]; !ok {
		s.playerOrder = append(s.playerOrder, player.ID)
	}
	s.players[player.ID] = copyPlayer(player)
	return nil
}

func (s *Storage) ListActivePlayers(ctx context.Context) ([]models.ActivePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]models.ActivePlayer, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		result = append(result, *copyPlayer(s.players[id]))
	}
	return result, nil
}

func (s *Storage) GetActivePlayer(ctx context.Context, playerID string) (*models.ActivePlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[playerID]
	if !ok {
		return nil, nil
	}
	return copyPlayer(p), nil
}

func copyPlayer(p *models.ActivePlayer) *models.ActivePlayer {
	cp := *p
	if p.GameState != nil {
		state := *p.GameState
		state.Snake = append([]models.Position(nil), p.GameState.Snake...)
		cp.GameState = &state
	}
	return &cp
}

func (s *Storage) DeleteActivePlayer(ctx context.Context, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[playerID]; !ok {
		return nil
	}
	delete(s.players, playerID)
	for i, id := range s.playerOrder {
		if id == playerID {
			s.playerOrder = append(s.playerOrder[:i], s.playerOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	s.sessions[token] = session{userID: userID, expiresAt: expiresAt}
	return nil
}

func (s *Storage) GetSession(ctx context.Context, token string) (*uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if !sess.expiresAt.IsZero() && time.Now().After(sess.expiresAt) {
		return nil, nil
	}
	userID := sess.userID
	return &userID, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
