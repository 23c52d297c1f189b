package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/models"
)

//go:generate mockgen -source=leaderboard.go -destination=leaderboard_mock.go -package=services

// UserGetter loads a user by id.
type UserGetter interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// LeaderboardStore appends and lists leaderboard entries and keeps high scores.
type LeaderboardStore interface {
	AppendEntry(ctx context.Context, entry *models.LeaderboardEntry) (int, error)
	ListEntries(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error)
	UpdateHighScore(ctx context.Context, userID uuid.UUID, score int) error
}

// ScorePublisher announces accepted scores.
type ScorePublisher interface {
	PublishScoreSubmitted(ctx context.Context, event models.ScoreSubmitted) error
}

// AfterCommitFunc defers fn until the surrounding transaction in ctx commits.
type AfterCommitFunc func(ctx context.Context, fn func())

// LeaderboardService lists entries and records new scores.
type LeaderboardService struct {
	users       UserGetter
	store       LeaderboardStore
	publisher   ScorePublisher
	afterCommit AfterCommitFunc
}

// NewLeaderboardService creates a new LeaderboardService. publisher may be nil.
// Score events are handed to afterCommit so they only leave once the entry is
// durable; a nil afterCommit publishes right away.
func NewLeaderboardService(users UserGetter, store LeaderboardStore, publisher ScorePublisher, afterCommit AfterCommitFunc) *LeaderboardService {
	if afterCommit == nil {
		afterCommit = func(_ context.Context, fn func()) { fn() }
	}
	return &LeaderboardService{
		users:       users,
		store:       store,
		publisher:   publisher,
		afterCommit: afterCommit,
	}
}

// List returns entries sorted by score descending, optionally limited to one mode.
func (svc *LeaderboardService) List(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	if mode != nil && !mode.Valid() {
		return nil, ErrInvalidMode
	}

	entries, err := svc.store.ListEntries(ctx, mode)
	if err != nil {
		logger.Log.Errorw("failed to list leaderboard", "mode", mode, "err", err)
		return nil, err
	}
	return entries, nil
}

// Submit records a score for the user and returns the new entry's rank within its mode.
func (svc *LeaderboardService) Submit(ctx context.Context, userID uuid.UUID, score int, mode models.GameMode) (int, error) {
	if score < 0 {
		return 0, ErrInvalidScore
	}
	if !mode.Valid() {
		return 0, ErrInvalidMode
	}

	user, err := svc.users.GetUserByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return 0, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "user_id", userID)
		return 0, ErrUserNotFound
	}

	now := time.Now().UTC()
	entry := &models.LeaderboardEntry{
		ID:       uuid.New(),
		UserID:   user.UserID,
		Username: user.Username,
		Score:    score,
		Mode:     mode,
		Date:     now.Format(models.DateLayout),
	}

	rank, err := svc.store.AppendEntry(ctx, entry)
	if err != nil {
		logger.Log.Errorw("failed to append entry", "user_id", userID, "err", err)
		return 0, err
	}

	if err := svc.store.UpdateHighScore(ctx, user.UserID, score); err != nil {
		logger.Log.Errorw("failed to update high score", "user_id", userID, "err", err)
		return 0, err
	}

	svc.publish(ctx, models.ScoreSubmitted{
		EntryID:     entry.ID.String(),
		UserID:      user.UserID.String(),
		Username:    user.Username,
		Score:       score,
		Mode:        mode,
		Rank:        rank,
		HighScore:   max(user.HighScore, score),
		SubmittedAt: now.Unix(),
	})

	return rank, nil
}

func (svc *LeaderboardService) publish(ctx context.Context, event models.ScoreSubmitted) {
	if svc.publisher == nil {
		return
	}
	svc.afterCommit(ctx, func() {
		if err := svc.publisher.PublishScoreSubmitted(ctx, event); err != nil {
			logger.Log.Warnw("failed to publish score event", "entry_id", event.EntryID, "err", err)
		}
	})
}
