package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/snake-arena/internal/models"
)

// LeaderboardReadRepository handles leaderboard read operations
type LeaderboardReadRepository struct {
	db *sqlx.DB
}

func NewLeaderboardReadRepository(db *sqlx.DB) *LeaderboardReadRepository {
	return &LeaderboardReadRepository{db: db}
}

// List returns entries sorted by score descending, earlier submissions first on ties.
// A nil mode returns every mode.
func (r *LeaderboardReadRepository) List(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	const query = `
		SELECT seq, entry_id, user_id, username, score, mode, entry_date AS date
		FROM leaderboard_entries
		WHERE ($1::VARCHAR IS NULL OR mode = $1)
		ORDER BY score DESC, seq ASC
	`

	var modeArg *string
	if mode != nil {
		m := string(*mode)
		modeArg = &m
	}

	entries := []models.LeaderboardEntry{}
	err := r.db.SelectContext(ctx, &entries, query, modeArg)
	logQuery(query, []any{modeArg}, len(entries), err)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// LeaderboardWriteRepository handles leaderboard write operations
type LeaderboardWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLeaderboardWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LeaderboardWriteRepository {
	return &LeaderboardWriteRepository{db: db, txGetter: txGetter}
}

// Append inserts the entry and returns its rank within the entry's mode.
// It joins the request transaction when there is one and opens its own otherwise.
func (r *LeaderboardWriteRepository) Append(ctx context.Context, entry *models.LeaderboardEntry) (int, error) {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return r.append(ctx, tx, entry)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}

	rank, err := r.append(ctx, tx, entry)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return rank, nil
}

func (r *LeaderboardWriteRepository) append(ctx context.Context, tx *sqlx.Tx, entry *models.LeaderboardEntry) (int, error) {
	// Serialises appends per mode until the transaction ends.
	const lockQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`
	_, err := tx.ExecContext(ctx, lockQuery, string(entry.Mode))
	logQuery(lockQuery, []any{entry.Mode}, nil, err)
	if err != nil {
		return 0, err
	}

	const insertQuery = `
		INSERT INTO leaderboard_entries (entry_id, user_id, username, score, mode, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq
	`
	insertArgs := []any{entry.ID, entry.UserID, entry.Username, entry.Score, string(entry.Mode), entry.Date}
	err = tx.GetContext(ctx, &entry.Seq, insertQuery, insertArgs...)
	logQuery(insertQuery, insertArgs, entry.Seq, err)
	if err != nil {
		return 0, err
	}

	const rankQuery = `
		SELECT COUNT(*) + 1
		FROM leaderboard_entries
		WHERE mode = $1 AND (score > $2 OR (score = $2 AND seq < $3))
	`
	rankArgs := []any{string(entry.Mode), entry.Score, entry.Seq}
	var rank int
	err = tx.GetContext(ctx, &rank, rankQuery, rankArgs...)
	logQuery(rankQuery, rankArgs, rank, err)
	if err != nil {
		return 0, err
	}

	return rank, nil
}
