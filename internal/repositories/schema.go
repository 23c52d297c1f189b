package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// migrations create the tables used by the table-backed store.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(20) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		high_score INTEGER NOT NULL DEFAULT 0 CHECK (high_score >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_username_lower_idx ON users (LOWER(username));`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (LOWER(email));`,
	`CREATE TABLE IF NOT EXISTS leaderboard_entries (
		seq BIGSERIAL PRIMARY KEY,
		entry_id UUID NOT NULL UNIQUE,
		user_id UUID NOT NULL,
		username VARCHAR(20) NOT NULL,
		score INTEGER NOT NULL CHECK (score >= 0),
		mode VARCHAR(16) NOT NULL,
		entry_date VARCHAR(10) NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS leaderboard_entries_mode_score_idx ON leaderboard_entries (mode, score DESC, seq);`,
	`CREATE TABLE IF NOT EXISTS active_players (
		seq BIGSERIAL,
		player_id VARCHAR(64) PRIMARY KEY,
		username VARCHAR(20) NOT NULL,
		score INTEGER NOT NULL DEFAULT 0 CHECK (score >= 0),
		mode VARCHAR(16) NOT NULL,
		started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		game_state JSONB
	);`,
}

// Migrate creates missing tables and indexes.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		_, err := db.ExecContext(ctx, m)
		logQuery(m, nil, nil, err)
		if err != nil {
			return err
		}
	}
	return nil
}
