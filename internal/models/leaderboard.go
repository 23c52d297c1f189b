package models

import "github.com/google/uuid"

// GameMode is a game ruleset variant.
type GameMode string

// Supported game modes
const (
	ModeWalls       GameMode = "walls"        // collision with an edge ends the game
	ModePassThrough GameMode = "pass-through" // edges wrap around
)

// Valid reports whether m is a known game mode.
func (m GameMode) Valid() bool {
	return m == ModeWalls || m == ModePassThrough
}

// DateLayout is the calendar day format used for leaderboard entries.
const DateLayout = "2006-01-02"

// LeaderboardEntry is an immutable, append-only score record.
// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	ID       uuid.UUID `json:"id" db:"entry_id"`
	UserID   uuid.UUID `json:"-" db:"user_id"`
	Username string    `json:"username" db:"username"` // copy of the username at submission time
	Score    int       `json:"score" db:"score"`
	Mode     GameMode  `json:"mode" db:"mode"`
	Date     string    `json:"date" db:"date"`
	Seq      int64     `json:"-" db:"seq"` // submission order, breaks score ties
}
