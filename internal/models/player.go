package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Direction is the heading of a snake.
type Direction string

// Snake headings
const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// Position is a cell on the game grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GameState is the last snapshot written for an active player.
// swagger:model GameState
type GameState struct {
	Snake     []Position `json:"snake"` // head first
	Food      Position   `json:"food"`
	Direction Direction  `json:"direction"`
	Score     int        `json:"score"`
}

// Value stores the snapshot as JSON.
func (g GameState) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan reads a JSON snapshot.
func (g *GameState) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	case nil:
		return nil
	default:
		return errors.New("unsupported game state type")
	}
}

// ActivePlayer is a player whose game is in progress.
// swagger:model ActivePlayer
type ActivePlayer struct {
	ID        string     `json:"id" db:"player_id"`
	Username  string     `json:"username" db:"username"`
	Score     int        `json:"score" db:"score"`
	Mode      GameMode   `json:"mode" db:"mode"`
	StartedAt time.Time  `json:"startedAt" db:"started_at"`
	GameState *GameState `json:"-" db:"game_state"`
}
