package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the store
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username, original casing
	Email        string    `json:"email" db:"email"`           // Unique email, original casing
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt digest, never serialized
	HighScore    int       `json:"high_score" db:"high_score"` // Best score across all modes
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// User is the public view of a user returned by the API
// swagger:model User
type User struct {
	// example: 550e8400-e29b-41d4-a716-446655440000
	ID string `json:"id"`
	// example: SnakeMaster
	Username string `json:"username"`
	// example: player1@test.com
	Email string `json:"email"`
	// example: 2450
	HighScore int `json:"highScore"`
	// example: 2024-01-15T10:30:00Z
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser builds the public view of a stored user.
func NewUser(u *UserDB) User {
	return User{
		ID:        u.UserID.String(),
		Username:  u.Username,
		Email:     u.Email,
		HighScore: u.HighScore,
		CreatedAt: u.CreatedAt,
	}
}
