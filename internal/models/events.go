package models

// ScoreSubmitted is published after a score has been added to the leaderboard.
type ScoreSubmitted struct {
	EntryID     string   `json:"entry_id"`     // Leaderboard entry identifier
	UserID      string   `json:"user_id"`      // Submitting user
	Username    string   `json:"username"`     // Username at submission time
	Score       int      `json:"score"`        // Submitted score
	Mode        GameMode `json:"mode"`         // Game mode the score belongs to
	Rank        int      `json:"rank"`         // 1-based rank within the mode
	HighScore   int      `json:"high_score"`   // User high score after the submission
	SubmittedAt int64    `json:"submitted_at"` // Unix timestamp (seconds)
}
