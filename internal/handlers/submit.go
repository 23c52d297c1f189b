package handlers

//go:generate mockgen -source=submit.go -destination=submit_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/middlewares"
	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/services"
)

// ScoreSubmitter records scores.
type ScoreSubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, score int, mode models.GameMode) (int, error)
}

// SubmitScoreRequest represents the JSON body for a score submission
// swagger:model SubmitScoreRequest
type SubmitScoreRequest struct {
	// Final score, zero or more
	// required: true
	// example: 1500
	Score *int `json:"score" validate:"required,gte=0"`

	// Game mode
	// required: true
	// example: walls
	Mode string `json:"mode" validate:"required,oneof=walls pass-through"`
}

// SubmitScoreResponse reports where the new entry landed
// swagger:model SubmitScoreResponse
type SubmitScoreResponse struct {
	// example: true
	Success bool `json:"success"`
	// 1-based position within the mode
	// example: 3
	Rank int `json:"rank"`
}

// NewSubmitScoreHandler returns an HTTP handler for score submission.
// @Summary Submit a score
// @Description Adds a leaderboard entry for the caller and returns its rank within the mode.
// @Tags leaderboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submitScoreRequest body handlers.SubmitScoreRequest true "Score"
// @Success 200 {object} handlers.SubmitScoreResponse
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Failure 422 {object} handlers.ErrorResponse "Validation error"
// @Failure 500 {object} handlers.ErrorResponse "Failed to submit score"
// @Router /leaderboard/submit [post]
func NewSubmitScoreHandler(svc ScoreSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		var req SubmitScoreRequest
		if msg, ok := decodeRequest(r, &req); !ok {
			writeError(w, http.StatusUnprocessableEntity, msg)
			return
		}

		rank, err := svc.Submit(r.Context(), user.UserID, *req.Score, models.GameMode(req.Mode))
		switch {
		case err == nil:
		case errors.Is(err, services.ErrInvalidScore), errors.Is(err, services.ErrInvalidMode):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		case errors.Is(err, services.ErrUserNotFound):
			logger.Log.Errorw("authenticated user missing on submit", "user_id", user.UserID)
			writeError(w, http.StatusInternalServerError, "Failed to submit score")
			return
		default:
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SubmitScoreResponse{Success: true, Rank: rank})
	}
}
