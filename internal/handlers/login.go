package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: player1@test.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: password123
	Password string `json:"password" validate:"required"`
}

func (req *LoginRequest) normalize() {
	req.Email = strings.TrimSpace(req.Email)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Log in
// @Description Authenticates with email and password and returns the user with a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.AuthResponse
// @Failure 401 {object} handlers.ErrorResponse "Invalid password"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ErrorResponse "Validation error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if msg, ok := decodeRequest(r, &req); !ok {
			writeError(w, http.StatusUnprocessableEntity, msg)
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		switch {
		case err == nil:
		case errors.Is(err, services.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
			return
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid password")
			return
		default:
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{User: models.NewUser(user), Token: token})
	}
}
