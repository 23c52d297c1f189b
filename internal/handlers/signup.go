package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, email, username, password string) (*models.UserDB, string, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Email
	// required: true
	// example: newplayer@test.com
	Email string `json:"email" validate:"required,email"`

	// Username, 3 to 20 characters
	// required: true
	// example: NewPlayer
	Username string `json:"username" validate:"required,min=3,max=20"`

	// Password, at least 6 characters
	// required: true
	// example: password123
	Password string `json:"password" validate:"required,min=6"`
}

func (req *SignupRequest) normalize() {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
}

// AuthResponse is returned by signup and login
// swagger:model AuthResponse
type AuthResponse struct {
	User models.User `json:"user"`

	// Bearer token for the Authorization header
	Token string `json:"token"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Create a new user account
// @Description Registers a user with a unique email and username and opens a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.AuthResponse
// @Failure 400 {object} handlers.ErrorResponse "Email or username already taken"
// @Failure 422 {object} handlers.ErrorResponse "Validation error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if msg, ok := decodeRequest(r, &req); !ok {
			writeError(w, http.StatusUnprocessableEntity, msg)
			return
		}

		user, token, err := svc.Signup(r.Context(), req.Email, req.Username, req.Password)
		switch {
		case err == nil:
		case errors.Is(err, services.ErrEmailAlreadyExists):
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		case errors.Is(err, services.ErrUsernameAlreadyExists):
			writeError(w, http.StatusBadRequest, "Username already taken")
			return
		default:
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{User: models.NewUser(user), Token: token})
	}
}
