package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Authenticator resolves a bearer token to the user behind a live session.
type Authenticator interface {
	CurrentUser(ctx context.Context, token string) (*models.UserDB, error)
}

type userContextKey struct{}
type tokenContextKey struct{}

// AuthMiddleware rejects requests without a valid session with 401 and stores
// the resolved user and token in the request context otherwise.
func AuthMiddleware(tokener Tokener, auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeJSONError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			user, err := auth.CurrentUser(ctx, token)
			switch {
			case err == nil:
			case errors.Is(err, services.ErrExpiredToken):
				logger.Log.Infow("authorization failed", "err", err)
				writeJSONError(w, http.StatusUnauthorized, "Token expired")
				return
			case errors.Is(err, services.ErrUnauthenticated),
				errors.Is(err, services.ErrInvalidToken),
				errors.Is(err, services.ErrSessionNotFound):
				logger.Log.Infow("authorization failed", "err", err)
				writeJSONError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			default:
				logger.Log.Errorw("failed to resolve current user", "err", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx = context.WithValue(ctx, userContextKey{}, user)
			ctx = context.WithValue(ctx, tokenContextKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the authenticated user, or nil outside AuthMiddleware.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userContextKey{}).(*models.UserDB)
	return user
}

// TokenFromContext returns the bearer token of an authenticated request.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
