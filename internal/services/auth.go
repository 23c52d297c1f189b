package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/snake-arena/internal/jwt"
	"github.com/sbilibin2017/snake-arena/internal/logger"
	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/storage"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetUserByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetUserByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	SaveUser(ctx context.Context, user *models.UserDB) error
}

// SessionStore binds issued tokens to users.
type SessionStore interface {
	SaveSession(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	GetSession(ctx context.Context, token string) (*uuid.UUID, error)
	DeleteSession(ctx context.Context, token string) error
}

// TokenManager issues and validates bearer tokens.
type TokenManager interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
	Expiration() time.Duration
}

// AuthService handles signup, login, logout and current user resolution.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	tokens   TokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionStore, tokens TokenManager) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Signup registers a new user and opens a session for it.
// Email and username are stored trimmed and compared ignoring case, email first.
func (svc *AuthService) Signup(ctx context.Context, email, username, password string) (*models.UserDB, string, error) {
	email, username = strings.TrimSpace(email), strings.TrimSpace(username)
	if err := svc.checkAvailable(ctx, email, username); err != nil {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		HighScore:    0,
		CreatedAt:    time.Now().UTC(),
	}

	if err := svc.writer.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// lost a race with a concurrent signup
			if err := svc.checkAvailable(ctx, email, username); err != nil {
				return nil, "", err
			}
			return nil, "", ErrUsernameAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.openSession(ctx, user.UserID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (svc *AuthService) checkAvailable(ctx context.Context, email, username string) error {
	existing, err := svc.reader.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return ErrEmailAlreadyExists
	}

	existing, err = svc.reader.GetUserByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		return ErrUsernameAlreadyExists
	}

	return nil
}

// Login verifies the password and opens a new session.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	email = strings.TrimSpace(email)
	user, err := svc.reader.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "email", email)
		return nil, "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.openSession(ctx, user.UserID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (svc *AuthService) openSession(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := svc.tokens.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	if err := svc.sessions.SaveSession(ctx, token, userID, svc.tokens.Expiration()); err != nil {
		logger.Log.Errorw("failed to save session", "user_id", userID, "err", err)
		return "", err
	}

	return token, nil
}

// CurrentUser resolves the user behind a bearer token. The token must be
// validly signed, unexpired and bound to a live session for the same user.
func (svc *AuthService) CurrentUser(ctx context.Context, token string) (*models.UserDB, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := svc.tokens.GetUserID(ctx, token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	sessionUserID, err := svc.sessions.GetSession(ctx, token)
	if err != nil {
		logger.Log.Errorw("failed to get session", "err", err)
		return nil, err
	}
	if sessionUserID == nil {
		return nil, ErrSessionNotFound
	}
	if *sessionUserID != userID {
		logger.Log.Warnw("session user does not match token subject", "user_id", userID)
		return nil, ErrInvalidToken
	}

	user, err := svc.reader.GetUserByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}

	return user, nil
}

// Logout ends the session bound to token. The token is rejected afterwards
// even though its signature is still valid.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if err := svc.sessions.DeleteSession(ctx, token); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	return nil
}
