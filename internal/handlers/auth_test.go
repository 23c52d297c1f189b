package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/snake-arena/internal/models"
	"github.com/sbilibin2017/snake-arena/internal/services"
)

func TestSignupHandler(t *testing.T) {
	created := &models.UserDB{
		UserID:    uuid.New(),
		Username:  "NewPlayer",
		Email:     "new@test.com",
		CreatedAt: time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC),
	}

	valid := map[string]any{"email": "new@test.com", "username": "NewPlayer", "password": "secret1"}

	tests := []struct {
		name          string
		body          any
		mockSetup     func(m *MockSignuper)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: valid,
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().Signup(gomock.Any(), "new@test.com", "NewPlayer", "secret1").Return(created, "tok", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email taken",
			body: valid,
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().Signup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, "", services.ErrEmailAlreadyExists)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email already registered",
		},
		{
			name: "username taken",
			body: valid,
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().Signup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, "", services.ErrUsernameAlreadyExists)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username already taken",
		},
		{
			name: "internal error",
			body: valid,
			mockSetup: func(m *MockSignuper) {
				m.EXPECT().Signup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, "", errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			body:          "{invalid",
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid request body",
		},
		{
			name:          "bad email",
			body:          map[string]any{"email": "not-an-email", "username": "NewPlayer", "password": "secret1"},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "email must be a valid email address",
		},
		{
			name:          "short username",
			body:          map[string]any{"email": "a@test.com", "username": "ab", "password": "secret1"},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "username must be at least 3 characters",
		},
		{
			name:          "long username",
			body:          map[string]any{"email": "a@test.com", "username": "abcdefghijklmnopqrstu", "password": "secret1"},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "username must be at most 20 characters",
		},
		{
			name:          "blank username",
			body:          map[string]any{"email": "a@test.com", "username": "   ", "password": "secret1"},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "username is required",
		},
		{
			name:          "padded short username",
			body:          map[string]any{"email": "a@test.com", "username": "  ab  ", "password": "secret1"},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "username must be at least 3 characters",
		},
		{
			name: "surrounding whitespace trimmed",
			body: map[string]any{"email": " new@test.com ", "username": " NewPlayer ", "password": " secret1 "},
			mockSetup: func(m *MockSignuper) {
				// password is taken as typed
				m.EXPECT().Signup(gomock.Any(), "new@test.com", "NewPlayer", " secret1 ").Return(created, "tok", nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "short password",
			body:          map[string]any{"email": "a@test.com", "username": "abc", "password": "12345"},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "password must be at least 6 characters",
		},
		{
			name:          "missing password",
			body:          map[string]any{"email": "a@test.com", "username": "abc"},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "password is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockSignuper(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := doJSON(t, NewSignupHandler(svc), http.MethodPost, "/api/v1/auth/signup", tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody[ErrorResponse](t, rr).Error)
				return
			}

			resp := decodeBody[map[string]any](t, rr)
			user := resp["user"].(map[string]any)
			assert.Equal(t, created.UserID.String(), user["id"])
			assert.Equal(t, "NewPlayer", user["username"])
			assert.EqualValues(t, 0, user["highScore"])
			assert.Equal(t, "2024-11-28T10:00:00Z", user["createdAt"])
			assert.NotContains(t, user, "passwordHash")
			assert.NotContains(t, user, "password_hash")
			assert.Equal(t, "tok", resp["token"])
		})
	}
}

func TestLoginHandler(t *testing.T) {
	user := &models.UserDB{UserID: uuid.New(), Username: "SnakeMaster", Email: "player1@test.com", HighScore: 2450}

	tests := []struct {
		name          string
		body          any
		mockSetup     func(m *MockLoginer)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: LoginRequest{Email: "player1@test.com", Password: "password123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "player1@test.com", "password123").Return(user, "tok", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown user",
			body: LoginRequest{Email: "nobody@test.com", Password: "password123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "nobody@test.com", "password123").Return(nil, "", services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name: "wrong password",
			body: LoginRequest{Email: "player1@test.com", Password: "nope"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "player1@test.com", "nope").Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid password",
		},
		{
			name: "internal error",
			body: LoginRequest{Email: "player1@test.com", Password: "password123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, "", errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "missing email",
			body:          map[string]string{"password": "x"},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "email is required",
		},
		{
			name:          "invalid json",
			body:          "[]",
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := doJSON(t, NewLoginHandler(svc), http.MethodPost, "/api/v1/auth/login", tt.body)
			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody[ErrorResponse](t, rr).Error)
				return
			}

			resp := decodeBody[AuthResponse](t, rr)
			assert.Equal(t, "tok", resp.Token)
			assert.Equal(t, user.UserID.String(), resp.User.ID)
			assert.Equal(t, 2450, resp.User.HighScore)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	user := &models.UserDB{UserID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockLogouter(ctrl)
		svc.EXPECT().Logout(gomock.Any(), "tok").Return(nil)

		rr := doJSON(t, asUser(ctrl, user, NewLogoutHandler(svc)), http.MethodPost, "/api/v1/auth/logout", nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockLogouter(ctrl)
		svc.EXPECT().Logout(gomock.Any(), "tok").Return(errors.New("redis down"))

		rr := doJSON(t, asUser(ctrl, user, NewLogoutHandler(svc)), http.MethodPost, "/api/v1/auth/logout", nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	user := &models.UserDB{UserID: uuid.New(), Username: "SnakeMaster", Email: "player1@test.com", PasswordHash: "secret-hash", HighScore: 2450}

	rr := doJSON(t, asUser(ctrl, user, NewMeHandler()), http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret-hash")

	got := decodeBody[models.User](t, rr)
	assert.Equal(t, "SnakeMaster", got.Username)
	assert.Equal(t, 2450, got.HighScore)

	// without the auth middleware there is no user
	rr = doJSON(t, NewMeHandler(), http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
