package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/snake-arena/internal/middlewares"
	"github.com/sbilibin2017/snake-arena/internal/models"
)

// asUser runs h behind the auth middleware with the given user already resolved.
func asUser(ctrl *gomock.Controller, user *models.UserDB, h http.Handler) http.Handler {
	tok := middlewares.NewMockTokener(ctrl)
	auth := middlewares.NewMockAuthenticator(ctrl)
	tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("tok", nil).AnyTimes()
	auth.EXPECT().CurrentUser(gomock.Any(), "tok").Return(user, nil).AnyTimes()
	return middlewares.AuthMiddleware(tok, auth)(h)
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}
