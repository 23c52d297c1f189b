package handlers

//go:generate mockgen -source=root.go -destination=root_mock.go -package=handlers

import (
	"context"
	"net/http"
)

// APIVersion is reported by the root endpoint and the API document.
const APIVersion = "1.0.0"

// RootResponse is the service banner
// swagger:model RootResponse
type RootResponse struct {
	// example: Snake Arena Live API
	Message string `json:"message"`
	// example: 1.0.0
	Version string `json:"version"`
	// example: /swagger/index.html
	Docs string `json:"docs"`
}

// HealthResponse reports service health
// swagger:model HealthResponse
type HealthResponse struct {
	// example: healthy
	Status string `json:"status"`
}

// HealthChecker reports whether the service accepts traffic.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// NewRootHandler returns the service banner.
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{
			Message: "Snake Arena Live API",
			Version: APIVersion,
			Docs:    "/swagger/index.html",
		})
	}
}

// NewHealthHandler reports 200 while serving and 503 once shutdown has begun.
func NewHealthHandler(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !checker.Healthy(r.Context()) {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
			return
		}
		writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
	}
}
