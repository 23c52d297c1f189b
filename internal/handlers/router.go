package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/snake-arena/internal/middlewares"
)

// AuthAPI is everything the auth routes need.
type AuthAPI interface {
	Signuper
	Loginer
	Logouter
	middlewares.Authenticator
}

// LeaderboardAPI is everything the leaderboard routes need.
type LeaderboardAPI interface {
	LeaderboardLister
	ScoreSubmitter
}

// PlayersAPI is everything the players routes need.
type PlayersAPI interface {
	ActivePlayersLister
	GameStateGetter
}

// RouterConfig holds the router dependencies.
type RouterConfig struct {
	Auth        AuthAPI
	Leaderboard LeaderboardAPI
	Players     PlayersAPI
	Health      HealthChecker
	Tokener     middlewares.Tokener

	// CORSOrigins is the exact list of allowed origins.
	CORSOrigins []string

	// SubmitMiddlewares wrap score submission, e.g. a per-request transaction.
	SubmitMiddlewares []func(http.Handler) http.Handler
}

// NewRouter builds the HTTP API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	authMiddleware := middlewares.AuthMiddleware(cfg.Tokener, cfg.Auth)

	r.Get("/", NewRootHandler())
	r.Get("/health", NewHealthHandler(cfg.Health))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", NewSignupHandler(cfg.Auth))
			r.Post("/login", NewLoginHandler(cfg.Auth))

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Post("/logout", NewLogoutHandler(cfg.Auth))
				r.Get("/me", NewMeHandler())
			})
		})

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", NewLeaderboardHandler(cfg.Leaderboard))

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Use(cfg.SubmitMiddlewares...)
				r.Post("/submit", NewSubmitScoreHandler(cfg.Leaderboard))
			})
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/active", NewActivePlayersHandler(cfg.Players))
			r.Get("/{playerId}/game-state", NewGameStateHandler(cfg.Players))
		})
	})

	return r
}
