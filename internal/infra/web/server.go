package web

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"telegram-cocktail-bot/internal/config"
	"telegram-cocktail-bot/internal/infra/api"
	"telegram-cocktail-bot/internal/usecase"
)

// Server is the admin HTTP surface: health, metrics, login and usage stats.
type Server struct {
	statsUC usecase.StatsUseCase
	auth    *AuthManager
	apiKey  string
	log     *zerolog.Logger
}

func NewServer(statsUC usecase.StatsUseCase, cfg *config.AdminConfig, secureCookies bool, logger *zerolog.Logger) *Server {
	return &Server{
		statsUC: statsUC,
		auth:    NewAuthManager(cfg.SessionSecret, secureCookies, cfg.SessionTTL),
		apiKey:  cfg.APIKey,
		log:     logger,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(api.TraceID())
	r.Use(api.Recover(s.log))
	r.Use(api.RequestLog(s.log))
	r.Use(api.Timeout(15 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/stats", s.handleStats)
		})
	})

	return r
}

// requireAuth admits either the raw admin API key as a bearer token or a
// session token minted by /login.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" {
			s.log.Error().Msg("admin API key is not configured")
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		if key := bearerToken(r); key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(s.apiKey)) == 1 {
			next.ServeHTTP(w, r)
			return
		}

		if _, err := s.auth.ParseFromRequest(r); err == nil {
			next.ServeHTTP(w, r)
			return
		}

		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}
