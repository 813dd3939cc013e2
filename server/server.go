// Package server is the HTTP boundary. It decodes requests, hands them to the
// auth service, and maps the service's errors to status codes and JSON bodies.
package server

import (
	"net/http"

	"github.com/jrsteele09/go-auth-api/auth"
	"github.com/jrsteele09/go-auth-api/internal/config"
	"github.com/rs/zerolog"
)

// Header names the API reads tokens from. Tokens travel in headers, not the
// request body; clients send the access token with every protected call and
// the refresh token only to the refresh-token route.
const (
	HeaderAuthToken    = "x-auth-token"
	HeaderRefreshToken = "x-refresh-token"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	mux    *http.ServeMux
	routes []string
	config *config.Config
	auth   *auth.Service
	logger zerolog.Logger
}

func New(cfg *config.Config, authService *auth.Service, logger zerolog.Logger) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		config: cfg,
		auth:   authService,
		logger: logger,
		env:    cfg.Env,
	}

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		s.logger.Info().Str("route", route).Msg("registered")
	}
}
