package server

import "net/http"

const (
	RouteAuth         = "/api/auth"
	RouteRefreshToken = "/api/auth/refresh-token"
	RouteUsers        = "/api/users"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", s.HealthHandler())

	s.RegisterRouteFunc("GET "+RouteAuth, ChainMiddleware(s.ProfileHandler(), s.LoggingMiddleware, s.RecoverMiddleware, s.RequireAuth))
	s.RegisterRouteFunc("POST "+RouteAuth, ChainMiddleware(s.LoginHandler(), s.LoggingMiddleware, s.RecoverMiddleware))
	s.RegisterRouteFunc("POST "+RouteRefreshToken, ChainMiddleware(s.RefreshHandler(), s.LoggingMiddleware, s.RecoverMiddleware))
	s.RegisterRouteFunc("POST "+RouteUsers, ChainMiddleware(s.RegisterHandler(), s.LoggingMiddleware, s.RecoverMiddleware))
}

// ChainMiddleware wraps a handler in middleware, applied in reverse order so
// the first listed middleware runs outermost.
func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}
