package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-auth-api/auth"
)

// HealthHandler reports that the API is up.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("API Running"))
	}
}

// RegisterHandler creates a user and returns the first token pair.
func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Invalid request body"})
			return
		}

		pair, err := s.auth.Register(r.Context(), req)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pair)
	}
}

// LoginHandler verifies credentials and returns a fresh token pair.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Msg: "Invalid request body"})
			return
		}

		pair, err := s.auth.Login(r.Context(), req)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pair)
	}
}

// RefreshHandler rotates the refresh token presented in the x-refresh-token
// header and returns the new pair.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pair, err := s.auth.Refresh(r.Context(), r.Header.Get(HeaderRefreshToken))
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pair)
	}
}

// ProfileHandler returns the authenticated user's record. The password hash
// never serializes (users.User tags it `json:"-"`).
func (s *Server) ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			s.writeError(w, auth.UnauthenticatedErr)
			return
		}

		user, err := s.auth.Profile(r.Context(), userID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
