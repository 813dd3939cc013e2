package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-auth-api/auth"
	"github.com/pkg/errors"
)

type messageResponse struct {
	Msg string `json:"msg"`
}

type errorsResponse struct {
	Errors []errorEntry `json:"errors"`
}

type errorEntry struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps service errors to status codes and bodies. Validation,
// credential, and duplicate-user failures are client errors; token failures
// are 401; anything else is an internal error whose detail stays in the log.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var verrs auth.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		entries := make([]errorEntry, 0, len(verrs))
		for _, fe := range verrs {
			entries = append(entries, errorEntry{Msg: fe.Message, Param: fe.Field})
		}
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: entries})
	case errors.Is(err, auth.InvalidCredentialsErr), errors.Is(err, auth.DuplicateUserErr):
		writeJSON(w, http.StatusBadRequest, errorsResponse{Errors: []errorEntry{{Msg: err.Error()}}})
	case errors.Is(err, auth.UnauthenticatedErr), errors.Is(err, auth.InvalidTokenErr), errors.Is(err, auth.TokenRotatedErr):
		writeJSON(w, http.StatusUnauthorized, messageResponse{Msg: err.Error()})
	default:
		s.logger.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, messageResponse{Msg: "Server Error"})
	}
}
