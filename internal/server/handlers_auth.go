package server

import (
	"net/http"
)

// handleConnect exchanges Basic credentials for a session token.
func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tok, err := s.deps.Auth.CreateSession(r.Context(), email, password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}

// handleDisconnect invalidates the request's session token.
func (s *Server) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Auth.DestroySession(r.Context(), token(r)); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
