package server

import (
	"net/http"
)

// handleStatus reports reachability of the session cache and record store.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"redis": s.deps.Sessions.Ping(r.Context()) == nil,
		"db":    s.deps.Records.Ping(r.Context()) == nil,
	})
}

// handleStats reports how many users and files exist.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	users, err := s.deps.Records.CountUsers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	fileCount, err := s.deps.Records.CountFiles(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"users": users,
		"files": fileCount,
	})
}
