package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// tokenHeader is the header carrying the session token on authenticated
// routes.
const tokenHeader = "X-Token"

// routes wires every endpoint. Authentication is handled per handler
// because the content endpoint accepts anonymous callers.
func (s *Server) routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	r.HandleFunc("/users", s.handleCreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users/me", s.handleMe).Methods(http.MethodGet)

	r.HandleFunc("/connect", s.handleConnect).Methods(http.MethodGet)
	r.HandleFunc("/disconnect", s.handleDisconnect).Methods(http.MethodGet)

	r.HandleFunc("/files", s.handleUpload).Methods(http.MethodPost)
	r.HandleFunc("/files", s.handleList).Methods(http.MethodGet)
	r.HandleFunc("/files/{id}", s.handleShow).Methods(http.MethodGet)
	r.HandleFunc("/files/{id}/publish", s.handlePublish).Methods(http.MethodPut)
	r.HandleFunc("/files/{id}/unpublish", s.handleUnpublish).Methods(http.MethodPut)
	r.HandleFunc("/files/{id}/data", s.handleContent).Methods(http.MethodGet)

	return s.throttle(r)
}

// throttle rejects requests exceeding the configured rate with 429 instead
// of queueing them.
func (s *Server) throttle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// token extracts the session token header, which may be empty.
func token(r *http.Request) string {
	return r.Header.Get(tokenHeader)
}
