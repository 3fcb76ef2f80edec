package server

import (
	"encoding/json"
	"net/http"

	"github.com/depotlabs/filedepot/pkg/auth"
	"github.com/depotlabs/filedepot/pkg/store/record"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// handleCreateUser registers a new user. Emails are unique; the password
// is stored only as a bcrypt hash.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Missing email")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing password")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	user, err := s.deps.Records.CreateUser(r.Context(), req.Email, hash)
	if record.IsAlreadyExists(err) {
		writeError(w, http.StatusBadRequest, "Already exist")
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

// handleMe returns the identity behind the request's session token.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.deps.Auth.GetUser(r.Context(), token(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Email: user.Email})
}
