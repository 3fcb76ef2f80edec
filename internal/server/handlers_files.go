package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/depotlabs/filedepot/internal/logger"
	"github.com/depotlabs/filedepot/pkg/files"
	"github.com/depotlabs/filedepot/pkg/policy"
)

// identity resolves the request's session token to an owner identity.
func (s *Server) identity(r *http.Request) (policy.Identity, error) {
	userID, err := s.deps.Auth.ResolveSession(r.Context(), token(r))
	if err != nil {
		return policy.Anonymous, err
	}
	return policy.Identity(userID), nil
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	owner, err := s.identity(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var req files.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	file, err := s.deps.Files.Upload(r.Context(), owner, &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, file)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	owner, err := s.identity(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	parentID := r.URL.Query().Get("parentId")

	// A page parameter that does not parse is treated as the first page.
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil {
		page = 0
	}

	listed, err := s.deps.Files.List(r.Context(), owner, parentID, page)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listed)
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	owner, err := s.identity(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	file, err := s.deps.Files.Show(r.Context(), owner, mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, file)
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	s.setVisibility(w, r, true)
}

func (s *Server) handleUnpublish(w http.ResponseWriter, r *http.Request) {
	s.setVisibility(w, r, false)
}

func (s *Server) setVisibility(w http.ResponseWriter, r *http.Request, isPublic bool) {
	owner, err := s.identity(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	file, err := s.deps.Files.SetVisibility(r.Context(), owner, mux.Vars(r)["id"], isPublic)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, file)
}

// handleContent serves raw payload bytes. Unlike the other file routes a
// missing or invalid token does not fail the request; the caller proceeds
// as anonymous and the read policy decides per record.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	identity, err := s.identity(r)
	if err != nil {
		identity = policy.Anonymous
	}

	data, mimeType, err := s.deps.Files.GetContent(r.Context(), identity, mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Error("Failed to write content response: %v", err)
	}
}
