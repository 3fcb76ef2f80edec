package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/depotlabs/filedepot/internal/logger"
	"github.com/depotlabs/filedepot/pkg/auth"
	"github.com/depotlabs/filedepot/pkg/files"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError translates auth and workflow failures into HTTP
// responses. Anything unrecognized is an internal error; its detail is
// logged, never sent to the caller.
func writeDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, auth.ErrUnauthorized) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if code, ok := files.CodeOf(err); ok {
		switch code {
		case files.ErrValidation, files.ErrBadRequest:
			writeError(w, http.StatusBadRequest, err.Error())
		case files.ErrNotFound:
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	logger.Error("Internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "Internal Server Error")
}
