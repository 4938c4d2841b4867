package file

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrysvd/test-task/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetFileV1 handles GET /files/{fileUID}
func (h *HandlerV1) GetFileV1(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.fileUID(w, r)
	if !ok {
		return
	}

	uploadedFile, err := h.fileService.GetFile(r.Context(), uid)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error getting file", "uid", uid, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toV1FileResponse(*uploadedFile)); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// fileUID extracts and parses the fileUID URL parameter, answering the
// request itself when the parameter is malformed.
func (h *HandlerV1) fileUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "fileUID")
	uid, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "invalid file uid", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return uid, true
}
