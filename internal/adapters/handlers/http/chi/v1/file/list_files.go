package file

import (
	"encoding/json"
	"net/http"
)

// ListFilesV1 handles GET /files
func (h *HandlerV1) ListFilesV1(w http.ResponseWriter, r *http.Request) {
	files, err := h.fileService.ListFiles(r.Context())
	if err != nil {
		h.logger.Error("error listing files", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]V1FileResponse, 0, len(files))
	for _, f := range files {
		resp = append(resp, toV1FileResponse(f))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}
