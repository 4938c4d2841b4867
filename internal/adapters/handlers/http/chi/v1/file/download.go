package file

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrysvd/test-task/internal/core/domain"
)

// DownloadFileV1 handles GET /files/{fileUID}/download. The suggested
// filename is the stored original name directly concatenated with the
// stored extension.
func (h *HandlerV1) DownloadFileV1(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.fileUID(w, r)
	if !ok {
		return
	}

	content, uploadedFile, err := h.fileService.Download(r.Context(), uid)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error downloading file", "uid", uid, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.FormatInt(uploadedFile.Size, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", uploadedFile.FullName()))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		h.logger.Error("error streaming file content", "uid", uid, "error", err)
	}
}
