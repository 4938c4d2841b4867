package file

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrysvd/test-task/internal/core/domain"
)

// uploadFieldName is the multipart form field carrying the file.
const uploadFieldName = "upload_file"

// UploadFileV1 handles POST /files/upload. The whole body is buffered in
// memory before the blob write.
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, domain.IngestBuffered)
}

// StreamUploadFileV1 handles POST /files/stream_upload. The body is moved to
// the blob store in bounded chunks; memory use is independent of file size.
func (h *HandlerV1) StreamUploadFileV1(w http.ResponseWriter, r *http.Request) {
	h.handleUpload(w, r, domain.IngestChunked)
}

// handleUpload is the shared endpoint body; the two routes differ only in
// ingestion mode.
func (h *HandlerV1) handleUpload(w http.ResponseWriter, r *http.Request, mode domain.IngestMode) {
	content, fileName, format, err := uploadPart(r)
	if err != nil {
		h.logger.Error("error reading upload request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	uploadedFile, err := h.fileService.Upload(r.Context(), fileName, format, content, mode)
	if err != nil {
		h.logger.Error("error uploading file", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toV1FileResponse(*uploadedFile)); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// uploadPart walks the multipart body up to the upload_file field and returns
// it as a stream, together with the declared filename and content type. The
// body is never buffered here; buffering, if any, happens in the blob store.
func uploadPart(r *http.Request) (io.Reader, string, string, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, "", "", err
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, "", "", domain.ErrMissingUploadPart
		}
		if err != nil {
			return nil, "", "", err
		}

		if part.FormName() == uploadFieldName {
			return part, part.FileName(), part.Header.Get("Content-Type"), nil
		}
		part.Close()
	}
}
