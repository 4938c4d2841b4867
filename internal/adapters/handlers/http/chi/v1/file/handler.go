package file

import (
	"log/slog"

	"github.com/dmitrysvd/test-task/internal/core/domain"
	"github.com/dmitrysvd/test-task/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for the files routes
type HandlerV1 struct {
	fileService port.FileService
	logger      *slog.Logger
}

// NewFileHandlerV1 creates HandlerV1
func NewFileHandlerV1(service port.FileService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		fileService: service,
		logger:      logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/upload", h.UploadFileV1)
	router.Post("/stream_upload", h.StreamUploadFileV1)
	router.Get("/", h.ListFilesV1)
	router.Get("/{fileUID}", h.GetFileV1)
	router.Get("/{fileUID}/download", h.DownloadFileV1)

	return router
}

// V1FileResponse is the JSON shape of one uploaded file record
type V1FileResponse struct {
	UID               string  `json:"uid"`
	Size              int64   `json:"size"`
	Format            string  `json:"format"`
	OriginalName      string  `json:"original_name"`
	Extension         *string `json:"extension"`
	IsUploadedToCloud bool    `json:"is_uploaded_to_cloud"`
}

func toV1FileResponse(f domain.UploadedFile) V1FileResponse {
	return V1FileResponse{
		UID:               f.UID.String(),
		Size:              f.Size,
		Format:            f.Format,
		OriginalName:      f.OriginalName,
		Extension:         f.Extension,
		IsUploadedToCloud: f.UploadedToCloud,
	}
}
