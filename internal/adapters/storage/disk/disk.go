package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dmitrysvd/test-task/internal/core/domain"
	"github.com/dmitrysvd/test-task/internal/core/port"

	"github.com/google/uuid"
)

// Adapter stores blobs as plain files in a single content directory,
// one file per uid, no sharding.
type Adapter struct {
	dir    string
	logger *slog.Logger
}

// NewAdapter returns Adapter. The content directory is created on first use.
func NewAdapter(dir string, logger *slog.Logger) (*Adapter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create content directory: %w", err)
	}
	return &Adapter{dir: dir, logger: logger}, nil
}

var _ port.BlobStore = (*Adapter)(nil)

// Write stores content under uid. The two ingestion modes produce
// byte-identical files; they differ only in memory behaviour.
func (a *Adapter) Write(ctx context.Context, uid uuid.UUID, content io.Reader, mode domain.IngestMode) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	switch mode {
	case domain.IngestChunked:
		return a.writeChunked(uid, content)
	default:
		return a.writeBuffered(uid, content)
	}
}

// writeBuffered reads the entire content into memory, then writes it once.
func (a *Adapter) writeBuffered(uid uuid.UUID, content io.Reader) (int64, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return 0, fmt.Errorf("error reading upload content: %w", err)
	}

	if err := os.WriteFile(a.path(uid), data, 0o644); err != nil {
		return 0, fmt.Errorf("error writing blob %s: %w", uid, err)
	}
	return int64(len(data)), nil
}

// writeChunked copies content in bounded chunks so memory use is independent
// of file size.
func (a *Adapter) writeChunked(uid uuid.UUID, content io.Reader) (int64, error) {
	f, err := os.Create(a.path(uid))
	if err != nil {
		return 0, fmt.Errorf("error creating blob %s: %w", uid, err)
	}

	buf := make([]byte, domain.ChunkSize)
	written, err := io.CopyBuffer(f, content, buf)
	if err != nil {
		f.Close()
		return written, fmt.Errorf("error writing blob %s: %w", uid, err)
	}

	if err := f.Close(); err != nil {
		return written, fmt.Errorf("error closing blob %s: %w", uid, err)
	}
	return written, nil
}

// Open returns the stored content for uid.
func (a *Adapter) Open(uid uuid.UUID) (io.ReadCloser, error) {
	f, err := os.Open(a.path(uid))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrBlobNotFound
		}
		return nil, fmt.Errorf("error opening blob %s: %w", uid, err)
	}
	return f, nil
}

// Size returns the on-disk byte count for uid. This is the authoritative
// size recorded in metadata, not anything the client declared.
func (a *Adapter) Size(uid uuid.UUID) (int64, error) {
	info, err := os.Stat(a.path(uid))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, domain.ErrBlobNotFound
		}
		return 0, fmt.Errorf("error reading blob size %s: %w", uid, err)
	}
	return info.Size(), nil
}

func (a *Adapter) path(uid uuid.UUID) string {
	return filepath.Join(a.dir, uid.String())
}
