package domain

import (
	"strings"

	"github.com/google/uuid"
)

// IngestMode selects how upload content is moved into the blob store.
type IngestMode string

const (
	// IngestBuffered reads the whole body into memory and writes it once.
	IngestBuffered IngestMode = "buffered"
	// IngestChunked reads and writes in bounded-size chunks, so memory use
	// is independent of file size.
	IngestChunked IngestMode = "chunked"
)

// ChunkSize is the chunk size used by IngestChunked.
const ChunkSize = 1 << 20 // 1 MiB

// UploadedFile represents one uploaded blob's metadata record
type UploadedFile struct {
	UID             uuid.UUID
	Size            int64
	Format          string
	OriginalName    string
	Extension       *string
	UploadedToCloud bool
}

// FullName returns the filename suggested for download. The stored extension
// carries no dot and none is reinserted: "text" + "txt" -> "texttxt".
func (f *UploadedFile) FullName() string {
	if f.Extension == nil {
		return f.OriginalName
	}
	return f.OriginalName + *f.Extension
}

// SplitFilename splits a declared filename on the last dot. Everything before
// it becomes the original name, everything after becomes the extension. A name
// without a dot has a nil extension.
func SplitFilename(filename string) (string, *string) {
	index := strings.LastIndex(filename, ".")
	if index == -1 {
		return filename, nil
	}
	extension := filename[index+1:]
	return filename[:index], &extension
}
