package server

import (
	"context"
	"io"

	"github.com/starboard-ai/deal-overview/internal/storage"
)

// ObjectStore is the object-storage surface the endpoints depend on.
type ObjectStore interface {
	GenerateUploadURL(ctx context.Context, contentType string) (*storage.UploadTarget, error)
	GenerateDownloadURL(ctx context.Context, fileName string) (string, error)
	GetFile(ctx context.Context, fileName string) (io.ReadCloser, error)
	StreamToBuffer(r io.Reader) ([]byte, error)
}

// Extractor is the document-understanding surface the OCR endpoint depends on.
type Extractor interface {
	ExtractOfferingMemorandum(ctx context.Context, pdf []byte) (string, error)
}
