package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where employee documents and rendered PDFs
// live. Only a local-disk backend ships today.
type FileStorage interface {
	// Upload stores the file under the given key and returns the key
	// it was stored at.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
