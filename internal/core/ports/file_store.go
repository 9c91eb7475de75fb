package ports

import (
	"context"
	"io"
)

// FileStore keeps uploaded documents and generated paperwork.
type FileStore interface {
	// Put stores the object under key, replacing any previous content.
	Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error

	// PresignGet returns a time limited download URL for the object.
	PresignGet(ctx context.Context, key string) (string, error)
}
