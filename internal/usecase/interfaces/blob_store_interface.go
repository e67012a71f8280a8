package interfaces

import (
	"context"
	"time"
)

// IBlobStore abstracts the object store holding rendered PDF files.
//
// Deleting a key that no longer exists must be a non-fatal no-op so that a
// prior partial failure never blocks record deletion.
type IBlobStore interface {
	Upload(ctx context.Context, key string, contentType string, body []byte) error
	PresignUpload(ctx context.Context, key string, contentType string, expires time.Duration) (string, error)
	PresignDownload(ctx context.Context, key string, expires time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
