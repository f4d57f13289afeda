package storage

import (
	"context"
	"io"
)

// UploadResult describes a stored object
type UploadResult struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	ETag     string `json:"etag,omitempty"`
}

// Uploader stores export files in an object store. The export service keeps a
// local copy regardless; uploading is optional extra durability.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}
