package storage

import (
	"context"
	"io"
	"time"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// StoredObject describes one object already in the bucket.
type StoredObject struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	Location     string    `json:"location"`
}

// FileUploader stores backup files in object storage.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	List(ctx context.Context, prefix string) ([]StoredObject, error)

	GetPublicURL(key string) string
}
