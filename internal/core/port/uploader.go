package port

import (
	"context"
	"io"
	"time"
)

// Uploader stores creative source files in object storage.
type Uploader interface {
	// Upload streams body to key and returns the stored object.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (UploadedObject, error)
	// PresignPut returns a URL a client can PUT the object to directly.
	PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (PresignedUpload, error)
}

// UploadedObject describes a stored file.
type UploadedObject struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// PresignedUpload is a time-limited direct upload target.
type PresignedUpload struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expiresAt"`
}
