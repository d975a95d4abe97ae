package configs

import "time"

// S3 configures the object store used for creative uploads. Uploads are
// disabled when Bucket is empty. Endpoint enables path-style addressing for
// MinIO and similar S3-compatible stores.
type S3 struct {
	Bucket   string `env:"BUCKET"`
	Region   string `env:"REGION" envDefault:"us-east-1"`
	Endpoint string `env:"ENDPOINT"`
	// PublicURL, when set, is used as the base of returned object URLs
	// instead of the bucket's virtual-hosted URL.
	PublicURL string `env:"PUBLIC_URL"`
	// PresignTTL bounds the lifetime of presigned upload URLs.
	PresignTTL time.Duration `env:"PRESIGN_TTL" envDefault:"15m"`
	// MaxUploadBytes limits multipart uploads accepted by the HTTP API.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"104857600"`
}

// Enabled reports whether uploads are configured.
func (c S3) Enabled() bool {
	return c.Bucket != ""
}
