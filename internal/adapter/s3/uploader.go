package s3adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"creative-hub/internal/config/configs"
	"creative-hub/internal/core/port"
)

// objectAPI is the subset of the S3 client used by Uploader.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// presignAPI is the subset of the S3 presign client used by Uploader.
type presignAPI interface {
	PresignPutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Uploader implements port.Uploader on top of an S3-compatible bucket.
type Uploader struct {
	objects   objectAPI
	presign   presignAPI
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewUploader builds an Uploader from configuration using the default AWS
// credential chain. If cfg.Endpoint is set, path-style addressing is
// enabled (for MinIO and similar).
func NewUploader(ctx context.Context, cfg configs.S3) (*Uploader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}
	client := s3.NewFromConfig(awsCfg, s3opts...)

	publicURL := cfg.PublicURL
	if publicURL == "" {
		if cfg.Endpoint != "" {
			publicURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &Uploader{
		objects:   client,
		presign:   s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
	}, nil
}

// Upload streams body to the bucket under key.
func (u *Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (port.UploadedObject, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if _, err := u.objects.PutObject(ctx, in); err != nil {
		return port.UploadedObject{}, fmt.Errorf("s3 put object: %w", err)
	}
	return port.UploadedObject{Key: key, URL: u.objectURL(key)}, nil
}

// PresignPut returns a presigned PUT request valid for ttl.
func (u *Uploader) PresignPut(ctx context.Context, key, contentType string, ttl time.Duration) (port.PresignedUpload, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	req, err := u.presign.PresignPutObject(ctx, in, s3.WithPresignExpires(ttl))
	if err != nil {
		return port.PresignedUpload{}, fmt.Errorf("s3 presign put: %w", err)
	}
	return port.PresignedUpload{
		Key:       key,
		URL:       req.URL,
		Method:    req.Method,
		ExpiresAt: u.now().Add(ttl),
	}, nil
}

func (u *Uploader) objectURL(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return u.publicURL + "/" + strings.Join(segments, "/")
}
