package s3adapter

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	if in.Body != nil {
		f.body, _ = io.ReadAll(in.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

type fakePresign struct {
	in *s3.PutObjectInput
}

func (f *fakePresign) PresignPutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.in = in
	return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + *in.Key, Method: "PUT"}, nil
}

func newTestUploader(objects objectAPI, presign presignAPI) *Uploader {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	return &Uploader{
		objects:   objects,
		presign:   presign,
		bucket:    "creatives",
		publicURL: "https://cdn.example.com",
		now:       func() time.Time { return at },
	}
}

func TestUpload(t *testing.T) {
	objects := &fakeObjects{}
	u := newTestUploader(objects, &fakePresign{})

	obj, err := u.Upload(context.Background(), "creatives/c1/ad one.mp4", "video/mp4", strings.NewReader("bytes"))
	require.NoError(t, err)

	assert.Equal(t, "creatives/c1/ad one.mp4", obj.Key)
	assert.Equal(t, "https://cdn.example.com/creatives/c1/ad%20one.mp4", obj.URL)
	assert.Equal(t, "creatives", *objects.in.Bucket)
	assert.Equal(t, "video/mp4", *objects.in.ContentType)
	assert.Equal(t, "bytes", string(objects.body))
}

func TestUpload_Error(t *testing.T) {
	u := newTestUploader(&fakeObjects{err: errors.New("denied")}, &fakePresign{})
	_, err := u.Upload(context.Background(), "k", "", strings.NewReader(""))
	require.ErrorContains(t, err, "s3 put object")
}

func TestPresignPut(t *testing.T) {
	presign := &fakePresign{}
	u := newTestUploader(&fakeObjects{}, presign)

	up, err := u.PresignPut(context.Background(), "creatives/c1/x.png", "image/png", 10*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "https://signed.example/creatives/c1/x.png", up.URL)
	assert.Equal(t, "PUT", up.Method)
	assert.Equal(t, time.Date(2024, 6, 1, 10, 10, 0, 0, time.UTC), up.ExpiresAt)
	assert.Equal(t, "image/png", *presign.in.ContentType)
}

