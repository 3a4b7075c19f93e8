package s3

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"videotube/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	putErr     error
	putKeys    []string
	putTypes   []string
	deleteKeys []string
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putKeys = append(f.putKeys, aws.StringValue(in.Key))
	f.putTypes = append(f.putTypes, aws.StringValue(in.ContentType))
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObjectWithContext(ctx aws.Context, in *s3.DeleteObjectInput, _ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deleteKeys = append(f.deleteKeys, aws.StringValue(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func tempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))
	return path
}

func TestUpload_RemovesLocalFileOnSuccess(t *testing.T) {
	api := &fakeS3{}
	client := newClient(api, "bucket", "https://bucket.s3.us-east-1.amazonaws.com")
	path := tempFile(t, "clip.mp4")

	result, err := client.Upload(context.Background(), path, ResourceVideo)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.URL, "https://bucket.s3.us-east-1.amazonaws.com/videos/"))
	assert.True(t, strings.HasSuffix(result.Key, ".mp4"))
	assert.Equal(t, "video/mp4", api.putTypes[0])
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpload_RemovesLocalFileOnFailure(t *testing.T) {
	api := &fakeS3{putErr: errors.New("access denied")}
	client := newClient(api, "bucket", "https://example.com/bucket")
	path := tempFile(t, "thumb.png")

	_, err := client.Upload(context.Background(), path, ResourceImage)

	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpload_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	api := &fakeS3{putErr: errors.New("timeout")}
	client := newClient(api, "bucket", "https://example.com/bucket")

	for i := 0; i < 5; i++ {
		_, err := client.Upload(context.Background(), tempFile(t, "a.jpg"), ResourceImage)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnavailable)
	}

	path := tempFile(t, "b.jpg")
	_, err := client.Upload(context.Background(), path, ResourceImage)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDelete_UsesKeyFromURL(t *testing.T) {
	api := &fakeS3{}
	client := newClient(api, "bucket", "http://localhost:9000/bucket/")

	err := client.Delete(context.Background(), "http://localhost:9000/bucket/images/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, []string{"images/abc.jpg"}, api.deleteKeys)

	err = client.Delete(context.Background(), "https://elsewhere.example/images/abc.jpg")
	assert.Error(t, err)
}

func TestObjectBaseURL(t *testing.T) {
	minio := &config.Config{AWSEndpoint: "http://localhost:9000", S3UseSSL: "false", S3BucketName: "media"}
	assert.Equal(t, "http://localhost:9000/media", objectBaseURL(minio))

	hosted := &config.Config{AWSRegion: "eu-west-1", S3BucketName: "media"}
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com", objectBaseURL(hosted))
}
