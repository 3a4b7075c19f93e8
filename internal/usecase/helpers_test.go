package usecase

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"videotube/pkg/apperror"
	"videotube/pkg/logger"
	"videotube/pkg/s3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	return logger.NewWithOptions(logger.Options{Output: io.Discard})
}

// fakeMedia behaves like the S3 client: it always removes the local file.
type fakeMedia struct {
	mu        sync.Mutex
	uploadErr error
	uploaded  []string
	deleted   []string
	duration  float64
}

func (f *fakeMedia) Upload(ctx context.Context, localPath string, resourceType s3.ResourceType) (*s3.UploadResult, error) {
	defer os.Remove(localPath)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	url := "https://media.example.com/" + string(resourceType) + "/" + filepath.Base(localPath)
	f.uploaded = append(f.uploaded, url)

	result := &s3.UploadResult{URL: url, Key: filepath.Base(localPath)}
	if resourceType == s3.ResourceVideo {
		result.Duration = f.duration
	}
	return result, nil
}

func (f *fakeMedia) Delete(ctx context.Context, fileURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, fileURL)
	return nil
}

type fakeNotifier struct {
	published []string
	err       error
}

func (f *fakeNotifier) PublishVideoPublished(ctx context.Context, videoID, channelID, title string) error {
	f.published = append(f.published, videoID)
	return f.err
}

func tempUpload(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("media"), 0o600))
	return path
}

func assertRemoved(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.True(t, os.IsNotExist(err), "expected %s to be removed", p)
	}
}

func assertKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr), "expected apperror, got %v", err)
	assert.Equal(t, kind, appErr.Kind, "unexpected kind for %v", err)
}
