package s3

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"videotube/pkg/config"
	"videotube/pkg/metrics"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

type ResourceType string

const (
	ResourceVideo ResourceType = "video"
	ResourceImage ResourceType = "image"
	ResourceAuto  ResourceType = "auto"
)

// ErrUnavailable is returned while the circuit breaker is open.
var ErrUnavailable = errors.New("media store temporarily unavailable")

type UploadResult struct {
	URL string
	Key string
	// Duration in seconds, when the store reports one.
	Duration float64
}

type Client struct {
	s3Client s3iface.S3API
	bucket   string
	baseURL  string
	breaker  *gobreaker.CircuitBreaker[*UploadResult]
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	api := s3.New(sess)
	client := newClient(api, cfg.S3BucketName, objectBaseURL(cfg))

	// Ensure bucket exists (for MinIO)
	if _, err := api.HeadBucket(&s3.HeadBucketInput{Bucket: aws.String(cfg.S3BucketName)}); err != nil {
		if _, err := api.CreateBucket(&s3.CreateBucketInput{Bucket: aws.String(cfg.S3BucketName)}); err != nil {
			return nil, fmt.Errorf("failed to ensure bucket %s: %w", cfg.S3BucketName, err)
		}
	}

	return client, nil
}

func newClient(api s3iface.S3API, bucket, baseURL string) *Client {
	return &Client{
		s3Client: api,
		bucket:   bucket,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		breaker: gobreaker.NewCircuitBreaker[*UploadResult](gobreaker.Settings{
			Name:        "s3-upload",
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// objectBaseURL returns the public prefix objects are reachable under.
func objectBaseURL(cfg *config.Config) string {
	endpoint := cfg.AWSEndpoint
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		// MinIO URL format
		protocol := "https"
		if cfg.S3UseSSL == "false" {
			protocol = "http"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s", protocol, endpoint, cfg.S3BucketName)
	}

	region := cfg.AWSRegion
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3BucketName, region)
}

// Upload stores the file at localPath and always removes the local copy,
// whether or not the upload succeeded.
func (c *Client) Upload(ctx context.Context, localPath string, resourceType ResourceType) (*UploadResult, error) {
	defer os.Remove(localPath)

	if localPath == "" {
		return nil, fmt.Errorf("local file path is empty")
	}

	start := time.Now()
	result, err := c.breaker.Execute(func() (*UploadResult, error) {
		return c.put(ctx, localPath, resourceType)
	})
	metrics.MediaUploadDuration.WithLabelValues(string(resourceType)).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.MediaUploadsTotal.WithLabelValues(string(resourceType), "error").Inc()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrUnavailable
		}
		return nil, err
	}

	metrics.MediaUploadsTotal.WithLabelValues(string(resourceType), "ok").Inc()
	return result, nil
}

func (c *Client) put(ctx context.Context, localPath string, resourceType ResourceType) (*UploadResult, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(localPath))
	key := fmt.Sprintf("%s/%s%s", keyPrefix(resourceType), uuid.New().String(), ext)

	_, err = c.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(ext, resourceType)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return &UploadResult{
		URL: c.baseURL + "/" + key,
		Key: key,
	}, nil
}

// Delete removes the object behind a URL previously returned by Upload.
func (c *Client) Delete(ctx context.Context, fileURL string) error {
	key, ok := c.KeyFromURL(fileURL)
	if !ok {
		return fmt.Errorf("url %q is not served by bucket %s", fileURL, c.bucket)
	}

	_, err := c.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

func (c *Client) KeyFromURL(fileURL string) (string, bool) {
	prefix := c.baseURL + "/"
	if !strings.HasPrefix(fileURL, prefix) || len(fileURL) == len(prefix) {
		return "", false
	}
	return strings.TrimPrefix(fileURL, prefix), true
}

func keyPrefix(resourceType ResourceType) string {
	switch resourceType {
	case ResourceVideo:
		return "videos"
	case ResourceImage:
		return "images"
	default:
		return "files"
	}
}

func contentType(ext string, resourceType ResourceType) string {
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	switch resourceType {
	case ResourceVideo:
		return "video/mp4"
	case ResourceImage:
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
