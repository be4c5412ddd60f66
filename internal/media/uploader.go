package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// ===============================
// S3
// ===============================

type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	opts := s3.Options{
		Region:       cfg.S3Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		UsePathStyle: cfg.S3Endpoint != "",
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	publicURL := strings.TrimRight(cfg.S3PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Uploader{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: publicURL,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return u.publicURL + "/" + key, nil
}

// ===============================
// Memory (dev / tests)
// ===============================

type Object struct {
	ContentType string
	Body        []byte
}

type MemoryUploader struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]Object
}

func NewMemoryUploader(baseURL string) *MemoryUploader {
	return &MemoryUploader{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string]Object),
	}
}

func (u *MemoryUploader) Upload(_ context.Context, key, contentType string, body []byte) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.objects[key] = Object{ContentType: contentType, Body: append([]byte(nil), body...)}
	return u.baseURL + "/" + key, nil
}

func (u *MemoryUploader) Get(key string) (Object, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	o, ok := u.objects[key]
	return o, ok
}
