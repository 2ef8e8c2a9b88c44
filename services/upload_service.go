package services

import (
	"context"
	"fmt"
	"mime"
	"path"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
)

type UploadServiceInterface interface {
	Upload(ctx context.Context, data []byte, folder, fileName string) (string, error)
}

// UploadService writes image uploads to the configured bucket and
// returns the public URL callers embed in block data.
type UploadService struct {
	bucketURL     string
	publicBaseURL string
}

var UploadServiceInstance UploadServiceInterface

func NewUploadService(bucketURL, publicBaseURL string) *UploadService {
	return &UploadService{
		bucketURL:     bucketURL,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *UploadService) Upload(ctx context.Context, data []byte, folder, fileName string) (string, error) {
	if s.bucketURL == "" {
		return "", ErrUploadConfig
	}
	if len(data) == 0 || fileName == "" {
		return "", ErrInvalidInput
	}

	bucket, err := blob.OpenBucket(ctx, s.bucketURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadConfig, err)
	}
	defer bucket.Close()

	key := path.Join(folder, path.Base(fileName))
	opts := &blob.WriterOptions{
		ContentType: mime.TypeByExtension(path.Ext(fileName)),
	}

	if err := bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return s.publicBaseURL + "/" + key, nil
}
