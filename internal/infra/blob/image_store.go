// Package blob stores package images in a bucket behind a portable blob API.
package blob

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"dispatch/config"
	"dispatch/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Drivers registered for the bucket URL schemes used in config.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type bucketImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// NewBucketImageStore opens the configured bucket and returns an ImageStore.
func NewBucketImageStore(ctx context.Context, cfg *config.ImageStoreConfig, logger *slog.Logger) (service.ImageStore, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	return &bucketImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// SaveImage writes the image under the given key and returns a public URL.
func (s *bucketImageStore) SaveImage(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, r); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish image upload")
	}

	s.logger.Debug("Package image stored", "key", key)

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the underlying bucket handle.
func (s *bucketImageStore) Close() error {
	return s.bucket.Close()
}
