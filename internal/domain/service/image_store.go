package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for storing package images.
type ImageStore interface {
	// SaveImage writes the image under the given key and returns a public URL.
	SaveImage(ctx context.Context, key string, contentType string, r io.Reader) (string, error)

	// Close releases any resources held by the store.
	Close() error
}
