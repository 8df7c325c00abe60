package fetch

import (
	"context"
	"image"
)

// Fetcher retrieves raw bytes for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ImageLoader retrieves and decodes an image for a URL.
type ImageLoader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}
