package fetch

// Package fetch implements the image fetch capability: an HTTP byte fetcher
// with transparent gzip/brotli/zstd response decoding, and decoding of the
// payload into an image.Image. It knows nothing about slots or the UI.
