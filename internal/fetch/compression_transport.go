package fetch

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// AcceptEncoding lists the content encodings the transport can decode
const AcceptEncoding = "gzip, br, zstd"

// compressionTransport advertises gzip, brotli and zstd support and decodes
// the response body according to Content-Encoding.
type compressionTransport struct {
	base http.RoundTripper
}

func newCompressionTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &compressionTransport{base: base}
}

// RoundTrip implements http.RoundTripper
func (t *compressionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", AcceptEncoding)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}

	encodings := contentEncodings(resp.Header.Get("Content-Encoding"))
	if len(encodings) == 0 {
		return resp, nil
	}
	for _, enc := range encodings {
		if !supportedEncoding(enc) {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, enc)
		}
	}

	// Encodings are listed in the order they were applied; undo them from the last one.
	body := &decodedBody{raw: resp.Body}
	var reader io.Reader = resp.Body
	for i := len(encodings) - 1; i >= 0; i-- {
		decoder, err := newDecoder(encodings[i], reader)
		if err != nil {
			body.Close()
			return nil, fmt.Errorf("decode %s body: %w", encodings[i], err)
		}
		body.decoders = append(body.decoders, decoder)
		reader = decoder
	}
	body.reader = reader

	resp.Body = body
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return resp, nil
}

func supportedEncoding(enc string) bool {
	switch enc {
	case "gzip", "br", "zstd":
		return true
	}
	return false
}

func newDecoder(enc string, r io.Reader) (io.ReadCloser, error) {
	switch enc {
	case "gzip":
		return gzip.NewReader(r)
	case "br":
		return io.NopCloser(brotli.NewReader(r)), nil
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, enc)
}

// contentEncodings returns the non-identity codings of a Content-Encoding
// header in the order they were applied
func contentEncodings(header string) []string {
	var encodings []string
	for _, part := range strings.Split(header, ",") {
		if enc := strings.ToLower(strings.TrimSpace(part)); enc != "" && enc != "identity" {
			encodings = append(encodings, enc)
		}
	}
	return encodings
}

// decodedBody closes every decoder, innermost first, then the underlying body
type decodedBody struct {
	reader   io.Reader
	decoders []io.ReadCloser
	raw      io.ReadCloser
}

func (b *decodedBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *decodedBody) Close() error {
	var firstErr error
	for i := len(b.decoders) - 1; i >= 0; i-- {
		if err := b.decoders[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := b.raw.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
