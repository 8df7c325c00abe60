package fetch

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestService_FetchPlain(t *testing.T) {
	payload := testPNG(t, 12, 8)
	var gotUA, gotRequestID, gotAcceptEncoding string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get(RequestIDHeader)
		gotAcceptEncoding = r.Header.Get("Accept-Encoding")
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	svc := NewService(Options{Timeout: 5 * time.Second, UserAgent: "photo-loader-test"})
	data, err := svc.Fetch(context.Background(), server.URL+"/id/237/120/80")
	require.NoError(t, err)

	assert.Equal(t, payload, data)
	assert.Equal(t, "photo-loader-test", gotUA)
	assert.Equal(t, AcceptEncoding, gotAcceptEncoding)
	_, err = uuid.Parse(gotRequestID)
	assert.NoError(t, err, "request id should be a UUID")
}

func TestService_FetchCompressed(t *testing.T) {
	payload := testPNG(t, 6, 4)

	encoders := map[string]func(*bytes.Buffer) error{
		"gzip": func(buf *bytes.Buffer) error {
			zw := gzip.NewWriter(buf)
			if _, err := zw.Write(payload); err != nil {
				return err
			}
			return zw.Close()
		},
		"br": func(buf *bytes.Buffer) error {
			bw := brotli.NewWriter(buf)
			if _, err := bw.Write(payload); err != nil {
				return err
			}
			return bw.Close()
		},
		"zstd": func(buf *bytes.Buffer) error {
			zw, err := zstd.NewWriter(buf)
			if err != nil {
				return err
			}
			if _, err := zw.Write(payload); err != nil {
				return err
			}
			return zw.Close()
		},
	}

	for encoding, encode := range encoders {
		t.Run(encoding, func(t *testing.T) {
			var body bytes.Buffer
			require.NoError(t, encode(&body))

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", encoding)
				_, _ = w.Write(body.Bytes())
			}))
			defer server.Close()

			svc := NewService(Options{})
			data, err := svc.Fetch(context.Background(), server.URL)
			require.NoError(t, err)
			assert.Equal(t, payload, data)
		})
	}
}

func TestService_FetchStackedEncodings(t *testing.T) {
	payload := testPNG(t, 6, 4)

	// gzip applied first, then brotli
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var body bytes.Buffer
	bw := brotli.NewWriter(&body)
	_, err = bw.Write(gz.Bytes())
	require.NoError(t, err)
	require.NoError(t, bw.Close())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip, br")
		_, _ = w.Write(body.Bytes())
	}))
	defer server.Close()

	data, err := NewService(Options{}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	img, err := NewLoader(NewService(Options{})).Load(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 6, img.Bounds().Dx())
}

func TestService_FetchUnsupportedEncoding(t *testing.T) {
	payload := testPNG(t, 6, 4)

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip, deflate")
		_, _ = w.Write(gz.Bytes())
	}))
	defer server.Close()

	data, err := NewService(Options{}).Fetch(context.Background(), server.URL)
	assert.Nil(t, data)
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestService_FetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		target  error
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			target: &StatusError{},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("boom"))
			},
			target: &StatusError{},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			target: ErrEmptyPayload,
		},
		{
			name: "too large",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(make([]byte, MaxPayloadBytes+10))
			},
			target: ErrPayloadTooLarge,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(test.handler)
			defer server.Close()

			svc := NewService(Options{})
			data, err := svc.Fetch(context.Background(), server.URL)
			assert.Nil(t, data)
			assert.ErrorIs(t, err, test.target)
		})
	}
}

func TestService_FetchStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewService(Options{}).Fetch(context.Background(), server.URL+"/id/1/120/80")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "/id/1/120/80")
}

func TestService_FetchCancelled(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(Options{}).Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_FetchInvalidURL(t *testing.T) {
	_, err := NewService(Options{}).Fetch(context.Background(), "://bad")
	assert.Error(t, err)
}

type stubFetcher struct {
	data []byte
	err  error
}

func (s stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return s.data, s.err
}

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(stubFetcher{data: testPNG(t, 3, 2)})

	img, err := loader.Load(context.Background(), "http://example/id/237/120/80")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}

func TestLoader_LoadErrors(t *testing.T) {
	fetchErr := errors.New("connection reset")

	_, err := NewLoader(stubFetcher{err: fetchErr}).Load(context.Background(), "u")
	assert.ErrorIs(t, err, fetchErr)

	_, err = NewLoader(stubFetcher{data: []byte("<html>not an image</html>")}).Load(context.Background(), "u")
	assert.ErrorIs(t, err, ErrUndecodable)
}
