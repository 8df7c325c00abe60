package fetch

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTP constants
const (
	DefaultTimeout  = 30 * time.Second
	MaxPayloadBytes = 8 << 20
	RequestIDHeader = "X-Request-ID"
	AcceptImages    = "image/webp,image/png,image/jpeg,image/*;q=0.8"
)

// Options configures a Service
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Logger receives request diagnostics; nil disables logging.
	Logger *zerolog.Logger
	// Transport overrides the base round tripper; nil clones http.DefaultTransport.
	Transport http.RoundTripper
}

// Service fetches image bytes over HTTP
type Service struct {
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// NewService creates a new fetch service
func NewService(opts Options) *Service {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Service{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: newCompressionTransport(base),
		},
		userAgent: opts.UserAgent,
		logger:    logger,
	}
}

// Fetch downloads the body at url. Non-2xx responses, empty bodies and
// bodies above MaxPayloadBytes are errors.
func (s *Service) Fetch(ctx context.Context, url string) ([]byte, error) {
	requestID := uuid.NewString()
	log := s.logger.With().Str("request_id", requestID).Str("url", url).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", AcceptImages)
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	started := time.Now()
	log.Debug().Msg("Fetching image")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, NewStatusError(url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", url, err)
	}
	if len(data) > MaxPayloadBytes {
		return nil, ErrPayloadTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}

	log.Debug().
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(started)).
		Msg("Fetched image")
	return data, nil
}

// Loader fetches bytes and decodes them into an image
type Loader struct {
	fetcher Fetcher
}

// NewLoader creates a loader on top of a Fetcher
func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load fetches url and decodes the payload
func (l *Loader) Load(ctx context.Context, url string) (image.Image, error) {
	data, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	img, _, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", url, err)
	}
	return img, nil
}
