package download

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// HTTP client constants
const (
	UserAgent = "fear-launcher/1.0"
)

// Service handles download operations
type Service struct {
	client *resty.Client
	logger *zap.Logger
}

// NewService creates a new download service
func NewService(logger *zap.Logger) *Service {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)

	return &Service{
		client: client,
		logger: logger.Named("download"),
	}
}

// Client exposes the underlying resty client (used to plug transports in tests)
func (s *Service) Client() *resty.Client {
	return s.client
}

// Fetch issues a GET request and copies the raw response body into w
func (s *Service) Fetch(ctx context.Context, url string, w io.Writer) (int64, error) {
	s.logger.Debug("fetching", zap.String("url", url))

	resp, err := s.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return 0, fmt.Errorf("request %s: %w", url, err)
	}

	body := resp.RawBody()
	if body == nil {
		return 0, fmt.Errorf("request %s: empty response", url)
	}
	defer body.Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return 0, &StatusError{URL: url, StatusCode: resp.StatusCode()}
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("read body of %s: %w", url, err)
	}

	s.logger.Info("fetched",
		zap.String("url", url),
		zap.String("size", humanize.Bytes(uint64(n))),
	)
	return n, nil
}

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}
