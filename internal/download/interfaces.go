package download

import (
	"context"
	"io"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// Fetch streams the body of url into w and returns the number of bytes written
	Fetch(ctx context.Context, url string, w io.Writer) (int64, error)
}
