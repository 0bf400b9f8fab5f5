package uploader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"docchat-client/internal/domain"
)

// Transmitter pushes whole file payloads to presigned upload destinations.
// The destination URL is opaque, single-use, and time-limited; the transfer
// is one PUT of the full body, never chunked, never retried.
type Transmitter struct {
	httpClient *http.Client
}

type Option func(*Transmitter)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(t *Transmitter) {
		t.httpClient = httpClient
	}
}

func New(opts ...Option) *Transmitter {
	t := &Transmitter{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transmit writes file's full payload to destination in a single PUT.
// Success is any acknowledgment in the 2xx range.
func (t *Transmitter) Transmit(ctx context.Context, file domain.LocalFile, destination string) error {
	if destination == "" {
		return errors.New("uploader: destination must not be empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, destination, bytes.NewReader(file.Bytes))
	if err != nil {
		return fmt.Errorf("uploader: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.ContentLength = int64(len(file.Bytes))

	res, err := t.resolvedHTTPClient().Do(req)
	if err != nil {
		return fmt.Errorf("uploader: put %s: %w", file.Name, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("uploader: destination rejected %s with status %d: %s", file.Name, res.StatusCode, string(buf))
	}
	return nil
}

func (t *Transmitter) resolvedHTTPClient() *http.Client {
	if t.httpClient != nil {
		return t.httpClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}
