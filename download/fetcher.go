package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetcherConfig configures a Fetcher. Zero values mean "use the default".
type FetcherConfig struct {
	Client  *http.Client
	Timeout time.Duration // 0 leaves the client's own timeout in place
}

// Fetcher performs the single GET of a run.
type Fetcher struct {
	client *http.Client
}

// Result is a successful response.
type Result struct {
	StatusCode int
	Body       []byte
}

func NewFetcher(cfg FetcherConfig) *Fetcher {
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.Timeout > 0 {
		c := *client
		c.Timeout = cfg.Timeout
		client = &c
	}

	return &Fetcher{client: client}
}

// Fetch GETs rawURL and returns the whole body. Anything but a 200 is an
// ErrDownloadFailed, as is any transport error.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrDownloadFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: server returned %s", ErrDownloadFailed, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrDownloadFailed, err)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
