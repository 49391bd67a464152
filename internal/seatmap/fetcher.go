package seatmap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"seatwise/internal/shared/config"
)

var (
	// ErrRateLimited signals a 429-class throttling response from upstream.
	ErrRateLimited = errors.New("seatmap: upstream rate limited")

	// ErrCoolingDown signals the fetch layer is inside a recorded cooldown
	// window: retryable shortly, not an empty seat map.
	ErrCoolingDown = errors.New("seatmap: upstream fetch cooling down")

	// ErrUnavailable signals the seat map could not be obtained for this
	// flight. Never to be conflated with "no seats".
	ErrUnavailable = errors.New("seatmap: seat map unavailable")
)

// Fetcher retrieves the raw seat-map payload for one segment token. The
// airline API behind it is an opaque collaborator.
type Fetcher interface {
	FetchSeatMap(ctx context.Context, segmentToken, currency string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, segmentToken, currency string) ([]byte, error)

func (f FetcherFunc) FetchSeatMap(ctx context.Context, segmentToken, currency string) ([]byte, error) {
	return f(ctx, segmentToken, currency)
}

// HTTPFetcher is the thin default fetcher against the configured upstream.
type HTTPFetcher struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPFetcher(cfg config.UpstreamConfig) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (f *HTTPFetcher) FetchSeatMap(ctx context.Context, segmentToken, currency string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/seatmaps/%s?currency=%s",
		f.baseURL, url.PathEscape(segmentToken), url.QueryEscape(currency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build seat map request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.apiKey != "" {
		req.Header.Set("X-Api-Key", f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: upstream status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUnavailable, err)
	}

	return body, nil
}
