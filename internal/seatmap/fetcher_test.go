package seatmap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"seatwise/internal/shared/config"
)

func TestHTTPFetcher(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var gotPath, gotKey, gotCurrency string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("X-Api-Key")
			gotCurrency = r.URL.Query().Get("currency")
			w.Write([]byte(`{"cabins":[]}`))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(config.UpstreamConfig{BaseURL: server.URL, APIKey: "secret"})

		body, err := fetcher.FetchSeatMap(ctx, "tok-abc", "EUR")
		if err != nil {
			t.Fatalf("FetchSeatMap returned error: %v", err)
		}
		if string(body) != `{"cabins":[]}` {
			t.Errorf("body = %s", body)
		}
		if gotPath != "/seatmaps/tok-abc" {
			t.Errorf("path = %q, want /seatmaps/tok-abc", gotPath)
		}
		if gotKey != "secret" {
			t.Errorf("X-Api-Key = %q, want secret", gotKey)
		}
		if gotCurrency != "EUR" {
			t.Errorf("currency = %q, want EUR", gotCurrency)
		}
	})

	t.Run("429 maps to rate limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(config.UpstreamConfig{BaseURL: server.URL})
		if _, err := fetcher.FetchSeatMap(ctx, "tok", "EUR"); !errors.Is(err, ErrRateLimited) {
			t.Errorf("err = %v, want ErrRateLimited", err)
		}
	})

	t.Run("5xx maps to unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(config.UpstreamConfig{BaseURL: server.URL})
		if _, err := fetcher.FetchSeatMap(ctx, "tok", "EUR"); !errors.Is(err, ErrUnavailable) {
			t.Errorf("err = %v, want ErrUnavailable", err)
		}
	})

	t.Run("unreachable host maps to unavailable", func(t *testing.T) {
		fetcher := NewHTTPFetcher(config.UpstreamConfig{BaseURL: "http://127.0.0.1:1"})
		if _, err := fetcher.FetchSeatMap(ctx, "tok", "EUR"); !errors.Is(err, ErrUnavailable) {
			t.Errorf("err = %v, want ErrUnavailable", err)
		}
	})
}
