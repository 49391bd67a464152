package seatmap

import (
	"context"
	"errors"
	"testing"

	"seatwise/pkg/cache"
	"seatwise/pkg/logger"
)

type fakeOfferSource struct {
	segment *SegmentContext
	err     error
}

func (s *fakeOfferSource) SegmentContext(context.Context, string, int) (*SegmentContext, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.segment, nil
}

type recordingSanitizer struct {
	calls    int
	capacity int
	keep     func(string) bool
}

func (s *recordingSanitizer) SanitizeSelection(_ context.Context, _ string, _ int, keep func(string) bool, capacity int) (bool, error) {
	s.calls++
	s.capacity = capacity
	s.keep = keep
	return false, nil
}

func newTestSeatMapService(offers OfferSource, fetcher Fetcher, sanitizer Sanitizer) Service {
	pc := NewPayloadCache(cache.NewMemoryStore(), testCacheConfig(), logger.GetDefault())
	return NewService(offers, pc, fetcher, sanitizer, logger.GetDefault())
}

func TestServiceGetSeatMap(t *testing.T) {
	ctx := context.Background()
	segment := &SegmentContext{
		OfferID:      "offer-1",
		SegmentIndex: 0,
		Token:        "tok-0",
		CabinClass:   CabinEconomy,
		Currency:     "EUR",
		Capacity:     2,
	}
	goodPayload := []byte(`{
		"rows": [
			{"id": 1, "seats": [
				{"colId": "A", "available": true, "price": {"units": 12, "currencyCode": "EUR"}},
				{"colId": "B", "available": false}
			]}
		]
	}`)

	t.Run("normalizes fetched payload", func(t *testing.T) {
		sanitizer := &recordingSanitizer{}
		svc := newTestSeatMapService(
			&fakeOfferSource{segment: segment},
			FetcherFunc(func(context.Context, string, string) ([]byte, error) { return goodPayload, nil }),
			sanitizer,
		)

		layout, err := svc.GetSeatMap(ctx, "offer-1", 0, false)
		if err != nil {
			t.Fatalf("GetSeatMap returned error: %v", err)
		}
		if layout.Fallback {
			t.Fatal("well-formed payload must not produce the fallback grid")
		}
		if !layout.Seat(1, "A").Selectable {
			t.Error("seat 01A must be selectable")
		}
		if layout.Seat(1, "B").Selectable {
			t.Error("seat 01B must not be selectable")
		}

		if sanitizer.calls != 1 {
			t.Fatalf("sanitizer calls = %d, want 1", sanitizer.calls)
		}
		if sanitizer.capacity != 2 {
			t.Errorf("sanitizer capacity = %d, want 2", sanitizer.capacity)
		}
		if !sanitizer.keep("01A") || sanitizer.keep("01B") {
			t.Error("sanitizer keep must mirror seat selectability")
		}
	})

	t.Run("malformed payload yields fallback", func(t *testing.T) {
		sanitizer := &recordingSanitizer{}
		svc := newTestSeatMapService(
			&fakeOfferSource{segment: segment},
			FetcherFunc(func(context.Context, string, string) ([]byte, error) { return []byte(`not json`), nil }),
			sanitizer,
		)

		layout, err := svc.GetSeatMap(ctx, "offer-1", 0, false)
		if err != nil {
			t.Fatalf("GetSeatMap returned error: %v", err)
		}
		if !layout.Fallback {
			t.Error("malformed payload must yield the marked fallback grid")
		}
		// The placeholder grid is not real airline data; a persisted
		// selection outside it (say 31A) must survive the bad-payload day.
		if sanitizer.calls != 0 {
			t.Errorf("sanitizer calls = %d, want 0 against the fallback grid", sanitizer.calls)
		}
	})

	t.Run("unshaped payload yields fallback", func(t *testing.T) {
		svc := newTestSeatMapService(
			&fakeOfferSource{segment: segment},
			FetcherFunc(func(context.Context, string, string) ([]byte, error) { return []byte(`{}`), nil }),
			nil,
		)

		layout, err := svc.GetSeatMap(ctx, "offer-1", 0, false)
		if err != nil {
			t.Fatalf("GetSeatMap returned error: %v", err)
		}
		if !layout.Fallback {
			t.Error("payload with no cabin shape must yield the fallback grid")
		}
	})

	t.Run("missing context propagates", func(t *testing.T) {
		svc := newTestSeatMapService(&fakeOfferSource{err: ErrContextNotFound}, nil, nil)

		if _, err := svc.GetSeatMap(ctx, "missing", 0, false); !errors.Is(err, ErrContextNotFound) {
			t.Errorf("err = %v, want ErrContextNotFound", err)
		}
	})

	t.Run("fetch failure propagates", func(t *testing.T) {
		svc := newTestSeatMapService(
			&fakeOfferSource{segment: segment},
			FetcherFunc(func(context.Context, string, string) ([]byte, error) { return nil, errors.New("boom") }),
			nil,
		)

		if _, err := svc.GetSeatMap(ctx, "offer-1", 0, false); !errors.Is(err, ErrUnavailable) {
			t.Errorf("err = %v, want ErrUnavailable", err)
		}
	})
}
