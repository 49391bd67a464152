package seatmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"seatwise/pkg/logger"
)

// ErrContextNotFound signals a missing offer or segment index.
var ErrContextNotFound = errors.New("seatmap: offer or segment not found")

// SegmentContext is the itinerary slice the seat-map path needs; provided
// by the offers module through an adapter.
type SegmentContext struct {
	OfferID      string
	SegmentIndex int
	Token        string
	CabinClass   CabinClass
	Currency     string
	Capacity     int
}

// OfferSource resolves segment context. Implementations wrap missing
// offers/segments as ErrContextNotFound.
type OfferSource interface {
	SegmentContext(ctx context.Context, offerID string, segmentIndex int) (*SegmentContext, error)
}

// Sanitizer prunes a persisted selection against a freshly built layout.
// Implemented by the selection module.
type Sanitizer interface {
	SanitizeSelection(ctx context.Context, offerID string, segmentIndex int, keep func(seatID string) bool, capacity int) (bool, error)
}

type Service interface {
	GetSeatMap(ctx context.Context, offerID string, segmentIndex int, forceRefresh bool) (*CabinLayout, error)
}

type service struct {
	offers    OfferSource
	cache     *PayloadCache
	fetcher   Fetcher
	sanitizer Sanitizer
	logger    *logger.Logger
}

func NewService(offers OfferSource, payloadCache *PayloadCache, fetcher Fetcher, sanitizer Sanitizer, log *logger.Logger) Service {
	return &service{
		offers:    offers,
		cache:     payloadCache,
		fetcher:   fetcher,
		sanitizer: sanitizer,
		logger:    log,
	}
}

// GetSeatMap runs the full pipeline: cache-or-fetch, normalize, then prune
// any stale persisted selection against the fresh layout.
func (s *service) GetSeatMap(ctx context.Context, offerID string, segmentIndex int, forceRefresh bool) (*CabinLayout, error) {
	segment, err := s.offers.SegmentContext(ctx, offerID, segmentIndex)
	if err != nil {
		return nil, err
	}

	body, err := s.cache.GetOrFetch(ctx, offerID, segment.Token, segment.Currency, s.fetcher, forceRefresh)
	if err != nil {
		return nil, err
	}

	layout := s.normalizePayload(ctx, body, segment)

	// Stale-selection sanitization: an expected consequence of data
	// refresh, recovered silently, never surfaced as an error. The
	// placeholder grid is not airline data, so it never prunes anything.
	if s.sanitizer != nil && !layout.Fallback {
		if _, err := s.sanitizer.SanitizeSelection(ctx, offerID, segmentIndex, layout.IsSelectableSeat, segment.Capacity); err != nil {
			s.logger.WithOffer(offerID, segmentIndex).WithError(err).Warn("selection sanitize failed")
		}
	}

	return layout, nil
}

func (s *service) normalizePayload(ctx context.Context, body json.RawMessage, segment *SegmentContext) *CabinLayout {
	var payload RawPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.logger.LogSeatMapFallback(ctx, segment.Token, fmt.Errorf("%w: %v", ErrMalformedPayload, err))
		return FallbackLayout(segment.CabinClass)
	}

	layout, err := Normalize(payload.SelectCabin(segment.CabinClass), segment.CabinClass, segment.Currency)
	if err != nil {
		s.logger.LogSeatMapFallback(ctx, segment.Token, err)
		return FallbackLayout(segment.CabinClass)
	}

	return layout
}
