package offers

import (
	"context"
	"errors"

	"seatwise/internal/seatmap"
)

// SeatMapAdapter exposes stored offers as seat-map segment context. Keeps
// the seatmap package decoupled from offer storage.
type SeatMapAdapter struct {
	service Service
}

func NewSeatMapAdapter(service Service) *SeatMapAdapter {
	return &SeatMapAdapter{service: service}
}

func (a *SeatMapAdapter) SegmentContext(ctx context.Context, offerID string, segmentIndex int) (*seatmap.SegmentContext, error) {
	offer, err := a.service.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, seatmap.ErrContextNotFound
		}
		return nil, err
	}

	segment, ok := offer.SegmentByIndex(segmentIndex)
	if !ok {
		return nil, seatmap.ErrContextNotFound
	}

	return &seatmap.SegmentContext{
		OfferID:      offer.ID,
		SegmentIndex: segmentIndex,
		Token:        segment.Token,
		CabinClass:   seatmap.ParseCabinClass(segment.CabinClass),
		Currency:     offer.Currency,
		Capacity:     offer.TravellerCount(),
	}, nil
}
