package offers

import (
	"context"
	"errors"

	"seatwise/internal/selection"
)

// SelectionAdapter exposes stored offers as selection itinerary context.
type SelectionAdapter struct {
	service Service
}

func NewSelectionAdapter(service Service) *SelectionAdapter {
	return &SelectionAdapter{service: service}
}

func (a *SelectionAdapter) OfferInfo(ctx context.Context, offerID string) (*selection.OfferInfo, error) {
	offer, err := a.service.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, selection.ErrOfferNotFound
		}
		return nil, err
	}

	return &selection.OfferInfo{
		Currency:     offer.Currency,
		Capacity:     offer.TravellerCount(),
		SegmentCount: len(offer.Segments),
	}, nil
}
