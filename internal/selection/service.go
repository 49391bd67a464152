package selection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"seatwise/internal/notifications"
	"seatwise/internal/shared/money"
	"seatwise/pkg/logger"
)

var (
	// ErrOfferNotFound signals the itinerary context is missing.
	ErrOfferNotFound = errors.New("selection: offer not found")

	// ErrSegmentOutOfRange signals a segment index outside the itinerary.
	ErrSegmentOutOfRange = errors.New("selection: segment index out of range")
)

// OfferInfo is the itinerary slice the selection store needs.
type OfferInfo struct {
	Currency     string
	Capacity     int
	SegmentCount int
}

// OfferSource resolves itinerary context; implementations wrap a missing
// offer as ErrOfferNotFound.
type OfferSource interface {
	OfferInfo(ctx context.Context, offerID string) (*OfferInfo, error)
}

// Total is the cross-segment aggregate in the itinerary's currency.
type Total struct {
	Currency     string       `json:"currency"`
	Amount       money.Amount `json:"amount"`
	SegmentCount int          `json:"segment_count"`
	SeatCount    int          `json:"seat_count"`
}

type Service interface {
	Assign(ctx context.Context, offerID string, segmentIndex int, seatID string, shown money.Amount) (*State, error)
	Clear(ctx context.Context, offerID string, segmentIndex int) error
	Get(ctx context.Context, offerID string, segmentIndex int) (*State, error)

	// SanitizeSelection implements the seat-map module's Sanitizer seam.
	SanitizeSelection(ctx context.Context, offerID string, segmentIndex int, keep func(seatID string) bool, capacity int) (bool, error)

	// TotalExtra re-derives the aggregate purely from persisted state;
	// it never touches the seat-map fetch path.
	TotalExtra(ctx context.Context, offerID string) (*Total, error)
}

type service struct {
	repo     Repository
	offers   OfferSource
	notifier notifications.Notifier
	logger   *logger.Logger

	// Serializes read-modify-write cycles within this process; the
	// whole-state Save is the cross-process synchronization point.
	mu sync.Mutex
}

func NewService(repo Repository, offers OfferSource, notifier notifications.Notifier, log *logger.Logger) Service {
	if notifier == nil {
		notifier = notifications.NoopNotifier{}
	}
	return &service{
		repo:     repo,
		offers:   offers,
		notifier: notifier,
		logger:   log,
	}
}

func (s *service) Assign(ctx context.Context, offerID string, segmentIndex int, seatID string, shown money.Amount) (*State, error) {
	info, err := s.segmentChecked(ctx, offerID, segmentIndex)
	if err != nil {
		return nil, err
	}
	if seatID == "" {
		return nil, fmt.Errorf("seat id is required")
	}
	if shown.Currency == "" {
		shown.Currency = info.Currency
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.Get(ctx, offerID, segmentIndex)
	if err != nil {
		return nil, err
	}

	// Capacity comes from the stored offer, never from the request, so a
	// stale client cannot widen the bound.
	if !state.Assign(seatID, shown, info.Capacity) {
		return state, nil
	}

	s.persist(ctx, offerID, segmentIndex, state)
	s.notify(ctx, offerID, segmentIndex, notifications.ActionAssign, state.SeatIDs)
	s.logger.LogSelectionChanged(ctx, offerID, segmentIndex, notifications.ActionAssign, state.SeatIDs)

	return state, nil
}

func (s *service) Clear(ctx context.Context, offerID string, segmentIndex int) error {
	if _, err := s.segmentChecked(ctx, offerID, segmentIndex); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, offerID, segmentIndex); err != nil {
		s.logger.LogStorageWriteFailure(ctx, offerID, segmentIndex, err)
	}

	s.notify(ctx, offerID, segmentIndex, notifications.ActionClear, nil)
	s.logger.LogSelectionChanged(ctx, offerID, segmentIndex, notifications.ActionClear, nil)

	return nil
}

func (s *service) Get(ctx context.Context, offerID string, segmentIndex int) (*State, error) {
	if _, err := s.segmentChecked(ctx, offerID, segmentIndex); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, offerID, segmentIndex)
}

func (s *service) SanitizeSelection(ctx context.Context, offerID string, segmentIndex int, keep func(seatID string) bool, capacity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.repo.Get(ctx, offerID, segmentIndex)
	if err != nil {
		return false, err
	}
	if state.Empty() {
		return false, nil
	}

	if !state.Sanitize(keep, capacity) {
		return false, nil
	}

	s.persist(ctx, offerID, segmentIndex, state)
	s.notify(ctx, offerID, segmentIndex, notifications.ActionSanitize, state.SeatIDs)
	s.logger.LogSelectionChanged(ctx, offerID, segmentIndex, notifications.ActionSanitize, state.SeatIDs)

	return true, nil
}

func (s *service) TotalExtra(ctx context.Context, offerID string) (*Total, error) {
	info, err := s.offers.OfferInfo(ctx, offerID)
	if err != nil {
		return nil, err
	}

	total := &Total{
		Currency:     info.Currency,
		Amount:       money.Zero(info.Currency),
		SegmentCount: info.SegmentCount,
	}

	for segment := 0; segment < info.SegmentCount; segment++ {
		state, err := s.repo.Get(ctx, offerID, segment)
		if err != nil {
			return nil, err
		}
		for _, seatID := range state.SeatIDs {
			shown, ok := state.ShownPrice[seatID]
			if !ok {
				continue
			}
			// Mismatched currencies are skipped, never converted;
			// conversion would silently misrepresent cost.
			if shown.Currency != info.Currency {
				continue
			}
			total.Amount = total.Amount.Add(shown)
			total.SeatCount++
		}
	}

	return total, nil
}

func (s *service) segmentChecked(ctx context.Context, offerID string, segmentIndex int) (*OfferInfo, error) {
	info, err := s.offers.OfferInfo(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if segmentIndex < 0 || segmentIndex >= info.SegmentCount {
		return nil, ErrSegmentOutOfRange
	}
	return info, nil
}

// persist is best effort: a storage failure must not block interaction, the
// in-memory state stays authoritative for this request.
func (s *service) persist(ctx context.Context, offerID string, segmentIndex int, state *State) {
	if err := s.repo.Save(ctx, offerID, segmentIndex, state); err != nil {
		s.logger.LogStorageWriteFailure(ctx, offerID, segmentIndex, err)
	}
}

func (s *service) notify(ctx context.Context, offerID string, segmentIndex int, action string, seatIDs []string) {
	event := notifications.SelectionChangedEvent{
		OfferID:      offerID,
		SegmentIndex: segmentIndex,
		Action:       action,
		SeatIDs:      seatIDs,
	}
	if err := s.notifier.SelectionChanged(ctx, event); err != nil {
		s.logger.WithOffer(offerID, segmentIndex).WithError(err).Warn("selection change notification failed")
	}
}
