package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"seatwise/internal/shared/constants"
	"seatwise/internal/shared/money"
	"seatwise/pkg/cache"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Get returns the stored state, or a fresh empty state when none
	// exists yet.
	Get(ctx context.Context, offerID string, segmentIndex int) (*State, error)

	// Save writes the whole state object in one step.
	Save(ctx context.Context, offerID string, segmentIndex int, state *State) error

	Delete(ctx context.Context, offerID string, segmentIndex int) error
}

type repository struct {
	db        *gorm.DB
	mirror    cache.Store
	mirrorTTL time.Duration
}

func NewRepository(db *gorm.DB, mirror cache.Store, mirrorTTL time.Duration) Repository {
	return &repository{
		db:        db,
		mirror:    mirror,
		mirrorTTL: mirrorTTL,
	}
}

func (r *repository) Get(ctx context.Context, offerID string, segmentIndex int) (*State, error) {
	key := constants.SelectionKey(offerID, segmentIndex)

	if r.mirror != nil {
		var state State
		if err := r.mirror.Get(ctx, key, &state); err == nil {
			return ensureState(&state), nil
		}
	}

	var row SegmentSelection
	err := r.db.WithContext(ctx).
		First(&row, "offer_id = ? AND segment_index = ?", offerID, segmentIndex).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(row.State), &state); err != nil {
		// Unreadable state is treated as empty rather than blocking the
		// user; the next write repairs the row.
		return NewState(), nil
	}

	if r.mirror != nil {
		_ = r.mirror.Set(ctx, key, &state, r.mirrorTTL)
	}

	return ensureState(&state), nil
}

func (r *repository) Save(ctx context.Context, offerID string, segmentIndex int, state *State) error {
	encoded, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}

	row := SegmentSelection{
		OfferID:      offerID,
		SegmentIndex: segmentIndex,
		State:        string(encoded),
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "offer_id"}, {Name: "segment_index"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}

	if r.mirror != nil {
		_ = r.mirror.Set(ctx, constants.SelectionKey(offerID, segmentIndex), state, r.mirrorTTL)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, offerID string, segmentIndex int) error {
	err := r.db.WithContext(ctx).
		Where("offer_id = ? AND segment_index = ?", offerID, segmentIndex).
		Delete(&SegmentSelection{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete selection: %w", err)
	}

	if r.mirror != nil {
		_ = r.mirror.Delete(ctx, constants.SelectionKey(offerID, segmentIndex))
	}

	return nil
}

func ensureState(state *State) *State {
	if state.SeatIDs == nil {
		state.SeatIDs = []string{}
	}
	if state.ShownPrice == nil {
		state.ShownPrice = make(map[string]money.Amount)
	}
	return state
}
