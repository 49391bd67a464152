package offers

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no offer exists for the given id.
var ErrNotFound = errors.New("offer not found")

type Repository interface {
	GetByID(ctx context.Context, id string) (*Offer, error)
	Upsert(ctx context.Context, offer *Offer) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Offer, error) {
	var offer Offer
	err := r.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order("segment_index ASC")
		}).
		First(&offer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

// Upsert replaces the offer and its segments in one transaction. Segments
// are always rewritten wholesale so a re-registration can never leave a
// stale leg behind.
func (r *repository) Upsert(ctx context.Context, offer *Offer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", offer.ID).Delete(&OfferSegment{}).Error; err != nil {
			return fmt.Errorf("failed to clear offer segments: %w", err)
		}
		if err := tx.Where("id = ?", offer.ID).Delete(&Offer{}).Error; err != nil {
			return fmt.Errorf("failed to clear offer: %w", err)
		}
		if err := tx.Create(offer).Error; err != nil {
			return fmt.Errorf("failed to create offer: %w", err)
		}
		return nil
	})
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("offer_id = ?", id).Delete(&OfferSegment{}).Error; err != nil {
			return fmt.Errorf("failed to delete offer segments: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&Offer{}).Error; err != nil {
			return fmt.Errorf("failed to delete offer: %w", err)
		}
		return nil
	})
}
