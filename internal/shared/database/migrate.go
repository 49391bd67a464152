package database

import (
	"seatwise/internal/offers"
	"seatwise/internal/selection"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&offers.Offer{},
		&offers.OfferSegment{},
		&selection.SegmentSelection{},
	)
}
