package offers

import (
	"context"
	"fmt"

	"seatwise/internal/shared/config"
)

type Service interface {
	Register(ctx context.Context, offer *Offer) (*Offer, error)
	GetByID(ctx context.Context, id string) (*Offer, error)
	Eligibility(ctx context.Context, id string) (Verdict, error)
}

type service struct {
	repo   Repository
	limits Limits
}

func NewService(repo Repository, cfg *config.Config) Service {
	limits := DefaultLimits()
	if cfg != nil {
		limits = Limits{
			MaxAdults:   cfg.Selection.MaxAdults,
			MaxChildren: cfg.Selection.MaxChildren,
			MaxSegments: cfg.Selection.MaxSegments,
		}
	}
	return &service{
		repo:   repo,
		limits: limits,
	}
}

func (s *service) Register(ctx context.Context, offer *Offer) (*Offer, error) {
	if offer.ID == "" {
		return nil, fmt.Errorf("offer id is required")
	}
	if len(offer.Segments) == 0 {
		return nil, fmt.Errorf("offer must carry at least one segment")
	}

	if err := s.repo.Upsert(ctx, offer); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, offer.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Offer, error) {
	return s.repo.GetByID(ctx, id)
}

// Eligibility evaluates the itinerary-wide gate. Evaluated before a grid is
// ever built; an ineligible itinerary never reaches the seat-map path.
func (s *service) Eligibility(ctx context.Context, id string) (Verdict, error) {
	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Verdict{}, err
	}

	return Eligibility(offer.Adults, len(offer.ChildrenAges), len(offer.Segments), s.limits), nil
}
